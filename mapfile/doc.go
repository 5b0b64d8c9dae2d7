// Package mapfile reads and writes towermaze map documents.
//
// A document is an object with a single "map" key holding rows of tile
// codes, indexed [y][x]:
//
//	{"map": [[3, 0, 4], [0, 0, 0]]}
//
// The same shape is accepted as YAML. Every document is checked against an
// embedded JSON Schema before a grid is built from it, so malformed input
// is reported with a schema location rather than a half-built grid.
//
// Codes: 0 Free, 1 Unbuildable, 2 Void, 3 Spawn, 4 Exit, 5 Occupied, 6 Path.
package mapfile

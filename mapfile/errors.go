package mapfile

import "errors"

var (
	// ErrUnknownFormat is returned for a file extension other than .json, .yaml or .yml.
	ErrUnknownFormat = errors.New("mapfile: unknown format")

	// ErrMalformed is returned when the input is not valid JSON or YAML.
	ErrMalformed = errors.New("mapfile: malformed document")

	// ErrInvalidDocument is returned when the document fails schema validation.
	ErrInvalidDocument = errors.New("mapfile: document does not match schema")

	// ErrNoSpawn is returned by Check when the map has no Spawn tile.
	ErrNoSpawn = errors.New("mapfile: map has no spawn")

	// ErrNoExit is returned by Check when the map has no Exit tile.
	ErrNoExit = errors.New("mapfile: map has no exit")

	// ErrUnsolvable is returned by Check when no exit is reachable from the
	// spawn on the unmodified map.
	ErrUnsolvable = errors.New("mapfile: no exit reachable from spawn")
)

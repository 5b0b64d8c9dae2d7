package mapfile_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/towermaze/gridgraph"
	"github.com/katalvlaran/towermaze/mapfile"
)

func TestFormatOf(t *testing.T) {
	cases := []struct {
		path string
		want mapfile.Format
		err  error
	}{
		{"data.json", mapfile.JSON, nil},
		{"maps/level.YAML", mapfile.YAML, nil},
		{"level.yml", mapfile.YAML, nil},
		{"level.toml", mapfile.JSON, mapfile.ErrUnknownFormat},
		{"noext", mapfile.JSON, mapfile.ErrUnknownFormat},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := mapfile.FormatOf(tc.path)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestLoad_JSONAndYAMLAgree loads the same map in both formats.
func TestLoad_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := mapfile.Load(filepath.Join("testdata", "data.json"))
	require.NoError(t, err)
	fromYAML, err := mapfile.Load(filepath.Join("testdata", "data.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 9, fromJSON.Width)
	assert.Equal(t, 6, fromJSON.Height)
	assert.Equal(t, fromJSON.Codes(), fromYAML.Codes())
	assert.NoError(t, mapfile.Check(fromJSON))
}

func TestLoad_Errors(t *testing.T) {
	_, err := mapfile.Load(filepath.Join("testdata", "map.toml"))
	assert.ErrorIs(t, err, mapfile.ErrUnknownFormat)

	_, err = mapfile.Load(filepath.Join("testdata", "badcode.yml"))
	assert.ErrorIs(t, err, mapfile.ErrInvalidDocument)
	assert.Contains(t, err.Error(), "badcode.yml")

	_, err = mapfile.Load(filepath.Join("testdata", "ragged.json"))
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	_, err = mapfile.Load(filepath.Join("testdata", "missing.json"))
	assert.Error(t, err)
}

func TestDecode_Invalid(t *testing.T) {
	cases := []struct {
		name string
		in   string
		f    mapfile.Format
		err  error
	}{
		{"NotJSON", `{"map": [[3, 0`, mapfile.JSON, mapfile.ErrMalformed},
		{"NotYAML", "map: [[3, 0\n", mapfile.YAML, mapfile.ErrMalformed},
		{"MissingKey", `{"tiles": [[3, 4]]}`, mapfile.JSON, mapfile.ErrInvalidDocument},
		{"EmptyMap", `{"map": []}`, mapfile.JSON, mapfile.ErrInvalidDocument},
		{"EmptyRow", `{"map": [[]]}`, mapfile.JSON, mapfile.ErrInvalidDocument},
		{"Negative", `{"map": [[3, -1, 4]]}`, mapfile.JSON, mapfile.ErrInvalidDocument},
		{"Fraction", `{"map": [[3, 0.5, 4]]}`, mapfile.JSON, mapfile.ErrInvalidDocument},
		{"StringCode", "map:\n  - [3, \"0\", 4]\n", mapfile.YAML, mapfile.ErrInvalidDocument},
		{"EmptyYAML", "", mapfile.YAML, mapfile.ErrInvalidDocument},
		{"BadFormat", `{"map": [[3, 4]]}`, mapfile.Format(7), mapfile.ErrUnknownFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapfile.Decode(strings.NewReader(tc.in), tc.f)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestEncode_JSON(t *testing.T) {
	g, err := gridgraph.FromCodes([][]int{{3, 0, 4}, {0, 6, 0}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mapfile.Encode(&buf, g.Kinds(), mapfile.JSON))
	assert.Equal(t, "{\n  \"map\": [\n    [3, 0, 4],\n    [0, 6, 0]\n  ]\n}\n", buf.String())
}

// TestEncode_RoundTrip writes the grid with a tower overlaid and reads it back.
func TestEncode_RoundTrip(t *testing.T) {
	g, err := mapfile.Load(filepath.Join("testdata", "data.json"))
	require.NoError(t, err)
	kinds := g.Overlay([]gridgraph.Coord{{X: 2, Y: 1}})

	for _, f := range []mapfile.Format{mapfile.JSON, mapfile.YAML} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, mapfile.Encode(&buf, kinds, f))

			back, err := mapfile.Decode(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, kinds, back.Kinds())
		})
	}

	assert.ErrorIs(t, mapfile.Encode(&bytes.Buffer{}, kinds, mapfile.Format(3)), mapfile.ErrUnknownFormat)
}

func TestCheck(t *testing.T) {
	cases := []struct {
		name  string
		codes [][]int
		err   error
	}{
		{"Ready", [][]int{{3, 0, 4}}, nil},
		{"NoSpawn", [][]int{{0, 0, 4}}, mapfile.ErrNoSpawn},
		{"NoExit", [][]int{{3, 0, 0}}, mapfile.ErrNoExit},
		{"Walled", [][]int{{3, 2, 4}}, mapfile.ErrUnsolvable},
		{"TowerInTheWay", [][]int{{3, 5, 4}, {2, 2, 2}}, mapfile.ErrUnsolvable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := gridgraph.FromCodes(tc.codes)
			require.NoError(t, err)
			err = mapfile.Check(g)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

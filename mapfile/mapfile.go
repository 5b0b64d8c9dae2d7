package mapfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/towermaze/gridgraph"
)

// Load reads the map file at path, choosing the format by extension.
func Load(path string) (*gridgraph.Grid, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	g, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Decode reads one document in format f, validates it and builds the grid.
// Shape problems yield ErrInvalidDocument; ragged rows are reported by
// gridgraph as ErrNonRectangular.
func Decode(r io.Reader, f Format) (*gridgraph.Grid, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if f == YAML {
		if raw, err = yamlToJSON(raw); err != nil {
			return nil, err
		}
	} else if f != JSON {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}

	var inst any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&inst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := documentSchema.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return gridgraph.FromCodes(doc.Map)
}

// yamlToJSON re-encodes a YAML document as JSON so both formats go through
// the same schema.
func yamlToJSON(raw []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}

// Encode writes kinds as a document in format f, one row per line.
func Encode(w io.Writer, kinds [][]gridgraph.TileKind, f Format) error {
	switch f {
	case JSON:
		return encodeJSON(w, kinds)
	case YAML:
		return encodeYAML(w, kinds)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

func encodeJSON(w io.Writer, kinds [][]gridgraph.TileKind) error {
	var b bytes.Buffer
	b.WriteString("{\n  \"map\": [\n")
	for y, row := range kinds {
		b.WriteString("    [")
		for x, k := range row {
			if x > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(int(k)))
		}
		b.WriteByte(']')
		if y < len(kinds)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("  ]\n}\n")
	_, err := w.Write(b.Bytes())
	return err
}

func encodeYAML(w io.Writer, kinds [][]gridgraph.TileKind) error {
	rows := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range kinds {
		r := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, k := range row {
			r.Content = append(r.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!int",
				Value: strconv.Itoa(int(k)),
			})
		}
		rows.Content = append(rows.Content, r)
	}
	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "map"},
			rows,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

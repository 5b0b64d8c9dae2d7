package mapfile

import (
	_ "embed"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed map.schema.json
var schemaSource string

var documentSchema = jsonschema.MustCompileString("map.schema.json", schemaSource)

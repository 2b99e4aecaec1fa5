package reporter

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// schemaDraft is the JSON Schema dialect of JSONSchema output. Draft-07 is
// the newest dialect most validators agree on.
const schemaDraft = "http://json-schema.org/draft-07/schema#"

// JSONSchema returns the JSON Schema describing the --format json report.
// Every definition is inlined so the document is self-contained.
func JSONSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		Anonymous:      true,
		ExpandedStruct: true,
		DoNotReference: true,
	}

	schema := reflector.Reflect(&JSONOutput{})
	schema.Version = schemaDraft
	schema.Title = "repolint report"
	schema.Description = "Validation result written by repolint --format json (layout " + jsonSchemaVersion + ")."

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal report schema: %w", err)
	}
	return out, nil
}

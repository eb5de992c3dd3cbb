// internal/appconfig/schema.go
package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema describes the accepted shape of the config document. Typos
// and wrongly typed values are caught here, before the run starts.
const configSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "target":       {"type": "string", "minLength": 1},
    "size":         {"type": "string"},
    "runtime":      {"type": "integer", "minimum": 1},
    "warmup":       {"type": "integer", "minimum": 0},
    "workers":      {"type": "integer", "minimum": 1},
    "queueDepth":   {"type": "integer", "minimum": 1},
    "direct":       {"type": "boolean"},
    "logInterval":  {"type": "integer", "minimum": 1},
    "outputDir":    {"type": "string"},
    "fioBinary":    {"type": "string"},
    "pandocBinary": {"type": "string"},
    "reportTitle":  {"type": "string"},
    "notes":        {"type": "array", "items": {"type": "string"}},
    "logFile":      {"type": "string"},
    "debug":        {"type": "boolean"}
  }
}`

// Validate checks a raw config document against the schema.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

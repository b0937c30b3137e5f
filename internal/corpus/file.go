package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed exemplars.schema.json
var exemplarSchema string

// LoadFile reads a corpus from a JSON file and validates it against the
// embedded schema. The file is a deployment-time artifact; it is read once
// and the resulting store is immutable.
func LoadFile(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}

	schemaLoader := gojsonschema.NewStringLoader(exemplarSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate corpus file %s: %w", path, err)
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, fmt.Errorf("corpus file %s failed schema validation: %s", path, strings.Join(details, "; "))
	}

	var entries []ExemplarResume
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file %s: %w", path, err)
	}

	return NewMemoryStore(entries), nil
}

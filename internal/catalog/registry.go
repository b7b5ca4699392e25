// internal/catalog/registry.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	stderrors "laundry-king/internal/common/errors"

	"github.com/xeipuuv/gojsonschema"
)

// Registry is the on-disk catalog format.
type Registry struct {
	Version     string `json:"version"`
	LastUpdated string `json:"lastUpdated,omitempty"`
	Items       []Item `json:"items"`
}

// registrySchema validates a catalog registry file before it is trusted.
const registrySchema = `{
	"type": "object",
	"required": ["version", "items"],
	"properties": {
		"version": {"type": "string"},
		"lastUpdated": {"type": "string"},
		"items": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id", "name", "price"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"name": {"type": "string", "minLength": 1},
					"icon": {"type": "string"},
					"price": {"type": "integer", "minimum": 0}
				},
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`

// LoadRegistry reads and validates a registry file and builds a Catalog.
func LoadRegistry(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog registry: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(registrySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, stderrors.NewRegistryInvalidError(err.Error())
	}
	if !result.Valid() {
		details := ""
		for _, desc := range result.Errors() {
			if details != "" {
				details += "; "
			}
			details += desc.String()
		}
		return nil, stderrors.NewRegistryInvalidError(details)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse catalog registry: %w", err)
	}

	return New(reg.Items)
}

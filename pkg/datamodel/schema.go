package datamodel

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// modelSchema is the canonical JSON schema for serialized conceptual data models.
//
//go:embed data-model-schema.json
var modelSchema []byte

// ErrSchemaViolation is returned when a document fails schema validation.
var ErrSchemaViolation = errors.New("data model schema violation")

// ValidateJSON validates a serialized data model document against the
// embedded schema. Returns the individual violations on failure.
func ValidateJSON(document []byte) ([]string, error) {
	schemaLoader := gojsonschema.NewBytesLoader(modelSchema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}

	return violations, fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(violations, "; "))
}

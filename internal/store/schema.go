package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Document schemas for the JSON backend. Outcomes may be written either
// as tagged records or as the legacy [course, grade, credits] tuple.
const studentsSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["email", "name"],
		"properties": {
			"email": {"type": "string", "minLength": 1},
			"name": {"type": "string"},
			"gpa": {"type": "number"},
			"courses": {
				"type": "array",
				"items": {
					"oneOf": [
						{
							"type": "array",
							"minItems": 3,
							"maxItems": 3,
							"prefixItems": [
								{"type": "string"},
								{"type": "number"},
								{"type": "number"}
							]
						},
						{
							"type": "object",
							"required": ["course_id", "grade", "credits_earned"],
							"properties": {
								"course_id": {"type": "string"},
								"grade": {"type": "number"},
								"credits_earned": {"type": "number"}
							}
						}
					]
				}
			}
		}
	}
}`

const coursesSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["name", "trimester"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"trimester": {"type": "string"},
			"credits": {"type": "number", "minimum": 0}
		}
	}
}`

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateDocument checks raw JSON against the named schema definition.
func validateDocument(name, definition string, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema(name, definition)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(name, definition string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	var defParsed any
	if err := json.Unmarshal([]byte(definition), &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}

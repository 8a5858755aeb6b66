package tools

import (
	"fmt"
	"strings"
)

// FieldType is the primitive constraint on one schema field
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
	FieldEnum    FieldType = "enum"
	FieldMap     FieldType = "map"
)

// Field describes one named argument: a scalar, an enum of strings, or an
// opaque key-value map. Schemas go exactly one level deep.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Enum        []string
	Description string
}

// Schema is the declarative argument contract for one tool. One generic
// validator evaluates every schema; tools only declare field tables.
type Schema struct {
	Fields []Field
}

// JSONSchema renders the schema as the inputSchema object advertised over the
// wire. Field names and optionality here are the contract the calling agent
// was told; they must match Validate exactly.
func (s Schema) JSONSchema() map[string]interface{} {
	properties := make(map[string]interface{}, len(s.Fields))
	required := make([]interface{}, 0)

	for _, f := range s.Fields {
		prop := map[string]interface{}{}
		switch f.Type {
		case FieldString:
			prop["type"] = "string"
		case FieldNumber:
			prop["type"] = "number"
		case FieldBoolean:
			prop["type"] = "boolean"
		case FieldEnum:
			prop["type"] = "string"
			values := make([]interface{}, len(f.Enum))
			for i, v := range f.Enum {
				values[i] = v
			}
			prop["enum"] = values
		case FieldMap:
			prop["type"] = "object"
			prop["additionalProperties"] = true
		}
		if f.Description != "" {
			prop["description"] = f.Description
		}
		properties[f.Name] = prop

		if f.Required {
			required = append(required, f.Name)
		}
	}

	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Validate checks raw arguments against the schema and reports the first
// violation. Fields are checked in declaration order; unknown arguments pass
// through untouched.
func (s Schema) Validate(args map[string]interface{}) error {
	for _, f := range s.Fields {
		value, present := args[f.Name]
		if !present {
			if f.Required {
				return fmt.Errorf("missing required parameter: %s", f.Name)
			}
			continue
		}
		if err := f.check(value); err != nil {
			return err
		}
	}
	return nil
}

func (f Field) check(value interface{}) error {
	switch f.Type {
	case FieldString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("invalid type for %s: expected string", f.Name)
		}
	case FieldNumber:
		if _, ok := value.(float64); !ok {
			return fmt.Errorf("invalid type for %s: expected number", f.Name)
		}
	case FieldBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("invalid type for %s: expected boolean", f.Name)
		}
	case FieldEnum:
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("invalid type for %s: expected string", f.Name)
		}
		for _, allowed := range f.Enum {
			if str == allowed {
				return nil
			}
		}
		return fmt.Errorf("invalid value for %s: must be one of [%s]", f.Name, strings.Join(f.Enum, ", "))
	case FieldMap:
		if _, ok := value.(map[string]interface{}); !ok {
			return fmt.Errorf("invalid type for %s: expected object", f.Name)
		}
	}
	return nil
}

// Typed accessors for validated arguments. JSON decoding yields float64 for
// every number, so that is the only numeric shape handled.

func stringArg(args map[string]interface{}, name string) string {
	v, _ := args[name].(string)
	return v
}

func stringPtrArg(args map[string]interface{}, name string) *string {
	if v, ok := args[name].(string); ok {
		return &v
	}
	return nil
}

func floatPtrArg(args map[string]interface{}, name string) *float64 {
	if v, ok := args[name].(float64); ok {
		return &v
	}
	return nil
}

func intArg(args map[string]interface{}, name string) int {
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return 0
}

func boolArg(args map[string]interface{}, name string) bool {
	v, _ := args[name].(bool)
	return v
}

func mapArg(args map[string]interface{}, name string) map[string]interface{} {
	v, _ := args[name].(map[string]interface{})
	return v
}

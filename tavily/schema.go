package tavily

import "encoding/json"

// SchemaFor generates the JSON input schema for a kind from its field
// table. Only agent-overridable fields appear as properties;
// construction-only fields are structurally invisible, which is the
// sole mechanism preventing an agent from loosening a restriction the
// embedding application imposed. Unknown properties are rejected so a
// typo never silently resolves to a default.
func SchemaFor(kind Kind) json.RawMessage {
	props := map[string]any{}
	var required []string
	for _, f := range Fields(kind) {
		if !f.Overridable {
			continue
		}
		prop := map[string]any{
			"type":        string(f.Type),
			"description": f.Description,
		}
		if f.Type == TypeStringList {
			prop["items"] = map[string]any{"type": "string"}
		}
		if len(f.Enum) > 0 {
			prop["enum"] = f.Enum
		}
		if f.Min > 0 {
			prop["minimum"] = f.Min
		}
		if f.Max > 0 {
			prop["maximum"] = f.Max
		}
		if f.Required {
			required = append(required, f.Name)
			if f.Type == TypeStringList {
				prop["minItems"] = 1
			}
		}
		props[f.Name] = prop
	}

	schema := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	out, _ := json.Marshal(schema)
	return out
}

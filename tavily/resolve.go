package tavily

import "fmt"

// Params is one layer of settings for a tool kind, keyed by internal
// field name. A key's presence means that layer explicitly set the
// field; absence means unset.
type Params map[string]any

// Resolve merges the validated per-call input and the
// construction-time configuration into the effective parameters for
// one invocation. Precedence per field: the call value if the field
// is agent-overridable, then the configuration value, then the field
// table's hardcoded default. Fields no layer set are left out
// entirely so the remote service applies its own defaults.
//
// Empty collections count as unset at every layer: an empty per-call
// filter list falls through to the configuration value rather than
// clearing it, and an empty configuration list is never transmitted.
//
// Resolve is pure. It assumes call already passed schema validation
// and only guards against embedder programming errors: unknown field
// names and per-call values for fields the schema does not expose.
func Resolve(kind Kind, call, cfg Params) (Params, error) {
	if err := checkKnown(kind, call, true); err != nil {
		return nil, err
	}
	if err := checkKnown(kind, cfg, false); err != nil {
		return nil, err
	}

	effective := Params{}
	for _, f := range Fields(kind) {
		if f.Overridable {
			if v, ok := defined(call[f.Name]); ok {
				effective[f.Name] = v
				continue
			}
		}
		if v, ok := defined(cfg[f.Name]); ok {
			effective[f.Name] = v
			continue
		}
		if f.Default != nil {
			effective[f.Name] = f.Default
		}
	}
	return effective, nil
}

func checkKnown(kind Kind, p Params, fromCall bool) error {
	for name := range p {
		f, ok := lookupField(kind, name)
		if !ok {
			return fmt.Errorf("%s: unknown field %q", kind.Verb(), name)
		}
		if fromCall && !f.Overridable {
			return fmt.Errorf("%s: field %q cannot be set per call", kind.Verb(), name)
		}
	}
	return nil
}

// defined reports whether a value counts as set. Nil values and empty
// collections do not; an explicit false or zero does.
func defined(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []string:
		if len(t) == 0 {
			return nil, false
		}
	case []any:
		if len(t) == 0 {
			return nil, false
		}
	}
	return v, true
}

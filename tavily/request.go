package tavily

import "fmt"

// BuildPayload renders resolved parameters into the wire-format
// request body: every internal field name becomes its wire name and
// the value carries over unchanged. Fields absent from effective stay
// absent from the payload; nothing is ever emitted as null. Numeric
// bounds were enforced at the validation stage, so the builder does
// no re-checking.
//
// The renaming table is total over the kind's fields; a key without a
// table entry is an embedder programming error.
func BuildPayload(kind Kind, effective Params) (map[string]any, error) {
	payload := make(map[string]any, len(effective))
	for name, v := range effective {
		f, ok := lookupField(kind, name)
		if !ok {
			return nil, fmt.Errorf("%s: no wire name for field %q", kind.Verb(), name)
		}
		payload[f.Wire] = v
	}
	return payload, nil
}

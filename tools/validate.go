package tools

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/initializ/webtools/tavily"
)

// validator checks call arguments against one tool's input schema.
// The schema compiles on first use and is reused for the life of the
// tool instance.
type validator struct {
	raw json.RawMessage

	once   sync.Once
	schema *gojsonschema.Schema
	err    error
}

func newValidator(raw json.RawMessage) *validator {
	return &validator{raw: raw}
}

func (v *validator) compiled() (*gojsonschema.Schema, error) {
	v.once.Do(func() {
		v.schema, v.err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(v.raw))
	})
	return v.schema, v.err
}

// check validates args before any tool work runs. All violations are
// reported in one failure so the caller can fix its input in one pass.
func (v *validator) check(verb string, args json.RawMessage) error {
	schema, err := v.compiled()
	if err != nil {
		return fmt.Errorf("compiling %s input schema: %w", verb, err)
	}

	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(args))
	if err != nil {
		return &tavily.Error{Verb: verb, Category: tavily.CategoryValidation, Err: err}
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return &tavily.Error{
		Verb:     verb,
		Category: tavily.CategoryValidation,
		Detail:   strings.Join(msgs, "; "),
	}
}

package tools

import (
	"context"
	"encoding/json"

	"github.com/initializ/webtools/tavily"
)

// webTool is the one shell behind all four tools: a kind, its
// construction-time defaults, and the schema generated from the
// kind's field table. Execute is the shared pipeline: validate the
// arguments, resolve them against the defaults, make one API call,
// hand back the raw response.
type webTool struct {
	name        string
	description string
	category    Category
	kind        tavily.Kind
	client      *tavily.Client
	config      tavily.Params
	schema      json.RawMessage
	validate    *validator
}

func newWebTool(name, description string, category Category, kind tavily.Kind, client *tavily.Client, config tavily.Params) *webTool {
	schema := tavily.SchemaFor(kind)
	return &webTool{
		name:        name,
		description: description,
		category:    category,
		kind:        kind,
		client:      client,
		config:      config,
		schema:      schema,
		validate:    newValidator(schema),
	}
}

func (t *webTool) Name() string                 { return t.name }
func (t *webTool) Description() string          { return t.description }
func (t *webTool) Category() Category           { return t.category }
func (t *webTool) InputSchema() json.RawMessage { return t.schema }

func (t *webTool) Execute(ctx context.Context, args json.RawMessage) (string, error) {
	verb := t.kind.Verb()

	if err := t.validate.check(verb, args); err != nil {
		return "", err
	}

	var call tavily.Params
	if len(args) > 0 {
		if err := json.Unmarshal(args, &call); err != nil {
			return "", &tavily.Error{Verb: verb, Category: tavily.CategoryValidation, Err: err}
		}
	}

	effective, err := tavily.Resolve(t.kind, call, t.config)
	if err != nil {
		return "", err
	}

	raw, err := t.client.Do(ctx, t.kind, effective)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

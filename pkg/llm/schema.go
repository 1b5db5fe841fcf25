package llm

import (
	"github.com/invopop/jsonschema"
)

// responseSchema is a named JSON schema sent as the response format
type responseSchema struct {
	name        string
	description string
	schema      *jsonschema.Schema
}

var (
	feedSchema = responseSchema{
		name:        "news_feed",
		description: "Viral news feed with real and fictional items",
		schema:      reflectSchema(&feedPayload{}),
	}
	scriptSchema = responseSchema{
		name:        "viral_script",
		description: "Teleprompter script with image prompts and viral analysis",
		schema:      reflectSchema(&scriptPayload{}),
	}
)

// reflectSchema builds an inline schema without $id, $schema and $defs, as expected by chat completion APIs
func reflectSchema(v any) *jsonschema.Schema {
	r := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(v)
	s.Version = ""
	return s
}

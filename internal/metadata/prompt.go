package metadata

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

const promptInstructions = `You extract structured metadata from text. Analyze the text provided by the user and report a concise summary, a title, the key topics, and the overall sentiment. The sentiment must be exactly one of: positive, negative, neutral. Report at most three topics. Leave the title empty when the text has no apparent title.`

// payload is the JSON shape the extraction service is asked to return.
type payload struct {
	Summary   string   `json:"summary" jsonschema_description:"One or two sentence summary of the text"`
	Title     string   `json:"title" jsonschema_description:"Title of the text, empty when none is apparent"`
	Topics    []string `json:"topics" jsonschema_description:"Up to three key topics, most significant first"`
	Sentiment string   `json:"sentiment" jsonschema_description:"Overall sentiment: positive, negative, or neutral"`
}

// systemPrompt combines the instructions with a schema of the expected
// response, reflected from the payload struct.
func systemPrompt() string {
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema, err := json.MarshalIndent(reflector.Reflect(&payload{}), "", "  ")
	if err != nil {
		return promptInstructions
	}

	return promptInstructions + "\n\nRespond with a single JSON object matching this schema:\n" + string(schema)
}

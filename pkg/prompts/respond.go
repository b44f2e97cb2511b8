package prompts

import (
	"fmt"
	"strings"
)

// Tone values accepted by BuildRespondPrompt.
const (
	ToneFormal     = "formal"
	ToneNegotiator = "negotiator"
	ToneDirect     = "direct"
	ToneAll        = "all"
)

// IsValidTone reports whether t is a recognized tone selector.
func IsValidTone(t string) bool {
	switch t {
	case ToneFormal, ToneNegotiator, ToneDirect, ToneAll:
		return true
	}
	return false
}

// BuildRespondPrompt creates the instruction for drafting replies in the
// requested tone(s). Tones outside the filter must be omitted by the model.
func BuildRespondPrompt(context, userIntent, responseType string) string {
	var prompt strings.Builder

	prompt.WriteString("Generate appropriate business responses for this situation in both Chinese (zh) and Spanish (es).\n\n")
	prompt.WriteString(fmt.Sprintf("Context: %s\n", context))
	if userIntent != "" {
		prompt.WriteString(fmt.Sprintf("User's Intent: %s\n", userIntent))
	}
	prompt.WriteString(fmt.Sprintf("Response Type: %s\n", responseType))

	prompt.WriteString(`
Respond with this exact JSON structure:
{
  "responses": {
    "formal": { "zh": "formal Chinese response (if requested)", "es": "formal Spanish response (if requested)" },
    "negotiator": { "zh": "negotiating Chinese response (if requested)", "es": "negotiating Spanish response (if requested)" },
    "direct": { "zh": "direct Chinese response (if requested)", "es": "direct Spanish response (if requested)" }
  },
  "explanation": "brief explanation of the approach taken"
}

Only include the response types that were requested; omit the rest.
For each included response type, provide both the original (zh) and translated (es) versions.

Guidelines:
- FORMAL: Use 您, 贵公司, respectful terms, complete sentences
- NEGOTIATOR: Balance politeness with assertiveness, 我们可以, 希望
- DIRECT: Clear, brief, 我需要, direct questions
`)

	return prompt.String()
}

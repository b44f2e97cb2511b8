package prompts

import (
	"fmt"
	"strings"
)

// BuildAnalyzePrompt creates the instruction for the message analysis
// operation. The model must reply with translation, business interpretation,
// alerts, and three bilingual tone drafts in the exact JSON structure below.
func BuildAnalyzePrompt(messageText, sourceLang, targetLang, conversationContext string) string {
	var prompt strings.Builder

	prompt.WriteString("Analyze this business message and provide a comprehensive response in JSON format.\n\n")
	prompt.WriteString(fmt.Sprintf("Message: %q\n", messageText))
	prompt.WriteString(fmt.Sprintf("Source Language: %s\n", sourceLang))
	prompt.WriteString(fmt.Sprintf("Target Language: %s\n", targetLang))
	if conversationContext != "" {
		prompt.WriteString(fmt.Sprintf("Previous context: %s\n", conversationContext))
	}

	prompt.WriteString(`
Respond with this exact JSON structure:
{
  "translatedMessage": "accurate translation here",
  "interpretation": {
    "businessContext": "explain what this message means in business terms",
    "sentiment": "positive/neutral/negative/urgent",
    "keyTerms": ["list", "of", "important", "business", "terms"],
    "riskLevel": "low/medium/high"
  },
  "alerts": ["warning 1", "warning 2"],
  "suggestedResponses": {
    "formal": { "zh": "formal Chinese response", "es": "formal Spanish response" },
    "negotiator": { "zh": "negotiating Chinese response", "es": "negotiating Spanish response" },
    "direct": { "zh": "direct Chinese response", "es": "direct Spanish response" }
  }
}

For each suggested response (formal, negotiator, direct), provide both the original (zh) and translated (es) versions.

Alerts should include:
- Unusual MOQ requirements
- Suspicious pricing
- Unclear delivery terms
- Missing certifications mentions
- Pressure tactics or urgency without justification
`)

	return prompt.String()
}

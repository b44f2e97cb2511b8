package prompts

import (
	"fmt"
	"strings"
)

// BuildProviderExtractionPrompt creates the instruction for extracting
// structured supplier attributes from a product/supplier URL. Unknown
// numeric fields must come back as null, never zero.
func BuildProviderExtractionPrompt(url, additionalContext string) string {
	var prompt strings.Builder

	prompt.WriteString("Analyze this supplier/product URL and extract business information.\n\n")
	prompt.WriteString(fmt.Sprintf("URL: %s\n", url))
	if additionalContext != "" {
		prompt.WriteString(fmt.Sprintf("Additional context: %s\n", additionalContext))
	}

	prompt.WriteString(`
Note: You cannot actually browse the URL, but infer what data should be extracted.
Provide a template response showing what information should be collected.

Respond with this exact JSON structure:
{
  "providerName": "extracted or 'Unknown'",
  "productName": "extracted or 'Unknown'",
  "moq": null or number,
  "pricePerUnit": null or number,
  "currency": "USD/CNY/etc or null",
  "certifications": ["cert1", "cert2"],
  "deliveryTimeDays": null or number,
  "additionalInfo": "any other relevant details",
  "riskAssessment": {
    "overallRisk": "low/medium/high",
    "warnings": ["warning 1", "warning 2"],
    "recommendation": "advice for the buyer"
  }
}

Risk assessment should consider:
- Price too good to be true
- Very low/high MOQ
- Lack of certifications
- Unusual delivery terms
`)

	return prompt.String()
}

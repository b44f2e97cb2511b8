package services

import (
	"encoding/json"
	"time"
)

// BilingualText is a reply draft carrying both the Chinese original and its
// Spanish translation. Older prompt versions returned a bare string for a
// tone; that legacy shape is accepted on decode and treated as the Chinese
// side.
type BilingualText struct {
	Zh string `json:"zh"`
	Es string `json:"es"`
}

// UnmarshalJSON accepts either the canonical {"zh": ..., "es": ...} object
// or a legacy plain string.
func (b *BilingualText) UnmarshalJSON(data []byte) error {
	var legacy string
	if err := json.Unmarshal(data, &legacy); err == nil {
		b.Zh = legacy
		b.Es = ""
		return nil
	}

	type bilingualAlias BilingualText
	var alias bilingualAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*b = BilingualText(alias)
	return nil
}

// SuggestedResponses holds the three tone drafts. A tone the model omitted
// or returned as null stays nil and is omitted from the JSON reply.
type SuggestedResponses struct {
	Formal     *BilingualText `json:"formal,omitempty"`
	Negotiator *BilingualText `json:"negotiator,omitempty"`
	Direct     *BilingualText `json:"direct,omitempty"`
}

// Interpretation is the model's business reading of a message.
type Interpretation struct {
	BusinessContext string   `json:"businessContext"`
	Sentiment       string   `json:"sentiment"`
	KeyTerms        []string `json:"keyTerms"`
	RiskLevel       string   `json:"riskLevel"`
}

// AnalyzeResult is the outward shape of one message analysis.
type AnalyzeResult struct {
	ConversationID     int64              `json:"conversationId"`
	OriginalMessage    string             `json:"originalMessage"`
	TranslatedMessage  string             `json:"translatedMessage"`
	SourceLanguage     string             `json:"sourceLanguage"`
	TargetLanguage     string             `json:"targetLanguage"`
	Interpretation     Interpretation     `json:"interpretation"`
	Alerts             []string           `json:"alerts"`
	SuggestedResponses SuggestedResponses `json:"suggestedResponses"`
	Timestamp          time.Time          `json:"timestamp"`
}

// RiskAssessment is the model's risk reading of a supplier.
type RiskAssessment struct {
	OverallRisk    string   `json:"overallRisk"`
	Warnings       []string `json:"warnings"`
	Recommendation string   `json:"recommendation"`
}

// ProviderResult is the outward shape of one supplier extraction. AnalyzedAt
// is the moment this extraction ran, distinct from the stored record's own
// created/updated timestamps.
type ProviderResult struct {
	ProviderID       int64          `json:"providerId"`
	ProviderName     string         `json:"providerName"`
	SourceURL        string         `json:"sourceUrl"`
	ProductName      string         `json:"productName"`
	MOQ              *int           `json:"moq,omitempty"`
	PricePerUnit     *float64       `json:"pricePerUnit,omitempty"`
	Currency         string         `json:"currency"`
	Certifications   []string       `json:"certifications"`
	DeliveryTimeDays *int           `json:"deliveryTimeDays,omitempty"`
	AdditionalInfo   string         `json:"additionalInfo"`
	RiskAssessment   RiskAssessment `json:"riskAssessment"`
	AnalyzedAt       time.Time      `json:"analyzedAt"`
}

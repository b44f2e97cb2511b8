package models

import "time"

// Message type values for conversations
const (
	MessageTypeAnalysis       = "analysis"         // Full analyze flow output
	MessageTypeUserToProvider = "user_to_provider" // Buyer-authored message
	MessageTypeProviderToUser = "provider_to_user" // Supplier-authored message
)

// IsValidMessageType reports whether t is one of the defined message tags.
func IsValidMessageType(t string) bool {
	switch t {
	case MessageTypeAnalysis, MessageTypeUserToProvider, MessageTypeProviderToUser:
		return true
	}
	return false
}

// Conversation is the stored log entry of one analyzed message exchange.
// Rows are immutable after insert; CreatedAt is set exactly once.
// Stored in conversations table.
type Conversation struct {
	ID                 int64     `json:"id"`
	UserID             string    `json:"userId"`
	ProviderID         *int64    `json:"providerId,omitempty"`
	OriginalMessage    string    `json:"originalMessage"`
	TranslatedMessage  string    `json:"translatedMessage"`
	SourceLanguage     string    `json:"sourceLanguage"`
	TargetLanguage     string    `json:"targetLanguage"`
	AIInterpretation   string    `json:"aiInterpretation"`
	Alerts             string    `json:"alerts"`             // Structured alert list joined with "; "
	SuggestedResponses string    `json:"suggestedResponses"` // Verbatim raw model JSON, kept for audit
	MessageType        string    `json:"messageType"`
	CreatedAt          time.Time `json:"createdAt"`
}

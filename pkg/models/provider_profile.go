package models

import "time"

// ProviderProfile stores business attributes extracted for a supplier.
// At most one profile exists per source URL: a repeat extraction for the
// same URL updates the stored row instead of inserting a duplicate.
// Stored in provider_profiles table.
type ProviderProfile struct {
	ID               int64     `json:"id"`
	UserID           string    `json:"userId"`
	ProviderName     string    `json:"providerName"`
	SourceURL        string    `json:"sourceUrl"`
	ProductName      string    `json:"productName"`
	MOQ              *int      `json:"moq,omitempty"`
	PricePerUnit     *float64  `json:"pricePerUnit,omitempty"`
	Currency         string    `json:"currency"`
	Certifications   []string  `json:"certifications"`
	DeliveryTimeDays *int      `json:"deliveryTimeDays,omitempty"`
	AdditionalInfo   string    `json:"additionalInfo"`
	RiskAssessment   string    `json:"riskAssessment"` // Raw model risk JSON
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

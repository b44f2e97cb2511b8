package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/salvacode/orientlink/pkg/apperrors"
	"github.com/salvacode/orientlink/pkg/jsonutil"
	"github.com/salvacode/orientlink/pkg/llm"
	"github.com/salvacode/orientlink/pkg/models"
	"github.com/salvacode/orientlink/pkg/prompts"
	"github.com/salvacode/orientlink/pkg/repositories"
)

// ProviderService manages supplier profiles extracted from product URLs.
type ProviderService interface {
	// Analyze asks the model to infer supplier attributes from the URL and
	// creates or updates the profile stored for that URL.
	Analyze(ctx context.Context, sourceURL, userID, additionalContext string) (*ProviderResult, error)

	// List returns all profiles for a user, most recently created first.
	List(ctx context.Context, userID string) ([]*models.ProviderProfile, error)

	// Get returns one profile by id, or apperrors.ErrNotFound.
	Get(ctx context.Context, id int64) (*models.ProviderProfile, error)

	// SearchByName returns profiles whose name contains the given substring,
	// case-insensitively, most recently created first.
	SearchByName(ctx context.Context, name string) ([]*models.ProviderProfile, error)
}

type providerService struct {
	client       llm.CompletionClient
	providerRepo repositories.ProviderRepository
	logger       *zap.Logger
}

// NewProviderService creates a new provider service with dependencies.
func NewProviderService(
	client llm.CompletionClient,
	providerRepo repositories.ProviderRepository,
	logger *zap.Logger,
) ProviderService {
	return &providerService{
		client:       client,
		providerRepo: providerRepo,
		logger:       logger,
	}
}

// extractionPayload is the JSON contract the extraction prompt demands.
// Numeric fields come in as raw JSON: models return numbers, numeric
// strings, or null interchangeably, so coercion happens after decode.
type extractionPayload struct {
	ProviderName     *string         `json:"providerName"`
	ProductName      *string         `json:"productName"`
	MOQ              json.RawMessage `json:"moq"`
	PricePerUnit     json.RawMessage `json:"pricePerUnit"`
	Currency         *string         `json:"currency"`
	Certifications   []string        `json:"certifications"`
	DeliveryTimeDays json.RawMessage `json:"deliveryTimeDays"`
	AdditionalInfo   *string         `json:"additionalInfo"`
	RiskAssessment   json.RawMessage `json:"riskAssessment"`
}

type riskPayload struct {
	OverallRisk    *string  `json:"overallRisk"`
	Warnings       []string `json:"warnings"`
	Recommendation *string  `json:"recommendation"`
}

func (s *providerService) Analyze(ctx context.Context, sourceURL, userID, additionalContext string) (*ProviderResult, error) {
	s.logger.Info("Analyzing provider",
		zap.String("user_id", userID),
		zap.String("source_url", sourceURL))

	existing, err := s.providerRepo.GetByURL(ctx, sourceURL)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("lookup provider by url: %w", err)
	}

	prompt := prompts.BuildProviderExtractionPrompt(sourceURL, additionalContext)
	raw, err := s.client.Complete(ctx, prompt, prompts.MasterPrompt)
	if err != nil {
		return nil, fmt.Errorf("extract provider info: %w", err)
	}

	payload, err := llm.ParseJSONResponse[extractionPayload](raw)
	if err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}

	provider := existing
	if provider == nil {
		provider = &models.ProviderProfile{}
	}
	s.mergeExtraction(provider, &payload, sourceURL, userID)

	if existing != nil {
		err = s.providerRepo.Update(ctx, provider)
	} else {
		err = s.providerRepo.Create(ctx, provider)
	}
	if err != nil {
		return nil, fmt.Errorf("save provider profile: %w", err)
	}

	s.logger.Info("Provider profile saved", zap.Int64("provider_id", provider.ID))

	return s.buildResult(provider, payload.RiskAssessment), nil
}

// mergeExtraction overlays the freshest extraction onto the profile. Text
// fields are always overwritten; numeric fields only when the model supplied
// a usable positive value, so a null leaves the stored value intact.
func (s *providerService) mergeExtraction(p *models.ProviderProfile, payload *extractionPayload, sourceURL, userID string) {
	p.UserID = userID
	p.SourceURL = sourceURL
	p.ProviderName = stringValue(payload.ProviderName)
	p.ProductName = stringValue(payload.ProductName)
	p.Currency = stringValue(payload.Currency)
	p.Certifications = payload.Certifications
	p.AdditionalInfo = stringValue(payload.AdditionalInfo)
	if len(payload.RiskAssessment) > 0 && string(payload.RiskAssessment) != "null" {
		p.RiskAssessment = string(payload.RiskAssessment)
	}

	if moq := s.positiveInt(payload.MOQ, "moq"); moq != nil {
		p.MOQ = moq
	}
	if price := s.positiveFloat(payload.PricePerUnit, "pricePerUnit"); price != nil {
		p.PricePerUnit = price
	}
	if days := s.positiveInt(payload.DeliveryTimeDays, "deliveryTimeDays"); days != nil {
		p.DeliveryTimeDays = days
	}
}

// positiveInt coerces a raw numeric leaf and discards non-positive values,
// which the model sometimes produces despite the contract.
func (s *providerService) positiveInt(raw json.RawMessage, field string) *int {
	v := jsonutil.FlexibleIntValue(raw)
	if v == nil {
		return nil
	}
	if *v <= 0 {
		s.logger.Warn("Discarding non-positive numeric field from model",
			zap.String("field", field),
			zap.Int("value", *v))
		return nil
	}
	return v
}

func (s *providerService) positiveFloat(raw json.RawMessage, field string) *float64 {
	v := jsonutil.FlexibleFloatValue(raw)
	if v == nil {
		return nil
	}
	if *v <= 0 {
		s.logger.Warn("Discarding non-positive numeric field from model",
			zap.String("field", field),
			zap.Float64("value", *v))
		return nil
	}
	return v
}

func (s *providerService) buildResult(p *models.ProviderProfile, rawRisk json.RawMessage) *ProviderResult {
	risk := RiskAssessment{OverallRisk: "unknown", Warnings: []string{}}
	if len(rawRisk) > 0 && string(rawRisk) != "null" {
		var parsed riskPayload
		if err := json.Unmarshal(rawRisk, &parsed); err != nil {
			s.logger.Warn("Unparseable risk assessment in model response", zap.Error(err))
		} else {
			if parsed.OverallRisk != nil {
				risk.OverallRisk = *parsed.OverallRisk
			}
			risk.Warnings = stringList(parsed.Warnings)
			risk.Recommendation = stringValue(parsed.Recommendation)
		}
	}

	return &ProviderResult{
		ProviderID:       p.ID,
		ProviderName:     p.ProviderName,
		SourceURL:        p.SourceURL,
		ProductName:      p.ProductName,
		MOQ:              p.MOQ,
		PricePerUnit:     p.PricePerUnit,
		Currency:         p.Currency,
		Certifications:   stringList(p.Certifications),
		DeliveryTimeDays: p.DeliveryTimeDays,
		AdditionalInfo:   p.AdditionalInfo,
		RiskAssessment:   risk,
		AnalyzedAt:       time.Now(),
	}
}

func (s *providerService) List(ctx context.Context, userID string) ([]*models.ProviderProfile, error) {
	return s.providerRepo.ListByUser(ctx, userID)
}

func (s *providerService) Get(ctx context.Context, id int64) (*models.ProviderProfile, error) {
	return s.providerRepo.GetByID(ctx, id)
}

func (s *providerService) SearchByName(ctx context.Context, name string) ([]*models.ProviderProfile, error) {
	return s.providerRepo.SearchByName(ctx, name)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/salvacode/orientlink/pkg/apperrors"
	"github.com/salvacode/orientlink/pkg/llm"
	"github.com/salvacode/orientlink/pkg/models"
	"github.com/salvacode/orientlink/pkg/prompts"
	"github.com/salvacode/orientlink/pkg/repositories"
)

// Default language pair when the request leaves the codes unset.
const (
	DefaultSourceLanguage = "es"
	DefaultTargetLanguage = "zh"
)

// AlertSeparator joins the structured alert list into the stored column.
const AlertSeparator = "; "

// AnalyzeParams carries one message analysis request.
type AnalyzeParams struct {
	MessageText         string
	SourceLanguage      string // Defaults to "es" when empty
	TargetLanguage      string // Defaults to "zh" when empty
	ProviderID          *int64 // Optional link to a stored supplier profile
	UserID              string
	ConversationContext string // Optional prior-conversation summary
}

// AnalysisService analyzes buyer/supplier messages and records the exchange.
type AnalysisService interface {
	// AnalyzeMessage translates and interprets one message, persists a
	// conversation record tagged "analysis", and returns the typed result
	// with the stored record's id attached.
	AnalyzeMessage(ctx context.Context, params AnalyzeParams) (*AnalyzeResult, error)

	// History lists stored conversation records, most recent first.
	History(ctx context.Context, filter repositories.ConversationFilter) ([]*models.Conversation, error)
}

type analysisService struct {
	client           llm.CompletionClient
	conversationRepo repositories.ConversationRepository
	providerRepo     repositories.ProviderRepository
	logger           *zap.Logger
}

// NewAnalysisService creates a new analysis service with dependencies.
func NewAnalysisService(
	client llm.CompletionClient,
	conversationRepo repositories.ConversationRepository,
	providerRepo repositories.ProviderRepository,
	logger *zap.Logger,
) AnalysisService {
	return &analysisService{
		client:           client,
		conversationRepo: conversationRepo,
		providerRepo:     providerRepo,
		logger:           logger,
	}
}

// analysisPayload is the JSON contract the analyze prompt demands.
// Pointer fields distinguish supplied values from absent/null ones; both
// of the latter count as "unknown", never as a zero value.
type analysisPayload struct {
	TranslatedMessage  *string                `json:"translatedMessage"`
	Interpretation     *interpretationPayload `json:"interpretation"`
	Alerts             []string               `json:"alerts"`
	SuggestedResponses *SuggestedResponses    `json:"suggestedResponses"`
}

type interpretationPayload struct {
	BusinessContext *string  `json:"businessContext"`
	Sentiment       *string  `json:"sentiment"`
	KeyTerms        []string `json:"keyTerms"`
	RiskLevel       *string  `json:"riskLevel"`
}

func (s *analysisService) AnalyzeMessage(ctx context.Context, params AnalyzeParams) (*AnalyzeResult, error) {
	sourceLang := params.SourceLanguage
	if sourceLang == "" {
		sourceLang = DefaultSourceLanguage
	}
	targetLang := params.TargetLanguage
	if targetLang == "" {
		targetLang = DefaultTargetLanguage
	}

	s.logger.Info("Analyzing message",
		zap.String("user_id", params.UserID),
		zap.String("source_lang", sourceLang),
		zap.String("target_lang", targetLang))

	// A request naming a provider that does not exist proceeds with no
	// supplier linkage rather than failing.
	providerID := s.resolveProvider(ctx, params.ProviderID)

	prompt := prompts.BuildAnalyzePrompt(params.MessageText, sourceLang, targetLang, params.ConversationContext)
	raw, err := s.client.Complete(ctx, prompt, prompts.MasterPrompt)
	if err != nil {
		return nil, fmt.Errorf("analyze message: %w", err)
	}

	payload, err := llm.ParseJSONResponse[analysisPayload](raw)
	if err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}
	if payload.TranslatedMessage == nil || payload.Interpretation == nil || payload.SuggestedResponses == nil {
		return nil, fmt.Errorf("analysis response missing required fields: %w", apperrors.ErrMalformedModelResponse)
	}

	result := &AnalyzeResult{
		OriginalMessage:   params.MessageText,
		TranslatedMessage: *payload.TranslatedMessage,
		SourceLanguage:    sourceLang,
		TargetLanguage:    targetLang,
		Interpretation: Interpretation{
			BusinessContext: stringValue(payload.Interpretation.BusinessContext),
			Sentiment:       stringValue(payload.Interpretation.Sentiment),
			KeyTerms:        stringList(payload.Interpretation.KeyTerms),
			RiskLevel:       stringValue(payload.Interpretation.RiskLevel),
		},
		Alerts:             stringList(payload.Alerts),
		SuggestedResponses: *payload.SuggestedResponses,
		Timestamp:          time.Now(),
	}

	conversation := &models.Conversation{
		UserID:            params.UserID,
		ProviderID:        providerID,
		OriginalMessage:   params.MessageText,
		TranslatedMessage: result.TranslatedMessage,
		SourceLanguage:    sourceLang,
		TargetLanguage:    targetLang,
		AIInterpretation:  result.Interpretation.BusinessContext,
		Alerts:            strings.Join(result.Alerts, AlertSeparator),
		// Full raw model JSON kept for audit traceability.
		SuggestedResponses: raw,
		MessageType:        models.MessageTypeAnalysis,
	}
	if err := s.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, fmt.Errorf("save conversation: %w", err)
	}
	result.ConversationID = conversation.ID

	s.logger.Info("Analysis completed",
		zap.Int64("conversation_id", conversation.ID),
		zap.Int("alerts", len(result.Alerts)))

	return result, nil
}

func (s *analysisService) History(ctx context.Context, filter repositories.ConversationFilter) ([]*models.Conversation, error) {
	return s.conversationRepo.List(ctx, filter)
}

// resolveProvider checks that the referenced supplier profile exists and
// returns its id, or nil when no valid reference was supplied.
func (s *analysisService) resolveProvider(ctx context.Context, providerID *int64) *int64 {
	if providerID == nil {
		return nil
	}
	if _, err := s.providerRepo.GetByID(ctx, *providerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("Provider lookup failed, continuing without linkage",
				zap.Int64("provider_id", *providerID),
				zap.Error(err))
		}
		return nil
	}
	return providerID
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// stringList keeps list fields serializing as [] rather than null when the
// model omits them.
func stringList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

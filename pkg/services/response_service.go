package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/salvacode/orientlink/pkg/apperrors"
	"github.com/salvacode/orientlink/pkg/llm"
	"github.com/salvacode/orientlink/pkg/prompts"
)

// RespondParams carries one reply-drafting request.
type RespondParams struct {
	Context      string
	ResponseType string // Tone selector, defaults to "all" when empty
	UserIntent   string
	ProviderID   *int64 // Carried for context only, never validated
	UserID       string
}

// ResponseService drafts replies in the requested tones. Nothing is
// persisted by this flow.
type ResponseService interface {
	Generate(ctx context.Context, params RespondParams) (*SuggestedResponses, error)
}

type responseService struct {
	client llm.CompletionClient
	logger *zap.Logger
}

// NewResponseService creates a new response generation service.
func NewResponseService(client llm.CompletionClient, logger *zap.Logger) ResponseService {
	return &responseService{
		client: client,
		logger: logger,
	}
}

// respondPayload is the JSON contract the respond prompt demands.
type respondPayload struct {
	Responses   *SuggestedResponses `json:"responses"`
	Explanation *string             `json:"explanation"`
}

func (s *responseService) Generate(ctx context.Context, params RespondParams) (*SuggestedResponses, error) {
	responseType := params.ResponseType
	if responseType == "" {
		responseType = prompts.ToneAll
	}

	s.logger.Info("Generating responses",
		zap.String("user_id", params.UserID),
		zap.String("response_type", responseType))

	prompt := prompts.BuildRespondPrompt(params.Context, params.UserIntent, responseType)
	raw, err := s.client.Complete(ctx, prompt, prompts.MasterPrompt)
	if err != nil {
		return nil, fmt.Errorf("generate responses: %w", err)
	}

	payload, err := llm.ParseJSONResponse[respondPayload](raw)
	if err != nil {
		return nil, fmt.Errorf("parse respond response: %w", err)
	}
	if payload.Responses == nil {
		return nil, fmt.Errorf("respond response missing responses object: %w", apperrors.ErrMalformedModelResponse)
	}

	// Tones the model omitted (or nulled) stay nil and are omitted from
	// the reply rather than defaulted to empty text.
	return payload.Responses, nil
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salvacode/orientlink/pkg/apperrors"
	"github.com/salvacode/orientlink/pkg/llm"
)

func newResponseFixture(reply string) (ResponseService, *llm.MockClient) {
	client := llm.NewMockClient()
	client.CompleteFunc = func(ctx context.Context, prompt, system string) (string, error) {
		return reply, nil
	}
	return NewResponseService(client, zap.NewNop()), client
}

func TestGenerate_AllTones(t *testing.T) {
	reply := `{
	  "responses": {
	    "formal": { "zh": "您好，感谢您的报价。", "es": "Estimado, gracias por su cotización." },
	    "negotiator": { "zh": "我们希望降低价格。", "es": "Esperamos bajar el precio." },
	    "direct": { "zh": "我需要更好的价格。", "es": "Necesito mejor precio." }
	  },
	  "explanation": "Three tones covering the negotiation range."
	}`
	svc, client := newResponseFixture(reply)

	result, err := svc.Generate(context.Background(), RespondParams{
		Context: "supplier sent a quote above market price",
		UserID:  "user-1",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Formal)
	require.NotNil(t, result.Negotiator)
	require.NotNil(t, result.Direct)
	assert.Equal(t, "您好，感谢您的报价。", result.Formal.Zh)
	assert.Equal(t, "Esperamos bajar el precio.", result.Negotiator.Es)

	// Empty tone selector defaults to requesting all tones
	assert.Contains(t, client.LastPrompt, "Response Type: all")
}

func TestGenerate_SingleToneOmitsOthers(t *testing.T) {
	reply := `{
	  "responses": {
	    "formal": { "zh": "您好。", "es": "Estimado." }
	  },
	  "explanation": "Formal only, as requested."
	}`
	svc, client := newResponseFixture(reply)

	result, err := svc.Generate(context.Background(), RespondParams{
		Context:      "first contact with a new supplier",
		ResponseType: "formal",
		UserID:       "user-1",
	})
	require.NoError(t, err)

	require.NotNil(t, result.Formal)
	assert.Nil(t, result.Negotiator)
	assert.Nil(t, result.Direct)
	assert.Contains(t, client.LastPrompt, "Response Type: formal")
}

func TestGenerate_MissingResponsesObject(t *testing.T) {
	svc, _ := newResponseFixture(`{"explanation": "forgot the drafts"}`)

	_, err := svc.Generate(context.Background(), RespondParams{
		Context: "anything",
		UserID:  "user-1",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrMalformedModelResponse))
}

func TestGenerate_ModelFailure(t *testing.T) {
	client := llm.NewMockClient()
	client.CompleteFunc = func(ctx context.Context, prompt, system string) (string, error) {
		return "", llm.NewError(llm.ErrorTypeEndpoint, "request timeout", true, context.DeadlineExceeded)
	}
	svc := NewResponseService(client, zap.NewNop())

	_, err := svc.Generate(context.Background(), RespondParams{
		Context: "anything",
		UserID:  "user-1",
	})
	require.Error(t, err)

	var llmErr *llm.Error
	assert.True(t, errors.As(err, &llmErr))
}

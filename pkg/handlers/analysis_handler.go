package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/salvacode/orientlink/pkg/models"
	"github.com/salvacode/orientlink/pkg/prompts"
	"github.com/salvacode/orientlink/pkg/repositories"
	"github.com/salvacode/orientlink/pkg/services"
)

// Request size limits in characters (not bytes; most inputs here are
// multibyte Chinese or accented Spanish text), enforced before any
// outbound model call.
const (
	maxMessageLength    = 5000
	maxContextLength    = 3000
	maxUserIntentLength = 1000
	maxToneLength       = 50
)

// AnalyzeRequest for POST /api/v1/analyze
type AnalyzeRequest struct {
	MessageText         string `json:"messageText"`
	SourceLanguage      string `json:"sourceLanguage,omitempty"`
	TargetLanguage      string `json:"targetLanguage,omitempty"`
	ProviderID          *int64 `json:"providerId,omitempty"`
	UserID              string `json:"userId"`
	ConversationContext string `json:"conversationContext,omitempty"`
}

// RespondRequest for POST /api/v1/respond
type RespondRequest struct {
	Context      string `json:"context"`
	ResponseType string `json:"responseType,omitempty"`
	UserIntent   string `json:"userIntent,omitempty"`
	ProviderID   *int64 `json:"providerId,omitempty"`
	UserID       string `json:"userId"`
}

// AnalysisHandler handles message analysis, reply drafting, and
// conversation history HTTP requests.
type AnalysisHandler struct {
	analysisService services.AnalysisService
	responseService services.ResponseService
	logger          *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(
	analysisService services.AnalysisService,
	responseService services.ResponseService,
	logger *zap.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		responseService: responseService,
		logger:          logger,
	}
}

// RegisterRoutes registers the analysis handler's routes on the given mux.
func (h *AnalysisHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/analyze", h.Analyze)
	mux.HandleFunc("POST /api/v1/respond", h.Respond)
	mux.HandleFunc("GET /api/v1/conversations", h.Conversations)
}

// Analyze handles POST /api/v1/analyze
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if werr := WriteError(w, http.StatusBadRequest, "Validation Failed", "Invalid JSON body"); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	if details := validateAnalyzeRequest(&req); len(details) > 0 {
		h.logger.Warn("Validation error", zap.Any("details", details))
		if werr := WriteValidationError(w, details); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	h.logger.Info("Received analyze request", zap.String("user_id", req.UserID))

	result, err := h.analysisService.AnalyzeMessage(r.Context(), services.AnalyzeParams{
		MessageText:         req.MessageText,
		SourceLanguage:      req.SourceLanguage,
		TargetLanguage:      req.TargetLanguage,
		ProviderID:          req.ProviderID,
		UserID:              req.UserID,
		ConversationContext: req.ConversationContext,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Respond handles POST /api/v1/respond
func (h *AnalysisHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if werr := WriteError(w, http.StatusBadRequest, "Validation Failed", "Invalid JSON body"); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	if details := validateRespondRequest(&req); len(details) > 0 {
		h.logger.Warn("Validation error", zap.Any("details", details))
		if werr := WriteValidationError(w, details); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	h.logger.Info("Received respond request", zap.String("user_id", req.UserID))

	result, err := h.responseService.Generate(r.Context(), services.RespondParams{
		Context:      req.Context,
		ResponseType: req.ResponseType,
		UserIntent:   req.UserIntent,
		ProviderID:   req.ProviderID,
		UserID:       req.UserID,
	})
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Conversations handles GET /api/v1/conversations
// Query parameters: userId (required), providerId, days, messageType.
func (h *AnalysisHandler) Conversations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	details := map[string]string{}

	userID := query.Get("userId")
	if userID == "" {
		details["userId"] = "User ID is required"
	}

	filter := repositories.ConversationFilter{UserID: userID}

	if raw := query.Get("providerId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			details["providerId"] = "Provider ID must be a number"
		} else {
			filter.ProviderID = &id
		}
	}

	if raw := query.Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			details["days"] = "Days must be a positive number"
		} else {
			since := time.Now().AddDate(0, 0, -days)
			filter.Since = &since
		}
	}

	if raw := query.Get("messageType"); raw != "" {
		if !models.IsValidMessageType(raw) {
			details["messageType"] = "Unknown message type"
		} else {
			filter.MessageType = raw
		}
	}

	if len(details) > 0 {
		if werr := WriteValidationError(w, details); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	conversations, err := h.analysisService.History(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if conversations == nil {
		conversations = []*models.Conversation{}
	}
	if err := WriteJSON(w, http.StatusOK, conversations); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func validateAnalyzeRequest(req *AnalyzeRequest) map[string]string {
	details := map[string]string{}
	if req.MessageText == "" {
		details["messageText"] = "Message text cannot be empty"
	} else if utf8.RuneCountInString(req.MessageText) > maxMessageLength {
		details["messageText"] = fmt.Sprintf("Message text cannot exceed %d characters", maxMessageLength)
	}
	if req.UserID == "" {
		details["userId"] = "User ID cannot be empty"
	}
	if utf8.RuneCountInString(req.ConversationContext) > maxContextLength {
		details["conversationContext"] = fmt.Sprintf("Conversation context cannot exceed %d characters", maxContextLength)
	}
	return details
}

func validateRespondRequest(req *RespondRequest) map[string]string {
	details := map[string]string{}
	if req.Context == "" {
		details["context"] = "Context cannot be empty"
	} else if utf8.RuneCountInString(req.Context) > maxContextLength {
		details["context"] = fmt.Sprintf("Context cannot exceed %d characters", maxContextLength)
	}
	if req.UserID == "" {
		details["userId"] = "User ID cannot be empty"
	}
	if utf8.RuneCountInString(req.UserIntent) > maxUserIntentLength {
		details["userIntent"] = fmt.Sprintf("User intent cannot exceed %d characters", maxUserIntentLength)
	}
	if utf8.RuneCountInString(req.ResponseType) > maxToneLength {
		details["responseType"] = fmt.Sprintf("Response type cannot exceed %d characters", maxToneLength)
	} else if req.ResponseType != "" && !prompts.IsValidTone(req.ResponseType) {
		details["responseType"] = "Response type must be formal, negotiator, direct, or all"
	}
	return details
}

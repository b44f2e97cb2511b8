package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/salvacode/orientlink/pkg/apperrors"
	"github.com/salvacode/orientlink/pkg/models"
	"github.com/salvacode/orientlink/pkg/services"
)

// ProviderHandler handles supplier profile HTTP requests.
type ProviderHandler struct {
	providerService services.ProviderService
	logger          *zap.Logger
}

// NewProviderHandler creates a new provider handler.
func NewProviderHandler(providerService services.ProviderService, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{
		providerService: providerService,
		logger:          logger,
	}
}

// RegisterRoutes registers the provider handler's routes on the given mux.
func (h *ProviderHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/provider", h.Analyze)
	mux.HandleFunc("GET /api/v1/providers", h.List)
	mux.HandleFunc("GET /api/v1/provider/{id}", h.Get)
	mux.HandleFunc("GET /api/v1/providers/search", h.Search)
}

// Analyze handles GET /api/v1/provider?url=&userId=&context=
// Extracts supplier attributes from the URL and upserts the stored profile.
func (h *ProviderHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	details := map[string]string{}

	url := query.Get("url")
	if url == "" {
		details["url"] = "URL cannot be empty"
	}
	userID := query.Get("userId")
	if userID == "" {
		details["userId"] = "User ID cannot be empty"
	}
	if len(details) > 0 {
		if werr := WriteValidationError(w, details); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	h.logger.Info("Received provider analyze request", zap.String("user_id", userID))

	result, err := h.providerService.Analyze(r.Context(), url, userID, query.Get("context"))
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// List handles GET /api/v1/providers?userId=
func (h *ProviderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		if werr := WriteValidationError(w, map[string]string{"userId": "User ID cannot be empty"}); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	providers, err := h.providerService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if providers == nil {
		providers = []*models.ProviderProfile{}
	}
	if err := WriteJSON(w, http.StatusOK, providers); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Get handles GET /api/v1/provider/{id}
// An absent id yields an empty 404, not an error envelope.
func (h *ProviderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		if werr := WriteValidationError(w, map[string]string{"id": "Provider ID must be a number"}); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	provider, err := h.providerService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeServiceError(w, h.logger, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, provider); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

// Search handles GET /api/v1/providers/search?name=
// Partial match, case-insensitive.
func (h *ProviderHandler) Search(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		if werr := WriteValidationError(w, map[string]string{"name": "Name cannot be empty"}); werr != nil {
			h.logger.Error("Failed to write error response", zap.Error(werr))
		}
		return
	}

	providers, err := h.providerService.SearchByName(r.Context(), name)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}

	if providers == nil {
		providers = []*models.ProviderProfile{}
	}
	if err := WriteJSON(w, http.StatusOK, providers); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

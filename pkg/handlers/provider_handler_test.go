package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salvacode/orientlink/pkg/apperrors"
	"github.com/salvacode/orientlink/pkg/models"
	"github.com/salvacode/orientlink/pkg/services"
)

type stubProviderService struct {
	analyzeResult *services.ProviderResult
	analyzeErr    error
	list          []*models.ProviderProfile
	listErr       error
	get           *models.ProviderProfile
	getErr        error
	search        []*models.ProviderProfile
	searchErr     error

	lastURL     string
	lastContext string
	lastName    string
}

var _ services.ProviderService = (*stubProviderService)(nil)

func (s *stubProviderService) Analyze(ctx context.Context, sourceURL, userID, additionalContext string) (*services.ProviderResult, error) {
	s.lastURL = sourceURL
	s.lastContext = additionalContext
	return s.analyzeResult, s.analyzeErr
}

func (s *stubProviderService) List(ctx context.Context, userID string) ([]*models.ProviderProfile, error) {
	return s.list, s.listErr
}

func (s *stubProviderService) Get(ctx context.Context, id int64) (*models.ProviderProfile, error) {
	return s.get, s.getErr
}

func (s *stubProviderService) SearchByName(ctx context.Context, name string) ([]*models.ProviderProfile, error) {
	s.lastName = name
	return s.search, s.searchErr
}

func newProviderMux(svc *stubProviderService) *http.ServeMux {
	mux := http.NewServeMux()
	NewProviderHandler(svc, zap.NewNop()).RegisterRoutes(mux)
	return mux
}

func TestProviderAnalyze_Success(t *testing.T) {
	svc := &stubProviderService{
		analyzeResult: &services.ProviderResult{
			ProviderID:   3,
			ProviderName: "Shenzhen Tech Co",
			SourceURL:    "https://example.com/usb-c",
		},
	}
	mux := newProviderMux(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/provider?url=https%3A%2F%2Fexample.com%2Fusb-c&userId=user-1&context=electronics", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://example.com/usb-c", svc.lastURL)
	assert.Equal(t, "electronics", svc.lastContext)

	var result services.ProviderResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, int64(3), result.ProviderID)
}

func TestProviderAnalyze_RequiresURLAndUser(t *testing.T) {
	mux := newProviderMux(&stubProviderService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/provider", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Validation Failed", envelope.Error)
	assert.Contains(t, envelope.Details, "url")
	assert.Contains(t, envelope.Details, "userId")
}

func TestProviderList_RequiresUserID(t *testing.T) {
	mux := newProviderMux(&stubProviderService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Contains(t, envelope.Details, "userId")
}

func TestProviderList_EmptyIsEmptyArray(t *testing.T) {
	mux := newProviderMux(&stubProviderService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers?userId=user-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestProviderGet_Success(t *testing.T) {
	svc := &stubProviderService{
		get: &models.ProviderProfile{ID: 5, ProviderName: "Shenzhen Tech Co"},
	}
	mux := newProviderMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/provider/5", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.ProviderProfile
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, int64(5), result.ID)
}

func TestProviderGet_NotFoundHasEmptyBody(t *testing.T) {
	svc := &stubProviderService{getErr: apperrors.ErrNotFound}
	mux := newProviderMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/provider/99", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestProviderGet_NonNumericID(t *testing.T) {
	mux := newProviderMux(&stubProviderService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/provider/abc", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Contains(t, envelope.Details, "id")
}

func TestProviderSearch_Success(t *testing.T) {
	svc := &stubProviderService{
		search: []*models.ProviderProfile{{ID: 1, ProviderName: "Shenzhen Tech Co"}},
	}
	mux := newProviderMux(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers/search?name=shenzhen", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "shenzhen", svc.lastName)

	var result []*models.ProviderProfile
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	require.Len(t, result, 1)
	assert.Equal(t, "Shenzhen Tech Co", result[0].ProviderName)
}

func TestProviderSearch_RequiresName(t *testing.T) {
	mux := newProviderMux(&stubProviderService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers/search", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Contains(t, envelope.Details, "name")
}

package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"caretrack/internal/adapter/http/dto"
	"caretrack/internal/adapter/http/handlers"
	"caretrack/internal/adapter/http/middleware"
	"caretrack/internal/core/domain"
	"caretrack/pkg/apierrors"
	"caretrack/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type summarizerMock struct {
	mock.Mock
}

func (m *summarizerMock) Summarize(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func newAIRouter(handler *handlers.AIHandler, limiter *rate.Limiter) *gin.Engine {
	router := gin.New()
	ai := router.Group("/api/ai", middleware.LanguageMiddleware())
	if limiter != nil {
		ai.Use(middleware.RateLimitMiddleware(limiter))
	}
	ai.POST("/summarize", handler.Summarize)
	ai.POST("/infer", handler.InferTask)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAIHandler_Summarize_Success(t *testing.T) {
	aiMock := new(summarizerMock)
	aiMock.On("Summarize", mock.Anything, "Long compte rendu médical.").Return("Résumé court.", nil).Once()
	router := newAIRouter(handlers.NewAIHandler(aiMock), nil)

	rec := postJSON(router, "/api/ai/summarize", `{"text": "Long compte rendu médical."}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.SummarizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Résumé court.", got.Summary)
	aiMock.AssertExpectations(t)
}

func TestAIHandler_Summarize_MissingText(t *testing.T) {
	aiMock := new(summarizerMock)
	router := newAIRouter(handlers.NewAIHandler(aiMock), nil)

	rec := postJSON(router, "/api/ai/summarize", `{"text": "   "}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Missing text to summarize.", got.ErrDetails.Message)
}

func TestAIHandler_Summarize_NotConfigured(t *testing.T) {
	aiMock := new(summarizerMock)
	aiMock.On("Summarize", mock.Anything, "texte").Return("", domain.ErrAINotReady).Once()
	router := newAIRouter(handlers.NewAIHandler(aiMock), nil)

	rec := postJSON(router, "/api/ai/summarize", `{"text": "texte"}`)

	require.Equal(t, http.StatusNotImplemented, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "AI summarization is not configured.", got.ErrDetails.Message)
	aiMock.AssertExpectations(t)
}

func TestAIHandler_Summarize_ProviderError(t *testing.T) {
	aiMock := new(summarizerMock)
	aiMock.On("Summarize", mock.Anything, "texte").Return("", errors.New("quota exceeded")).Once()
	router := newAIRouter(handlers.NewAIHandler(aiMock), nil)

	rec := postJSON(router, "/api/ai/summarize", `{"text": "texte"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	aiMock.AssertExpectations(t)
}

func TestAIHandler_Summarize_RateLimited(t *testing.T) {
	aiMock := new(summarizerMock)
	aiMock.On("Summarize", mock.Anything, "texte").Return("ok", nil).Once()
	// One request allowed, no refill within the test.
	router := newAIRouter(handlers.NewAIHandler(aiMock), rate.NewLimiter(rate.Limit(0), 1))

	rec := postJSON(router, "/api/ai/summarize", `{"text": "texte"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(router, "/api/ai/summarize", `{"text": "texte"}`)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Too many requests, try again later.", got.ErrDetails.Message)
	aiMock.AssertExpectations(t)
}

func TestAIHandler_InferTask_ReturnsDraft(t *testing.T) {
	router := newAIRouter(handlers.NewAIHandler(new(summarizerMock)), nil)

	rec := postJSON(router, "/api/ai/infer", `{"text": "ECG pour M. Dupont demain matin, urgent"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.InferResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "high", got.Priority)
	require.NotEmpty(t, got.DueDate)
	require.NotNil(t, got.Patient)
	require.Equal(t, "Dupont", got.Patient.LastName)
}

func TestAIHandler_InferTask_MissingText(t *testing.T) {
	router := newAIRouter(handlers.NewAIHandler(new(summarizerMock)), nil)

	rec := postJSON(router, "/api/ai/infer", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

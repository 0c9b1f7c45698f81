package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"caretrack/internal/adapter/http/dto"
	"caretrack/internal/adapter/http/mapper"
	"caretrack/internal/adapter/http/middleware"
	"caretrack/internal/core/domain"
	"caretrack/internal/core/ports"
	"caretrack/internal/heuristic"
	"caretrack/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AIHandler struct {
	summarizer ports.Summarizer
	now        func() time.Time
}

func NewAIHandler(summarizer ports.Summarizer) *AIHandler {
	return &AIHandler{summarizer: summarizer, now: time.Now}
}

func (h *AIHandler) Summarize(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingText, lang),
		)
		return
	}

	summary, err := h.summarizer.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyInputText):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingText, lang),
			)
		case errors.Is(err, domain.ErrAINotReady):
			c.JSON(
				http.StatusNotImplemented,
				apierrors.CreateError(http.StatusNotImplemented, apierrors.MsgAINotConfigured, lang),
			)
		default:
			zap.L().Error("failed to summarize text", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgAIProviderError, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, dto.SummarizeResponse{Summary: summary})
}

// InferTask never calls out: it runs local keyword and date heuristics over
// the text and returns a draft the client can prefill a create form with.
func (h *AIHandler) InferTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.InferRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingText, lang),
		)
		return
	}

	draft := heuristic.Infer(req.Text, h.now())

	resp := dto.InferResponse{
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    string(draft.Priority),
	}
	if !draft.DueDate.IsZero() {
		resp.DueDate = draft.DueDate.Format(time.RFC3339)
	}
	if draft.Patient != nil {
		resp.Patient = mapper.ToPatientItem(draft.Patient)
	}

	c.JSON(http.StatusOK, resp)
}

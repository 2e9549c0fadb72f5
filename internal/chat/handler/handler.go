package handler

import (
	"net/http"

	"vocalfitness_backend/internal/chat/service"
	"vocalfitness_backend/internal/chat/transport"
	"vocalfitness_backend/platform/httpkit"
	"vocalfitness_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const defaultLanguage = "it"

// Handler exposes the chat endpoint.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a chat handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the chat routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Chat)
}

// Chat processes one conversation turn for the session in the request body.
func (h *Handler) Chat(c *gin.Context) {
	var req transport.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	language := req.Language
	if language == "" {
		language = defaultLanguage
	}

	result, err := h.svc.SubmitTurn(c.Request.Context(), req.SessionID, req.Message, language)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, transport.ChatResponse{
		SessionID:     result.SessionID,
		Message:       result.Reply,
		IsComplete:    result.IsComplete,
		CollectedData: result.Collected,
	})
}

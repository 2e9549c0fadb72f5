package handler

import (
	"net/http"
	"strconv"
	"time"

	"vocalfitness_backend/internal/testimonials/repository"
	"vocalfitness_backend/internal/testimonials/transport"
	"vocalfitness_backend/platform/httpkit"
	"vocalfitness_backend/platform/sanitize"
	"vocalfitness_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler exposes the testimonials endpoints.
type Handler struct {
	repo *repository.Repo
	val  *validator.Validator
}

// New creates a testimonials handler.
func New(repo *repository.Repo, val *validator.Validator) *Handler {
	return &Handler{repo: repo, val: val}
}

// RegisterRoutes mounts the testimonial routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
}

// List returns testimonials, optionally filtered by language and featured.
func (h *Handler) List(c *gin.Context) {
	var filter repository.Filter
	if language := c.Query("language"); language != "" {
		filter.Language = &language
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, "Invalid featured filter", nil)
			return
		}
		filter.Featured = &featured
	}

	testimonials, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "Failed to load testimonials", nil)
		return
	}
	httpkit.OK(c, transport.ListResponse{Testimonials: testimonials})
}

// Create stores a new testimonial.
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	testimonial := repository.Testimonial{
		ID:        uuid.New(),
		Text:      sanitize.Text(req.Text),
		Author:    sanitize.Text(req.Author),
		Role:      sanitize.Text(req.Role),
		Company:   sanitize.Text(req.Company),
		Location:  sanitize.Text(req.Location),
		Language:  req.Language,
		Featured:  req.Featured,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.repo.Insert(c.Request.Context(), &testimonial); err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "Failed to save testimonial", nil)
		return
	}

	httpkit.Created(c, testimonial)
}

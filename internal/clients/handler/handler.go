package handler

import (
	"net/http"
	"strconv"
	"time"

	"vocalfitness_backend/internal/clients/repository"
	"vocalfitness_backend/internal/clients/transport"
	"vocalfitness_backend/internal/storage"
	"vocalfitness_backend/platform/httpkit"
	"vocalfitness_backend/platform/sanitize"
	"vocalfitness_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const logoFolder = "logos"

// Handler exposes the clients endpoints. Storage is optional; logo
// presigning returns 503 when it is not configured.
type Handler struct {
	repo       *repository.Repo
	val        *validator.Validator
	storage    storage.Service
	logoBucket string
}

// New creates a clients handler.
func New(repo *repository.Repo, val *validator.Validator, storageSvc storage.Service, logoBucket string) *Handler {
	return &Handler{repo: repo, val: val, storage: storageSvc, logoBucket: logoBucket}
}

// RegisterRoutes mounts the client routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.POST("/logo/presign", h.PresignLogo)
}

// List returns clients, optionally filtered by featured.
func (h *Handler) List(c *gin.Context) {
	var featured *bool
	if raw := c.Query("featured"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, "Invalid featured filter", nil)
			return
		}
		featured = &parsed
	}

	clients, err := h.repo.List(c.Request.Context(), featured)
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "Failed to load clients", nil)
		return
	}
	httpkit.OK(c, transport.ListResponse{Clients: clients})
}

// Create stores a new client company.
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	client := repository.Client{
		ID:        uuid.New(),
		Name:      sanitize.Text(req.Name),
		LogoURL:   req.LogoURL,
		Website:   req.Website,
		Sector:    sanitize.Text(req.Sector),
		Featured:  req.Featured,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.repo.Insert(c.Request.Context(), &client); err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "Failed to save client", nil)
		return
	}

	httpkit.Created(c, client)
}

// PresignLogo returns a presigned PUT URL for a client logo upload.
func (h *Handler) PresignLogo(c *gin.Context) {
	if h.storage == nil {
		httpkit.Error(c, http.StatusServiceUnavailable, "Logo uploads are not configured", nil)
		return
	}

	var req transport.PresignLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	presigned, err := h.storage.GenerateUploadURL(c.Request.Context(), h.logoBucket, logoFolder, req.FileName, req.ContentType, req.SizeBytes)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	httpkit.OK(c, transport.PresignLogoResponse{
		UploadURL: presigned.URL,
		FileKey:   presigned.FileKey,
		PublicURL: h.storage.PublicURL(h.logoBucket, presigned.FileKey),
		ExpiresAt: presigned.ExpiresAt,
	})
}

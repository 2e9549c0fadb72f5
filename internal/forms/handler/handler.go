package handler

import (
	"net/http"

	"vocalfitness_backend/internal/forms/service"
	"vocalfitness_backend/internal/forms/transport"
	"vocalfitness_backend/platform/httpkit"
	"vocalfitness_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const defaultLanguage = "en"

// Handler exposes the public form endpoints.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a forms handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the form routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.SubmitContact)
	rg.POST("/booking", h.SubmitBooking)
	rg.POST("/corporate-quote", h.SubmitCorporateQuote)
}

// SubmitContact accepts a contact form submission.
func (h *Handler) SubmitContact(c *gin.Context) {
	var req transport.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	if req.Language == "" {
		req.Language = defaultLanguage
	}

	submission, err := h.svc.SubmitContact(c.Request.Context(), req.Name, req.Email, req.Phone, req.Message, req.Discount, req.Language)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.Created(c, transport.ContactResponse{
		ID:        submission.ID,
		Name:      submission.Name,
		Email:     submission.Email,
		Phone:     submission.Phone,
		Message:   submission.Message,
		Discount:  submission.Discount,
		Language:  submission.Language,
		Status:    submission.Status,
		CreatedAt: submission.CreatedAt,
		EmailSent: submission.EmailSent,
	})
}

// SubmitBooking accepts a free-assessment booking submission.
func (h *Handler) SubmitBooking(c *gin.Context) {
	var req transport.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	if req.Language == "" {
		req.Language = defaultLanguage
	}

	submission, err := h.svc.SubmitBooking(c.Request.Context(), service.BookingInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Sector:        req.Sector,
		EnglishLevel:  req.EnglishLevel,
		Age:           req.Age,
		PreferredDay:  req.PreferredDay,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
		Type:          req.Type,
		Language:      req.Language,
	})
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.Created(c, transport.BookingResponse{
		ID:            submission.ID,
		Name:          submission.Name,
		Email:         submission.Email,
		Phone:         submission.Phone,
		Sector:        submission.Sector,
		EnglishLevel:  submission.EnglishLevel,
		Age:           submission.Age,
		PreferredDay:  submission.PreferredDay,
		PreferredTime: submission.PreferredTime,
		Message:       submission.Message,
		Type:          submission.Type,
		Language:      submission.Language,
		Status:        submission.Status,
		CreatedAt:     submission.CreatedAt,
		EmailSent:     submission.EmailSent,
	})
}

// SubmitCorporateQuote accepts a corporate training quote request.
func (h *Handler) SubmitCorporateQuote(c *gin.Context) {
	var req transport.CorporateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}
	if req.Language == "" {
		req.Language = "it"
	}

	submission, err := h.svc.SubmitCorporateQuote(c.Request.Context(), service.CorporateQuoteInput{
		CompanyName:       req.CompanyName,
		Industry:          req.Industry,
		NumberOfEmployees: req.NumberOfEmployees,
		ContactName:       req.ContactName,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		LevelsToTrain:     req.LevelsToTrain,
		Budget:            req.Budget,
		PreferredMode:     req.PreferredMode,
		Location:          req.Location,
		Notes:             req.Notes,
		Language:          req.Language,
	})
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.Created(c, transport.CorporateQuoteResponse{
		ID:           submission.ID,
		CompanyName:  submission.CompanyName,
		ContactEmail: submission.ContactEmail,
		EmailSent:    submission.EmailSent,
		CreatedAt:    submission.CreatedAt,
	})
}

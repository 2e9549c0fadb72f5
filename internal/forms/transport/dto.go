// Package transport defines the request and response DTOs for the forms API.
package transport

import (
	"time"

	"github.com/google/uuid"
)

// ContactRequest is a contact form submission.
type ContactRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=5,max=30"`
	Message  string `json:"message" validate:"omitempty,max=4000"`
	Discount string `json:"discount" validate:"omitempty,max=100"`
	Language string `json:"language" validate:"omitempty,oneof=it en"`
}

// ContactResponse echoes the persisted contact submission.
type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Discount  string    `json:"discount"`
	Language  string    `json:"language"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	EmailSent bool      `json:"email_sent"`
}

// BookingRequest is a free-assessment booking submission.
type BookingRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=5,max=30"`
	Sector        string `json:"sector" validate:"required,max=100"`
	EnglishLevel  string `json:"englishLevel" validate:"omitempty,max=100"`
	Age           string `json:"age" validate:"required,max=10"`
	PreferredDay  string `json:"preferredDay" validate:"required,max=50"`
	PreferredTime string `json:"preferredTime" validate:"required,max=50"`
	Message       string `json:"message" validate:"omitempty,max=4000"`
	Type          string `json:"type" validate:"omitempty,max=50"`
	Language      string `json:"language" validate:"omitempty,oneof=it en"`
}

// BookingResponse echoes the persisted booking submission.
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Sector        string    `json:"sector"`
	EnglishLevel  string    `json:"englishLevel"`
	Age           string    `json:"age"`
	PreferredDay  string    `json:"preferredDay"`
	PreferredTime string    `json:"preferredTime"`
	Message       string    `json:"message"`
	Type          string    `json:"type"`
	Language      string    `json:"language"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	EmailSent     bool      `json:"email_sent"`
}

// CorporateQuoteRequest is a corporate training quote request.
type CorporateQuoteRequest struct {
	CompanyName       string   `json:"companyName" validate:"required,min=1,max=300"`
	Industry          string   `json:"industry" validate:"omitempty,max=100"`
	NumberOfEmployees string   `json:"numberOfEmployees" validate:"required,max=50"`
	ContactName       string   `json:"contactName" validate:"required,min=1,max=200"`
	ContactEmail      string   `json:"contactEmail" validate:"required,email"`
	ContactPhone      string   `json:"contactPhone" validate:"omitempty,max=30"`
	LevelsToTrain     []string `json:"levelsToTrain" validate:"required,min=1,dive,max=50"`
	Budget            string   `json:"budget" validate:"omitempty,max=100"`
	PreferredMode     string   `json:"preferredMode" validate:"required,max=100"`
	Location          string   `json:"location" validate:"omitempty,max=300"`
	Notes             string   `json:"notes" validate:"omitempty,max=4000"`
	Language          string   `json:"language" validate:"omitempty,oneof=it en"`
}

// CorporateQuoteResponse is the reduced acknowledgement for a quote request.
type CorporateQuoteResponse struct {
	ID           uuid.UUID `json:"id"`
	CompanyName  string    `json:"companyName"`
	ContactEmail string    `json:"contactEmail"`
	EmailSent    bool      `json:"email_sent"`
	CreatedAt    time.Time `json:"created_at"`
}

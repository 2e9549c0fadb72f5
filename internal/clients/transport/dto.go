// Package transport defines the clients API DTOs.
package transport

import (
	"time"

	"vocalfitness_backend/internal/clients/repository"
)

// CreateClientRequest is the client creation body.
type CreateClientRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=300"`
	LogoURL  string `json:"logo_url" validate:"required,url"`
	Website  string `json:"website" validate:"omitempty,url"`
	Sector   string `json:"sector" validate:"omitempty,max=100"`
	Featured bool   `json:"featured"`
}

// ListResponse wraps the client listing.
type ListResponse struct {
	Clients []repository.Client `json:"clients"`
}

// PresignLogoRequest asks for a presigned upload slot for a logo file.
type PresignLogoRequest struct {
	FileName    string `json:"file_name" validate:"required,min=1,max=255"`
	ContentType string `json:"content_type" validate:"required,max=100"`
	SizeBytes   int64  `json:"size_bytes" validate:"required,gt=0"`
}

// PresignLogoResponse carries the upload URL and the final public address.
type PresignLogoResponse struct {
	UploadURL string    `json:"upload_url"`
	FileKey   string    `json:"file_key"`
	PublicURL string    `json:"public_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

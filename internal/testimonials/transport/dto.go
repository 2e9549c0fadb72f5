// Package transport defines the testimonials API DTOs.
package transport

import "vocalfitness_backend/internal/testimonials/repository"

// CreateTestimonialRequest is the testimonial creation body.
type CreateTestimonialRequest struct {
	Text     string `json:"text" validate:"required,min=1,max=4000"`
	Author   string `json:"author" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required,min=1,max=200"`
	Company  string `json:"company" validate:"omitempty,max=200"`
	Location string `json:"location" validate:"omitempty,max=200"`
	Language string `json:"language" validate:"omitempty,oneof=it en"`
	Featured bool   `json:"featured"`
}

// ListResponse wraps the testimonial listing.
type ListResponse struct {
	Testimonials []repository.Testimonial `json:"testimonials"`
}

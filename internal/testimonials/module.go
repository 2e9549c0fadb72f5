// Package testimonials provides the site testimonials module.
package testimonials

import (
	apphttp "vocalfitness_backend/internal/http"
	"vocalfitness_backend/internal/testimonials/handler"
	"vocalfitness_backend/internal/testimonials/repository"
	"vocalfitness_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the testimonials bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	repo    *repository.Repo
}

// NewModule creates the testimonials module.
func NewModule(pool *pgxpool.Pool, val *validator.Validator) *Module {
	repo := repository.New(pool)
	return &Module{handler: handler.New(repo, val), repo: repo}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "testimonials"
}

// Repository returns the testimonial store for external use (seeding).
func (m *Module) Repository() *repository.Repo {
	return m.repo
}

// RegisterRoutes mounts testimonial routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/testimonials")
	m.handler.RegisterRoutes(group)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

// Package clients provides the client companies module.
package clients

import (
	"vocalfitness_backend/internal/clients/handler"
	"vocalfitness_backend/internal/clients/repository"
	apphttp "vocalfitness_backend/internal/http"
	"vocalfitness_backend/internal/storage"
	"vocalfitness_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the clients bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates the clients module. Storage may be nil when MinIO is
// not configured, which disables logo presigning.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, storageSvc storage.Service, logoBucket string) *Module {
	repo := repository.New(pool)
	return &Module{handler: handler.New(repo, val, storageSvc, logoBucket)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "clients"
}

// RegisterRoutes mounts client routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/clients")
	m.handler.RegisterRoutes(group)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

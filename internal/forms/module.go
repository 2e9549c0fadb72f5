// Package forms provides the public form submissions bounded context module.
package forms

import (
	"vocalfitness_backend/internal/email"
	"vocalfitness_backend/internal/events"
	"vocalfitness_backend/internal/forms/handler"
	"vocalfitness_backend/internal/forms/repository"
	"vocalfitness_backend/internal/forms/service"
	apphttp "vocalfitness_backend/internal/http"
	"vocalfitness_backend/platform/logger"
	"vocalfitness_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the forms bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	repo    *repository.Repo
}

// NewModule creates and initializes the forms module. The scheduler may be
// nil, in which case no follow-up reminders are enqueued.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, sender email.Sender, emailEnabled bool, scheduler service.ReminderScheduler, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, sender, emailEnabled, scheduler, eventBus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, repo: repo}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "forms"
}

// Repository returns the submission store for external use.
func (m *Module) Repository() *repository.Repo {
	return m.repo
}

// RegisterRoutes mounts form routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

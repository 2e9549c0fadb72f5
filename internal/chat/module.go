// Package chat provides the lead-qualification chat bounded context module.
// This file defines the module that encapsulates all chat setup and route registration.
package chat

import (
	"vocalfitness_backend/internal/chat/agent"
	"vocalfitness_backend/internal/chat/handler"
	"vocalfitness_backend/internal/chat/repository"
	"vocalfitness_backend/internal/chat/service"
	"vocalfitness_backend/internal/events"
	apphttp "vocalfitness_backend/internal/http"
	"vocalfitness_backend/platform/ai/kimi"
	"vocalfitness_backend/platform/config"
	"vocalfitness_backend/platform/logger"
	"vocalfitness_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the chat bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the chat module with all its dependencies.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator, cfg config.AIConfig, log *logger.Logger) *Module {
	llm := kimi.NewModel(kimi.Config{
		APIKey:  cfg.GetAIAPIKey(),
		BaseURL: cfg.GetAIBaseURL(),
		Model:   cfg.GetAIModel(),
		Timeout: cfg.GetAITimeout(),
	})

	repo := repository.New(pool)
	conversationalist := agent.NewConversationalist(llm, log)
	extractor := agent.NewExtractor(llm, log)
	svc := service.New(repo, conversationalist, extractor, eventBus, log)
	h := handler.New(svc, val)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "chat"
}

// Service returns the turn orchestrator for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts chat routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	chatGroup := ctx.V1.Group("/chat")
	m.handler.RegisterRoutes(chatGroup)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

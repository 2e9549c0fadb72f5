// Package status provides the status check module, a minimal liveness
// record for frontend connectivity probes.
package status

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apphttp "vocalfitness_backend/internal/http"
	"vocalfitness_backend/platform/httpkit"
	"vocalfitness_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const listLimit = 1000

// Check is a persisted status check.
type Check struct {
	ID         uuid.UUID `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// CreateRequest is the status check submission body.
type CreateRequest struct {
	ClientName string `json:"client_name" validate:"required,min=1,max=200"`
}

// Module is the status bounded context module implementing http.Module.
type Module struct {
	pool *pgxpool.Pool
	val  *validator.Validator
}

// NewModule creates the status module.
func NewModule(pool *pgxpool.Pool, val *validator.Validator) *Module {
	return &Module{pool: pool, val: val}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "status"
}

// RegisterRoutes mounts status routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/status", m.create)
	ctx.V1.GET("/status", m.list)
}

func (m *Module) create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := m.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Validation failed", err.Error())
		return
	}

	check := Check{
		ID:         uuid.New(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}
	if err := m.insert(c.Request.Context(), check); err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "Failed to save status check", nil)
		return
	}

	httpkit.Created(c, check)
}

func (m *Module) list(c *gin.Context) {
	checks, err := m.recent(c.Request.Context())
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "Failed to load status checks", nil)
		return
	}
	httpkit.OK(c, checks)
}

func (m *Module) insert(ctx context.Context, check Check) error {
	_, err := m.pool.Exec(ctx,
		`INSERT INTO status_checks (id, client_name, timestamp) VALUES ($1, $2, $3)`,
		check.ID, check.ClientName, check.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	return nil
}

func (m *Module) recent(ctx context.Context) ([]Check, error) {
	rows, err := m.pool.Query(ctx,
		`SELECT id, client_name, timestamp FROM status_checks ORDER BY timestamp DESC LIMIT $1`,
		listLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	defer rows.Close()

	checks := make([]Check, 0)
	for rows.Next() {
		var check Check
		if err := rows.Scan(&check.ID, &check.ClientName, &check.Timestamp); err != nil {
			return nil, fmt.Errorf("scan status check: %w", err)
		}
		checks = append(checks, check)
	}
	return checks, rows.Err()
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

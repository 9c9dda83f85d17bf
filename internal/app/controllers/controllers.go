package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yigit/devcamper/internal/app/models/dto"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
)

// parseID reads the :id path parameter
func parseID(ctx *gin.Context) (uuid.UUID, error) {
	raw := ctx.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &apperrors.MalformedIDError{Value: raw}
	}
	return id, nil
}

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController answers liveness checks
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// HealthStatus is the body of a health response
type HealthStatus struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
}

// Health reports service and database status
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=HealthStatus} "Service healthy"
// @Failure 503 {object} dto.APIResponse{data=HealthStatus} "Database unreachable"
// @Router /health [get]
func (h *HealthController) Health(ctx *gin.Context) error {
	if err := h.db.Ping(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.APIResponse{
			Success: false,
			Data:    HealthStatus{Status: "degraded", Database: "down"},
		})
		return nil
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(HealthStatus{Status: "ok", Database: "up"}))
	return nil
}

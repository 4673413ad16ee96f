package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"card-admin.backend/internal/domain/entities"
	domainerrors "card-admin.backend/internal/domain/errors"
	"card-admin.backend/internal/interfaces/http/response"
	"card-admin.backend/pkg/utils"
)

// AuditLogService is the audit trail surface the handler depends on
type AuditLogService interface {
	Recent(ctx context.Context, limit int, keyID *uuid.UUID) ([]*entities.LedgerEntry, error)
}

// LogHandler handles usage log endpoints
type LogHandler struct {
	auditService AuditLogService
}

// NewLogHandler creates a new log handler
func NewLogHandler(auditService AuditLogService) *LogHandler {
	return &LogHandler{auditService: auditService}
}

// Recent returns the newest audit entries, optionally scoped to one key
// GET /api/v1/logs?limit=50&keyId=<uuid>
func (h *LogHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := utils.GetPaginationParams(1, limit)

	var keyID *uuid.UUID
	if raw := c.Query("keyId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid key id"))
			return
		}
		keyID = &id
	}

	entries, err := h.auditService.Recent(c.Request.Context(), params.Limit, keyID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"logs": entries})
}

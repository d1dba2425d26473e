package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLister interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs AuditLister
	loc  *time.Location
	log  *zap.Logger
}

func NewAuditLogsHandler(logs AuditLister, loc *time.Location, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc, log: log}
}

// List supports ?action=&entity=&from=YYYY-MM-DD&to=YYYY-MM-DD&page=&limit=.
// `to` is inclusive of the whole day.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	if raw := c.Query("from"); raw != "" {
		from, err := parseDay(h.loc, raw)
		if err != nil {
			httperr.FromError(c, h.log, err)
			return
		}
		f.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := parseDay(h.loc, raw)
		if err != nil {
			httperr.FromError(c, h.log, err)
			return
		}
		end := to.AddDate(0, 0, 1)
		f.To = &end
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}

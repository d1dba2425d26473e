package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucLoyalty "github.com/BruksfildServices01/barber-booking/internal/usecase/loyalty"
)

type ClientHandler struct {
	loyalty *ucLoyalty.Service
	log     *zap.Logger
}

func NewClientHandler(loyalty *ucLoyalty.Service, log *zap.Logger) *ClientHandler {
	return &ClientHandler{loyalty: loyalty, log: log}
}

type AdjustLoyaltyRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason"`
}

// ======================================================
// LIST CLIENTS (STAFF)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.loyalty.ListClients(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.List(c, clients)
}

// ======================================================
// LOYALTY (STAFF)
// ======================================================
func (h *ClientHandler) Loyalty(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	balance, err := h.loyalty.GetPoints(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.OK(c, balance)
}

// AdjustLoyalty adds (positive delta) or redeems (negative delta) points.
func (h *ClientHandler) AdjustLoyalty(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	var req AdjustLoyaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_delta", "delta must be a non-zero integer")
		return
	}

	balance, err := h.loyalty.AdjustPoints(c.Request.Context(), middleware.ActorFrom(c), id, req.Delta, req.Reason)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.OK(c, balance)
}

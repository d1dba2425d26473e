package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucLoyalty "github.com/BruksfildServices01/barber-booking/internal/usecase/loyalty"
)

type MeHandler struct {
	loyalty *ucLoyalty.Service
	log     *zap.Logger
}

func NewMeHandler(loyalty *ucLoyalty.Service, log *zap.Logger) *MeHandler {
	return &MeHandler{loyalty: loyalty, log: log}
}

func (h *MeHandler) GetLoyalty(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	balance, err := h.loyalty.GetPoints(c.Request.Context(), actor, actor.UserID)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.OK(c, balance)
}

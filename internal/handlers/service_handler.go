package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucService "github.com/BruksfildServices01/barber-booking/internal/usecase/service"
)

type ServiceHandler struct {
	catalog *ucService.Catalog
	log     *zap.Logger
}

func NewServiceHandler(catalog *ucService.Catalog, log *zap.Logger) *ServiceHandler {
	return &ServiceHandler{catalog: catalog, log: log}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	DurationMin int             `json:"duration_min" binding:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
}

type UpdateServiceRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	DurationMin *int             `json:"duration_min,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

// --------- Handlers ---------

// List includes inactive services, unlike the public listing.
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalog.List(c.Request.Context(), true)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	svc, err := h.catalog.Create(c.Request.Context(), middleware.ActorFrom(c), ucService.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	svc, err := h.catalog.Update(c.Request.Context(), middleware.ActorFrom(c), id, ucService.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      req.Active,
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.OK(c, svc)
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/payment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucPayment "github.com/BruksfildServices01/barber-booking/internal/usecase/payment"
)

// PaymentHandler addresses payments by appointment id; every appointment
// has at most one.
type PaymentHandler struct {
	get    *ucPayment.GetPayment
	update *ucPayment.UpdatePayment
	proof  *ucPayment.RequestProofUpload
	log    *zap.Logger
}

func NewPaymentHandler(
	get *ucPayment.GetPayment,
	update *ucPayment.UpdatePayment,
	proof *ucPayment.RequestProofUpload,
	log *zap.Logger,
) *PaymentHandler {
	return &PaymentHandler{get: get, update: update, proof: proof, log: log}
}

// --------- Requests ---------

// UpdatePaymentRequest is either a client proof (`proof_url`) or a staff
// review (`status` and/or `notes`), never both.
type UpdatePaymentRequest struct {
	ProofURL *string `json:"proof_url"`
	Status   *string `json:"status"`
	Notes    *string `json:"notes"`
}

type ProofUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}

// --------- Handlers ---------

func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	p, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	p, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), id, domain.Patch{
		ProofURL: req.ProofURL,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.OK(c, p)
}

// ProofUpload returns a presigned PUT URL. The client uploads the file there
// and then PATCHes the payment with the returned object_url.
func (h *PaymentHandler) ProofUpload(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}

	var req ProofUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "content_type is required")
		return
	}

	up, err := h.proof.Execute(c.Request.Context(), middleware.ActorFrom(c), id, req.ContentType)
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.Created(c, up)
}

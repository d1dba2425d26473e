package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucPayment "github.com/BruksfildServices01/barber-booking/internal/usecase/payment"
)

// SettingsHandler edits the shop-wide bank transfer instructions. Reading
// them is public and lives in PublicHandler.
type SettingsHandler struct {
	bank *ucPayment.BankSettings
	log  *zap.Logger
}

func NewSettingsHandler(bank *ucPayment.BankSettings, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{bank: bank, log: log}
}

type UpdateBankSettingsRequest struct {
	BankName      *string `json:"bank_name"`
	AccountName   *string `json:"account_name"`
	AccountNumber *string `json:"account_number"`
	Instructions  *string `json:"instructions"`
}

func (h *SettingsHandler) UpdateBank(c *gin.Context) {
	var req UpdateBankSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "invalid request body")
		return
	}

	details, err := h.bank.Update(c.Request.Context(), middleware.ActorFrom(c), ucPayment.BankDetailsPatch{
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		Instructions:  req.Instructions,
	})
	if err != nil {
		httperr.FromError(c, h.log, err)
		return
	}
	httpresp.OK(c, details)
}

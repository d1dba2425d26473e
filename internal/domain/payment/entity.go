package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// NewReference builds the code the client quotes on the bank transfer.
func NewReference(now time.Time) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("APT-%s-%s", now.Format("060102"), id[:10])
}

func New(appointmentID uint, amount decimal.Decimal, now time.Time) *models.Payment {
	return &models.Payment{
		AppointmentID:    appointmentID,
		Amount:           amount,
		Method:           MethodBankTransfer,
		Status:           string(StatusUnpaid),
		PaymentReference: NewReference(now),
	}
}

// AttachProof records the client's transfer proof and queues the payment
// for staff verification.
func AttachProof(p *models.Payment, proofURL string) error {
	if Status(p.Status) == StatusPaid {
		return httperr.ErrConflict("payment_already_verified")
	}

	p.ProofURL = proofURL
	p.Status = string(StatusPendingVerification)
	return nil
}

// Review is the staff decision on a payment. PAID is allowed from any state
// (cash paid at the counter skips the proof). UNPAID rejects a proof and
// clears any previous verification.
func Review(p *models.Payment, status Status, staffID uint, now time.Time) error {
	switch status {
	case StatusPaid:
		p.Status = string(StatusPaid)
		p.VerifiedAt = &now
		p.VerifiedBy = &staffID
	case StatusUnpaid:
		p.Status = string(StatusUnpaid)
		p.VerifiedAt = nil
		p.VerifiedBy = nil
	default:
		return httperr.ErrValidation("invalid_payment_status")
	}
	return nil
}

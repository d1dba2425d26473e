package payment

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

type Status string

const (
	StatusUnpaid              Status = "UNPAID"
	StatusPendingVerification Status = "PENDING_VERIFICATION"
	StatusPaid                Status = "PAID"
)

const MethodBankTransfer = "BANK_TRANSFER"

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusUnpaid, StatusPendingVerification, StatusPaid:
		return st, nil
	}
	return "", httperr.ErrValidation("invalid_payment_status")
}

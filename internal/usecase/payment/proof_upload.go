package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/clock"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/payment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/storage"
)

type ProofPresigner interface {
	PresignUpload(ctx context.Context, key, contentType string, now time.Time) (*storage.ProofUpload, error)
}

var proofExtensions = map[string]string{
	"image/jpeg":      "jpg",
	"image/png":       "png",
	"image/webp":      "webp",
	"application/pdf": "pdf",
}

// RequestProofUpload hands the owning client a short-lived URL to upload a
// transfer proof straight to object storage.
type RequestProofUpload struct {
	repo  domain.Repository
	store ProofPresigner
	clock clock.Clock
}

// NewRequestProofUpload accepts a nil store when object storage is not
// configured; Execute then reports the feature as unavailable.
func NewRequestProofUpload(repo domain.Repository, store ProofPresigner, clk clock.Clock) *RequestProofUpload {
	return &RequestProofUpload{repo: repo, store: store, clock: clk}
}

func (uc *RequestProofUpload) Execute(
	ctx context.Context,
	actor auth.Actor,
	appointmentID uint,
	contentType string,
) (*storage.ProofUpload, error) {

	if uc.store == nil {
		return nil, httperr.ErrUnavailable("proof_storage_disabled")
	}

	ext, ok := proofExtensions[contentType]
	if !ok {
		return nil, httperr.ErrValidation("unsupported_content_type")
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(domain.AttachProofCommand{}, actor, ap.UserID); err != nil {
		return nil, err
	}
	if ap.Payment == nil {
		return nil, httperr.ErrNotFound("payment_not_found")
	}
	if domain.Status(ap.Payment.Status) == domain.StatusPaid {
		return nil, httperr.ErrConflict("payment_already_verified")
	}

	key := fmt.Sprintf("payment-proofs/%d/%s.%s", appointmentID, uuid.NewString(), ext)
	return uc.store.PresignUpload(ctx, key, contentType, uc.clock.Now())
}

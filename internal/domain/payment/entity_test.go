package payment

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestNew(t *testing.T) {
	p := New(9, decimal.RequireFromString("25.50"), now)

	assert.Equal(t, uint(9), p.AppointmentID)
	assert.Equal(t, string(StatusUnpaid), p.Status)
	assert.Equal(t, MethodBankTransfer, p.Method)
	assert.True(t, strings.HasPrefix(p.PaymentReference, "APT-250310-"))
	assert.Len(t, p.PaymentReference, len("APT-250310-")+10)
	assert.NotEqual(t, p.PaymentReference, New(9, decimal.Zero, now).PaymentReference)
}

func TestAttachProof(t *testing.T) {
	p := New(1, decimal.NewFromInt(20), now)

	require.NoError(t, AttachProof(p, "https://files.example.com/p.png"))
	assert.Equal(t, string(StatusPendingVerification), p.Status)

	require.NoError(t, AttachProof(p, "https://files.example.com/p2.png"))
	assert.Equal(t, "https://files.example.com/p2.png", p.ProofURL)

	require.NoError(t, Review(p, StatusPaid, 1, now))
	err := AttachProof(p, "https://files.example.com/p3.png")
	assert.True(t, httperr.IsBusiness(err, "payment_already_verified"))
}

func TestReview(t *testing.T) {
	p := New(1, decimal.NewFromInt(20), now)

	require.NoError(t, Review(p, StatusPaid, 3, now))
	assert.Equal(t, string(StatusPaid), p.Status)
	assert.Equal(t, now, *p.VerifiedAt)
	assert.Equal(t, uint(3), *p.VerifiedBy)

	require.NoError(t, Review(p, StatusUnpaid, 3, now))
	assert.Equal(t, string(StatusUnpaid), p.Status)
	assert.Nil(t, p.VerifiedAt)
	assert.Nil(t, p.VerifiedBy)

	err := Review(p, StatusPendingVerification, 3, now)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestBuildCommand(t *testing.T) {
	cmd, err := BuildCommand(Patch{ProofURL: ptr("https://files.example.com/proof.jpg")})
	require.NoError(t, err)
	assert.IsType(t, AttachProofCommand{}, cmd)

	cmd, err = BuildCommand(Patch{Status: ptr("PAID")})
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, *cmd.(ReviewCommand).Status)

	cmd, err = BuildCommand(Patch{Notes: ptr("checked bank statement")})
	require.NoError(t, err)
	assert.Nil(t, cmd.(ReviewCommand).Status)

	_, err = BuildCommand(Patch{})
	assert.True(t, httperr.IsBusiness(err, "empty_update"))

	_, err = BuildCommand(Patch{ProofURL: ptr("https://x.example.com/a"), Status: ptr("PAID")})
	assert.True(t, httperr.IsBusiness(err, "ambiguous_payment_update"))

	_, err = BuildCommand(Patch{ProofURL: ptr("ftp://nope")})
	assert.True(t, httperr.IsBusiness(err, "invalid_proof_url"))

	_, err = BuildCommand(Patch{Status: ptr("REFUNDED")})
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_status"))

	_, err = BuildCommand(Patch{Status: ptr("PENDING_VERIFICATION")})
	assert.True(t, httperr.IsBusiness(err, "invalid_payment_status"))
}

func TestAuthorize(t *testing.T) {
	owner := auth.Actor{UserID: 5, Role: auth.RoleClient}
	staff := auth.Actor{UserID: 1, Role: auth.RoleAdmin}

	assert.NoError(t, Authorize(AttachProofCommand{}, owner, 5))
	assert.True(t, httperr.IsBusiness(Authorize(AttachProofCommand{}, staff, 5), "not_owner"))
	assert.NoError(t, Authorize(ReviewCommand{}, staff, 5))
	assert.True(t, httperr.IsBusiness(Authorize(ReviewCommand{}, owner, 5), "staff_only"))
}

package payment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/payment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	keyBankName      = "bank_name"
	keyAccountName   = "bank_account_name"
	keyAccountNumber = "bank_account_number"
	keyInstructions  = "bank_instructions"
)

var bankKeys = []string{keyBankName, keyAccountName, keyAccountNumber, keyInstructions}

// BankDetails is what a client needs to make the transfer.
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	Instructions  string `json:"instructions"`
}

type BankDetailsPatch struct {
	BankName      *string
	AccountName   *string
	AccountNumber *string
	Instructions  *string
}

type BankSettings struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBankSettings(repo domain.Repository, audit *audit.Dispatcher) *BankSettings {
	return &BankSettings{repo: repo, audit: audit}
}

func (uc *BankSettings) Get(ctx context.Context) (*BankDetails, error) {
	values, err := uc.repo.GetSettings(ctx, bankKeys)
	if err != nil {
		return nil, err
	}

	return &BankDetails{
		BankName:      values[keyBankName],
		AccountName:   values[keyAccountName],
		AccountNumber: values[keyAccountNumber],
		Instructions:  values[keyInstructions],
	}, nil
}

func (uc *BankSettings) Update(
	ctx context.Context,
	actor auth.Actor,
	patch BankDetailsPatch,
) (*BankDetails, error) {

	if !actor.IsStaff() {
		return nil, httperr.ErrForbidden("staff_only")
	}

	values := map[string]string{}
	set := func(key string, v *string) {
		if v != nil {
			values[key] = strings.TrimSpace(*v)
		}
	}
	set(keyBankName, patch.BankName)
	set(keyAccountName, patch.AccountName)
	set(keyAccountNumber, patch.AccountNumber)
	set(keyInstructions, patch.Instructions)

	if len(values) == 0 {
		return nil, httperr.ErrValidation("empty_update")
	}

	if err := uc.repo.UpsertSettings(ctx, values); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "bank_settings_updated",
		Entity:   "setting",
		Metadata: values,
	})

	return uc.Get(ctx)
}

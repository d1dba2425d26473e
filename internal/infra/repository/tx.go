package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type txKey struct{}

// TxRunner runs units of work in serializable transactions and hands the
// open transaction down through ctx, so every repository in this package
// joins it.
type TxRunner struct {
	db         *gorm.DB
	maxRetries int
	baseDelay  time.Duration
	log        *zap.Logger
}

func NewTxRunner(db *gorm.DB, maxRetries int, log *zap.Logger) *TxRunner {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &TxRunner{
		db:         db,
		maxRetries: maxRetries,
		baseDelay:  50 * time.Millisecond,
		log:        log,
	}
}

func (r *TxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(context.WithValue(ctx, txKey{}, tx))
		}, &sql.TxOptions{Isolation: sql.LevelSerializable})

		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		if !httperr.IsRetryable(err) || attempt == r.maxRetries {
			break
		}

		r.log.Debug("retrying transaction", zap.Int("attempt", attempt), zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * r.baseDelay):
		}
	}

	if httperr.IsExclusionConflict(err) {
		return httperr.ErrConflict("time_conflict")
	}
	return err
}

// conn returns the transaction carried by ctx, or the pool.
func (r *TxRunner) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*gorm.DB)
	return ok
}

package httperr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsExclusionConflict reports a violation of the appointments no-overlap
// exclusion constraint.
func IsExclusionConflict(err error) bool {
	return pgCode(err) == pgerrcode.ExclusionViolation
}

func IsUniqueViolation(err error) bool {
	return pgCode(err) == pgerrcode.UniqueViolation
}

func IsCheckViolation(err error) bool {
	return pgCode(err) == pgerrcode.CheckViolation
}

// IsRetryable reports errors after which the whole transaction may be
// replayed.
func IsRetryable(err error) bool {
	switch pgCode(err) {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
		return true
	}
	return false
}

package httperr

import "errors"

type Kind string

const (
	KindValidation  Kind = "validation"
	KindNotFound    Kind = "not_found"
	KindConflict    Kind = "conflict"
	KindForbidden   Kind = "forbidden"
	KindUnavailable Kind = "unavailable"
)

// BusinessError is a rule violation the caller can act on. Code is a stable
// snake_case identifier (e.g. "time_conflict") that ends up in the response.
type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrValidation(code string) error  { return BusinessError{Kind: KindValidation, Code: code} }
func ErrNotFound(code string) error    { return BusinessError{Kind: KindNotFound, Code: code} }
func ErrConflict(code string) error    { return BusinessError{Kind: KindConflict, Code: code} }
func ErrForbidden(code string) error   { return BusinessError{Kind: KindForbidden, Code: code} }
func ErrUnavailable(code string) error { return BusinessError{Kind: KindUnavailable, Code: code} }

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

package api

import (
	"fmt"

	"github.com/dmitrijs2005/sweetshop/internal/common"
)

// Kind classifies a failed backend call. It drives how the caller reacts:
// unauthorized forces a logout, everything else becomes a user-visible
// notification.
type Kind int

const (
	// KindUnavailable covers transport failures and 5xx responses.
	KindUnavailable Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindOutOfStock
)

// Error is a failed backend call. Message carries the backend-provided
// "detail" text when the response body had one, otherwise it is empty and
// callers fall back to a per-action generic message.
type Error struct {
	Status  int
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Unwrap maps the kind onto the shared sentinel errors so callers can use
// errors.Is without depending on this package's Kind values.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindValidation:
		return common.ErrorValidation
	case KindUnauthorized:
		return common.ErrorUnauthorized
	case KindForbidden:
		return common.ErrorForbidden
	case KindNotFound:
		return common.ErrorNotFound
	case KindOutOfStock:
		return common.ErrorOutOfStock
	default:
		return common.ErrorUnavailable
	}
}

// outOfStockDetail is the exact detail string the backend returns when a
// purchase hits zero quantity. The status is a plain 400, so the message is
// the only way to tell it apart from a validation failure.
const outOfStockDetail = "Out of stock"

func classify(status int, detail string) Kind {
	switch {
	case status == 400 && detail == outOfStockDetail:
		return KindOutOfStock
	case status == 400 || status == 422:
		return KindValidation
	case status == 401:
		return KindUnauthorized
	case status == 403:
		return KindForbidden
	case status == 404:
		return KindNotFound
	default:
		return KindUnavailable
	}
}

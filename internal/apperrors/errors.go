package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies an error for callers. Kinds, not Go types, are what crosses the
// service boundary.
type Kind string

const (
	KindUnknownAccount         Kind = "UnknownAccount"
	KindInsufficientFunds      Kind = "InsufficientFunds"
	KindSameAccountTransfer    Kind = "SameAccountTransfer"
	KindOverpaymentRejected    Kind = "OverpaymentRejected"
	KindSplitRoundingViolation Kind = "SplitRoundingViolation"
	KindContention             Kind = "Contention"
	KindStorageUnavailable     Kind = "StorageUnavailable"
	KindValidation             Kind = "Validation"
	KindNotFound               Kind = "NotFound"
	KindDuplicate              Kind = "Duplicate"
	KindInternal               Kind = "Internal"
)

// AppError is the normalized error carried out of the service layer.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Is reports a match when target is an *AppError of the same kind, so the
// sentinels below work with errors.Is regardless of message.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return t.Kind == e.Kind
	}
	return false
}

// Sentinel errors, one per kind.
var (
	ErrUnknownAccount         = &AppError{Kind: KindUnknownAccount, Message: "unknown account"}
	ErrInsufficientFunds      = &AppError{Kind: KindInsufficientFunds, Message: "insufficient funds"}
	ErrSameAccountTransfer    = &AppError{Kind: KindSameAccountTransfer, Message: "source and destination accounts are the same"}
	ErrOverpaymentRejected    = &AppError{Kind: KindOverpaymentRejected, Message: "payment exceeds remaining balance"}
	ErrSplitRoundingViolation = &AppError{Kind: KindSplitRoundingViolation, Message: "split does not sum to total"}
	ErrContention             = &AppError{Kind: KindContention, Message: "lock could not be acquired in time"}
	ErrStorageUnavailable     = &AppError{Kind: KindStorageUnavailable, Message: "storage unavailable"}
	ErrValidation             = &AppError{Kind: KindValidation, Message: "validation error"}
	ErrNotFound               = &AppError{Kind: KindNotFound, Message: "resource not found"}
	ErrDuplicate              = &AppError{Kind: KindDuplicate, Message: "resource already exists"}
	ErrInternal               = &AppError{Kind: KindInternal, Message: "internal error"}
)

// NewAppError builds an AppError of the given kind wrapping err (which may be nil).
func NewAppError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// Newf builds an AppError with a formatted message.
func Newf(kind Kind, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindInternal for errors that were never
// classified.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Normalize converts any error into an *AppError. Errors already wrapping an
// AppError keep their kind; the outer message is preserved. Context deadlines
// are treated as contention since they only surface while waiting on locks.
func Normalize(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr == err {
			return appErr
		}
		return &AppError{Kind: appErr.Kind, Message: err.Error(), Err: err}
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &AppError{Kind: KindContention, Message: "operation timed out", Err: err}
	case errors.Is(err, context.Canceled):
		return &AppError{Kind: KindContention, Message: "operation canceled", Err: err}
	}
	return &AppError{Kind: KindInternal, Message: err.Error(), Err: err}
}

// IsRetryable reports whether the caller may retry the operation with backoff.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindContention, KindStorageUnavailable:
		return true
	}
	return false
}

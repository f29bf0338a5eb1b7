package dto

import "github.com/SscSPs/treasury_ledger/internal/apperrors"

// Result is the caller-facing envelope of every operation.
type Result struct {
	OK        bool           `json:"ok"`
	Data      any            `json:"data,omitempty"`
	ErrorKind apperrors.Kind `json:"errorKind,omitempty"`
	Message   string         `json:"message,omitempty"`
	Retryable bool           `json:"retryable,omitempty"`
}

// NewResult builds the envelope from an operation's output.
func NewResult(data any, err error) Result {
	if err == nil {
		return Result{OK: true, Data: data}
	}
	appErr := apperrors.Normalize(err)
	return Result{
		OK:        false,
		ErrorKind: appErr.Kind,
		Message:   appErr.Error(),
		Retryable: apperrors.IsRetryable(appErr),
	}
}

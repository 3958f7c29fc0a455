package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("business plan not found")
	ErrAlreadyExists  = errors.New("business plan already exists")
	ErrUnknownSection = errors.New("unknown business plan section")
)

// StoreError reports a failure of the backing document store (connectivity,
// timeouts, corrupt payloads). It is distinct from ErrNotFound so callers can
// tell "no data yet" from "backend unavailable".
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err unless it is nil or already a StoreError.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

// ValidationError names the first field path of a payload that does not match
// the document schema, e.g. "financial_data.profitability.margin". Reason is
// a fixed phrase safe to return to clients; Err keeps the decoder detail.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid business plan: " + e.Reason
	}
	return fmt.Sprintf("invalid business plan: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

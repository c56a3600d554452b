package model

import "errors"

// ValidationError marks malformed or missing required input; handlers map it
// to HTTP 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(msg string) error { return &ValidationError{Msg: msg} }

// Sentinel errors mapped to HTTP statuses at the handler layer.
var (
	// ErrJobNotFound: unknown job id.
	ErrJobNotFound = errors.New("job not found")
	// ErrTransactionNotFound: the chain RPC has no transaction for the hash.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrTransactionFailed: the receipt reports a reverted transaction.
	ErrTransactionFailed = errors.New("transaction failed")
	// ErrInvalidSigner: the signer credential did not resolve to an fid.
	ErrInvalidSigner = errors.New("invalid signer")
	// ErrUserNotFound: the resolved fid has no user record at the provider.
	ErrUserNotFound = errors.New("user not found")
)

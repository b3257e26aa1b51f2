package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Request errors
	ErrRequestNotFound  = errors.New("request not found")
	ErrRequestImmutable = errors.New("request is referenced by a quote")

	// Quote errors
	ErrNoRequestsGiven = errors.New("no request ids given")

	// Optimistic mutation errors
	ErrConfirmationFailed = errors.New("mutation confirmation failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

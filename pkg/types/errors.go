package types

import "errors"

var (
	// ErrForbidden marks an authorization boundary violation: wrong role,
	// wrong case, wrong target. Never retried.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput marks a malformed id, form key or query parameter.
	ErrInvalidInput = errors.New("invalid input")

	ErrUserNotFound = errors.New("user not found")
	ErrCaseNotFound = errors.New("case not found")
	ErrRowNotFound  = errors.New("row not found")

	// ErrTemplateMissing is the one fatal, non-degradable condition in the
	// form-assembly pipeline: without the template asset there is no way to
	// produce a court-form PDF.
	ErrTemplateMissing = errors.New("affidavit template missing")
)

package service

import "errors"

// Business-rule errors surfaced to the API layer, which maps them onto HTTP
// status codes. All precondition failures are non-retryable: a failed check
// aborts the operation before any mutation.
var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState means a precondition on the current status is not met
	// (tool unavailable, payment not pending, ...).
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidCredentials means the email/password pair did not verify.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotApproved means the account exists but has not been approved by
	// an admin yet.
	ErrNotApproved = errors.New("account not approved by admin yet")
	// ErrForbidden means the caller is authenticated but not allowed to act
	// on this resource.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation means the input payload is malformed.
	ErrValidation = errors.New("validation error")
)

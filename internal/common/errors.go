// Package common defines shared constants and sentinel errors used across
// the induction portal. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Authentication errors. ErrorInvalidCredentials deliberately covers
	// both unknown-email and wrong-password so callers cannot distinguish
	// the two cases.
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Store invariant errors.
	ErrorLastAdmin = errors.New("cannot delete the last remaining admin")

	// Session errors.
	ErrorNotAuthenticated = errors.New("not authenticated")
	ErrorViewForbidden    = errors.New("view not permitted for this role")
)

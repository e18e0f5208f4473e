// SPDX-License-Identifier: GPL-3.0-or-later

package radiodns

import (
	"errors"
	"fmt"
)

// Errors returned when constructing an [Identifier].
var (
	// ErrMissingParameter means that a required parameter is empty.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrInvalidParameter means that a parameter fails its pattern or range check.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Errors returned by the [*Resolver].
var (
	// ErrAuthoritativeResolution means that the CNAME lookup of the
	// canonical FQDN did not yield an authoritative FQDN.
	ErrAuthoritativeResolution = errors.New("cannot resolve authoritative FQDN")

	// ErrApplicationResolution means that the SRV lookup of the
	// application did not yield any record.
	ErrApplicationResolution = errors.New("cannot resolve application")
)

// ParameterError is the error returned when an [Identifier] cannot
// be constructed. It wraps either [ErrMissingParameter] or
// [ErrInvalidParameter].
type ParameterError struct {
	// Field is the name of the offending parameter (e.g., "gcc").
	Field string

	// Value is the value provided by the caller.
	Value string

	// Err is the underlying error.
	Err error
}

var _ error = &ParameterError{}

// Error implements error.
func (e *ParameterError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Field)
	}
	return fmt.Sprintf("%s: %s: %q", e.Err.Error(), e.Field, e.Value)
}

// Unwrap returns the underlying error.
func (e *ParameterError) Unwrap() error {
	return e.Err
}

func newMissingParameterError(field string) error {
	return &ParameterError{Field: field, Err: ErrMissingParameter}
}

func newInvalidParameterError(field, value string) error {
	return &ParameterError{Field: field, Value: value, Err: ErrInvalidParameter}
}

// Hop identifies a resolution step.
type Hop int

const (
	// HopAuthoritative is the CNAME lookup of the canonical FQDN.
	HopAuthoritative Hop = iota

	// HopApplication is the SRV lookup of the application.
	HopApplication
)

// String implements fmt.Stringer.
func (h Hop) String() string {
	switch h {
	case HopAuthoritative:
		return "authoritative"
	case HopApplication:
		return "application"
	default:
		return fmt.Sprintf("Hop(%d)", int(h))
	}
}

// sentinel returns the error that all the failures of this hop wrap.
func (h Hop) sentinel() error {
	if h == HopApplication {
		return ErrApplicationResolution
	}
	return ErrAuthoritativeResolution
}

// ResolveError is the error returned when a resolution hop fails.
//
// Use [errors.Is] with [ErrAuthoritativeResolution] or [ErrApplicationResolution]
// to know which hop failed and with the errors emitted by [ParseResponse]
// (e.g., [ErrNoName]) to know why it failed.
type ResolveError struct {
	// Hop is the hop that failed.
	Hop Hop

	// Name is the queried name, if any.
	Name string

	// Err is the OPTIONAL underlying cause.
	Err error
}

var _ error = &ResolveError{}

// Error implements error.
func (e *ResolveError) Error() string {
	msg := e.Hop.sentinel().Error()
	if e.Name != "" {
		msg += ": " + e.Name
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the hop sentinel error and the underlying cause.
func (e *ResolveError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Hop.sentinel()}
	}
	return []error{e.Hop.sentinel(), e.Err}
}

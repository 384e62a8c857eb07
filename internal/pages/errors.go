// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package pages

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the versioning core. Callers branch with
// errors.Is; the HTTP layer maps each to a status code.
var (
	// ErrNotFound is returned when a referenced page, version, field, or
	// revision request does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when approving or rejecting a revision
	// request that is no longer pending. The existing state is untouched.
	ErrInvalidState = errors.New("revision request is not pending")

	// ErrHasChildren is returned when deleting a page that still has
	// child pages. Children must be moved or deleted first.
	ErrHasChildren = errors.New("page has child pages")

	// ErrCycle is returned when a move would make a page its own ancestor.
	ErrCycle = errors.New("move would create a cycle")
)

// ValidationError reports malformed or conflicting input, such as a
// duplicate slug or a scheduled status without a future date.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// validationf builds a ValidationError with a formatted message.
func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// FieldValidationError reports a custom field value failing its
// definition's type or constraint checks. The write is rejected entirely.
type FieldValidationError struct {
	FieldSlug string
	Reason    string
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("field %q: %s", e.FieldSlug, e.Reason)
}

// fieldErrorf builds a FieldValidationError for the given field slug.
func fieldErrorf(slug, format string, args ...any) error {
	return &FieldValidationError{FieldSlug: slug, Reason: fmt.Sprintf(format, args...)}
}

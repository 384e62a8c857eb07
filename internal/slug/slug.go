// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// MaxDedupeAttempts bounds the numeric-suffix search in Unique.
const MaxDedupeAttempts = 50

// ErrExhausted is returned by Unique when every candidate up to
// MaxDedupeAttempts is already in use. Callers can treat it as bad
// input, unlike an error from the taken callback.
var ErrExhausted = errors.New("slug candidates exhausted")

// Unique returns the base slug if it is free, otherwise the first
// "base-2", "base-3", … variant that taken reports as available.
// Errors from taken are returned as-is; a fully-taken suffix range
// returns ErrExhausted.
func Unique(base string, taken func(string) (bool, error)) (string, error) {
	inUse, err := taken(base)
	if err != nil {
		return "", err
	}
	if !inUse {
		return base, nil
	}

	for i := 2; i <= MaxDedupeAttempts; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		inUse, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !inUse {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("slug %q after %d attempts: %w", base, MaxDedupeAttempts, ErrExhausted)
}

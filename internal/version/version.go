// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

// Package version implements the Accept-Version response-contract gate.
//
// Clients declare the response shape they were built against via the
// Accept-Version header; formatters branch on the parsed value to reproduce
// historical response contracts from the same Cargo rows. The value is parsed
// once per request and threaded through formatter calls as a parameter.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed reports an Accept-Version value that is not `#`, `#.#`,
// `#.#.#`, or "latest".
var ErrMalformed = errors.New("malformed version")

// Version is a client-declared API version. The zero value is not valid;
// use Parse or MustParse. "latest" is the sentinel for "newest behavior, no
// upper bound" and is what an absent header parses to.
type Version struct {
	latest bool
	parts  [3]int
	known  int // how many components were supplied; the rest are wildcards
}

// Latest is the sentinel version: newest behavior, no upper bound.
var Latest = Version{latest: true}

// Parse parses 1-3 dot-separated integers, or the "latest" sentinel.
// The empty string parses as "latest" (absent header).
func Parse(s string) (Version, error) {
	if s == "" || s == "latest" {
		return Latest, nil
	}

	fields := strings.Split(s, ".")
	if len(fields) > 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	var v Version
	for i, field := range fields {
		if !isDigits(field) {
			return Version{}, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		v.parts[i] = n
		v.known = i + 1
	}
	return v, nil
}

// isDigits reports whether s is one or more ASCII digits, the only shape
// the header grammar allows for a component. Leading zeros are fine:
// "1.01" reads as 1.1.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MustParse parses an internal bound literal, panicking on malformed input.
// Bounds are fixed literals in formatter code; a bad one is a programming
// error, not a runtime condition.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsLatest reports whether v is the "latest" sentinel.
func (v Version) IsLatest() bool {
	return v.latest
}

// String renders the version for diagnostics.
func (v Version) String() string {
	if v.latest {
		return "latest"
	}
	fields := make([]string, v.known)
	for i := 0; i < v.known; i++ {
		fields[i] = strconv.Itoa(v.parts[i])
	}
	return strings.Join(fields, ".")
}

// AtLeast reports whether v satisfies the minimum bound. "latest" satisfies
// every minimum. A wildcard (missing) component in v satisfies the remaining
// positions of the bound.
func (v Version) AtLeast(min Version) bool {
	if v.latest {
		return true
	}
	for i := 0; i < 3; i++ {
		if i >= v.known || i >= min.known {
			return true
		}
		switch {
		case v.parts[i] > min.parts[i]:
			return true
		case v.parts[i] < min.parts[i]:
			return false
		}
	}
	return true
}

// AtMost reports whether v satisfies the maximum bound. "latest" never
// satisfies a maximum: it means "no upper bound".
func (v Version) AtMost(max Version) bool {
	if v.latest {
		return false
	}
	for i := 0; i < 3; i++ {
		if i >= v.known || i >= max.known {
			return true
		}
		switch {
		case v.parts[i] < max.parts[i]:
			return true
		case v.parts[i] > max.parts[i]:
			return false
		}
	}
	return true
}

// Exactly reports whether v matches the bound on every supplied component.
// Wildcard components match anything; "latest" matches nothing exact.
func (v Version) Exactly(bound Version) bool {
	if v.latest {
		return false
	}
	for i := 0; i < 3; i++ {
		if i >= v.known || i >= bound.known {
			return true
		}
		if v.parts[i] != bound.parts[i] {
			return false
		}
	}
	return true
}

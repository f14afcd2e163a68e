// Package errs is the project's thin layer over cockroachdb/errors.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Usecase-level sentinels. Handlers match them with Is.
var (
	ErrCustomerNotFound    = cr.New("customer not found")
	ErrReservationNotFound = cr.New("reservation not found")
	ErrDomainValidation    = cr.New("domain validation error")
)

func New(msg string) error {
	return cr.New(msg)
}

// Wrap returns nil for a nil err.
func Wrap(err error, msg string) error {
	return cr.Wrap(err, msg)
}

// Mark tags err as an instance of kind without changing its message.
// A nil err yields kind itself.
func Mark(err, kind error) error {
	if err == nil {
		return kind
	}
	return cr.Mark(err, kind)
}

// Is also matches errors tagged with Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines renders err with its stack and keeps the first maxLines lines.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

// Package errs wraps cockroachdb/errors so the rest of the codebase marks
// and wraps errors through one surface.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Wrap annotates err with msg. A nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark makes err match markErr under Is without losing err's own message
// or stack.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches reference, including marks attached with
// Mark. The standard library's errors.Is only walks the Unwrap chain and
// never sees marks, so every sentinel check must go through this.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines renders err verbosely and returns at most maxLines
// lines, for structured log output.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}

package app

import "errors"

var (
	// ErrUnauthorized means the caller lacks the role or grant for the
	// requested write.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means the referenced applicant or record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNoPermittedFields means a marking submission had nothing left after
	// permission filtering. Nothing was written.
	ErrNoPermittedFields = errors.New("no permitted section in submission")
)

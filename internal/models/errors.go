package models

import "errors"

// Error messages returned to callers are part of the API contract consumed
// by the web front end and are kept in Indonesian.
var (
	// ErrGeneral is used when we cannot give the caller a more specific reason.
	ErrGeneral = errors.New("Terjadi kesalahan pada server.")

	// ErrResourceNotFound is returned when no row matches an ownership-scoped query.
	ErrResourceNotFound = errors.New("Data tidak ditemukan.")
)

// Package uuid wraps github.com/google/uuid so that resource IDs can be
// bound directly from URI parameters.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

// Nil is the UUID an absent URI parameter is bound to.
var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// UnmarshalParam implements the binding.BindUnmarshaler interface for UUID.
//
// An empty parameter binds to Nil without an error, the presence check is
// up to the caller.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}

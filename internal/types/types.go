// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, the HTTP client, and the CLI can all import types
// without depending on each other.
package types

// Birthday represents one tracked birthday record.
//
// The date is a (month, day) pair on the Jalali calendar — no year is
// stored, because a birthday recurs every year. Month is constrained to
// [1,12] and day to [1,31]; day 31 in a 30-day month is accepted as-is
// (no month-length cross-check, matching the store's contract).
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears on the wire and in
//     exported snapshot files.
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package before any record is submitted to the store.
type Birthday struct {
	// ID is assigned by the store on creation (an opaque UUID string)
	// and is immutable afterwards. Empty on records that have not been
	// persisted yet, hence omitempty.
	ID string `json:"id,omitempty"`

	Name  string `json:"name"  validate:"required"`
	Month int    `json:"month" validate:"required,min=1,max=12"`
	Day   int    `json:"day"   validate:"required,min=1,max=31"`

	// Fingerprint is the opaque per-visitor identifier that scopes
	// which records a session may read or write. It is supplied by the
	// client and never verified — the store treats it as an untrusted
	// scoping token, nothing stronger.
	Fingerprint string `json:"fingerprint,omitempty"`
}

// ImportRequest is the body of POST /api/birthdays/import: a whole
// snapshot of records created in one batched request. The batch is
// atomic from the caller's point of view — it succeeds or fails as a
// whole, individual bad records are not reported back one by one.
type ImportRequest struct {
	Birthdays   []Birthday `json:"birthdays"   validate:"required"`
	Fingerprint string     `json:"fingerprint" validate:"required"`
}

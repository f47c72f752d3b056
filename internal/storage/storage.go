// Package storage defines the Storage interface — a contract that any
// database backend must satisfy to work with the store service.
//
// Handlers (HTTP layer) depend only on this interface, never on a
// concrete database:
//
//   - Switching databases = implement the interface for the new DB,
//     change one line in main.go. Zero handler changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
//     No real database needed for handler tests.
package storage

import "github.com/Mobinshahidi/bday-reminder/internal/types"

// Storage is the database contract.
// Any concrete type that implements ALL of these methods automatically
// satisfies this interface — Go does this implicitly.
type Storage interface {
	// CreateBirthday inserts a new record owned by fingerprint and
	// returns the store-assigned opaque id.
	CreateBirthday(fingerprint, name string, month, day int) (string, error)

	// GetBirthdaysByOwner returns every record whose fingerprint
	// matches. Ownership scoping happens here and only here: a session
	// never sees records belonging to another fingerprint.
	// Returns an empty slice (not nil) when there are no records.
	GetBirthdaysByOwner(fingerprint string) ([]types.Birthday, error)

	// UpdateBirthdayByID replaces name, month, and day of an existing
	// record — a full replacement, not a partial patch. Returns an
	// error if no record has that id.
	UpdateBirthdayByID(id string, b types.Birthday) error

	// DeleteBirthdayByID removes a record permanently.
	DeleteBirthdayByID(id string) error

	// ImportBirthdays creates all given records for fingerprint inside
	// a single transaction: either every record is inserted or none is.
	ImportBirthdays(fingerprint string, birthdays []types.Birthday) error
}

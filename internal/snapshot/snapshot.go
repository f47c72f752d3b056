// Package snapshot serializes the in-memory record set to a portable
// JSON file (export) and validates an externally supplied file for
// batched creation (import).
//
// A snapshot is self-contained and never round-trips through the store:
// export writes exactly what is currently held in memory, as-is — ids
// and fingerprints included, nothing is scrubbed. On import the store
// assigns fresh ids and the importing session's fingerprint, so only
// (name, month, day) survive the round trip.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Mobinshahidi/bday-reminder/internal/types"
)

// Export renders the record set as a pretty-printed UTF-8 JSON array,
// matching the file format import expects.
func Export(birthdays []types.Birthday) ([]byte, error) {
	data, err := json.MarshalIndent(birthdays, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot.Export: %w", err)
	}
	return data, nil
}

// Filename templates the default export file name from the current
// Gregorian date, e.g. "birthdays_2026-08-30.json".
func Filename(now time.Time) string {
	return fmt.Sprintf("birthdays_%s.json", now.Format("2006-01-02"))
}

// Parse validates and stages an import payload.
//
// The payload must deserialize to a JSON array; anything else — an
// object, a scalar, garbage — is rejected with types.ErrValidation
// before any network traffic happens. Elements inside a valid array are
// NOT filtered here: a malformed element is passed through with
// whatever fields did decode, and the store's own validation decides
// the batch's fate. Field-level trust belongs to the store, not to a
// file the user picked.
func Parse(data []byte) ([]types.Birthday, error) {
	// Decoding into []json.RawMessage checks exactly one thing: the
	// top-level shape is an array.
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: payload is not an array of records", types.ErrValidation)
	}

	birthdays := make([]types.Birthday, 0, len(elems))
	for _, elem := range elems {
		var b types.Birthday
		// Element decode errors are deliberately ignored: the record
		// travels on with zero values and the store rejects the whole
		// batch atomically.
		_ = json.Unmarshal(elem, &b)
		birthdays = append(birthdays, b)
	}

	return birthdays, nil
}

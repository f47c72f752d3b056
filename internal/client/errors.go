package client

import (
	"fmt"
)

// FetchError covers everything that can go wrong between sending a
// request and getting a usable success response: transport failures and
// non-2xx statuses alike. Callers deliberately get no way to tell
// "store down" from "store rejected the request" — both surface as the
// same generic failure notice, exactly once, with no retry.
type FetchError struct {
	// Op names the failed operation ("list", "create", …) for logs.
	Op string

	// Status is the HTTP status code, or 0 when the transport itself
	// failed before a response arrived.
	Status int

	// Err is the underlying transport error, nil for status failures.
	Err error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
}

// Unwrap exposes the transport error to errors.Is/As chains.
func (e *FetchError) Unwrap() error { return e.Err }

package types

import "errors"

// ErrValidation marks failures caught locally, before any network call:
// a month or day outside its range, a missing name, or an import
// payload that is not a sequence of records. Wrap it with context and
// test for it with errors.Is.
var ErrValidation = errors.New("validation failed")

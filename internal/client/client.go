// Package client mediates every read and write of birthday records
// against the remote store, scoped to one owner fingerprint.
//
// The contract callers rely on:
//
//   - Range invariants (month in [1,12], day in [1,31], name non-empty)
//     are checked locally BEFORE a mutating request goes out; failures
//     are types.ErrValidation and cost no network round trip. The
//     store re-checks everything anyway — its validation, not this
//     gate, is authoritative.
//
//   - Any transport failure or non-2xx status is a *FetchError. On a
//     failed List the caller keeps its previously held record set;
//     nothing here partially overwrites anything.
//
//   - A successful create/update/delete/import does NOT update any
//     local state: the caller must re-List to obtain the authoritative
//     set. Write, then read — never an optimistic local patch.
//
//   - No retries, no client-imposed timeouts. A stalled request stalls
//     that one operation; the context lets callers cancel if they care.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Mobinshahidi/bday-reminder/internal/types"
	"github.com/go-playground/validator/v10"
)

// Client talks to one record store. Safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

// New returns a client for the store at baseURL (no trailing slash
// needed; one is stripped if present). The underlying http.Client has
// no timeout on purpose — see the package contract.
func New(baseURL string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{},
		validate: validator.New(),
	}
}

// List fetches all records owned by owner.
//
// GET /api/birthdays/{owner} → JSON array of records.
func (c *Client) List(ctx context.Context, owner string) ([]types.Birthday, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/birthdays/"+owner, nil)
	if err != nil {
		return nil, &FetchError{Op: "list", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Op: "list", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Op: "list", Status: resp.StatusCode}
	}

	var birthdays []types.Birthday
	if err := json.NewDecoder(resp.Body).Decode(&birthdays); err != nil {
		return nil, &FetchError{Op: "list", Err: err}
	}

	return birthdays, nil
}

// Create submits a new record. The id in the response is returned for
// convenience, but callers must re-List for the authoritative set — the
// create response alone is not trusted to reflect final store state.
//
// POST /api/birthdays with {name, month, day, fingerprint}.
func (c *Client) Create(ctx context.Context, owner, name string, month, day int) (string, error) {
	b := types.Birthday{Name: name, Month: month, Day: day, Fingerprint: owner}
	if err := c.gate(b); err != nil {
		return "", err
	}

	resp, err := c.send(ctx, "create", http.MethodPost, "/api/birthdays", b)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var created struct {
		ID string `json:"id"`
	}
	// A store that answers 2xx with an unreadable body still created
	// the record; the id is best-effort only.
	_ = json.NewDecoder(resp.Body).Decode(&created)

	return created.ID, nil
}

// Update replaces name, month, and day of the record with the given id.
// Full replacement, not a partial patch — same gate as Create.
//
// PUT /api/birthdays/{id} with {name, month, day, fingerprint}.
func (c *Client) Update(ctx context.Context, id, owner, name string, month, day int) error {
	b := types.Birthday{Name: name, Month: month, Day: day, Fingerprint: owner}
	if err := c.gate(b); err != nil {
		return err
	}

	resp, err := c.send(ctx, "update", http.MethodPut, "/api/birthdays/"+id, b)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Delete removes the record with the given id. Confirming destructive
// intent is the caller's job; this just issues the request.
//
// DELETE /api/birthdays/{id}.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/api/birthdays/"+id, nil)
	if err != nil {
		return &FetchError{Op: "delete", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Op: "delete", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{Op: "delete", Status: resp.StatusCode}
	}

	return nil
}

// Import creates a whole batch of records in one request. A nil
// sequence is rejected locally — that means the caller never had a
// valid record sequence to begin with (an empty, non-nil slice is a
// valid sequence and goes through). Per-record field problems are NOT
// checked here: the store validates each record and fails the batch as
// a whole.
//
// POST /api/birthdays/import with {birthdays: […], fingerprint}.
func (c *Client) Import(ctx context.Context, owner string, birthdays []types.Birthday) error {
	if birthdays == nil {
		return fmt.Errorf("%w: import payload is not a sequence of records", types.ErrValidation)
	}

	req := types.ImportRequest{Birthdays: birthdays, Fingerprint: owner}
	resp, err := c.send(ctx, "import", http.MethodPost, "/api/birthdays/import", req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// gate runs the local validation pass shared by Create and Update.
// It translates validator failures into the ErrValidation taxonomy so
// callers never see validator internals.
func (c *Client) gate(b types.Birthday) error {
	if err := c.validate.Struct(b); err != nil {
		return fmt.Errorf("%w: %s", types.ErrValidation, describeInvalid(err))
	}
	return nil
}

// describeInvalid condenses validator output into one short sentence.
func describeInvalid(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "invalid record"
	}

	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", strings.ToLower(e.Field())))
		case "min", "max":
			parts = append(parts, fmt.Sprintf("%s is out of range", strings.ToLower(e.Field())))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", strings.ToLower(e.Field())))
		}
	}
	return strings.Join(parts, ", ")
}

// send marshals body, issues the request, and enforces the 2xx check.
// The caller owns resp.Body on success.
func (c *Client) send(ctx context.Context, op, method, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method,
		c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &FetchError{Op: op, Status: resp.StatusCode}
	}

	return resp, nil
}

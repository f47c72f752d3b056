package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mobinshahidi/bday-reminder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/birthdays/a91f", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"1","name":"Kian","month":3,"day":10,"fingerprint":"a91f"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	birthdays, err := c.List(context.Background(), "a91f")

	require.NoError(t, err)
	require.Len(t, birthdays, 1)
	assert.Equal(t, "Kian", birthdays[0].Name)
	assert.Equal(t, 3, birthdays[0].Month)
}

func TestListFetchErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.List(context.Background(), "a91f")

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusInternalServerError, fe.Status)
	assert.Equal(t, "list", fe.Op)
}

func TestListFetchErrorOnTransportFailure(t *testing.T) {
	// A server that is already closed: the dial itself fails.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL)
	_, err := c.List(context.Background(), "a91f")

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Zero(t, fe.Status)
	assert.Error(t, fe.Err)
}

func TestCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/birthdays", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var b types.Birthday
		require.NoError(t, json.NewDecoder(r.Body).Decode(&b))
		assert.Equal(t, types.Birthday{Name: "Kian", Month: 3, Day: 10, Fingerprint: "a91f"}, b)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"new-id"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	id, err := c.Create(context.Background(), "a91f", "Kian", 3, 10)

	require.NoError(t, err)
	assert.Equal(t, "new-id", id)
}

// The range gate fires before any request leaves the process.
func TestCreateValidationRejectsWithoutNetworkCall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := New(srv.URL)

	cases := []struct {
		name  string
		month int
		day   int
	}{
		{"Kian", 0, 10},
		{"Kian", 13, 10},
		{"Kian", 3, 0},
		{"Kian", 3, 32},
		{"", 3, 10},
	}
	for _, tc := range cases {
		_, err := c.Create(context.Background(), "a91f", tc.name, tc.month, tc.day)
		assert.ErrorIs(t, err, types.ErrValidation)
	}

	assert.Zero(t, calls, "invalid input must never reach the wire")
}

func TestUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/birthdays/rec-1", r.URL.Path)

		var b types.Birthday
		require.NoError(t, json.NewDecoder(r.Body).Decode(&b))
		assert.Equal(t, "a91f", b.Fingerprint)

		_, _ = w.Write([]byte(`{"status":"updated"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Update(context.Background(), "rec-1", "a91f", "Kian", 4, 2)

	require.NoError(t, err)
}

func TestUpdateValidationGate(t *testing.T) {
	c := New("http://localhost:0")
	err := c.Update(context.Background(), "rec-1", "a91f", "Kian", 13, 2)

	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/birthdays/rec-1", r.URL.Path)

		_, _ = w.Write([]byte(`{"status":"deleted"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.Delete(context.Background(), "rec-1"))
}

func TestImport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/birthdays/import", r.URL.Path)

		var req types.ImportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a91f", req.Fingerprint)
		assert.Len(t, req.Birthdays, 2)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Import(context.Background(), "a91f", []types.Birthday{
		{Name: "Kian", Month: 3, Day: 10},
		{Name: "Sara", Month: 12, Day: 29},
	})

	require.NoError(t, err)
}

// A nil sequence is the "payload was never an array" case — rejected
// locally, no request issued.
func TestImportRejectsNilSequence(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Import(context.Background(), "a91f", nil)

	assert.ErrorIs(t, err, types.ErrValidation)
	assert.Zero(t, calls)
}

func TestImportBatchFailsAsAWhole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Import(context.Background(), "a91f", []types.Birthday{{Name: "Bad"}})

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusBadRequest, fe.Status)
}

// Package birthday contains all HTTP handlers of the birthday record
// store.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like a database.
// To inject dependencies each handler is a factory that:
//  1. Accepts dependencies (storage)
//  2. Returns a function with the exact signature the router needs
//
// The inner function "closes over" the outer parameters, so it can use
// `storage` long after the factory call has returned:
//
//	router.HandleFunc("POST /api/birthdays", birthday.New(storage))
//	//                                       ^^^^^^^^^^^^^^^^^^^^
//	//                      New(storage) runs ONCE at startup; the
//	//                      returned func runs on EVERY request.
package birthday

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Mobinshahidi/bday-reminder/internal/storage"
	"github.com/Mobinshahidi/bday-reminder/internal/types"
	"github.com/Mobinshahidi/bday-reminder/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/birthdays
// Creates a new record from the JSON request body.
//
// Request body (JSON):
//
//	{ "name": "Kian", "month": 3, "day": 10, "fingerprint": "a91f…" }
//
// Success response (201 Created):
//
//	{ "id": "5f3c…" }
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or failed validation
//	500 Internal     — database error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a birthday")

		// ── Step 1: Decode JSON body ──────────────────────────────────
		var b types.Birthday

		err := json.NewDecoder(r.Body).Decode(&b)

		if errors.Is(err, io.EOF) {
			// io.EOF means the body was completely empty.
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}

		if err != nil {
			// Malformed JSON, wrong field types, etc.
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// The fingerprint travels in the body on create, and the store
		// refuses anonymous records — without an owner the record could
		// never be listed again.
		if b.Fingerprint == "" {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("fingerprint is required")))
			return
		}

		// ── Step 2: Validate the decoded struct ───────────────────────
		// Checks the validate:"..." tags: name required, month in
		// [1,12], day in [1,31]. The store's validation is authoritative
		// even though clients run the same gate before submitting.
		if err := validator.New().Struct(b); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		// ── Step 3: Persist ───────────────────────────────────────────
		id, err := storage.CreateBirthday(b.Fingerprint, b.Name, b.Month, b.Day)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("birthday created", slog.String("id", id))

		// ── Step 4: Return 201 Created with the new record's id ───────
		response.WriteJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByOwner handles GET /api/birthdays/{owner}
// Returns a JSON array of every record owned by the given fingerprint.
//
// Path parameter: {owner} — the opaque visitor identifier
//
// Success response (200 OK):
//
//	[
//	  { "id": "5f3c…", "name": "Kian", "month": 3, "day": 10, "fingerprint": "a91f…" },
//	  …
//	]
//
// Returns an empty array [] (not null) when the owner has no records.
// Note the fingerprint is echoed back as stored — records are returned
// as-is, nothing is scrubbed.
// ─────────────────────────────────────────────────────────────────────────────
func GetByOwner(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// r.PathValue extracts the {owner} segment — Go 1.22+ named
		// path parameters in the ServeMux pattern.
		owner := r.PathValue("owner")
		slog.Info("listing birthdays", slog.String("owner", owner))

		if owner == "" {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("owner is required")))
			return
		}

		birthdays, err := storage.GetBirthdaysByOwner(owner)
		if err != nil {
			slog.Error("error listing birthdays",
				slog.String("owner", owner),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, birthdays)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /api/birthdays/{id}
// Replaces name, month, and day of an existing record — a full
// replacement, never a partial patch. Identity (id, owner) is immutable.
//
// Request body (JSON) — all fields required for a PUT:
//
//	{ "name": "Kian", "month": 4, "day": 2, "fingerprint": "a91f…" }
//
// Success response (200 OK):
//
//	{ "status": "updated" }
//
// Error responses:
//
//	400 Bad Request  — empty body or validation failure
//	500 Internal     — database error or no record with that id
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a birthday", slog.String("id", id))

		var b types.Birthday
		err := json.NewDecoder(r.Body).Decode(&b)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Same rules as creation.
		if err := validator.New().Struct(b); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		if err := storage.UpdateBirthdayByID(id, b); err != nil {
			slog.Error("error updating birthday",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("birthday updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /api/birthdays/{id}
// Permanently removes a record. The request carries no body and no
// fingerprint — clients are expected to confirm destructive intent
// before calling, and a second delete of the same id still succeeds.
//
// Success response (200 OK):
//
//	{ "status": "deleted" }
//
// ─────────────────────────────────────────────────────────────────────────────
func Delete(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a birthday", slog.String("id", id))

		if err := storage.DeleteBirthdayByID(id); err != nil {
			slog.Error("error deleting birthday",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("birthday deleted", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Import handles POST /api/birthdays/import
// Creates a whole batch of records in one request.
//
// Request body (JSON):
//
//	{ "birthdays": [ {"name": "Kian", "month": 3, "day": 10}, … ],
//	  "fingerprint": "a91f…" }
//
// The batch is atomic: every record is validated first, then all rows
// are inserted inside one transaction. One bad record fails the whole
// import — per-record failures are not reported individually.
//
// Success response (201 Created):
//
//	{ "status": "imported", "count": 3 }
//
// ─────────────────────────────────────────────────────────────────────────────
func Import(storage storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("importing birthdays")

		var req types.ImportRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Request-level shape first (birthdays + fingerprint present)…
		if err := validator.New().Struct(req); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		// …then every record, before a single row is written. Clients
		// send snapshot elements through without filtering, so this is
		// where a malformed entry surfaces — and it rejects the batch
		// as a whole.
		for _, b := range req.Birthdays {
			if err := validator.New().Struct(b); err != nil {
				validateErrs := err.(validator.ValidationErrors)
				response.WriteJSON(w, http.StatusBadRequest,
					response.ValidationError(validateErrs))
				return
			}
		}

		if err := storage.ImportBirthdays(req.Fingerprint, req.Birthdays); err != nil {
			slog.Error("error importing birthdays", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("birthdays imported", slog.Int("count", len(req.Birthdays)))
		response.WriteJSON(w, http.StatusCreated, map[string]any{
			"status": "imported",
			"count":  len(req.Birthdays),
		})
	}
}

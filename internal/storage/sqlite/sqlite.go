// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// WHY SQLite?
// ───────────
// SQLite stores everything in a single file on disk. There is no
// network, no separate server process, and no installation beyond the
// driver. For a per-visitor birthday list it is more than enough.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/Mobinshahidi/bday-reminder/internal/config"
	"github.com/Mobinshahidi/bday-reminder/internal/types"
	"github.com/google/uuid"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
// A single *sql.DB is safe for concurrent use by multiple goroutines.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at the path specified in cfg.StoragePath,
// creates the birthdays table if it does not already exist, and returns
// a ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	// sql.Open does NOT open a real connection yet — it validates the
	// driver name and DSN. The first actual connection happens on the
	// first query.
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe on every startup.
	//
	// Schema:
	//   id          — opaque UUID string assigned on insert
	//   fingerprint — owner identifier; indexed because every list
	//                 query filters on it
	//   name        — display name of the person
	//   month, day  — Jalali (month, day) pair; range constraints are
	//                 enforced in the HTTP layer, the table stores what
	//                 it is given
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS birthdays (
			id          TEXT    PRIMARY KEY,
			fingerprint TEXT    NOT NULL,
			name        TEXT    NOT NULL,
			month       INTEGER NOT NULL,
			day         INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_birthdays_fingerprint
			ON birthdays (fingerprint);
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// CreateBirthday inserts a new row and returns its store-assigned id.
//
// Prepared statements with ? placeholders keep user input as pure data —
// the driver sends query and values separately, so a name like
// "'; DROP TABLE birthdays; --" is stored verbatim, never executed.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) CreateBirthday(fingerprint, name string, month, day int) (string, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO birthdays (id, fingerprint, name, month, day) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return "", fmt.Errorf("CreateBirthday: prepare: %w", err)
	}
	// defer ensures the statement is closed when this function returns,
	// even on an early error return.
	defer stmt.Close()

	// The id is generated here rather than by the database: SQLite has
	// no native UUID type and the rest of the system treats ids as
	// opaque strings anyway.
	id := uuid.NewString()

	if _, err := stmt.Exec(id, fingerprint, name, month, day); err != nil {
		return "", fmt.Errorf("CreateBirthday: exec: %w", err)
	}

	return id, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetBirthdaysByOwner returns all rows scoped to one fingerprint.
//
// Query (unlike QueryRow) returns *sql.Rows — a cursor over multiple
// rows. We iterate with rows.Next() and Scan each row inside the loop.
// Always defer rows.Close() to release the database connection.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) GetBirthdaysByOwner(fingerprint string) ([]types.Birthday, error) {
	stmt, err := s.Db.Prepare(
		// Explicit column list — SELECT * would silently break Scan's
		// ordering if a column is ever added.
		"SELECT id, name, month, day, fingerprint FROM birthdays WHERE fingerprint = ?",
	)
	if err != nil {
		return nil, fmt.Errorf("GetBirthdaysByOwner: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query(fingerprint)
	if err != nil {
		return nil, fmt.Errorf("GetBirthdaysByOwner: query: %w", err)
	}
	defer rows.Close()

	// Pre-allocate an empty (non-nil) slice so an owner with no records
	// serializes to [] rather than null.
	birthdays := make([]types.Birthday, 0)

	for rows.Next() {
		var b types.Birthday

		if err := rows.Scan(&b.ID, &b.Name, &b.Month, &b.Day, &b.Fingerprint); err != nil {
			return nil, fmt.Errorf("GetBirthdaysByOwner: scan row: %w", err)
		}

		birthdays = append(birthdays, b)
	}

	// rows.Err() captures any error that occurred during iteration,
	// separate from Scan errors.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetBirthdaysByOwner: rows iteration: %w", err)
	}

	return birthdays, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// UpdateBirthdayByID replaces name/month/day of an existing record.
// The id and fingerprint columns never change — record identity is
// immutable once created.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) UpdateBirthdayByID(id string, b types.Birthday) error {
	stmt, err := s.Db.Prepare(
		"UPDATE birthdays SET name = ?, month = ?, day = ? WHERE id = ?",
	)
	if err != nil {
		return fmt.Errorf("UpdateBirthdayByID: prepare: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.Exec(b.Name, b.Month, b.Day, id)
	if err != nil {
		return fmt.Errorf("UpdateBirthdayByID: exec: %w", err)
	}

	// RowsAffected distinguishes "updated" from "no such id" — an
	// UPDATE matching zero rows is not an error to database/sql.
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("UpdateBirthdayByID: rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no birthday found with id: %s", id)
	}

	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// DeleteBirthdayByID removes a row by primary key. Deleting an id that
// no longer exists is not an error — the operation is idempotent from
// the caller's perspective.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) DeleteBirthdayByID(id string) error {
	stmt, err := s.Db.Prepare("DELETE FROM birthdays WHERE id = ?")
	if err != nil {
		return fmt.Errorf("DeleteBirthdayByID: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(id); err != nil {
		return fmt.Errorf("DeleteBirthdayByID: exec: %w", err)
	}

	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// ImportBirthdays inserts a whole batch inside one transaction.
//
// The transaction is what makes the import atomic: if any insert fails,
// Rollback discards every row inserted so far and the caller sees the
// batch fail as a whole. Commit makes them all visible at once.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) ImportBirthdays(fingerprint string, birthdays []types.Birthday) error {
	tx, err := s.Db.Begin()
	if err != nil {
		return fmt.Errorf("ImportBirthdays: begin tx: %w", err)
	}
	// Rollback after a successful Commit is a no-op, so deferring it
	// unconditionally is safe and covers every early-error path.
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO birthdays (id, fingerprint, name, month, day) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("ImportBirthdays: prepare: %w", err)
	}
	defer stmt.Close()

	for _, b := range birthdays {
		// Every imported record gets a fresh id and the importing
		// session's fingerprint — ids and owners from the snapshot
		// file are ignored, the store assigns its own.
		if _, err := stmt.Exec(uuid.NewString(), fingerprint, b.Name, b.Month, b.Day); err != nil {
			return fmt.Errorf("ImportBirthdays: exec: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ImportBirthdays: commit: %w", err)
	}

	return nil
}

package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/Mobinshahidi/bday-reminder/internal/config"
	"github.com/Mobinshahidi/bday-reminder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *SQLite {
	t.Helper()

	cfg := &config.Config{
		Env:         "dev",
		StoragePath: filepath.Join(t.TempDir(), "test.db"),
	}
	s, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Db.Close() })

	return s
}

func TestCreateAndListByOwner(t *testing.T) {
	s := setupStore(t)

	id, err := s.CreateBirthday("owner-a", "Kian", 3, 10)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = s.CreateBirthday("owner-b", "Sara", 7, 2)
	require.NoError(t, err)

	// Ownership scoping: owner-a never sees owner-b's records.
	got, err := s.GetBirthdaysByOwner("owner-a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
	assert.Equal(t, "Kian", got[0].Name)
	assert.Equal(t, 3, got[0].Month)
	assert.Equal(t, 10, got[0].Day)
	assert.Equal(t, "owner-a", got[0].Fingerprint)
}

func TestListUnknownOwnerIsEmptyNotNil(t *testing.T) {
	s := setupStore(t)

	got, err := s.GetBirthdaysByOwner("nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	s := setupStore(t)

	id1, err := s.CreateBirthday("owner-a", "Kian", 3, 10)
	require.NoError(t, err)
	id2, err := s.CreateBirthday("owner-a", "Kian", 3, 10)
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2, "duplicate records are distinct rows")
}

func TestUpdateReplacesAllMutableFields(t *testing.T) {
	s := setupStore(t)

	id, err := s.CreateBirthday("owner-a", "Kian", 3, 10)
	require.NoError(t, err)

	err = s.UpdateBirthdayByID(id, types.Birthday{Name: "Kianoush", Month: 4, Day: 2})
	require.NoError(t, err)

	got, err := s.GetBirthdaysByOwner("owner-a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kianoush", got[0].Name)
	assert.Equal(t, 4, got[0].Month)
	assert.Equal(t, 2, got[0].Day)
	// Identity never changes.
	assert.Equal(t, id, got[0].ID)
	assert.Equal(t, "owner-a", got[0].Fingerprint)
}

func TestUpdateUnknownID(t *testing.T) {
	s := setupStore(t)

	err := s.UpdateBirthdayByID("missing", types.Birthday{Name: "X", Month: 1, Day: 1})
	assert.Error(t, err)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := setupStore(t)

	id, err := s.CreateBirthday("owner-a", "Kian", 3, 10)
	require.NoError(t, err)

	require.NoError(t, s.DeleteBirthdayByID(id))
	// Second delete of the same id still succeeds.
	require.NoError(t, s.DeleteBirthdayByID(id))

	got, err := s.GetBirthdaysByOwner("owner-a")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestImportAssignsFreshIdentity(t *testing.T) {
	s := setupStore(t)

	err := s.ImportBirthdays("owner-a", []types.Birthday{
		// Snapshot files carry old ids and fingerprints; the store
		// must ignore both.
		{ID: "stale-id", Name: "Kian", Month: 3, Day: 10, Fingerprint: "someone-else"},
		{Name: "Sara", Month: 12, Day: 29},
	})
	require.NoError(t, err)

	got, err := s.GetBirthdaysByOwner("owner-a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, b := range got {
		assert.NotEqual(t, "stale-id", b.ID)
		assert.Equal(t, "owner-a", b.Fingerprint)
	}
}

func TestImportEmptyBatch(t *testing.T) {
	s := setupStore(t)

	require.NoError(t, s.ImportBirthdays("owner-a", nil))

	got, err := s.GetBirthdaysByOwner("owner-a")
	require.NoError(t, err)
	assert.Empty(t, got)
}

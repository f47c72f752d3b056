package projection

import (
	"testing"

	"github.com/Mobinshahidi/bday-reminder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []types.Birthday {
	return []types.Birthday{
		{ID: "1", Name: "Roya", Month: 7, Day: 2},
		{ID: "2", Name: "Kian", Month: 3, Day: 10},
		{ID: "3", Name: "kianoush", Month: 1, Day: 5},
		{ID: "4", Name: "Sara", Month: 3, Day: 1},
	}
}

func TestApplySortsByMonthThenDay(t *testing.T) {
	out := Apply(Filter{}, sample())

	require.Len(t, out, 4)
	assert.Equal(t, []string{"3", "4", "2", "1"},
		[]string{out[0].ID, out[1].ID, out[2].ID, out[3].ID})
}

func TestApplySearchIsCaseInsensitive(t *testing.T) {
	out := Apply(Filter{Search: "KIAN"}, sample())

	require.Len(t, out, 2)
	assert.Equal(t, "kianoush", out[0].Name) // month 1 sorts first
	assert.Equal(t, "Kian", out[1].Name)
}

func TestApplyMonthFilter(t *testing.T) {
	out := Apply(Filter{Month: 3}, sample())

	require.Len(t, out, 2)
	assert.Equal(t, "Sara", out[0].Name)
	assert.Equal(t, "Kian", out[1].Name)
}

func TestApplyCombinedFilters(t *testing.T) {
	out := Apply(Filter{Search: "kian", Month: 3}, sample())

	require.Len(t, out, 1)
	assert.Equal(t, "Kian", out[0].Name)
}

// Applying the projection to its own output yields the same sequence.
func TestApplyIsIdempotent(t *testing.T) {
	f := Filter{Search: "a", Month: 0}

	once := Apply(f, sample())
	twice := Apply(f, once)

	assert.Equal(t, once, twice)
}

// Records with equal (month, day) keep their relative input order.
func TestApplySortIsStable(t *testing.T) {
	records := []types.Birthday{
		{ID: "x", Name: "First", Month: 5, Day: 12},
		{ID: "y", Name: "Second", Month: 5, Day: 12},
		{ID: "z", Name: "Third", Month: 5, Day: 12},
	}

	out := Apply(Filter{}, records)

	require.Len(t, out, 3)
	assert.Equal(t, "x", out[0].ID)
	assert.Equal(t, "y", out[1].ID)
	assert.Equal(t, "z", out[2].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := sample()
	_ = Apply(Filter{}, records)

	assert.Equal(t, sample(), records, "input order must survive projection")
}

func TestApplyEmptyInput(t *testing.T) {
	out := Apply(Filter{Search: "kian"}, nil)

	assert.NotNil(t, out)
	assert.Empty(t, out)
}

package snapshot

import (
	"sort"
	"testing"
	"time"

	"github.com/Mobinshahidi/bday-reminder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportThenParseRoundTrip(t *testing.T) {
	records := []types.Birthday{
		{ID: "1", Name: "Kian", Month: 3, Day: 10, Fingerprint: "a91f"},
		{ID: "2", Name: "Sara", Month: 12, Day: 29, Fingerprint: "a91f"},
		{ID: "3", Name: "Sara", Month: 12, Day: 29, Fingerprint: "a91f"}, // duplicate on purpose
	}

	data, err := Export(records)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, parsed, len(records))

	// Ignoring store-assigned fields, the (name, month, day) multiset
	// survives the round trip — duplicates included.
	key := func(b types.Birthday) [3]any { return [3]any{b.Name, b.Month, b.Day} }
	var got, want [][3]any
	for i := range records {
		want = append(want, key(records[i]))
		got = append(got, key(parsed[i]))
	}
	sort.Slice(got, func(i, j int) bool { return got[i][0].(string) < got[j][0].(string) })
	sort.Slice(want, func(i, j int) bool { return want[i][0].(string) < want[j][0].(string) })
	assert.Equal(t, want, got)
}

func TestParseRejectsNonArray(t *testing.T) {
	for _, payload := range []string{
		`{"name":"Kian","month":3,"day":10}`,
		`"just a string"`,
		`42`,
		`not json at all`,
	} {
		_, err := Parse([]byte(payload))
		assert.ErrorIs(t, err, types.ErrValidation, "payload: %s", payload)
	}
}

func TestParseAcceptsEmptyArray(t *testing.T) {
	parsed, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, parsed)
	assert.Empty(t, parsed)
}

// A malformed element inside a valid array is not filtered out locally:
// whatever decoded stays, the rest is zero-valued, and field validation
// is the store's job.
func TestParseKeepsMalformedElements(t *testing.T) {
	parsed, err := Parse([]byte(`[
		{"name":"Kian","month":3,"day":10},
		{"name":"Broken","month":"three","day":10}
	]`))
	require.NoError(t, err)
	require.Len(t, parsed, 2)

	assert.Equal(t, "Kian", parsed[0].Name)
	assert.Equal(t, 3, parsed[0].Month)
	assert.Zero(t, parsed[1].Month, "undecodable field stays zero")
}

func TestExportIsHumanReadable(t *testing.T) {
	data, err := Export([]types.Birthday{{Name: "Kian", Month: 3, Day: 10}})
	require.NoError(t, err)

	assert.Contains(t, string(data), "\n", "export is indented, not a single line")
	assert.Contains(t, string(data), `"name": "Kian"`)
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "birthdays_2026-08-30.json", Filename(now))
}

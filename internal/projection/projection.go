// Package projection produces the record sequence the UI renders:
// filtered by name and month, sorted for display. It never mutates the
// underlying record set — Apply works on a copy, so the in-memory set
// the evaluator scans keeps its original order.
package projection

import (
	"sort"
	"strings"

	"github.com/Mobinshahidi/bday-reminder/internal/types"
)

// Filter is the display filter state.
//
// Search matches as a case-insensitive substring of the record name; an
// empty Search matches everything. Month, when non-zero, requires exact
// equality; zero means "all months".
type Filter struct {
	Search string
	Month  int
}

// Apply filters and sorts for display. The result is ascending by
// (month, day); records with equal (month, day) keep their relative
// input order (stable sort). Applying the same filter twice yields the
// same sequence as applying it once. Empty input yields empty output —
// there are no error cases.
func Apply(f Filter, birthdays []types.Birthday) []types.Birthday {
	needle := strings.ToLower(f.Search)

	out := make([]types.Birthday, 0, len(birthdays))
	for _, b := range birthdays {
		if needle != "" && !strings.Contains(strings.ToLower(b.Name), needle) {
			continue
		}
		if f.Month != 0 && b.Month != f.Month {
			continue
		}
		out = append(out, b)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Month == out[j].Month {
			return out[i].Day < out[j].Day
		}
		return out[i].Month < out[j].Month
	})

	return out
}

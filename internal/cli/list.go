package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/Mobinshahidi/bday-reminder/internal/calendar"
	"github.com/Mobinshahidi/bday-reminder/internal/projection"
	"github.com/spf13/cobra"
)

// newListCmd builds `birthdays list`: fetch, project, render.
//
// The filter/sort projection is display-only — the underlying record
// set (and the order the evaluator scans it in) is never touched.
func newListCmd(app *App) *cobra.Command {
	var (
		search string
		month  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked birthdays, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			birthdays, err := app.refresh(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch birthdays: %w", err)
			}

			shown := projection.Apply(projection.Filter{Search: search, Month: month}, birthdays)
			if len(shown) == 0 {
				fmt.Fprintln(app.out, "No birthdays found")
				return nil
			}

			// tabwriter lines the columns up regardless of name length.
			w := tabwriter.NewWriter(app.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDATE")
			for _, b := range shown {
				fmt.Fprintf(w, "%s\t%s\t%d %s\n",
					b.ID, b.Name, b.Day, calendar.MonthName(b.Month))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&search, "search", "",
		"show only names containing this text (case-insensitive)")
	cmd.Flags().IntVar(&month, "month", 0,
		"show only birthdays in this month (1-12, 0 = all)")

	return cmd
}

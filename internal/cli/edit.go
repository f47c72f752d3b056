package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newEditCmd builds `birthdays edit ID NAME MONTH DAY` — a full
// replacement of the record's mutable fields. There is no partial
// update; every field is supplied every time.
func newEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit ID NAME MONTH DAY",
		Short: "Replace the name and date of a tracked birthday",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, day, err := parseDate(args[2], args[3])
			if err != nil {
				return err
			}

			if err := app.client.Update(cmd.Context(), args[0], app.owner, args[1], month, day); err != nil {
				return fmt.Errorf("failed to update birthday: %w", err)
			}

			fmt.Fprintln(app.out, "Birthday updated successfully")

			if _, err := app.refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to fetch birthdays: %w", err)
			}
			return nil
		},
	}
}

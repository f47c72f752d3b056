package cli

import (
	"fmt"
	"strconv"

	"github.com/Mobinshahidi/bday-reminder/internal/types"
	"github.com/spf13/cobra"
)

// parseDate turns the MONTH and DAY arguments into ints. Range checking
// is NOT done here — that is the store client's validation gate, so the
// rejection happens in exactly one place for add and edit alike.
func parseDate(monthArg, dayArg string) (int, int, error) {
	month, err := strconv.Atoi(monthArg)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: month must be a number", types.ErrValidation)
	}
	day, err := strconv.Atoi(dayArg)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: day must be a number", types.ErrValidation)
	}
	return month, day, nil
}

// newAddCmd builds `birthdays add NAME MONTH DAY`.
func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME MONTH DAY",
		Short: "Track a new birthday",
		Long: `Track a new birthday. MONTH (1-12) and DAY (1-31) are Jalali
calendar values; no month-length check is applied beyond those ranges.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, day, err := parseDate(args[1], args[2])
			if err != nil {
				return err
			}

			if _, err := app.client.Create(cmd.Context(), app.owner, args[0], month, day); err != nil {
				return fmt.Errorf("failed to add birthday: %w", err)
			}

			fmt.Fprintln(app.out, "Birthday added successfully")

			// Re-fetch the authoritative set and evaluate reminders
			// against it — the create response alone is not trusted.
			if _, err := app.refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to fetch birthdays: %w", err)
			}
			return nil
		},
	}
}

package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newDeleteCmd builds `birthdays delete ID`.
//
// The confirmation gate lives here, not in the data layer: the delete
// request itself carries no safeguard, so destructive intent is
// confirmed out-of-band before the client is ever invoked. --yes skips
// the prompt for scripted use.
func newDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Stop tracking a birthday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !app.confirm("Are you sure you want to delete this birthday?") {
				fmt.Fprintln(app.out, "Delete cancelled")
				return nil
			}

			if err := app.client.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete birthday: %w", err)
			}

			fmt.Fprintln(app.out, "Birthday deleted successfully")

			if _, err := app.refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to fetch birthdays: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "delete without asking for confirmation")

	return cmd
}

// confirm prompts on app.in and accepts "y" or "yes" (any case).
// Anything else — including a read failure — counts as "no".
func (a *App) confirm(question string) bool {
	fmt.Fprintf(a.out, "%s [y/N]: ", question)

	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

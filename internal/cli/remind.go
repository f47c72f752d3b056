package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// newRemindCmd builds `birthdays remind [--every DUR]`.
//
// One invocation runs one evaluation pass: fetch the set, classify each
// record against today / tomorrow / next week, announce the matches.
// With --every the pass repeats on a fixed interval until interrupted —
// and because the evaluator is memoryless, each interval re-announces
// matches that are still standing.
func newRemindCmd(app *App) *cobra.Command {
	var every time.Duration

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Check for upcoming birthdays and raise notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pass := func() error {
				birthdays, err := app.refresh(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to fetch birthdays: %w", err)
				}
				app.log.Debug("reminder pass complete")
				fmt.Fprintf(app.out, "Checked %d birthday(s)\n", len(birthdays))
				return nil
			}

			if err := pass(); err != nil {
				return err
			}
			if every <= 0 {
				return nil
			}

			ticker := time.NewTicker(every)
			defer ticker.Stop()

			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case <-ticker.C:
					if err := pass(); err != nil {
						// One failed refresh is surfaced and the loop
						// carries on — the next tick gets a fresh try.
						fmt.Fprintln(app.out, err.Error())
					}
				}
			}
		},
	}

	cmd.Flags().DurationVar(&every, "every", 0,
		"keep running and re-check on this interval (e.g. 1h); 0 runs once")

	return cmd
}

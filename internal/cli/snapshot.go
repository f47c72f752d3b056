package cli

import (
	"fmt"
	"os"

	"github.com/Mobinshahidi/bday-reminder/internal/snapshot"
	"github.com/spf13/cobra"
)

// newExportCmd builds `birthdays export [FILE]`.
//
// The snapshot contains exactly the current in-memory record set,
// written as-is — ids and fingerprint included. It never round-trips
// through the store.
func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write all tracked birthdays to a JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			birthdays, err := app.refresh(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch birthdays: %w", err)
			}

			data, err := snapshot.Export(birthdays)
			if err != nil {
				return fmt.Errorf("failed to export birthdays: %w", err)
			}

			path := snapshot.Filename(app.now())
			if len(args) == 1 {
				path = args[0]
			}

			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to export birthdays: %w", err)
			}

			fmt.Fprintf(app.out, "Birthdays exported successfully to %s\n", path)
			return nil
		},
	}
}

// newImportCmd builds `birthdays import FILE`.
//
// The file must hold a JSON array; any other shape is rejected before a
// single network call. Malformed entries inside a valid array are not
// filtered locally — the store validates each record and accepts or
// rejects the batch as a whole.
func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Create birthdays from a previously exported JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}

			birthdays, err := snapshot.Parse(data)
			if err != nil {
				return fmt.Errorf("failed to import birthdays: %w", err)
			}

			if err := app.client.Import(cmd.Context(), app.owner, birthdays); err != nil {
				return fmt.Errorf("failed to import birthdays: %w", err)
			}

			fmt.Fprintln(app.out, "Birthdays imported successfully")

			if _, err := app.refresh(cmd.Context()); err != nil {
				return fmt.Errorf("failed to fetch birthdays: %w", err)
			}
			return nil
		},
	}
}

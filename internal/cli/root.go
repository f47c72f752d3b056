// Package cli implements the birthdays command-line interface: the
// user-facing surface over the record store client, the reminder
// evaluator, and the import/export transform.
//
// Session model: every invocation loads the client config, computes the
// device fingerprint once, and builds one store client. After every
// successful mutation the record set is re-fetched wholesale (write,
// then read — the store is authoritative, there is no optimistic local
// state), and the reminder evaluator runs over the fresh set. The
// evaluator keeps no memory between passes, so an unchanged match
// notifies again on every refresh.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Mobinshahidi/bday-reminder/internal/calendar"
	"github.com/Mobinshahidi/bday-reminder/internal/client"
	"github.com/Mobinshahidi/bday-reminder/internal/config"
	"github.com/Mobinshahidi/bday-reminder/internal/fingerprint"
	"github.com/Mobinshahidi/bday-reminder/internal/notify"
	"github.com/Mobinshahidi/bday-reminder/internal/reminder"
	"github.com/Mobinshahidi/bday-reminder/internal/types"
	"github.com/spf13/cobra"
)

// App carries the per-session dependencies every command needs. Wiring
// them into one struct keeps the commands testable: tests construct an
// App around fakes instead of touching globals.
type App struct {
	client   *client.Client
	owner    string
	notifier reminder.Notifier
	log      *slog.Logger

	// out and in exist so tests can capture output and script the
	// delete confirmation prompt.
	out io.Writer
	in  io.Reader

	// now is stubbed in tests to pin the calendar targets.
	now func() time.Time
}

var (
	// Persistent flags, bound on the root command.
	configPath string
	apiURL     string
	noNotify   bool
)

// NewRootCmd builds the full command tree. The App is assembled in
// PersistentPreRunE so flags are already parsed when the session is
// wired up.
func NewRootCmd() *cobra.Command {
	app := &App{
		out: os.Stdout,
		in:  os.Stdin,
		now: time.Now,
	}

	root := &cobra.Command{
		Use:   "birthdays",
		Short: "Track birthdays on the Jalali calendar and get reminded",
		Long: `birthdays keeps a list of birthday records in a remote store and
raises a desktop notification when a tracked birthday is today,
tomorrow, or a week away.

There is no account: this device is identified by a fingerprint
computed from stable machine signals, and only records created under
that fingerprint are visible here.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the configuration YAML file (optional)")
	root.PersistentFlags().StringVar(&apiURL, "api-url", "",
		"base URL of the record store (overrides config)")
	root.PersistentFlags().BoolVar(&noNotify, "no-notify", false,
		"suppress desktop notifications for this invocation")

	root.AddCommand(
		newListCmd(app),
		newAddCmd(app),
		newEditCmd(app),
		newDeleteCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newRemindCmd(app),
	)

	return root
}

// init wires up the session: config, logger, fingerprint, store client,
// notification sink. Called once per invocation.
func (a *App) init() error {
	cfg, err := config.LoadClient(configPath)
	if err != nil {
		return fmt.Errorf("cannot load config: %w", err)
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	a.log = setupLogger(cfg.Env)

	// The fingerprint is computed once per session. A configured value
	// wins — that is how one identity is carried across machines.
	a.owner = cfg.Fingerprint
	if a.owner == "" {
		a.owner = fingerprint.Compute()
	}
	a.log.Debug("session identity", slog.String("fingerprint", a.owner))

	a.client = client.New(cfg.APIURL)

	// The Notifications config value is the permission grant; an
	// ungranted notifier silently drops every request.
	a.notifier = notify.Desktop{Granted: cfg.Notifications && !noNotify}

	return nil
}

// refresh pulls the authoritative record set and runs one evaluation
// pass over it, announcing any matches. Every command that changes or
// reads the set goes through here, so reminders fire on every refresh —
// including repeats for matches that already fired earlier in the day.
func (a *App) refresh(ctx context.Context) ([]types.Birthday, error) {
	birthdays, err := a.client.List(ctx, a.owner)
	if err != nil {
		// The caller keeps whatever set it already had; nothing is
		// partially overwritten on a failed fetch.
		return nil, err
	}

	events := reminder.Evaluate(calendar.TargetsAt(a.now()), birthdays)
	reminder.Send(events, a.notifier, a.log)
	for _, ev := range events {
		fmt.Fprintln(a.out, ev.Tier.Message(ev.Birthday.Name))
	}

	return birthdays, nil
}

// setupLogger mirrors the store service's logger wiring: text at debug
// in dev, JSON elsewhere. CLI logs go to stderr so command output stays
// pipeable.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod", "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	default:
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}

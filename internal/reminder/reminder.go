// Package reminder classifies birthday records against the current
// calendar targets and fans matching records out to a notifier.
//
// Evaluate is a pure function of (targets, records): it keeps no state
// between passes. Re-running it over an unchanged record set therefore
// re-emits the same events — and since the CLI evaluates after every
// refresh, an unchanged match notifies again on every refresh. That is
// the long-standing observable behavior of this system; callers that
// want deduplication have to add it themselves.
package reminder

import (
	"fmt"
	"log/slog"

	"github.com/Mobinshahidi/bday-reminder/internal/calendar"
	"github.com/Mobinshahidi/bday-reminder/internal/types"
)

// Tier is the urgency classification of a matched record.
type Tier int

const (
	TierToday Tier = iota
	TierTomorrow
	TierNextWeek
)

func (t Tier) String() string {
	switch t {
	case TierToday:
		return "today"
	case TierTomorrow:
		return "tomorrow"
	case TierNextWeek:
		return "nextWeek"
	default:
		return "unknown"
	}
}

// Message renders the tier's notification body with the person's name
// interpolated.
func (t Tier) Message(name string) string {
	switch t {
	case TierToday:
		return fmt.Sprintf("It's %s's birthday today! 🎉", name)
	case TierTomorrow:
		return fmt.Sprintf("%s's birthday is tomorrow! 🎈", name)
	case TierNextWeek:
		return fmt.Sprintf("%s's birthday is in a week! 📅", name)
	default:
		return ""
	}
}

// Event is one (record, tier) match produced by an evaluation pass.
type Event struct {
	Birthday types.Birthday
	Tier     Tier
}

// Evaluate scans the records in the order they are held and classifies
// each against the three targets in fixed priority order:
//
//	today > tomorrow > nextWeek
//
// The first matching tier wins and at most one event is emitted per
// record — a record whose date equals today's target never also shows
// up as nextWeek in the same pass. Records matching no target produce
// nothing. The input slice is never reordered or mutated.
func Evaluate(targets calendar.Targets, birthdays []types.Birthday) []Event {
	var events []Event

	for _, b := range birthdays {
		switch {
		case b.Month == targets.Today.Month && b.Day == targets.Today.Day:
			events = append(events, Event{Birthday: b, Tier: TierToday})
		case b.Month == targets.Tomorrow.Month && b.Day == targets.Tomorrow.Day:
			events = append(events, Event{Birthday: b, Tier: TierTomorrow})
		case b.Month == targets.NextWeek.Month && b.Day == targets.NextWeek.Day:
			events = append(events, Event{Birthday: b, Tier: TierNextWeek})
		}
	}

	return events
}

// Title is the fixed title of every reminder notification.
const Title = "Birthday Reminder"

// Notifier is anything that can raise a platform notification. The
// concrete desktop implementation lives in internal/notify; tests pass
// a recording fake.
type Notifier interface {
	Notify(title, body string) error
}

// Send requests one notification per event. A failed notification is
// logged and skipped — one broken event never aborts the rest of the
// pass, and nothing here is retried.
func Send(events []Event, n Notifier, log *slog.Logger) {
	for _, ev := range events {
		body := ev.Tier.Message(ev.Birthday.Name)
		if err := n.Notify(Title, body); err != nil {
			log.Error("failed to send notification",
				slog.String("name", ev.Birthday.Name),
				slog.String("tier", ev.Tier.String()),
				slog.String("error", err.Error()))
			continue
		}
		log.Debug("notification sent",
			slog.String("name", ev.Birthday.Name),
			slog.String("tier", ev.Tier.String()))
	}
}

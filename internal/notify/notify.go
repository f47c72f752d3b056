// Package notify is the platform notification sink behind the reminder
// evaluator, backed by beeep (desktop notifications on Linux, macOS,
// and Windows).
package notify

import "github.com/gen2brain/beeep"

// Desktop raises desktop notifications when granted.
//
// Granted mirrors the notification permission gate: when false, Notify
// silently does nothing and reports success. Missing permission is not
// an error condition — matches are simply not announced.
type Desktop struct {
	Granted bool
}

// Notify shows one desktop notification. No icon is attached; beeep
// accepts an empty icon path.
func (d Desktop) Notify(title, body string) error {
	if !d.Granted {
		return nil
	}
	return beeep.Notify(title, body, "")
}

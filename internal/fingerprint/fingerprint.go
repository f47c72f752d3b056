// Package fingerprint derives the opaque per-visitor identifier that
// scopes record ownership.
//
// There is no login. A session is identified by a hash of stable device
// signals, computed once at startup — the same machine keeps producing
// the same identifier, so its records stay reachable across sessions.
// The identifier is an unverified scoping token: possession is never
// proven, and the store trusts whatever value arrives.
package fingerprint

import (
	"encoding/hex"
	"os"
	"os/user"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
)

// machineIDPaths are tried in order; the first readable file wins.
// Present on essentially every Linux install, absent elsewhere — the
// remaining signals still make the hash stable per device.
var machineIDPaths = []string{
	"/etc/machine-id",
	"/var/lib/dbus/machine-id",
}

// Compute returns the device fingerprint: a 32-character hex string
// hashed from whatever signals are readable. If no signal at all can be
// collected the identifier degrades to a random UUID — still opaque,
// just not stable across sessions.
func Compute() string {
	signals := collect()
	if len(signals) == 0 {
		return uuid.NewString()
	}

	sum := sha3.Sum256([]byte(strings.Join(signals, "|")))
	return hex.EncodeToString(sum[:16])
}

func collect() []string {
	var signals []string

	if host, err := os.Hostname(); err == nil && host != "" {
		signals = append(signals, host)
	}

	if u, err := user.Current(); err == nil && u.Username != "" {
		signals = append(signals, u.Username)
	}

	for _, path := range machineIDPaths {
		if data, err := os.ReadFile(path); err == nil {
			if id := strings.TrimSpace(string(data)); id != "" {
				signals = append(signals, id)
				break
			}
		}
	}

	// GOOS/GOARCH alone identify nothing; they only widen the hash
	// input once a real device signal exists.
	if len(signals) > 0 {
		signals = append(signals, runtime.GOOS, runtime.GOARCH)
	}

	return signals
}

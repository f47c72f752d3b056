package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeIsStableWithinAMachine(t *testing.T) {
	first := Compute()
	second := Compute()

	require.NotEmpty(t, first)
	assert.Equal(t, first, second, "same device must keep the same identity")
}

func TestComputeIsOpaqueHex(t *testing.T) {
	fp := Compute()

	// 16 hashed bytes, hex-encoded. The UUID fallback only happens when
	// not a single device signal is readable, which a test host always
	// has (GOOS/GOARCH ride along with at least a hostname or user).
	assert.Len(t, fp, 32)
	assert.Regexp(t, "^[0-9a-f]+$", fp)
}

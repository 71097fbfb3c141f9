// Package device derives the identity a client presents to the
// authorization server: a per-process random device id and a human-readable
// device model string.
package device

import (
	"encoding/hex"
	"runtime"
	"sync"

	"github.com/google/uuid"
)

// Identity identifies this installation against the OAuth endpoints. The ID
// is random per Identity and never persisted; callers construct one Identity
// and reuse it for the lifetime of the process.
type Identity struct {
	ID    string
	Model string
}

// NewIdentity generates a fresh identity. The device id is a random 16-byte
// value, hex encoded.
func NewIdentity() Identity {
	id := uuid.New()

	return Identity{
		ID:    hex.EncodeToString(id[:]),
		Model: Model(runtime.GOOS, runtime.GOARCH),
	}
}

// Default returns the process-wide identity. The first call generates it,
// every later call returns the same value, safe for concurrent first use.
var Default = sync.OnceValue(NewIdentity)

// Model maps a GOOS/GOARCH pair to the device model string reported to the
// authorization server.
func Model(goos, arch string) string {
	switch goos {
	case "darwin":
		return "macOS " + arch
	case "windows":
		return "Windows " + arch
	default:
		return goos + " " + arch
	}
}

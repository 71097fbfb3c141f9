package device_test

import (
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kimicode/kimi-auth/internal/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goos     string
		arch     string
		expected string
	}{
		{"darwin", "arm64", "macOS arm64"},
		{"darwin", "amd64", "macOS amd64"},
		{"windows", "amd64", "Windows amd64"},
		{"linux", "amd64", "linux amd64"},
		{"freebsd", "arm64", "freebsd arm64"},
	}

	for _, tc := range tests {
		t.Run(tc.goos+"/"+tc.arch, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, device.Model(tc.goos, tc.arch))
		})
	}
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	identity := device.NewIdentity()

	raw, err := hex.DecodeString(identity.ID)
	require.NoError(t, err)
	assert.Len(t, raw, 16)
	assert.NotEmpty(t, identity.Model)

	other := device.NewIdentity()
	assert.NotEqual(t, identity.ID, other.ID)
}

func TestDefaultIsStable(t *testing.T) {
	t.Parallel()

	first := device.Default()
	second := device.Default()

	assert.Equal(t, first, second)
}

func TestTransport(t *testing.T) {
	t.Parallel()

	var seen http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	identity := device.NewIdentity()
	client := &http.Client{Transport: device.NewTransport(nil, identity)}

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, identity.ID, seen.Get("X-Msh-Device-Id"))
	assert.Equal(t, identity.Model, seen.Get("X-Msh-Device-Model"))
	assert.Contains(t, seen.Get("User-Agent"), "kimi-auth/")
	assert.NotEmpty(t, seen.Get("X-Msh-Platform"))
}

func TestAPIHeadersWithoutDeviceIdentity(t *testing.T) {
	t.Parallel()

	headers := device.APIHeaders()

	assert.Contains(t, headers, "User-Agent")
	assert.Contains(t, headers, "X-Msh-Platform")
	assert.NotContains(t, headers, "X-Msh-Device-Id")
	assert.NotContains(t, headers, "X-Msh-Device-Model")
}

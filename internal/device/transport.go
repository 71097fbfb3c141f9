package device

import (
	"net/http"

	"github.com/kimicode/kimi-auth/internal/version"
)

const platformTag = "kimi-cli"

// UserAgent is sent on every request against the authorization server and
// the serving API.
func UserAgent() string {
	return "kimi-auth/" + version.Version
}

// Headers returns the full OAuth-endpoint header set: the fixed client
// identification headers plus the device identity. Serving API calls must
// not carry the device identity, see [APIHeaders].
func (i Identity) Headers() http.Header {
	h := http.Header{}
	h.Set("User-Agent", UserAgent())
	h.Set("X-Msh-Platform", platformTag)
	h.Set("X-Msh-Device-Model", i.Model)
	h.Set("X-Msh-Device-Id", i.ID)

	return h
}

// APIHeaders returns the fixed header set for model-serving API calls,
// without device identity.
func APIHeaders() map[string]string {
	return map[string]string{
		"User-Agent":     UserAgent(),
		"X-Msh-Platform": platformTag,
	}
}

// Transport attaches the OAuth header set to every outgoing request. It is
// meant for the http.Client used against the OAuth endpoints only.
type Transport struct {
	rt       http.RoundTripper
	identity Identity
}

func NewTransport(rt http.RoundTripper, identity Identity) *Transport {
	if rt == nil {
		rt = http.DefaultTransport
	}

	return &Transport{rt: rt, identity: identity}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	for key, values := range t.identity.Headers() {
		req.Header[key] = values
	}

	return t.rt.RoundTrip(req) //nolint:wrapcheck
}

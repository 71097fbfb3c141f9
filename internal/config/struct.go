package config

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/kimicode/kimi-auth/internal/config/types"
)

type Config struct {
	ConfigFile string `json:"config" koanf:"config" yaml:"config"`
	Log        Log    `json:"log"    koanf:"log"    yaml:"log"`
	OAuth2     OAuth2 `json:"oauth2" koanf:"oauth2" yaml:"oauth2"`
	HTTP       HTTP   `json:"http"   koanf:"http"   yaml:"http"`
	Version    bool   `json:"-"      koanf:"version" yaml:"-"`
}

type Log struct {
	Format string     `json:"format" koanf:"format" yaml:"format"`
	Level  slog.Level `json:"level"  koanf:"level"  yaml:"level"`
}

type OAuth2 struct {
	Issuer    types.URL       `json:"issuer"   koanf:"issuer"   yaml:"issuer"`
	Client    OAuth2Client    `json:"client"   koanf:"client"   yaml:"client"`
	Endpoints OAuth2Endpoints `json:"endpoint" koanf:"endpoint" yaml:"endpoint"`
}

type OAuth2Client struct {
	ID string `json:"id" koanf:"id" yaml:"id"`
}

// OAuth2Endpoints allows overriding the endpoints derived from the issuer.
type OAuth2Endpoints struct {
	DeviceAuthorization types.URL `json:"deviceauthorization" koanf:"deviceauthorization" yaml:"deviceauthorization"`
	Token               types.URL `json:"token"               koanf:"token"               yaml:"token"`
}

type HTTP struct {
	Timeout time.Duration `json:"timeout" koanf:"timeout" yaml:"timeout"`
}

const (
	deviceAuthorizationPath = "/api/oauth/device_authorization"
	tokenPath               = "/api/oauth/token"
)

// DeviceAuthorizationEndpoint returns the configured device-authorization
// endpoint, falling back to the issuer with the well-known path.
func (c OAuth2) DeviceAuthorizationEndpoint() string {
	if !c.Endpoints.DeviceAuthorization.IsEmpty() {
		return c.Endpoints.DeviceAuthorization.String()
	}

	return c.Issuer.JoinPath(deviceAuthorizationPath).String()
}

// TokenEndpoint returns the configured token endpoint, falling back to the
// issuer with the well-known path.
func (c OAuth2) TokenEndpoint() string {
	if !c.Endpoints.Token.IsEmpty() {
		return c.Endpoints.Token.String()
	}

	return c.Issuer.JoinPath(tokenPath).String()
}

var Defaults = Config{
	Log: Log{
		Format: "console",
		Level:  slog.LevelInfo,
	},
	OAuth2: OAuth2{
		Issuer: types.URL{URL: &url.URL{Scheme: "https", Host: "auth.kimi.com"}},
		Client: OAuth2Client{
			ID: "kimi-cli",
		},
	},
	HTTP: HTTP{
		Timeout: 30 * time.Second,
	},
}

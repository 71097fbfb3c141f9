package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/kimicode/kimi-auth/internal/config/types"
)

// Validate validates the config.
func Validate(conf Config) error {
	if !slices.Contains([]string{"json", "console"}, conf.Log.Format) {
		return errors.New("log.format: must be one of json, console")
	}

	if conf.OAuth2.Issuer.IsEmpty() {
		return fmt.Errorf("oauth2.issuer is %w", ErrRequired)
	}

	if err := validateURL(conf.OAuth2.Issuer); err != nil {
		return fmt.Errorf("oauth2.issuer: %w", err)
	}

	if conf.OAuth2.Client.ID == "" {
		return fmt.Errorf("oauth2.client.id is %w", ErrRequired)
	}

	for key, value := range map[string]types.URL{
		"oauth2.endpoint.deviceauthorization": conf.OAuth2.Endpoints.DeviceAuthorization,
		"oauth2.endpoint.token":               conf.OAuth2.Endpoints.Token,
	} {
		if value.IsEmpty() {
			continue
		}

		if err := validateURL(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	if conf.HTTP.Timeout <= 0 {
		return errors.New("http.timeout: must be greater than zero")
	}

	return nil
}

func validateURL(u types.URL) error {
	if !slices.Contains([]string{"http", "https"}, u.Scheme) {
		return errors.New("invalid URL. only http:// or https:// scheme supported")
	}

	return nil
}

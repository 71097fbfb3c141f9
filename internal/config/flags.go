package config

import (
	"flag"
	"io"
)

// FlagSet builds the command line flags understood by kimi-auth. Every flag
// maps to a config key, so values can equally come from the config file or
// the environment.
func FlagSet(name string, output io.Writer) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(output)

	f.String("config", "", "path to one .yaml config file")
	f.String("log.format", Defaults.Log.Format, "log format. json or console")
	f.String("log.level", Defaults.Log.Level.String(), "log level. Can be one of: debug, info, warn, error")
	f.String("oauth2.issuer", Defaults.OAuth2.Issuer.String(), "base url of the authorization server")
	f.String("oauth2.client.id", Defaults.OAuth2.Client.ID, "oauth2 client id presented to the authorization server")
	f.String("oauth2.endpoint.deviceauthorization", "", "custom device authorization endpoint. Defaults to the issuer with "+deviceAuthorizationPath)
	f.String("oauth2.endpoint.token", "", "custom token endpoint. Defaults to the issuer with "+tokenPath)
	f.Duration("http.timeout", Defaults.HTTP.Timeout, "timeout for requests against the authorization server")
	f.Bool("version", false, "show version")

	return f
}

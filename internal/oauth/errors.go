package oauth

import "errors"

var (
	// ErrDeviceCodeExpired signals that the pending device code is no longer
	// valid and a fresh device authorization must be requested.
	ErrDeviceCodeExpired = errors.New("device code expired")

	// ErrLoginAborted is returned when the host cancels the login flow.
	ErrLoginAborted = errors.New("authorization aborted")

	// ErrRefreshUnauthorized is returned when the authorization server
	// rejects the refresh token. The caller should start a fresh interactive
	// login instead of retrying.
	ErrRefreshUnauthorized = errors.New("refresh token rejected")

	// ErrMalformedResponse is returned when a successful response misses
	// required fields.
	ErrMalformedResponse = errors.New("malformed response from authorization server")
)

package gateway

import "errors"

// ErrMissingCredential is returned when no API key is configured. The
// call fails before any network activity.
var ErrMissingCredential = errors.New("gateway: API key not configured")

// RequestError covers every transport or provider-side fault: network
// errors, non-2xx statuses, malformed bodies and in-band API errors.
// Rate limiting is not distinguished from other failures.
type RequestError struct {
	Cause error
}

func (e *RequestError) Error() string {
	return "gateway: request failed: " + e.Cause.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

package upstream

import "errors"

// ErrUnavailable indicates the provider could not be reached or answered
// with a non-2xx status. Handlers map it to HTTP 502.
var ErrUnavailable = errors.New("upstream unavailable")

// ErrLoginRejected indicates the provider reached a verdict and refused
// the credentials. It is deliberately distinct from ErrUnavailable so
// callers can tell a bad password from a broken provider.
var ErrLoginRejected = errors.New("login rejected")

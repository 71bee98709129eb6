package ticket

import "errors"

// ErrMalformedSource indicates the upstream provider returned records that
// do not match the expected schema. Handlers map it to HTTP 500.
var ErrMalformedSource = errors.New("malformed source data")

// ErrNotFound indicates no ticket exists for the requested id. Handlers
// map it to HTTP 404.
var ErrNotFound = errors.New("ticket not found")

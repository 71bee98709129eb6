package model

// RawTask is a task record as returned by the upstream provider. It is
// decoded once at the gateway boundary into this typed form rather than
// being passed around as a loose JSON map.
type RawTask struct {
	ID        int    `json:"id"`
	Todo      string `json:"todo"`
	Completed bool   `json:"completed"`
	UserID    int    `json:"userId"`
}

// RawUser is a user record as returned by the upstream provider. Only the
// fields needed for assignee resolution are decoded.
type RawUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Session is the artifact returned by the upstream identity provider on a
// successful credential check. The upstream token is not forwarded to
// clients; the auth handler wraps the session in a locally signed JWT.
type Session struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

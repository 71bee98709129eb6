package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iliyamo/tickethub/internal/ticket"
)

func newTestClient(h http.Handler) (*Client, func()) {
	srv := httptest.NewServer(h)
	return New(srv.URL, 2*time.Second), srv.Close
}

func TestFetchTasks_DecodesCollection(t *testing.T) {
	t.Parallel()

	c, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/todos" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"todos":[{"id":1,"todo":"first","completed":false,"userId":10},{"id":2,"todo":"second","completed":true,"userId":20}],"total":2}`))
	}))
	defer done()

	tasks, err := c.FetchTasks(context.Background())
	if err != nil {
		t.Fatalf("FetchTasks error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(tasks))
	}
	if tasks[1].ID != 2 || !tasks[1].Completed || tasks[1].UserID != 20 {
		t.Fatalf("second task = %+v", tasks[1])
	}
}

func TestFetchUsers_DecodesCollection(t *testing.T) {
	t.Parallel()

	c, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"users":[{"id":10,"username":"emilys","firstName":"Emily"}]}`))
	}))
	defer done()

	users, err := c.FetchUsers(context.Background())
	if err != nil {
		t.Fatalf("FetchUsers error: %v", err)
	}
	if len(users) != 1 || users[0].Username != "emilys" {
		t.Fatalf("users = %+v", users)
	}
}

func TestFetch_NonOKStatusIsUnavailable(t *testing.T) {
	t.Parallel()

	c, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer done()

	if _, err := c.FetchTasks(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestFetch_TransportFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	c, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	done() // server already closed: every call fails at the transport

	if _, err := c.FetchTasks(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestFetch_UndecodableBodyIsMalformed(t *testing.T) {
	t.Parallel()

	c, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer done()

	if _, err := c.FetchTasks(context.Background()); !errors.Is(err, ticket.ErrMalformedSource) {
		t.Fatalf("err = %v, want ErrMalformedSource", err)
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	c, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"username":"emilys","accessToken":"upstream-token"}`))
	}))
	defer done()

	session, err := c.Login(context.Background(), "emilys", "emilyspass")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if session.Username != "emilys" || session.Token != "upstream-token" {
		t.Fatalf("session = %+v", session)
	}
}

func TestLogin_RejectedVsUnavailable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"bad credentials", http.StatusBadRequest, ErrLoginRejected},
		{"forbidden", http.StatusUnauthorized, ErrLoginRejected},
		{"provider down", http.StatusBadGateway, ErrUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer done()

			_, err := c.Login(context.Background(), "u", "p")
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestPing(t *testing.T) {
	t.Parallel()

	c, done := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer done()
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("Ping error: %v", err)
	}

	dead, closeDead := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closeDead()
	if err := dead.Ping(context.Background()); err == nil {
		t.Fatal("expected error pinging a closed server")
	}
}

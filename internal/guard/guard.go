// Package guard gates rendering of protected views on session state: a
// loading placeholder while the initial token check runs, a redirect to the
// login view when unauthenticated, the protected content otherwise.
package guard

import (
	"sync"

	"github.com/dmitrijs2005/sweetshop/internal/session"
)

// Status is the guard's resolution for the current render.
type Status int

const (
	// StatusChecking means the session has not finished its initial token
	// check; render a neutral placeholder, never redirect.
	StatusChecking Status = iota
	// StatusUnauthenticated means the check resolved with no valid session;
	// switch to the login view, replacing the current one.
	StatusUnauthenticated
	// StatusAuthenticated means the protected content may render.
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusChecking:
		return "checking"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// StateSource provides session snapshots. *session.Store satisfies it.
type StateSource interface {
	State() session.State
}

// Guard resolves a Status from session state. Once the first resolution has
// happened it never reports StatusChecking again for the lifetime of the
// process; a later loss of authentication resolves to
// StatusUnauthenticated.
type Guard struct {
	mu       sync.Mutex
	source   StateSource
	resolved bool
}

func New(source StateSource) *Guard {
	return &Guard{source: source}
}

// Status resolves the current gate decision.
func (g *Guard) Status() Status {
	st := g.source.State()

	g.mu.Lock()
	defer g.mu.Unlock()

	if !st.IsReady && !g.resolved {
		return StatusChecking
	}
	g.resolved = true

	if st.IsAuthenticated {
		return StatusAuthenticated
	}
	return StatusUnauthenticated
}

// AdminAllowed reports whether the current identity may enter the admin
// view. This check runs on every entry to the admin view, on top of the
// regular authentication gate.
func (g *Guard) AdminAllowed() bool {
	st := g.source.State()
	return st.IsAuthenticated && st.Identity != nil && st.Identity.IsAdmin
}

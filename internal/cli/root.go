package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sweetshop/internal/guard"
)

// status renders the prompt suffix: a loading marker until the persisted
// session is resolved, the identity afterwards.
func (a *App) status() string {
	switch a.guard.Status() {
	case guard.StatusChecking:
		return "(loading)"
	case guard.StatusAuthenticated:
		st := a.session.State()
		if st.Identity == nil {
			return ""
		}
		s := st.Identity.Subject
		if st.Identity.IsAdmin {
			s += " admin"
		}
		return fmt.Sprintf("(%s)", s)
	default:
		return ""
	}
}

// Root restores the persisted session, pre-loads the catalog for a returning
// user, and hands control to the REPL. It blocks until the user exits.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to the Sweet Shop (type 'help' for commands)")
	printlnFn("Loading...")

	if err := a.session.Initialize(ctx); err != nil {
		a.log.Error(ctx, "error restoring session", "error", err)
	}

	if a.isLoggedIn() {
		st := a.session.State()
		printlnFn(fmt.Sprintf("Welcome back, %s!", st.Identity.Subject))
		_ = a.catalog.Load(ctx, nil)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

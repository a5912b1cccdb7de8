// Package cli provides the interactive Sweet Shop command-line client.
//
// It wires configuration, local token storage, the backend API client, and
// an interactive REPL with two views: the storefront (browse, search, buy)
// and the admin inventory console (add, update, restock, delete).
//
// Rendering is gated by the route guard: a loading placeholder until the
// persisted session is resolved, the login prompt when unauthenticated, the
// protected views otherwise. The admin view additionally re-checks the
// identity's admin flag on every entry.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli

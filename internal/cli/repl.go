package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Browse(ctx context.Context) error
	Search(ctx context.Context) error
	Buy(ctx context.Context) error
	Admin(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Sweet Shop client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands available before login: help, register, login, exit. After
// login: help, (l)ist, search, buy, admin, logout, exit. Commands that
// require authentication are refused with a hint rather than executed,
// so the protected views are never rendered for a logged-out user.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures through notifications. This keeps the loop resilient
// and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sweets %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search, buy, admin, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "l", "list":
			if !requireLogin(a) {
				continue
			}
			_ = a.Browse(ctx)

		case "search":
			if !requireLogin(a) {
				continue
			}
			_ = a.Search(ctx)

		case "buy":
			if !requireLogin(a) {
				continue
			}
			_ = a.Buy(ctx)

		case "admin":
			if !requireLogin(a) {
				continue
			}
			_ = a.Admin(ctx)

		case "logout":
			if !requireLogin(a) {
				continue
			}
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requireLogin(a execIface) bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn("Please log in first (type 'login')")
	return false
}

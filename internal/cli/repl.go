package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdminView() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Ask(ctx context.Context) error
	Summarize(ctx context.Context) error
	Admin(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Users(ctx context.Context) error
	AddUser(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	AddSection(ctx context.Context) error
	DeleteSection(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the portal.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in (dashboard):
//	  - list           — list induction sections
//	  - show           — show one section with its attachments
//	  - ask            — ask the AI assistant a question
//	  - summary        — summarize one section in two bullet points
//	  - admin          — switch to the admin console (admins only)
//	  - logout / exit
//
//	Admin console adds:
//	  - users, adduser, deluser
//	  - addsection, delsection
//	  - reset          — restore the seed dataset
//	  - dashboard      — switch back to the dashboard
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("portal %s> ", statusFn()))
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
			switch {
			case !a.isLoggedIn():
				printlnFn("Available commands: login, exit")
			case a.isAdminView():
				printlnFn("Available commands: users, adduser, deluser, (l)ist, addsection, delsection, reset, dashboard, logout, exit")
			default:
				printlnFn("Available commands: (l)ist, show, ask, summary, admin, logout, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx)

		case "ask":
			_ = a.Ask(ctx)

		case "summary":
			_ = a.Summarize(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "users":
			_ = a.Users(ctx)

		case "adduser":
			_ = a.AddUser(ctx)

		case "deluser":
			_ = a.DeleteUser(ctx)

		case "addsection":
			_ = a.AddSection(ctx)

		case "delsection":
			_ = a.DeleteSection(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL needs. App satisfies it; tests
// provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Tenants(ctx context.Context) error
	SelectTenant(ctx context.Context, id string) error
	Generate(ctx context.Context) error
	Show() error
	Publish(ctx context.Context) error
	PublishByID(ctx context.Context, id string) error
	Unpublish(ctx context.Context) error
	Copy() error
	Surveys(ctx context.Context) error
	View(id string) error
	New() error
}

// runREPL reads commands from reader until EOF or exit/quit and dispatches
// them to a. Handler errors are not reported here; handlers print their own
// outcome. Main-view commands are rejected while logged out.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("popcue %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: tenants, tenant <id>, generate, show, publish [id], unpublish, copy, surveys, view <id>, new, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "login":
			_ = a.Login(ctx)
			continue
		}

		if !a.isLoggedIn() {
			printlnFn("Please log in first (type 'login')")
			continue
		}

		switch cmd {
		case "logout":
			_ = a.Logout(ctx)

		case "tenants":
			_ = a.Tenants(ctx)

		case "tenant":
			if len(args) == 0 {
				printlnFn("Usage: tenant <id>")
				continue
			}
			_ = a.SelectTenant(ctx, args[0])

		case "generate", "g":
			_ = a.Generate(ctx)

		case "show":
			_ = a.Show()

		case "publish":
			if len(args) > 0 {
				_ = a.PublishByID(ctx, args[0])
			} else {
				_ = a.Publish(ctx)
			}

		case "unpublish":
			_ = a.Unpublish(ctx)

		case "copy":
			_ = a.Copy()

		case "surveys", "l", "list":
			_ = a.Surveys(ctx)

		case "view":
			if len(args) == 0 {
				printlnFn("Usage: view <id>")
				continue
			}
			_ = a.View(args[0])

		case "new", "dashboard":
			_ = a.New()

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

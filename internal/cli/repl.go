package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it; tests
// use a recording stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Add(ctx context.Context) error
	Dashboard(ctx context.Context, args []string) error
	Done(ctx context.Context, args []string) error
	Toggle(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Upcoming(ctx context.Context) error
	Calendar(ctx context.Context, args []string) error
	Analytics(ctx context.Context) error
	Export(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = "Available commands: (l)ist | dashboard [start] [end], add, done <id>, toggle <id>, delete <id>, upcoming, calendar [YYYY-MM], analytics, export, logout, help, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a
// until EOF or "exit"/"quit". Handler errors are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("tracker%s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("Error:", err)
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn(helpLoggedIn)
		} else {
			printlnFn(helpLoggedOut)
		}
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	}

	handler, ok := map[string]func() error{
		"logout":    func() error { return a.Logout(ctx) },
		"add":       func() error { return a.Add(ctx) },
		"l":         func() error { return a.Dashboard(ctx, args) },
		"list":      func() error { return a.Dashboard(ctx, args) },
		"dashboard": func() error { return a.Dashboard(ctx, args) },
		"done":      func() error { return a.Done(ctx, args) },
		"toggle":    func() error { return a.Toggle(ctx, args) },
		"delete":    func() error { return a.Delete(ctx, args) },
		"upcoming":  func() error { return a.Upcoming(ctx) },
		"calendar":  func() error { return a.Calendar(ctx, args) },
		"analytics": func() error { return a.Analytics(ctx) },
		"export":    func() error { return a.Export(ctx) },
	}[cmd]
	if !ok {
		printlnFn("Unknown command:", cmd)
		return nil
	}

	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return nil
	}
	return handler()
}

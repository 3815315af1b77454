// Package cli provides the interactive tracker command line.
//
// It wires configuration, the SQLite store and the services, resumes a saved
// session, and runs a REPL that renders the dashboard, upcoming deadlines,
// calendar and analytics views as text.
//
// Commands:
//   - register / login / logout
//   - add, done <id>, toggle <id>, delete <id>
//   - list | dashboard [start] [end]
//   - upcoming, calendar [YYYY-MM], analytics
//   - export (when an S3 bucket is configured)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

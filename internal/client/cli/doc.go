// Package cli provides the interactive Light Lens command-line client.
//
// It wires configuration, the session database, the backend client and the
// view controllers behind a small REPL. Each command drives one controller
// action; notifications are printed after the command and navigation opens
// the next screen.
//
// Screens:
//   - home: featured photographers and features, "start" to get going
//   - register / login
//   - profile: edit, avatar, post, follow, darkmode, delete
//   - goals: addgoal, progress, rmgoal
//   - menu: the sidebar with the completed-goals badge
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

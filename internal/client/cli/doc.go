// Package cli provides the interactive rfidcredits terminal client.
//
// It wires configuration, the shared session cookie jar, the login and
// credit services, an optional tag reader watcher and a REPL. Network calls
// run on background goroutines; their results, like reader notifications,
// are posted to an asyncx.Dispatcher that only the REPL goroutine drains, so
// all App state and terminal output stay on that goroutine.
//
// Commands:
//   - login            authenticate (username, password without echo)
//   - scan <hex>       record a tag id typed by hand
//   - tag              show the current tag
//   - add [amount]     add credits to the current tag
//   - help, exit, quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

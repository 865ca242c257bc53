// Package cli provides the interactive packmate command-line client.
//
// It wires configuration, local storage, the API client, the session and
// trip stores and the per-view services behind a REPL. Each command is a
// view resolved through the route guard; protected views send a user
// without a session to the login view.
//
// Key features:
//   - Login / Register / Logout with a persisted session
//   - Dashboard of trips with manual retry, and a new-trip form
//   - Trip details with packed-item toggles
//   - Generated packing lists, destination suggestions, luggage grouping
//   - Receipt scanning and filing
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

// Package commands defines the keymill CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init    Create a session with a fresh master key
//   - next    Derive the next subkey(s) and persist the advanced index
//   - info    Show a session's index, context and key fingerprint
//   - list    List stored session names
//   - export  Write a session record as plaintext JSON
//   - import  Import a session record from a JSON file
//   - delete  Remove a stored session
//
// # Implementation
//
// The root command builds the dependency graph (session store, deriver
// registry) before any subcommand runs, so handlers share one app context.
// Stored sessions live under --home, encrypted with the -p passphrase.
package commands

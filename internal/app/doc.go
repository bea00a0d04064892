// Package app wires application dependencies for the CLI.
//
// It builds the session store from Config and maps user-facing primitive
// names to kdf.Deriver implementations, exposing both via the App struct for
// commands to use.
package app

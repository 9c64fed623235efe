// Package client implements the interactive client application runtime.
//
// It wires configuration, the local session store, the HTTP server adapter,
// client services, and the terminal UI into a single process lifecycle.
package client

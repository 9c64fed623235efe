// Package tui implements the interactive terminal interface of the client.
//
// The interface is split into two Bubble Tea programs. The login flow runs
// first and lets the user sign in or register a new account; it finishes with
// an authenticated [models.Session]. The main loop then shows the profile
// screen with in-place editing, token copy, and logout.
package tui

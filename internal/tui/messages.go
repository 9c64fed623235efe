package tui

import (
	"github.com/MKhiriev/go-account-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the root router to another page. Payload, when set, is
// re-dispatched to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult finishes the login flow. On success Session carries the
// authenticated user and bearer token.
type AuthResult struct {
	Session models.Session
	Err     error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type logoutDoneMsg struct {
	err error
}

type clearStatusMsg struct{}

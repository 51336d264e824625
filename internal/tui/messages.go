package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inohub/prospect-console/models"
)

// NavigateTo switches the active page of the router. An optional Payload is
// redelivered to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type loginDoneMsg struct {
	session models.Session
	err     error
}

type dashboardLoadedMsg struct {
	stats models.DashboardStats
	err   error
}

type prospectsLoadedMsg struct {
	page models.ProspectPage
	gen  int
	err  error
}

type prospectCreatedMsg struct {
	job models.ProspectJob
	err error
}

type downloadDoneMsg struct {
	path string
	err  error
}

type usersLoadedMsg struct {
	page models.UserPage
	gen  int
	err  error
}

type userSavedMsg struct {
	created bool
	err     error
}

// statusNoticeMsg carries a one-line confirmation shown on the target page
// after a cross-page navigation.
type statusNoticeMsg struct {
	text string
}

// editUserMsg opens the account form pre-filled for the given account.
type editUserMsg struct {
	account models.UserAccount
}

type copiedMsg struct {
	err error
}

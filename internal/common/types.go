// Package common holds the messages passed between the app model, its rows
// and the background config watcher.
package common

import tea "github.com/charmbracelet/bubbletea"

// ── Custom messages ─────────────────────────────────────────────────────────

// PositionChangedMsg reports that a row settled on a new segment.
type PositionChangedMsg struct {
	Row   string
	Index int
}

// CellClickedMsg reports a tap on a segment.
type CellClickedMsg struct {
	Row   string
	Index int
}

// ReloadMsg asks the app to reload its configuration.
type ReloadMsg struct{}

// ErrMsg carries an error to be displayed.
type ErrMsg struct{ Err error }

// InfoMsg carries an informational message.
type InfoMsg struct{ Text string }

// ToggleHelpMsg toggles the help overlay.
type ToggleHelpMsg struct{}

// CmdReload returns a ReloadMsg (use as return from tea.Cmd).
func CmdReload() tea.Msg { return ReloadMsg{} }

// CmdErr creates a tea.Cmd that sends an ErrMsg.
func CmdErr(err error) tea.Cmd {
	return func() tea.Msg { return ErrMsg{Err: err} }
}

// CmdInfo creates a tea.Cmd that sends an InfoMsg.
func CmdInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}

// CmdMsg wraps an already-built message as a tea.Cmd.
func CmdMsg(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

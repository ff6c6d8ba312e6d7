package ui

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// JumpPrompt is the one-line "go to item" prompt shown in place of the
// footer while active.
type JumpPrompt struct {
	Input   textinput.Model
	visible bool
}

// NewJumpPrompt creates an inactive jump prompt
func NewJumpPrompt() *JumpPrompt {
	ti := textinput.New()
	ti.Placeholder = "item index"
	ti.CharLimit = JumpInputCharLimit
	ti.SetWidth(JumpInputWidth)
	return &JumpPrompt{Input: ti}
}

// Open activates the prompt with an empty value
func (j *JumpPrompt) Open() {
	j.visible = true
	j.Input.SetValue("")
	j.Input.Focus()
}

// Close deactivates the prompt
func (j *JumpPrompt) Close() {
	j.visible = false
	j.Input.Blur()
}

// Visible reports whether the prompt is active
func (j *JumpPrompt) Visible() bool {
	return j.visible
}

// Update forwards input events to the text field
func (j *JumpPrompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	j.Input, cmd = j.Input.Update(msg)
	return cmd
}

// Value parses the entered index. Returns false for empty or
// non-numeric input.
func (j *JumpPrompt) Value() (int, bool) {
	raw := strings.TrimSpace(j.Input.Value())
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// View renders the prompt line
func (j *JumpPrompt) View() string {
	return JumpPromptStyle.Render(JumpLabelStyle.Render("go to item") + " " + j.Input.View())
}

package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/winnow/internal/keys"
)

// Settings is the overlay form for the engine tunables. The app creates
// one on open with the current values and reads them back on apply.
type Settings struct {
	form *huh.Form

	estimate string
	overscan string
	follow   bool
}

// NewSettings creates the form pre-filled with the current values.
func NewSettings(estimateRows, overscan int, followTail bool) *Settings {
	s := &Settings{
		estimate: strconv.Itoa(estimateRows),
		overscan: strconv.Itoa(overscan),
		follow:   followTail,
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Estimated rows").
			Description("Fallback height for unmeasured items").
			CharLimit(SettingsInputCharLimit).
			Validate(validatePositiveInt).
			Value(&s.estimate),
		huh.NewInput().
			Title("Overscan").
			Description("Extra items rendered past the edges").
			CharLimit(SettingsInputCharLimit).
			Validate(validateNonNegativeInt).
			Value(&s.overscan),
		huh.NewConfirm().
			Title("Follow tail").
			Value(&s.follow),
	)).
		WithShowHelp(false).
		WithWidth(SettingsFormWidth).
		WithLayout(huh.LayoutStack)

	s.form.Init()
	return s
}

func validatePositiveInt(raw string) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func validateNonNegativeInt(raw string) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return fmt.Errorf("must be zero or more")
	}
	return nil
}

// Update forwards events to the form. Enter and Escape are handled by
// the app layer, not the form.
func (s *Settings) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return nil
		}
	}
	m, cmd := s.form.Update(msg)
	s.form = m.(*huh.Form)
	return cmd
}

// Values returns the entered settings. Fields that fail to parse fall
// back to the values the form opened with.
func (s *Settings) Values() (estimateRows, overscan int, followTail bool) {
	estimateRows = 1
	if n, err := strconv.Atoi(strings.TrimSpace(s.estimate)); err == nil && n >= 1 {
		estimateRows = n
	}
	overscan = 0
	if n, err := strconv.Atoi(strings.TrimSpace(s.overscan)); err == nil && n >= 0 {
		overscan = n
	}
	return estimateRows, overscan, s.follow
}

// View renders the framed form
func (s *Settings) View() string {
	title := SettingsTitleStyle.Render("Window settings")
	help := SettingsHelpStyle.Render("enter: apply · esc: close")
	return SettingsFrameStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View(), "", help),
	)
}

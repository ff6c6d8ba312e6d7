// Package app wires the windowed list, header, footer and overlays
// into one Bubble Tea model.
package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/winnow/internal/clipboard"
	"github.com/zhubert/winnow/internal/config"
	"github.com/zhubert/winnow/internal/feed"
	"github.com/zhubert/winnow/internal/keys"
	"github.com/zhubert/winnow/internal/logger"
	"github.com/zhubert/winnow/internal/ui"
	"github.com/zhubert/winnow/internal/virtual"
)

// frameInterval is the recompute cadence. Input events between two
// frames only mark the engine stale; the tick coalesces them into a
// single recompute.
const frameInterval = 33 * time.Millisecond

// FrameTickMsg drives the per-frame Sync
type FrameTickMsg time.Time

// Model is the top-level application model
type Model struct {
	cfg *config.Config

	header *ui.Header
	footer *ui.Footer
	list   *ui.WindowedList
	jump   *ui.JumpPrompt

	// settings is non-nil while the settings overlay is open
	settings *ui.Settings

	width   int
	height  int
	version string

	flash     string
	flashTime time.Time
}

// New creates the app model from the loaded configuration.
func New(cfg *config.Config, version string) *Model {
	list := ui.NewWindowedList(virtual.Config{
		EstimatedRows: cfg.GetEstimatedRows(),
		Overscan:      cfg.GetOverscan(),
	}, cfg.GetFollowTail())
	list.SetTranscript(feed.Generate(cfg.GetDemoItems(), cfg.GetDemoSeed()))

	return &Model{
		cfg:     cfg,
		header:  ui.NewHeader(),
		footer:  ui.NewFooter(),
		list:    list,
		jump:    ui.NewJumpPrompt(),
		version: version,
	}
}

// Init starts the frame tick
func (m *Model) Init() tea.Cmd {
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case FrameTickMsg:
		m.syncFrame()
		return m, frameTick()

	case tea.MouseWheelMsg:
		// Direction lives in the button; X/Y is the cursor cell.
		switch msg.Button {
		case tea.MouseWheelUp:
			m.list.ScrollBy(-m.cfg.GetMouseWheelDelta())
		case tea.MouseWheelDown:
			m.list.ScrollBy(m.cfg.GetMouseWheelDelta())
		}

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// updateSizes distributes the window size to the components
func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	listHeight := m.height - ui.HeaderHeight - ui.FooterHeight
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.SetSize(m.width, listHeight)
}

// syncFrame runs the once-per-frame engine sync and refreshes the
// status readouts from the published snapshot.
func (m *Model) syncFrame() {
	snap := m.list.Sync()

	count := m.list.Transcript().Len()
	m.header.SetItemInfo(fmt.Sprintf("%s items · seed %d", ui.FormatCount(count), m.cfg.GetDemoSeed()))
	m.footer.SetPosition(snap.Top, snap.TotalRows, m.list.FirstVisible(), count, m.list.Following())
	m.footer.SetContext(m.jump.Visible(), m.settings != nil)

	if m.flash != "" && time.Since(m.flashTime) > 2*time.Second {
		m.flash = ""
	}
	m.footer.SetFlash(m.flash)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// Overlays capture input first
	if m.settings != nil {
		return m.handleSettingsKey(msg)
	}
	if m.jump.Visible() {
		return m.handleJumpKey(msg)
	}

	switch msg.String() {
	case "q", keys.CtrlC:
		return m, tea.Quit
	case "j", keys.Down:
		m.list.ScrollBy(1)
	case "k", keys.Up:
		m.list.ScrollBy(-1)
	case keys.PgDown, keys.Space:
		m.list.PageDown()
	case keys.PgUp:
		m.list.PageUp()
	case "g", keys.Home:
		m.list.ScrollToTop()
	case "G", keys.End:
		m.list.ScrollToBottom()
	case "i":
		m.jump.Open()
	case "R":
		m.list.ReverseTranscript()
		m.setFlash("reversed")
	case "a":
		m.list.Append(feed.NewItem(feed.RoleUser, "appended at "+time.Now().Format("15:04:05")))
	case "y":
		m.copyTopItem()
	case "s":
		m.settings = ui.NewSettings(m.cfg.GetEstimatedRows(), m.cfg.GetOverscan(), m.list.Following())
	}

	return m, nil
}

func (m *Model) handleJumpKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.jump.Close()
		return m, nil
	case keys.Enter:
		if index, ok := m.jump.Value(); ok {
			m.list.ScrollToItem(index)
		}
		m.jump.Close()
		return m, nil
	}
	return m, m.jump.Update(msg)
}

func (m *Model) handleSettingsKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.settings = nil
		return m, nil
	case keys.Enter:
		m.applySettings()
		return m, nil
	}
	return m, m.settings.Update(msg)
}

// applySettings pushes the form values into the engine and persists them
func (m *Model) applySettings() {
	estimate, overscan, follow := m.settings.Values()
	m.settings = nil

	m.list.SetEstimatedRows(estimate)
	m.list.SetOverscan(overscan)
	m.list.SetFollowing(follow)

	m.cfg.SetEstimatedRows(estimate)
	m.cfg.SetOverscan(overscan)
	m.cfg.SetFollowTail(follow)
	if err := m.cfg.Save(); err != nil {
		logger.Log("App: failed to save config: %v", err)
		m.setFlash("settings not saved")
		return
	}
	m.setFlash("settings saved")
}

// copyTopItem puts the unstyled body of the top visible item on the
// system clipboard
func (m *Model) copyTopItem() {
	text, ok := m.list.CopyFirstVisible()
	if !ok {
		return
	}
	if err := clipboard.WriteText(text); err != nil {
		logger.Log("App: clipboard write failed: %v", err)
		m.setFlash("copy failed")
		return
	}
	m.setFlash("copied")
}

func (m *Model) setFlash(text string) {
	m.flash = text
	m.flashTime = time.Now()
}

// Flash returns the transient status message, if any
func (m *Model) Flash() string {
	return m.flash
}

// List exposes the windowed list for tests and the stress runner
func (m *Model) List() *ui.WindowedList {
	return m.list
}

// View renders the application
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	header := m.header.View()

	var bottom string
	if m.jump.Visible() {
		bottom = m.jump.View()
	} else {
		bottom = m.footer.View()
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.list.View(),
		bottom,
	)

	if m.settings != nil {
		bgStyle := lipgloss.NewStyle().Background(lipgloss.Color("#000000"))
		v.SetContent(lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.settings.View(),
			lipgloss.WithWhitespaceStyle(bgStyle),
		))
		return v
	}

	v.SetContent(view)
	return v
}

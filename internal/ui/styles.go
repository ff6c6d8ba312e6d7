package ui

import "charm.land/lipgloss/v2"

// Raw hex values, for code that interpolates colors itself
const (
	colorPrimaryHex = "#7C3AED"
	colorBgHex      = "#1F2937"
)

// Color palette - Purple + Cyan/Teal theme
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorBorder    = lipgloss.Color("#374151") // Dark gray
	ColorBg        = lipgloss.Color("#1F2937") // Dark background
	ColorText      = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted = lipgloss.Color("#B0B8C4") // Muted text
	ColorUser      = lipgloss.Color("#A78BFA") // Light purple for user items
	ColorAssistant = lipgloss.Color("#22D3EE") // Bright cyan for assistant items
	ColorTool      = lipgloss.Color("#F59E0B") // Amber for tool reports
	ColorError     = lipgloss.Color("#EF4444") // Red for errors
	ColorSuccess   = lipgloss.Color("#10B981") // Green for success
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	FooterPositionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)
)

// Item styles
var (
	UserLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorUser)

	AssistantLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAssistant)

	ToolLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTool)

	ItemIndexStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ToolBodyStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Jump prompt styles
var (
	JumpPromptStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorBg).
			Padding(0, 1)

	JumpLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)
)

// Settings overlay styles
var (
	SettingsFrameStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(1, 2)

	SettingsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	SettingsHelpStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)
)

// Markdown element styles
var (
	MarkdownH1Style = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Underline(true)

	MarkdownH2Style = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	MarkdownH3Style = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	MarkdownH4Style = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	MarkdownBoldStyle = lipgloss.NewStyle().
				Bold(true)

	MarkdownItalicStyle = lipgloss.NewStyle().
				Italic(true)

	MarkdownInlineCodeStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Background(ColorBg)

	MarkdownLinkStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Underline(true)

	MarkdownListBulletStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary)

	MarkdownBlockquoteStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true)

	MarkdownHRStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

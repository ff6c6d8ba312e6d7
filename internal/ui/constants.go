// Package ui constants for layout calculations.
package ui

// Layout constants
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// GutterWidth is the left gutter holding the role marker
	GutterWidth = 2

	// ItemPadding is the blank rows appended after each rendered item
	ItemPadding = 1

	// DefaultWrapWidth is the wrap width used before the first WindowSizeMsg
	DefaultWrapWidth = 80
)

// Jump prompt dimensions
const (
	// JumpInputCharLimit bounds the index the prompt will accept (7 digits)
	JumpInputCharLimit = 7

	// JumpInputWidth is the width of the jump prompt text input
	JumpInputWidth = 12
)

// Settings form dimensions
const (
	// SettingsFormWidth is the width of the settings overlay form
	SettingsFormWidth = 44

	// SettingsInputCharLimit is the character limit for numeric inputs
	SettingsInputCharLimit = 4
)

package ui

import (
	"strings"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#7C3AED", 0x7C, 0x3A, 0xED},
		{"#000000", 0, 0, 0},
		{"#FFFFFF", 255, 255, 255},
		{"garbage", 0, 0, 0},
		{"", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = %d,%d,%d, want %d,%d,%d", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestHeader_View(t *testing.T) {
	h := NewHeader()
	h.SetWidth(60)
	h.SetItemInfo("10,000 items")

	view := PlainText(h.View())
	if !strings.Contains(view, "winnow") {
		t.Error("header should carry the title")
	}
	if !strings.Contains(view, "10,000 items") {
		t.Error("header should carry the dataset summary")
	}
}

func TestHeader_ZeroWidth(t *testing.T) {
	h := NewHeader()
	h.SetWidth(0)

	// Must not panic; content may overflow a zero-width bar
	_ = h.View()
}

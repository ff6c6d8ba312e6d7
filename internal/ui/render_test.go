package ui

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/winnow/internal/feed"
)

func TestRenderItem_StableHeight(t *testing.T) {
	item := feed.NewItem(feed.RoleAssistant, "First paragraph.\n\nSecond paragraph that is long enough to wrap at a narrow width, several times over.")

	a := RenderItem(item, 3, 40)
	b := RenderItem(item, 3, 40)

	if a != b {
		t.Error("same item at same width rendered differently")
	}
	if lipgloss.Height(a) != lipgloss.Height(b) {
		t.Errorf("heights differ: %d vs %d", lipgloss.Height(a), lipgloss.Height(b))
	}
}

func TestRenderItem_WrapsToWidth(t *testing.T) {
	body := strings.Repeat("word ", 60)
	item := feed.NewItem(feed.RoleUser, body)

	rendered := RenderItem(item, 0, 40)
	for i, line := range strings.Split(rendered, "\n") {
		if got := lipgloss.Width(line); got > 40 {
			t.Errorf("line %d width = %d, want <= 40", i, got)
		}
	}
}

func TestRenderItem_NarrowerWrapsTaller(t *testing.T) {
	body := strings.Repeat("another word ", 40)
	item := feed.NewItem(feed.RoleUser, body)

	wide := lipgloss.Height(RenderItem(item, 0, 120))
	narrow := lipgloss.Height(RenderItem(item, 0, 30))

	if narrow <= wide {
		t.Errorf("narrow height %d should exceed wide height %d", narrow, wide)
	}
}

func TestRenderItem_ContainsIndexMarker(t *testing.T) {
	item := feed.NewItem(feed.RoleTool, "ran 5 tests")

	rendered := PlainText(RenderItem(item, 42, 60))
	if !strings.Contains(rendered, "#42") {
		t.Error("rendered item should carry its index marker")
	}
	if !strings.Contains(rendered, "Tool") {
		t.Error("rendered item should carry its role label")
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello", 3, "hel"},
		{"zero", "hello", 0, ""},
		{"wide runes", "日本語", 4, "日本"},
		{"wide rune never split", "日本語", 5, "日本"},
		{"empty", "", 8, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateToWidth(tt.in, tt.width); got != tt.want {
				t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestPlainText_StripsStyling(t *testing.T) {
	styled := MarkdownBoldStyle.Render("bold") + " plain"

	if got := PlainText(styled); got != "bold plain" {
		t.Errorf("PlainText = %q, want %q", got, "bold plain")
	}
}

func TestRenderMarkdown_CodeBlockFences(t *testing.T) {
	content := "before\n```go\nfunc main() {}\n```\nafter"

	rendered := renderMarkdown(content, 60)
	if strings.Contains(rendered, "```") {
		t.Error("code fences should not survive rendering")
	}
	if !strings.Contains(PlainText(rendered), "func main()") {
		t.Error("code block content should survive rendering")
	}
}

func TestRenderMarkdownLine_Elements(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string // substring of the stripped output
	}{
		{"h1", "# Title", "Title"},
		{"h2", "## Section", "Section"},
		{"bullet", "- first point", "• first point"},
		{"rule", "---", "─"},
		{"inline code", "use `go test` here", "go test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlainText(renderMarkdownLine(tt.line, 60))
			if !strings.Contains(got, tt.want) {
				t.Errorf("renderMarkdownLine(%q) = %q, want substring %q", tt.line, got, tt.want)
			}
		})
	}
}

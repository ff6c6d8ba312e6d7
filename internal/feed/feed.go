// Package feed provides the demo item collection: a deterministic,
// identity-keyed transcript shaped like an agent conversation. Items
// vary wildly in length so the windowing engine's measured heights
// diverge from its estimates the way real chat history does.
package feed

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Role identifies who produced a transcript item
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Item is one entry in the transcript. Key is a stable identity that
// survives reordering, which is what lets the engine decide whether a
// cached height still belongs to the item at an index.
type Item struct {
	Key  string
	Role Role
	Body string
}

// NewItem creates an item with a fresh identity key.
func NewItem(role Role, body string) Item {
	return Item{Key: uuid.NewString(), Role: role, Body: body}
}

// Transcript is an ordered collection of items.
type Transcript struct {
	items []Item
}

// Len returns the number of items.
func (t *Transcript) Len() int {
	return len(t.items)
}

// At returns the item at index i.
func (t *Transcript) At(i int) (Item, bool) {
	if i < 0 || i >= len(t.items) {
		return Item{}, false
	}
	return t.items[i], true
}

// Keys returns the identity key of every item, in order.
func (t *Transcript) Keys() []string {
	keys := make([]string, len(t.items))
	for i, item := range t.items {
		keys[i] = item.Key
	}
	return keys
}

// Append adds an item to the end of the transcript.
func (t *Transcript) Append(item Item) {
	t.items = append(t.items, item)
}

// Reverse flips the order of the transcript in place. The demo uses
// this to show identity-keyed height reconciliation: after a reverse,
// almost every cached height belongs to a different index.
func (t *Transcript) Reverse() {
	for i, j := 0, len(t.items)-1; i < j; i, j = i+1, j-1 {
		t.items[i], t.items[j] = t.items[j], t.items[i]
	}
}

// Sample text the generator draws from
var (
	userPrompts = []string{
		"Can you walk me through how the scheduler picks the next task?",
		"Something is off with the retry logic, requests pile up after a deploy.",
		"Add a flag to skip the cache when loading fixtures.",
		"Why does the importer peg a CPU core on large files?",
		"Refactor the pager so tests can drive it without a terminal.",
	}
	assistantOpeners = []string{
		"Looking at the code, the issue comes down to how offsets are tracked.",
		"There are three places involved here.",
		"Short version: the loop re-reads state it already has.",
		"The fix is small but the reasoning takes a moment to lay out.",
		"I traced the path end to end; here is what happens.",
	}
	assistantDetails = []string{
		"Each update walks the collection from the start, which is fine at a hundred entries and hopeless at fifty thousand.",
		"The cache only ever grows, so a long session slowly accumulates entries for items that no longer exist.",
		"Because the measurement arrives after the first paint, the initial layout always uses the estimate.",
		"Keeping a single dirty marker means repair work is proportional to what actually changed.",
		"The boundary case worth calling out is an item that straddles the top edge of the window.",
	}
	toolReports = []string{
		"ran 142 tests in 3.8s, all passing",
		"grep found 17 matches across 9 files",
		"applied patch to internal/store/index.go",
		"fetched 2.3MB in 410ms",
	}
	codeSamples = []string{
		"```go\nfunc (s *Store) Get(key string) ([]byte, bool) {\n\ts.mu.RLock()\n\tdefer s.mu.RUnlock()\n\tv, ok := s.data[key]\n\treturn v, ok\n}\n```",
		"```go\nfor i := lo; i < hi; i++ {\n\tprefix[i+1] = prefix[i] + rows(i)\n}\n```",
		"```json\n{\n  \"overscan\": 4,\n  \"estimated_rows\": 2,\n  \"follow_tail\": true\n}\n```",
	}
)

// Generate builds a deterministic transcript of n items. The same n and
// seed always produce the same bodies; identity keys are fresh uuids on
// every call.
func Generate(n int, seed int64) *Transcript {
	if n < 0 {
		n = 0
	}
	rng := rand.New(rand.NewSource(seed))
	t := &Transcript{items: make([]Item, 0, n)}

	for i := 0; i < n; i++ {
		switch i % 4 {
		case 0:
			t.Append(NewItem(RoleUser, userPrompts[rng.Intn(len(userPrompts))]))
		case 1, 3:
			t.Append(NewItem(RoleAssistant, assistantBody(rng, i)))
		case 2:
			t.Append(NewItem(RoleTool, toolReports[rng.Intn(len(toolReports))]))
		}
	}
	return t
}

// assistantBody builds a multi-paragraph reply, occasionally with a
// code block, so item heights vary from one row to a few dozen.
func assistantBody(rng *rand.Rand, i int) string {
	var sb strings.Builder
	sb.WriteString(assistantOpeners[rng.Intn(len(assistantOpeners))])

	paragraphs := rng.Intn(4)
	for p := 0; p < paragraphs; p++ {
		sb.WriteString("\n\n")
		sb.WriteString(assistantDetails[rng.Intn(len(assistantDetails))])
	}

	if rng.Intn(3) == 0 {
		sb.WriteString("\n\n")
		sb.WriteString(codeSamples[rng.Intn(len(codeSamples))])
	}

	if rng.Intn(5) == 0 {
		sb.WriteString(fmt.Sprintf("\n\n(see item %d above for the earlier discussion)", maxInt(0, i-7)))
	}
	return sb.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

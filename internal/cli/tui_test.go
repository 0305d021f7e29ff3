package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/antennas/pkg/graph"
)

func exploreSample(t *testing.T) ExploreModel {
	t.Helper()
	g, err := graph.Build([]string{"A.B", ".A.", "C.."})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return NewExploreModel(g)
}

func press(m ExploreModel, key string) ExploreModel {
	var msg tea.KeyMsg
	switch key {
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(ExploreModel)
}

func TestExploreNavigation(t *testing.T) {
	m := exploreSample(t)

	m = press(m, "up")
	if m.Cursor != 0 {
		t.Errorf("cursor moved above the first row: %d", m.Cursor)
	}
	m = press(press(m, "down"), "j")
	if m.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.Cursor)
	}
	m = press(press(m, "down"), "down")
	if m.Cursor != 3 {
		t.Errorf("cursor ran past the last row: %d", m.Cursor)
	}
	m = press(m, "k")
	if m.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.Cursor)
	}
}

func TestExploreSelect(t *testing.T) {
	m := exploreSample(t)

	// Vertex 2 is the second A, at (1,1).
	m = press(press(press(m, "down"), "down"), "enter")
	if m.Selected == nil || m.Selected.String() != "A@(1,1)" {
		t.Fatalf("selected = %v, want A@(1,1)", m.Selected)
	}
	if m.DFS.Len() != 2 || m.BFS.Len() != 2 {
		t.Errorf("traversal sizes = %d, %d; want 2, 2", m.DFS.Len(), m.BFS.Len())
	}

	view := m.View()
	for _, want := range []string{"DFS", "BFS", "A@(1,1):0", "A@(0,0):1"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q:\n%s", want, view)
		}
	}

	m = press(m, "esc")
	if m.Selected != nil {
		t.Error("esc should return to the list")
	}
	if !strings.Contains(m.View(), "Select Antenna") {
		t.Error("list view should be shown after going back")
	}
}

func TestExploreQuit(t *testing.T) {
	m := exploreSample(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestExploreWindowSize(t *testing.T) {
	m := exploreSample(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	if got := next.(ExploreModel).Height; got != 5 {
		t.Errorf("height = %d, want minimum 5", got)
	}
}

func TestExploreResizeKeepsCursorVisible(t *testing.T) {
	g, err := graph.Build([]string{strings.Repeat("A", 20)})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	m := NewExploreModel(g)
	for range 14 {
		m = press(m, "down")
	}
	if m.Cursor != 14 || m.Offset != 0 {
		t.Fatalf("cursor, offset = %d, %d; want 14, 0", m.Cursor, m.Offset)
	}

	for _, height := range []int{11, 40, 6} {
		next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: height})
		m = next.(ExploreModel)
		if m.Cursor < m.Offset || m.Cursor >= m.Offset+m.Height {
			t.Errorf("height %d: cursor %d outside rows [%d, %d)", height, m.Cursor, m.Offset, m.Offset+m.Height)
		}
	}
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/antennas/pkg/graph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore <grid>",
		Short: "Browse antennas interactively and inspect their traversals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := c.loadGrid(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if lg.Graph.NumVertices() == 0 {
				printInfo("No antennas in %s", lg.Source)
				return nil
			}
			_, err = tea.NewProgram(NewExploreModel(lg.Graph)).Run()
			return err
		},
	}
}

// =============================================================================
// ExploreModel - Interactive antenna browser
// =============================================================================

// ExploreModel is the bubbletea model behind the explore command. The list
// view picks an antenna; the detail view shows its DFS and BFS orders.
type ExploreModel struct {
	Graph    *graph.Graph
	Vertices []*graph.Vertex
	Cursor   int
	Height   int
	Offset   int

	// Selected is set while the detail view is shown.
	Selected *graph.Vertex
	DFS      *graph.Traversal
	BFS      *graph.Traversal
	Err      error
}

// NewExploreModel creates a model listing every vertex of g.
func NewExploreModel(g *graph.Graph) ExploreModel {
	return ExploreModel{
		Graph:    g,
		Vertices: g.Vertices(),
		Height:   15,
	}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Selected != nil {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
		m.clampOffset()
	}
	return m, nil
}

// clampOffset scrolls the list so the cursor row is visible.
func (m *ExploreModel) clampOffset() {
	m.Offset = min(max(m.Offset, m.Cursor-m.Height+1), m.Cursor)
	m.Offset = max(m.Offset, 0)
}

func (m ExploreModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
			if m.Cursor < m.Offset {
				m.Offset = m.Cursor
			}
		}
	case "down", "j":
		if m.Cursor < len(m.Vertices)-1 {
			m.Cursor++
			if m.Cursor >= m.Offset+m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case "enter":
		if len(m.Vertices) == 0 {
			return m, nil
		}
		v := m.Vertices[m.Cursor]
		m.Selected = v
		m.DFS, m.Err = graph.DFS(m.Graph, v)
		if m.Err == nil {
			m.BFS, m.Err = graph.BFS(m.Graph, v)
		}
	}
	return m, nil
}

func (m ExploreModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace", "left", "h":
		m.Selected, m.DFS, m.BFS, m.Err = nil, nil, nil, nil
	}
	return m, nil
}

func (m ExploreModel) View() string {
	if m.Selected != nil {
		return m.detailView()
	}
	return m.listView()
}

func (m ExploreModel) listView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Antenna"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ inspect  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Vertices))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		v := m.Vertices[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, v.Frequency().String(), v.Position().String(), strconv.Itoa(v.Degree())})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Freq", "Position", "Degree").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Vertices))))

	return b.String()
}

func (m ExploreModel) detailView() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Antenna " + m.Selected.String()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("← back  q quit"))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(StyleWarning.Render(m.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(listSelectedStyle.Render("DFS"))
	b.WriteString("  ")
	b.WriteString(formatTraversal(m.DFS))
	b.WriteString("\n")
	b.WriteString(listSelectedStyle.Render("BFS"))
	b.WriteString("  ")
	b.WriteString(formatTraversal(m.BFS))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  component of %d antennas, degree %d", m.DFS.Len(), m.Selected.Degree())))
	return b.String()
}

// formatTraversal writes a traversal as "A@(0,0):0 A@(2,1):1 ...".
func formatTraversal(t *graph.Traversal) string {
	parts := make([]string, t.Len())
	for i, v := range t.Order {
		parts[i] = fmt.Sprintf("%s%s", v, listDimStyle.Render(":"+strconv.Itoa(t.Depth[v.ID])))
	}
	return strings.Join(parts, " ")
}

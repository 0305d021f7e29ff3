package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/antennas/pkg/antenna"
	errs "github.com/matzehuels/antennas/pkg/errors"
	"github.com/matzehuels/antennas/pkg/graph"
	"github.com/matzehuels/antennas/pkg/io"
)

// =============================================================================
// summary
// =============================================================================

func (c *CLI) summaryCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "summary <grid>",
		Short: "Show vertex, edge and component counts for a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := c.loadGrid(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			s := graph.Summarize(lg.Graph)
			if asJSON {
				return writeJSON(struct {
					graph.Summary
					Width  int `json:"width"`
					Height int `json:"height"`
				}{s, lg.Grid.Width, lg.Grid.Height})
			}

			printSuccess("Built %s", lg.Source)
			printStats(s.Vertices, s.Edges, false)
			printKeyValue("Size", fmt.Sprintf("%dx%d", lg.Grid.Width, lg.Grid.Height))
			printKeyValue("Frequencies", joinFrequencies(s.Frequencies))
			printKeyValue("Components", strconv.Itoa(s.Components))
			printKeyValue("Largest", strconv.Itoa(s.Largest))
			if s.Vertices > 0 {
				printNextStep("Explore it", fmt.Sprintf("%s explore %s", appName, lg.Source))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}

// =============================================================================
// vertices
// =============================================================================

func (c *CLI) verticesCommand() *cobra.Command {
	var (
		frequency string
		limit     int
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "vertices <grid>",
		Short: "List antennas, optionally filtered by frequency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lg, err := c.loadGrid(ctx, args[0])
			if err != nil {
				return err
			}

			var vs []*graph.Vertex
			err = timedQuery(ctx, "vertices", func() (int, error) {
				if frequency == "" {
					vs = lg.Graph.Vertices()
					if limit > 0 && len(vs) > limit {
						vs = vs[:limit]
					}
					return len(vs), nil
				}
				f, err := errs.ValidateFrequency(frequency, c.config.emptyMarkers()...)
				if err != nil {
					return 0, err
				}
				vs = lg.Graph.VerticesByFrequency(f, limit)
				return len(vs), nil
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(io.NewVertices(vs))
			}
			if len(vs) == 0 {
				printInfo("No antennas found")
				return nil
			}
			rows := make([][]string, len(vs))
			for i, v := range vs {
				rows[i] = []string{
					strconv.Itoa(int(v.ID)),
					v.Frequency().String(),
					v.Position().String(),
					strconv.Itoa(v.Degree()),
				}
			}
			printTable([]string{"ID", "Freq", "Position", "Degree"}, rows)
			printDetail("%d antennas", len(vs))
			return nil
		},
	}
	cmd.Flags().StringVarP(&frequency, "frequency", "f", "", "only list antennas with this frequency")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of antennas (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the antennas as JSON")
	return cmd
}

// =============================================================================
// traverse
// =============================================================================

func (c *CLI) traverseCommand() *cobra.Command {
	var algo, from string
	cmd := &cobra.Command{
		Use:   "traverse <grid>",
		Short: "Walk the component of an antenna depth- or breadth-first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lg, err := c.loadGrid(ctx, args[0])
			if err != nil {
				return err
			}
			start, err := vertexAt(lg.Graph, from)
			if err != nil {
				return err
			}
			t, err := runTraversal(ctx, lg.Graph, algo, start)
			if err != nil {
				return err
			}

			rows := make([][]string, t.Len())
			for i, v := range t.Order {
				rows[i] = []string{strconv.Itoa(i + 1), v.String(), strconv.Itoa(t.Depth[v.ID])}
			}
			printTable([]string{"#", "Antenna", "Depth"}, rows)
			printDetail("%s from %s reached %d antennas", strings.ToUpper(algo), start, t.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&algo, "algo", "dfs", "traversal algorithm: dfs or bfs")
	cmd.Flags().StringVar(&from, "from", "", "start position as x,y")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

// runTraversal dispatches to DFS or BFS by name.
func runTraversal(ctx context.Context, g *graph.Graph, algo string, start *graph.Vertex) (*graph.Traversal, error) {
	var t *graph.Traversal
	err := timedQuery(ctx, algo, func() (int, error) {
		var err error
		switch algo {
		case "dfs":
			t, err = graph.DFS(g, start)
		case "bfs":
			t, err = graph.BFS(g, start)
		default:
			return 0, errs.New(errs.ErrCodeInvalidInput, "unknown algorithm %q (want dfs or bfs)", algo)
		}
		return t.Len(), err
	})
	if err != nil {
		return nil, errs.Classify(err)
	}
	return t, nil
}

// =============================================================================
// paths
// =============================================================================

func (c *CLI) pathsCommand() *cobra.Command {
	var (
		from, to string
		maxPaths int
	)
	cmd := &cobra.Command{
		Use:   "paths <grid>",
		Short: "Enumerate the simple paths between two antennas",
		Long: `Enumerate every simple path between two antennas. Antennas of one frequency
form a clique, so the number of paths grows factorially with its size; --max
stops the enumeration early.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lg, err := c.loadGrid(ctx, args[0])
			if err != nil {
				return err
			}
			origin, err := vertexAt(lg.Graph, from)
			if err != nil {
				return err
			}
			dest, err := vertexAt(lg.Graph, to)
			if err != nil {
				return err
			}
			if maxPaths <= 0 {
				maxPaths = c.config.Query.MaxPaths
			}

			var (
				lines     []string
				truncated bool
			)
			err = timedQuery(ctx, "paths", func() (int, error) {
				err := graph.WalkPaths(lg.Graph, origin, dest, func(p graph.Path) error {
					if len(lines) == maxPaths {
						truncated = true
						return graph.ErrStopWalk
					}
					lines = append(lines, p.String())
					return nil
				})
				return len(lines), err
			})
			if err != nil {
				return errs.Classify(err)
			}

			if len(lines) == 0 {
				printInfo("No path from %s to %s", origin, dest)
				return nil
			}
			printLines(lines)
			printDetail("%d paths", len(lines))
			if truncated {
				printWarning("Stopped after %d paths; raise --max to see more", maxPaths)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "origin position as x,y")
	cmd.Flags().StringVar(&to, "to", "", "destination position as x,y")
	cmd.Flags().IntVar(&maxPaths, "max", 0, "stop after this many paths (default from config)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// =============================================================================
// intersect
// =============================================================================

func (c *CLI) intersectCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "intersect <grid> <freq-a> <freq-b>",
		Short: "Pair every antenna of one frequency with every antenna of another",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lg, err := c.loadGrid(ctx, args[0])
			if err != nil {
				return err
			}
			a, err := errs.ValidateFrequency(args[1], c.config.emptyMarkers()...)
			if err != nil {
				return err
			}
			b, err := errs.ValidateFrequency(args[2], c.config.emptyMarkers()...)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = c.config.Query.MaxIntersections
			}

			var pairs []graph.Intersection
			err = timedQuery(ctx, "intersections", func() (int, error) {
				var err error
				pairs, err = graph.FindIntersections(lg.Graph, a, b, limit)
				return len(pairs), err
			})
			if err != nil {
				return errs.Classify(err)
			}

			rows := make([][]string, len(pairs))
			for i, p := range pairs {
				rows[i] = []string{
					antenna.Antenna{Frequency: a, Position: p.A}.String(),
					antenna.Antenna{Frequency: b, Position: p.B}.String(),
				}
			}
			printTable([]string{a.String(), b.String()}, rows)
			printDetail("%d pairs", len(pairs))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of pairs (default from config)")
	return cmd
}

// =============================================================================
// Helpers
// =============================================================================

func writeJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func joinFrequencies(fs []antenna.Frequency) string {
	if len(fs) == 0 {
		return "none"
	}
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/antennas/pkg/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)
	cmd := &cobra.Command{
		Use:   "serve <grid>",
		Short: "Serve graph queries for a grid over HTTP",
		Long: `Build the graph for a grid once and answer read-only queries over HTTP
until interrupted. Routes: /healthz, /summary, /vertices,
/traverse/{dfs|bfs}, /paths, /intersections, /effects, /graph.dot,
/graph.svg and /report.json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lg, err := c.loadGrid(ctx, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = c.config.Server.Addr
			}

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv, err := server.New(server.Config{
				Grid:             lg.Grid,
				Graph:            lg.Graph,
				GridHash:         lg.Hash,
				Runner:           runner,
				MaxIntersections: c.config.Query.MaxIntersections,
				MaxPaths:         c.config.Query.MaxPaths,
				Logger:           c.Logger,
			})
			if err != nil {
				return err
			}

			printSuccess("Serving %s on %s", lg.Source, StyleHighlight.Render(addr))
			printStats(lg.Graph.NumVertices(), lg.Graph.NumEdges(), false)
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	return cmd
}

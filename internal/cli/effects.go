package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/antennas/pkg/antenna"
	"github.com/matzehuels/antennas/pkg/io"
)

func (c *CLI) effectsCommand() *cobra.Command {
	var (
		clip                     bool
		matrixOut, binOut, jsOut string
	)
	cmd := &cobra.Command{
		Use:   "effects <grid>",
		Short: "Compute the nefarious effect points of every same-frequency pair",
		Long: `Compute the nefarious effect points of every same-frequency pair. Each pair
(a, b) projects 2a-b and 2b-a. Use --clip to keep only points inside the grid.

The result can be written as a text matrix, a BSON dump or a JSON report.`,
		Example: `  antennas effects city.txt --clip
  antennas effects city.txt --clip --matrix effects.txt --json report.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lg, err := c.loadGrid(ctx, args[0])
			if err != nil {
				return err
			}

			var effects []antenna.Effect
			_ = timedQuery(ctx, "effects", func() (int, error) {
				effects = lg.Grid.Effects(clip)
				return len(effects), nil
			})
			unique := antenna.EffectPositions(effects)

			if matrixOut == "" && binOut == "" && jsOut == "" {
				rows := make([][]string, len(effects))
				for i, e := range effects {
					rows[i] = []string{e.Position.String(), e.Source.String(), e.Partner.String()}
				}
				if len(rows) > 0 {
					printTable([]string{"Position", "Source", "Partner"}, rows)
				}
			}

			printSuccess("%d effect points, %d distinct", len(effects), len(unique))
			if clip {
				printDetail("clipped to %sx%s", strconv.Itoa(lg.Grid.Width), strconv.Itoa(lg.Grid.Height))
			}

			if matrixOut != "" {
				if err := io.ExportMatrix(matrixOut, lg.Grid.Antennas, effects); err != nil {
					return err
				}
				printFile(matrixOut)
			}
			if binOut != "" {
				if err := io.ExportBinary(binOut, lg.Grid.Antennas, effects); err != nil {
					return err
				}
				printFile(binOut)
			}
			if jsOut != "" {
				if err := io.ExportJSON(io.NewReport(lg.Grid, lg.Graph, effects), jsOut); err != nil {
					return err
				}
				printFile(jsOut)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&clip, "clip", false, "keep only points inside the grid")
	cmd.Flags().StringVar(&matrixOut, "matrix", "", "write a text matrix of antennas and effects")
	cmd.Flags().StringVar(&binOut, "binary", "", "write a BSON dump of antennas and effects")
	cmd.Flags().StringVar(&jsOut, "json", "", "write a JSON report with the graph and effects")
	return cmd
}

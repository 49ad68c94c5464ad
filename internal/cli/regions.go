package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gardenplot/adjacency"
	"github.com/katalvlaran/gardenplot/enclosure"
	"github.com/katalvlaran/gardenplot/region"
)

func newRegionsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regions [file]",
		Short: "List every region with its measurements and enclosing region",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, rep, err := a.analyze(cmd, inputPath(args))
			if err != nil {
				return err
			}

			regions := make([]*region.Region, len(rep.Plots))
			for i, p := range rep.Plots {
				regions[i] = p.Region
			}
			ag, err := adjacency.Build(g, regions)
			if err != nil {
				return err
			}
			opts := []enclosure.Option{enclosure.WithContext(cmd.Context())}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSYMBOL\tAREA\tPERIMETER\tSIDES\tENCLOSED_BY")
			for _, p := range rep.Plots {
				outer := "-"
				s, ok, err := enclosure.EnclosedBy(ag, p.Region.ID, opts...)
				if err != nil {
					return err
				}
				if ok {
					outer = strconv.Itoa(s)
				}
				fmt.Fprintf(tw, "%d\t%c\t%d\t%d\t%d\t%s\n",
					p.Region.ID, p.Region.Symbol, p.Area(), p.Perimeter, p.Sides, outer)
			}
			fmt.Fprintf(tw, "TOTAL\t\t\t%d\t%d\t\n", rep.ByPerimeter, rep.BySides)
			return tw.Flush()
		},
	}
}

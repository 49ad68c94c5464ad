package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPriceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "price [file]",
		Short: "Print the total fence price by perimeter and by sides",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rep, err := a.analyze(cmd, inputPath(args))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "perimeter price: %d\n", rep.ByPerimeter)
			fmt.Fprintf(out, "sides price: %d\n", rep.BySides)
			return nil
		},
	}
}

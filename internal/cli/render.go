package cli

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gardenplot/render"
)

func newRenderCommand(a *app) *cobra.Command {
	var output string
	var noSides bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the regions and their sides to a PNG file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, rep, err := a.analyze(cmd, inputPath(args))
			if err != nil {
				return err
			}
			err = render.SavePNG(output, g, rep.Plots,
				render.WithCellSize(a.cfg.CellSize),
				render.WithSides(!noSides),
			)
			if err != nil {
				return errors.Wrapf(err, "render %s", output)
			}
			a.log.WithFields(logrus.Fields{
				"output":    output,
				"cell_size": a.cfg.CellSize,
			}).Info("image written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "garden.png", "Output PNG file")
	cmd.Flags().Int(keyCellSize, 16, "Cell edge length in pixels")
	cmd.Flags().BoolVar(&noSides, "no-sides", false, "Do not stroke region sides")
	return cmd
}

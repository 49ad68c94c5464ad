// Package cli implements the gardenplot command line.
package cli

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gardenplot/grid"
	"github.com/katalvlaran/gardenplot/gridio"
	"github.com/katalvlaran/gardenplot/pricing"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	v   *viper.Viper
	cfg Config
	log *logrus.Logger
}

// NewRootCommand builds the gardenplot command tree. Output goes to the
// command's Out writer, logs to its Err writer.
func NewRootCommand() *cobra.Command {
	a := &app{v: newViper(), log: logrus.New()}

	root := &cobra.Command{
		Use:   "gardenplot",
		Short: "Price garden plots by perimeter and by sides",
		Long: `Segment a garden map into plant regions and price the fences.

Each region costs area×perimeter, or area×sides when bulk discounts apply.
Input is one row per line, one plant symbol per column; "-" reads stdin.

Examples:
  gardenplot price input.txt
  gardenplot regions --workers 4 input.txt
  gardenplot render -o garden.png --cell-size 24 input.txt`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.v, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log.SetOutput(cmd.ErrOrStderr())
			a.log.SetLevel(cfg.LogLevel)
			a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "Config file (yaml, json or toml)")
	pf.Int(keyWorkers, 1, "Goroutines measuring regions")
	pf.String(keyLogLevel, "info", "Log level: debug, info, warn, error")

	root.AddCommand(newPriceCommand(a), newRegionsCommand(a), newRenderCommand(a))
	return root
}

// Execute runs the command tree with the process arguments.
func Execute(stdout, stderr io.Writer) error {
	root := NewRootCommand()
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

// inputPath returns the file argument, defaulting to stdin.
func inputPath(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// analyze loads the grid at path and measures every region.
func (a *app) analyze(cmd *cobra.Command, path string) (*grid.Grid, *pricing.Report, error) {
	start := time.Now()
	g, err := gridio.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	a.log.WithFields(logrus.Fields{
		"input": path,
		"rows":  g.Rows(),
		"cols":  g.Cols(),
	}).Debug("grid loaded")

	rep, err := pricing.Analyze(g,
		pricing.WithContext(cmd.Context()),
		pricing.WithWorkers(a.cfg.Workers),
		pricing.WithOnPlot(func(p pricing.Plot) {
			a.log.WithFields(logrus.Fields{
				"region":    p.Region.ID,
				"symbol":    string(p.Region.Symbol),
				"area":      p.Area(),
				"perimeter": p.Perimeter,
				"sides":     p.Sides,
			}).Trace("region measured")
		}),
	)
	if err != nil {
		return nil, nil, err
	}
	a.log.WithFields(logrus.Fields{
		"regions":      rep.Regions,
		"by_perimeter": rep.ByPerimeter,
		"by_sides":     rep.BySides,
		"workers":      a.cfg.Workers,
		"elapsed":      time.Since(start),
	}).Info("garden priced")
	return g, rep, nil
}

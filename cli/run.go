package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/yosuke-furukawa/json5/encoding/json5"

	"go.viam.com/dynoctree/effect"
	"go.viam.com/dynoctree/logging"
)

// RunAction is the corresponding Action for 'run'.
func RunAction(c *cli.Context) error {
	logger := logging.NewBlankLogger("pointfx")
	if c.Bool(generalFlagDebug) {
		logger = logging.NewDebugLogger("pointfx")
	}

	cfg, err := loadConfig(c.String(generalFlagConfig))
	if err != nil {
		return err
	}
	applyOverrides(c, cfg)

	sim, err := effect.NewSimulator(*cfg, logger)
	if err != nil {
		return err
	}
	report, err := sim.Run(c.Context, c.Int(runFlagSteps))
	if err != nil {
		return err
	}
	printReport(c.App.Writer, cfg, report)
	return nil
}

func loadConfig(path string) (*effect.Config, error) {
	if path == "" {
		cfg := effect.DefaultConfig()
		return &cfg, nil
	}
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read config %q", path)
	}
	var attrs map[string]interface{}
	if err := json5.Unmarshal(data, &attrs); err != nil {
		return nil, errors.Wrapf(err, "cannot parse config %q", path)
	}
	return effect.DecodeConfig(attrs)
}

func applyOverrides(c *cli.Context, cfg *effect.Config) {
	if c.IsSet(runFlagPoints) {
		cfg.Points = c.Int(runFlagPoints)
	}
	if c.IsSet(runFlagRadius) {
		cfg.Radius = c.Float64(runFlagRadius)
	}
	if c.IsSet(runFlagSpread) {
		cfg.Spread = c.Float64(runFlagSpread)
	}
	if c.IsSet(runFlagJitter) {
		cfg.Jitter = c.Float64(runFlagJitter)
	}
	if c.IsSet(runFlagSeed) {
		cfg.Seed = c.Int64(runFlagSeed)
	}
}

func printReport(w io.Writer, cfg *effect.Config, report effect.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"particles", cfg.Points},
		{"frames", report.Steps},
		{"moves", report.Moves},
		{"query radius", cfg.Radius},
		{"mean neighbors", fmt.Sprintf("%.2f", report.MeanNeighbors)},
		{"stddev neighbors", fmt.Sprintf("%.2f", report.StdDevNeighbors)},
		{"p95 neighbors", fmt.Sprintf("%.2f", report.P95Neighbors)},
		{"max neighbors", report.MaxNeighbors},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"inner nodes", report.Stats.InnerNodes},
		{"leaf nodes", report.Stats.LeafNodes},
		{"depth", fmt.Sprintf("%d/%d", report.Stats.Depth, report.Stats.MaxDepth)},
		{"root half size", report.Stats.HalfSize},
		{"pooled nodes", report.Stats.PooledNodes},
		{"pooled points", report.Stats.PooledPoints},
	})
	t.Render()
}

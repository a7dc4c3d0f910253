// Package cli contains the pointfx command line tool.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	generalFlagConfig = "config"
	generalFlagDebug  = "debug"

	runFlagPoints = "points"
	runFlagSteps  = "steps"
	runFlagRadius = "radius"
	runFlagSpread = "spread"
	runFlagJitter = "jitter"
	runFlagSeed   = "seed"
)

var app = &cli.App{
	Name:            "pointfx",
	Usage:           "drive a dynamic point octree like a particle effect",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    generalFlagConfig,
			Aliases: []string{"c"},
			Usage:   "load simulation configuration from JSON `FILE`",
		},
		&cli.BoolFlag{
			Name:    generalFlagDebug,
			Aliases: []string{"vvv"},
			Usage:   "enable debug logging",
		},
	},
	Commands: []*cli.Command{
		{
			Name:  "run",
			Usage: "seed particles, move them for a number of frames and report the tree",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  runFlagPoints,
					Usage: "number of particles, overrides the config",
				},
				&cli.IntFlag{
					Name:  runFlagSteps,
					Value: 10,
					Usage: "number of frames to simulate",
				},
				&cli.Float64Flag{
					Name:  runFlagRadius,
					Usage: "neighbor query radius, overrides the config",
				},
				&cli.Float64Flag{
					Name:  runFlagSpread,
					Usage: "standard deviation of the initial particle positions, overrides the config",
				},
				&cli.Float64Flag{
					Name:  runFlagJitter,
					Usage: "standard deviation of the per frame movement, overrides the config",
				},
				&cli.Int64Flag{
					Name:  runFlagSeed,
					Usage: "random seed, overrides the config",
				},
			},
			Action: RunAction,
		},
	},
}

// NewApp returns a new app with the CLI command set, writing to the given streams.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}

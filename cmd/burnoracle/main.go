// Command burnoracle computes the expected outputs of the proof-of-burn
// address circuits and checks circom witness files against them.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error().Err(err).Msg("burnoracle failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "burnoracle",
		Usage: "expected outputs and witness checks for the burn address circuits",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML file overriding scheme constants",
				EnvVars: []string{"BURNORACLE_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "mode",
				Usage:   "keystream mode for the encrypt circuit (agreement|fixed)",
				EnvVars: []string{"BURNORACLE_MODE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug|info|warn|error)",
				EnvVars: []string{"BURNORACLE_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "log-json",
				Usage:   "write logs as JSON",
				EnvVars: []string{"BURNORACLE_LOG_JSON"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			addressCommand,
			expectCommand,
			decodeCommand,
			checkCommand,
			vectorsCommand,
		},
	}
}

func setupLogger(c *cli.Context) error {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	if c.Bool("log-json") {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return nil
}

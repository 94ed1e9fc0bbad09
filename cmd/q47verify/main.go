package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v2"
)

var logLevelFlag = cli.StringFlag{
	Name:  "log-level",
	Usage: "log level: debug, info, warn, error",
	Value: "info",
}

func main() {
	app := &cli.App{
		Name:     "q47verify",
		HelpName: "q47verify",
		Usage:    "numerical verification of the Q47 null/sparse decomposition claims",
		Flags: []cli.Flag{
			&logLevelFlag,
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			&countModuliCommand,
			&localRootsCommand,
			&sparsityCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(c *cli.Context) error {
	var level slog.Level
	switch c.String(logLevelFlag.Name) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return cli.Exit(fmt.Sprintf("unknown log level %q", c.String(logLevelFlag.Name)), 1)
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
	return nil
}

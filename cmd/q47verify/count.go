package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alexshd/q47verify"
	"github.com/urfave/cli/v2"
)

var countModuliCommand = cli.Command{
	Name:  "count-moduli",
	Usage: "count effective moduli and compare N_eff(D) against D/(log D)^{45/46}",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "max",
			Aliases: []string{"m"},
			Usage:   "upper bound D_max of the scan",
			Value:   1_000_000,
		},
		&cli.StringFlag{
			Name:  "csv",
			Usage: "also write the checkpoint table to the given CSV file",
		},
	},
	Action: runCountModuli,
}

func runCountModuli(c *cli.Context) error {
	dmax := c.Int("max")
	if dmax < 1 {
		return cli.Exit(fmt.Sprintf("invalid --max %d: bound must be a positive integer", dmax), 1)
	}

	cfg := q47verify.DefaultCountConfig()
	cfg.DMax = dmax

	start := time.Now()
	report, err := q47verify.CountEffectiveModuli(cfg)
	if err != nil {
		return err
	}
	slog.Info("scan complete",
		"d_max", cfg.DMax,
		"n_eff", report.Total,
		"elapsed", time.Since(start).Round(time.Millisecond))

	q47verify.RenderCountTable(os.Stdout, report)

	if fit, err := q47verify.FitExponent(report.Samples); err != nil {
		slog.Warn("exponent fit skipped", "err", err)
	} else {
		fmt.Printf("\nFitted exponent alpha = %.4f\n", fit.Alpha)
		fmt.Printf("Theoretical value     = %.4f = 45/46\n", q47verify.LandauRamanujanExponent)
		fmt.Printf("Relative error        = %.2f%%\n", fit.RelError*100)
	}

	if path := c.String("csv"); path != "" {
		if err := q47verify.SaveCountCSV(path, report); err != nil {
			return err
		}
		slog.Info("results saved", "path", path)
	}
	return nil
}

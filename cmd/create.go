package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	"github.com/octobatch/octobatch/internal/batch"
	"github.com/octobatch/octobatch/internal/config"
	"github.com/octobatch/octobatch/pkg/logger"
)

func create(ctx *cli.Context) error {
	if arg := ctx.Args().First(); arg == "help" {
		if ctx.Command.Name == "" {
			return help(ctx)
		}
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}

	// Fail-fast phase: configuration, inputs and the creation plan.
	// Nothing is created while any of these can still fail.
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	specs, err := loadSpecs(afero.NewOsFs(), cfg.ProxyFile, cfg.CookieFile, cfg.Count)
	if err != nil {
		return err
	}
	client, err := newOctoClient(cfg)
	if err != nil {
		return err
	}

	fmt.Printf(">> Creating %d profile(s) via %s <<\n", len(specs), cfg.ProxyFile)

	prog, bar := newBatchBar(len(specs), cfg.Quiet)
	results := batch.Run(context.Background(), specs, client, func(batch.Result) {
		if bar != nil {
			bar.Increment()
		}
	})
	if prog != nil {
		prog.Wait()
	}

	printReport(results)

	// Per-profile failures do not change the exit status: the run
	// itself completed.
	return nil
}

// newRunLogger builds the logger handed to the API client. It writes to
// stderr so rate-limit warnings do not interleave with the progress bar.
func newRunLogger(cfg *config.Config) logger.Logger {
	return logger.NewStandardLogger(log.New(os.Stderr, "", log.LstdFlags), cfg.Debug)
}

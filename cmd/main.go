package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"
)

// BuildArgs carries build-time metadata injected via ldflags.
type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

var currentBuildArgs BuildArgs

// Execute runs the octobatch CLI with the given arguments.
func Execute(args []string, bArgs BuildArgs) error {
	currentBuildArgs = bArgs
	// A .env in the working directory feeds the OCTO_* variables,
	// matching how deployments keep the token out of shell history.
	_ = godotenv.Load()

	app := cli.App{
		Name:         "octobatch",
		HelpName:     "octobatch",
		Usage:        "Batch profile creator for Octo Browser.",
		Version:      fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:    "octobatch <command> [arguments...]",
		Description:  DESCRIPTION,
		OnUsageError: usageErrorCallback,
		Commands: []cli.Command{
			{
				Name:                   "create",
				Aliases:                []string{"c"},
				Usage:                  "create profiles for every planned slot",
				Action:                 create,
				OnUsageError:           usageErrorCallback,
				Description:            CreateDescription,
				Flags:                  createFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:                   "check",
				Usage:                  "validate inputs and print the creation plan",
				Action:                 check,
				OnUsageError:           usageErrorCallback,
				Description:            CheckDescription,
				Flags:                  checkFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:        "token",
				Usage:       "manage the stored API token",
				Description: TokenDescription,
				Subcommands: []cli.Command{
					{
						Name:   "set",
						Usage:  "store an API token in the OS keyring",
						Action: tokenSet,
					},
					{
						Name:   "show",
						Usage:  "print the stored API token (masked)",
						Action: tokenShow,
					},
					{
						Name:   "delete",
						Usage:  "remove the stored API token",
						Action: tokenDelete,
					},
				},
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  help,
			},
			{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "prints installed version of octobatch",
				Action:  getVersion,
			},
		},
		Action:                 create,
		Flags:                  createFlags,
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	return app.Run(args)
}

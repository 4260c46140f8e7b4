package cli

/*
 * Licensed under LGPL-3.0.
 *
 * You can get a copy of the LGPL-3.0 License at
 *
 * https://www.gnu.org/licenses/lgpl-3.0.en.html
 *
 * @wcgcyx - https://github.com/wcgcyx
 */

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/wcgcyx/l2core/version"
)

// NewCLI creates a CLI app.
func NewCLI() *cli.App {
	app := &cli.App{
		Name:      "l2core",
		HelpName:  "l2core",
		Usage:     "A rollup settlement core",
		UsageText: "l2core [global options] command [arguments...]",
		Version:   version.Version,
		Description: "\n\t This is the settlement core of a rollup execution\n" +
			"\t layer.\n\n" +
			"\t It bundles the bytecode analyzer, the account ledger, the L1\n" +
			"\t fee oracle and the settlement handlers behind one engine\n",
		Authors: []*cli.Author{
			{
				Name:  "wcgcyx",
				Email: "wcgcyx@gmail.com",
			},
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:        "analyze",
			Usage:       "analyze bytecode",
			Description: "Analyze the given hex-encoded bytecode and print its jump table",
			ArgsUsage:   "<code>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "fork",
					Value: "",
					Usage: "specify the fork to analyze at",
				},
			},
			Action: func(ctx *cli.Context) error {
				return runAnalyze(ctx)
			},
		},
		{
			Name:        "l1cost",
			Usage:       "compute the L1 data fee of a payload",
			Description: "Compute the L1 data fee of the given hex-encoded payload against the stored oracle parameters",
			ArgsUsage:   "<payload>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "config",
					Value: "",
					Usage: "specify config file",
				},
				&cli.PathFlag{
					Name:  "path",
					Value: "",
					Usage: "specify datastore path",
				},
			},
			Action: func(ctx *cli.Context) error {
				return runL1Cost(ctx)
			},
		},
		{
			Name:        "account",
			Usage:       "inspect an account",
			Description: "Print the stored account record of the given address",
			ArgsUsage:   "<address>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "config",
					Value: "",
					Usage: "specify config file",
				},
				&cli.PathFlag{
					Name:  "path",
					Value: "",
					Usage: "specify datastore path",
				},
			},
			Action: func(ctx *cli.Context) error {
				return runAccount(ctx)
			},
		},
		{
			Name:        "version",
			Usage:       "get version",
			Description: "Get the version",
			ArgsUsage:   " ",
			Action: func(c *cli.Context) error {
				fmt.Println("Version: ", version.Version)
				return nil
			},
		},
	}
	return app
}

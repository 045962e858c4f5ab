package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:                  "ilms",
		Usage:                 "Manage legal cases and agreement approval workflows",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "Directory for collection snapshots (in-memory store when empty)",
				Value:   "",
				Sources: cli.EnvVars("DATA_DIR"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "actor-email",
				Usage:   "Email of the acting user, required for mutating commands",
				Value:   "",
				Sources: cli.EnvVars("ILMS_ACTOR_EMAIL"),
			},
		},
		Commands: []*cli.Command{
			seedCommand(),
			agreementListCommand(),
			agreementShowCommand(),
			agreementCreateCommand(),
			agreementDecideCommand(),
			agreementStepsCommand(),
			auditCommand(),
			exportCommand(),
			expiryCheckCommand(),
			watchCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

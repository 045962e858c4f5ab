package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nextgen-analytics/ilms/pkg/export"
	"github.com/nextgen-analytics/ilms/pkg/permissions"
	cli "github.com/urfave/cli/v3"
)

func auditCommand() *cli.Command {
	return &cli.Command{
		Name:  "audit",
		Usage: "Show the audit ledger, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum entries to print (0 for all)",
				Value: 50,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer app.close(ctx)

			actor, err := app.resolveActor(ctx, cmd)
			if err != nil {
				return err
			}

			if err := requirePermission(actor, permissions.ResourceAudit, permissions.ActionView); err != nil {
				return err
			}

			entries, err := app.store.Audit().List(ctx)
			if err != nil {
				return err
			}

			limit := int(cmd.Int("limit"))
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			for _, e := range entries {
				fmt.Printf("%s  %-22s %-10s %-38s %s (%s)\n",
					e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.EntityType, e.EntityID, e.Details, e.UserName)
			}

			return nil
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export records as CSV",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "kind",
				Usage: "Record set to export (agreements, audit)",
				Value: "agreements",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file (stdout when empty)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer app.close(ctx)

			out := os.Stdout

			if path := cmd.String("output"); path != "" {
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("cannot open output file: %w", err)
				}
				defer f.Close()

				out = f
			}

			exporter := export.NewCSV()

			switch cmd.String("kind") {
			case "agreements":
				agreements, err := app.agreements.List(ctx)
				if err != nil {
					return err
				}

				return exporter.ExportAgreements(out, agreements)
			case "audit":
				actor, err := app.resolveActor(ctx, cmd)
				if err != nil {
					return err
				}

				if err := requirePermission(actor, permissions.ResourceAudit, permissions.ActionView); err != nil {
					return err
				}

				entries, err := app.store.Audit().List(ctx)
				if err != nil {
					return err
				}

				return exporter.ExportAudit(out, entries)
			default:
				return fmt.Errorf("unknown export kind %q", cmd.String("kind"))
			}
		},
	}
}

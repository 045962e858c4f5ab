package main

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/nextgen-analytics/ilms/pkg/permissions"
	"github.com/nextgen-analytics/ilms/pkg/wizard"
	"github.com/nextgen-analytics/ilms/pkg/workflow"
	cli "github.com/urfave/cli/v3"
)

func agreementListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List agreements in the approval pipeline, newest first",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer app.close(ctx)

			agreements, err := app.agreements.List(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("%-38s %-30s %-24s %5s/%-2s %s\n", "ID", "TITLE", "STATUS", "LVL", "MAX", "EXPIRES")

			for _, a := range agreements {
				expiry := "-"
				if !a.ExpiryDate.IsZero() {
					expiry = a.ExpiryDate.Format("2006-01-02")
				}

				fmt.Printf("%-38s %-30s %-24s %5d/%-2d %s\n",
					a.ID, truncate(a.Title, 30), a.Status, a.CurrentApprovalLevel, a.MaxApprovalLevels, expiry)
			}

			return nil
		},
	}
}

func agreementShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print one agreement as JSON",
		ArgsUsage: "<agreement-id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one agreement id")
			}

			app, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer app.close(ctx)

			agreement, err := app.agreements.FetchByID(ctx, cmd.Args().First())
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(agreement, "", "  ")
			if err != nil {
				return err
			}

			fmt.Println(string(out))

			return nil
		},
	}
}

func agreementCreateCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Draft a new agreement and submit it for review",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Usage: "Agreement title", Required: true},
			&cli.StringFlag{Name: "type", Usage: "Agreement category"},
			&cli.StringFlag{Name: "parties", Usage: "Parties involved"},
			&cli.IntFlag{Name: "duration", Usage: "Duration in months"},
			&cli.FloatFlag{Name: "value", Usage: "Contract value"},
			&cli.StringFlag{Name: "case-id", Usage: "Linked litigation case id"},
			&cli.StringSliceFlag{Name: "attach", Usage: "File to attach (repeatable)"},
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

			if err := requirePermission(actor, permissions.ResourceAgreement, permissions.ActionCreate); err != nil {
				return err
			}

			w := wizard.NewWizard(app.agreements, app.bus, app.logger).
				WithActor(actor.Name).
				WithUploadLatency(0)

			w.SetDetails(wizard.Draft{
				Title:          cmd.String("title"),
				Type:           cmd.String("type"),
				Parties:        cmd.String("parties"),
				DurationMonths: int(cmd.Int("duration")),
				Value:          cmd.Float("value"),
				LinkedCaseID:   cmd.String("case-id"),
			})

			if err := w.Next(); err != nil {
				return err
			}

			for _, path := range cmd.StringSlice("attach") {
				info, err := os.Stat(path)
				if err != nil {
					return fmt.Errorf("cannot attach %s: %w", path, err)
				}

				w.Attach(wizard.FileInfo{
					Name:     filepath.Base(path),
					MIMEType: mime.TypeByExtension(filepath.Ext(path)),
					Size:     info.Size(),
				})
			}

			if err := w.WaitForUploads(ctx); err != nil {
				return err
			}

			if err := w.Next(); err != nil {
				return err
			}

			created, err := w.Submit(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("Created agreement %s (%s, level %d/%d)\n",
				created.ID, created.Status, created.CurrentApprovalLevel, created.MaxApprovalLevels)

			return nil
		},
	}
}

func agreementDecideCommand() *cli.Command {
	return &cli.Command{
		Name:      "decide",
		Usage:     "Apply a workflow decision to an agreement",
		ArgsUsage: "<agreement-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "decision", Usage: "APPROVE, REJECT, or REVISION", Required: true},
			&cli.StringFlag{Name: "justification", Aliases: []string{"m"}, Usage: "Decision justification", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one agreement id")
			}

			app, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer app.close(ctx)

			actor, err := app.resolveActor(ctx, cmd)
			if err != nil {
				return err
			}

			updated, err := app.engine.Decide(ctx, workflow.DecisionRequest{
				AgreementID:   cmd.Args().First(),
				Decision:      workflow.Decision(strings.ToUpper(cmd.String("decision"))),
				Justification: cmd.String("justification"),
				ActorID:       actor.ID,
				ActorName:     actor.Name,
				ActorRole:     actor.Role,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Agreement %s is now %s at level %d/%d\n",
				updated.ID, updated.Status, updated.CurrentApprovalLevel, updated.MaxApprovalLevels)

			return nil
		},
	}
}

func agreementStepsCommand() *cli.Command {
	return &cli.Command{
		Name:      "steps",
		Usage:     "Show the four-checkpoint pipeline view for an agreement",
		ArgsUsage: "<agreement-id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one agreement id")
			}

			app, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer app.close(ctx)

			agreement, err := app.agreements.FetchByID(ctx, cmd.Args().First())
			if err != nil {
				return err
			}

			for _, step := range workflow.Steps(*agreement) {
				marker := " "

				switch step.State {
				case workflow.StepCompleted:
					marker = "x"
				case workflow.StepCurrent:
					marker = ">"
				case workflow.StepPending:
				}

				fmt.Printf("[%s] %d. %s\n", marker, step.ID+1, step.Label)
			}

			return nil
		},
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n-3] + "..."
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/nextgen-analytics/ilms/pkg/audit"
	"github.com/nextgen-analytics/ilms/pkg/channels/gochannel"
	"github.com/nextgen-analytics/ilms/pkg/eventbus"
	"github.com/nextgen-analytics/ilms/pkg/expiry"
	"github.com/nextgen-analytics/ilms/pkg/log"
	cli "github.com/urfave/cli/v3"
)

func expiryCheckCommand() *cli.Command {
	return &cli.Command{
		Name:  "expiry-check",
		Usage: "Scan for agreements approaching their expiry date",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "window-days",
				Usage: "How many days ahead counts as expiring",
				Value: 30,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			app, err := newApp(ctx, cmd)
			if err != nil {
				return err
			}
			defer app.close(ctx)

			monitor := expiry.NewMonitor(app.store.Agreements(), app.store.Notifications(), app.bus, app.logger).
				WithWarningWindow(time.Duration(cmd.Int("window-days")) * 24 * time.Hour)

			expiring, err := monitor.RunOnce(ctx)
			if err != nil {
				return err
			}

			if len(expiring) == 0 {
				fmt.Println("No agreements expiring inside the window")

				return nil
			}

			for _, a := range expiring {
				fmt.Printf("%-38s %-30s expires %s\n", a.ID, truncate(a.Title, 30), a.ExpiryDate.Format("2006-01-02"))
			}

			return nil
		},
	}
}

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Run the expiry monitor on its schedule until interrupted",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "schedule",
				Usage:   "Cron expression for the expiry scan",
				Value:   expiry.DefaultSchedule,
				Sources: cli.EnvVars("EXPIRY_SCHEDULE"),
			},
			&cli.IntFlag{
				Name:  "window-days",
				Usage: "How many days ahead counts as expiring",
				Value: 30,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log.Setup(cmd.String("log-level"))
			logger := log.WithModule("ilms-watch")

			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close(ctx) }()

			pub, sub, err := gochannel.CreateChannel(watermill.NopLogger{})
			if err != nil {
				return fmt.Errorf("failed to create event channel: %w", err)
			}

			bus := eventbus.NewWatermillEventBus(pub, sub)
			defer func() { _ = bus.Close() }()

			recorder := audit.NewRecorder(store.Audit(), bus, logger)
			if err := recorder.Start(ctx); err != nil {
				return fmt.Errorf("failed to start audit recorder: %w", err)
			}

			monitor := expiry.NewMonitor(store.Agreements(), store.Notifications(), bus, logger).
				WithSchedule(cmd.String("schedule")).
				WithWarningWindow(time.Duration(cmd.Int("window-days")) * 24 * time.Hour)

			if err := monitor.Start(ctx); err != nil {
				return err
			}
			defer monitor.Stop()

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.InfoContext(ctx, "Watching for expiring agreements")
			<-ctx.Done()

			return nil
		},
	}
}

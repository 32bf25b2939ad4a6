package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/limbo/fittrack/internal/notify"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/cleanup"
	"github.com/limbo/fittrack/pkg/config"
	"github.com/spf13/cobra"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Remind users without activities in the last 24 hours",
	Long: `Finds every user whose latest activity is older than 24 hours, or who has none,
and sends one reminder per user through the configured sink.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()
		defer cleanup.CleanUp()
		sink, _ := cmd.Flags().GetString("sink")
		notifier, err := notify.New(notify.Config{
			Sink:         sink,
			RabbitMQURL:  cfg.GetString("RABBITMQ_URL"),
			Queue:        cfg.GetStringOr("REMINDER_QUEUE", "fittrack.reminders"),
			KafkaBrokers: cfg.GetList("KAFKA_BROKERS", "localhost:9092"),
			Topic:        cfg.GetStringOr("REMINDER_TOPIC", "fittrack.reminders"),
		}, slog.Default())
		if err != nil {
			return fmt.Errorf("creating notifier failed: %w", err)
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing " + sink + " notifier",
			F:    notifier.Close,
		})
		pool := repository.NewPool(pgConfig(cfg))
		rs := service.NewReminderService(
			repository.NewUsersRepo(pool),
			repository.NewRemindersRepo(pool),
			notifier,
			slog.Default(),
		)
		report, err := rs.Run(cmd.Context(), time.Now())
		slog.Info("reminder run finished",
			slog.Int("inactive", report.Inactive),
			slog.Int("sent", report.Sent),
			slog.Int("failed", report.Failed),
		)
		return err
	},
}

func init() {
	rootCmd.AddCommand(remindCmd)
	remindCmd.Flags().String("sink", config.New().GetStringOr("REMINDER_SINK", notify.SinkLog), "reminder sink: log, rabbitmq or kafka")
}

package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/fittrack/internal/notify"
	"github.com/limbo/fittrack/internal/repository"
)

const InactivityWindow = 24 * time.Hour

type ReminderReport struct {
	Inactive int
	Sent     int
	Failed   int
}

type ReminderService struct {
	users     repository.UsersRepositoryI
	reminders repository.RemindersRepositoryI
	notifier  notify.Notifier
	logger    *slog.Logger
}

func NewReminderService(users repository.UsersRepositoryI, reminders repository.RemindersRepositoryI,
	notifier notify.Notifier, logger *slog.Logger) *ReminderService {
	if users == nil || reminders == nil || notifier == nil {
		log.Fatal("provided nil dependency for reminderService")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReminderService{
		users:     users,
		reminders: reminders,
		notifier:  notifier,
		logger:    logger,
	}
}

// Run reminds every user without activities in the day before now.
// A failure for one user doesn't stop the others; all failures are joined.
func (rs *ReminderService) Run(ctx context.Context, now time.Time) (ReminderReport, error) {
	var report ReminderReport
	inactive, err := rs.users.FindInactiveSince(ctx, now.Add(-InactivityWindow))
	if err != nil {
		return report, errors.New("users repository error: " + err.Error())
	}
	report.Inactive = len(inactive)
	var errs []error
	for _, iu := range inactive {
		if err = ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		logger := rs.logger.With(slog.String("uid", iu.User.ID.String()))
		err = rs.notifier.Notify(ctx, notify.Reminder{
			UserID:       iu.User.ID,
			Username:     iu.User.Name,
			Email:        iu.User.Email,
			LastActivity: iu.LastActivity,
			Message:      notify.ReminderMessage(iu.User.Name),
			SentAt:       now,
		})
		if err != nil {
			report.Failed++
			logger.Error("sending reminder error", slog.String("error", err.Error()))
			errs = append(errs, err)
			continue
		}
		if err = rs.reminders.MarkReminded(ctx, iu.User.ID, now); err != nil {
			logger.Error("marking reminded error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
		report.Sent++
	}
	return report, errors.Join(errs...)
}

// Package notify delivers inactivity reminders to a configured sink.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	SinkLog      = "log"
	SinkRabbitMQ = "rabbitmq"
	SinkKafka    = "kafka"
)

var ErrUnknownSink = errors.New("unknown reminder sink")

type Reminder struct {
	UserID       uuid.UUID  `json:"user_id"`
	Username     string     `json:"username"`
	Email        string     `json:"email,omitempty"`
	LastActivity *time.Time `json:"last_activity,omitempty"`
	Message      string     `json:"message"`
	SentAt       time.Time  `json:"sent_at"`
}

func ReminderMessage(username string) string {
	return fmt.Sprintf("Reminder: %s, it's time to exercise!", username)
}

type Notifier interface {
	Notify(ctx context.Context, reminder Reminder) error
	Close() error
}

type Config struct {
	Sink         string
	RabbitMQURL  string
	Queue        string
	KafkaBrokers []string
	Topic        string
}

// New builds the notifier for cfg.Sink. An empty sink means log.
func New(cfg Config, logger *slog.Logger) (Notifier, error) {
	switch cfg.Sink {
	case "", SinkLog:
		return NewLogNotifier(logger), nil
	case SinkRabbitMQ:
		n, err := NewRabbitMQNotifier(cfg.RabbitMQURL, cfg.Queue)
		if err != nil {
			return nil, err
		}
		return n, nil
	case SinkKafka:
		n, err := NewKafkaNotifier(cfg.KafkaBrokers, cfg.Topic)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSink, cfg.Sink)
	}
}

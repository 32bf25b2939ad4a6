package notify

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier writes reminders as JSON messages keyed by user id.
type KafkaNotifier struct {
	writer messageWriter
}

func NewKafkaNotifier(brokers []string, topic string) (*KafkaNotifier, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
	}, nil
}

func (kn *KafkaNotifier) Notify(ctx context.Context, r Reminder) error {
	body, err := sonic.Marshal(r)
	if err != nil {
		return errors.New("marshalling reminder error: " + err.Error())
	}
	err = kn.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(r.UserID.String()),
		Value: body,
		Time:  r.SentAt,
	})
	if err != nil {
		return errors.New("writing reminder to kafka error: " + err.Error())
	}
	return nil
}

func (kn *KafkaNotifier) Close() error {
	return kn.writer.Close()
}

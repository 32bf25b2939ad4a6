package notify

import (
	"context"
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQNotifier publishes reminders as JSON to a durable queue.
type RabbitMQNotifier struct {
	conn    *amqp.Connection
	channel publisher
	closer  func() error
	queue   string
}

func NewRabbitMQNotifier(url, queue string) (*RabbitMQNotifier, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("rabbitmq url is required")
	}
	if strings.TrimSpace(queue) == "" {
		return nil, errors.New("rabbitmq queue is required")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.New("dialing rabbitmq error: " + err.Error())
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.New("opening rabbitmq channel error: " + err.Error())
	}
	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errors.New("declaring reminder queue error: " + err.Error())
	}
	return &RabbitMQNotifier{
		conn:    conn,
		channel: ch,
		closer:  ch.Close,
		queue:   queue,
	}, nil
}

func (rn *RabbitMQNotifier) Notify(ctx context.Context, r Reminder) error {
	body, err := sonic.Marshal(r)
	if err != nil {
		return errors.New("marshalling reminder error: " + err.Error())
	}
	err = rn.channel.PublishWithContext(ctx, "", rn.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    r.UserID.String(),
		Timestamp:    r.SentAt,
		Body:         body,
	})
	if err != nil {
		return errors.New("publishing reminder error: " + err.Error())
	}
	return nil
}

// Close closes the underlying channel and connection.
func (rn *RabbitMQNotifier) Close() error {
	if rn.closer != nil {
		_ = rn.closer()
	}
	if rn.conn != nil {
		return rn.conn.Close()
	}
	return nil
}

// Package amqp publishes lifecycle notifications to a RabbitMQ topic
// exchange. Publishing is best effort: failures are logged and never
// surface to the caller, so a broker outage cannot fail an order
// operation that has already committed.
package amqp

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"foodcourt/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Notifier sends JSON-encoded events to a durable topic exchange, using
// the event topic as the routing key.
type Notifier struct {
	exchange string
	conn     *amqp.Connection
	ch       *amqp.Channel
	logger   *slog.Logger

	mu sync.Mutex
	wg sync.WaitGroup
}

// NewNotifier dials the broker, opens a channel and declares the topic
// exchange. The returned Notifier is safe for concurrent use.
func NewNotifier(url, exchange string, logger *slog.Logger) (*Notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &Notifier{
		exchange: exchange,
		conn:     conn,
		ch:       ch,
		logger:   logger,
	}, nil
}

// Notify publishes the payload asynchronously and returns immediately.
// The message is published even if the caller's context is cancelled
// right after the call, since the state change it reports has already
// been committed.
func (n *Notifier) Notify(ctx context.Context, topic string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		n.logger.ErrorContext(ctx, "marshal notification",
			slog.String("topic", topic), slog.Any("error", err))
		return
	}

	n.wg.Add(1)
	go func(ctx context.Context) {
		defer n.wg.Done()
		n.publish(ctx, topic, body)
	}(context.WithoutCancel(ctx))
}

func (n *Notifier) publish(ctx context.Context, topic string, body []byte) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	n.mu.Lock()
	err := n.ch.PublishWithContext(ctx,
		n.exchange, // exchange
		topic,      // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		})
	n.mu.Unlock()

	if err != nil {
		n.logger.ErrorContext(ctx, "publish notification",
			slog.String("topic", topic), slog.Any("error", err))
		return
	}

	n.logger.DebugContext(ctx, "notification published",
		slog.String("topic", topic))
}

// Close waits for in-flight publishes and releases the channel and
// connection.
func (n *Notifier) Close() error {
	n.wg.Wait()

	if err := n.ch.Close(); err != nil {
		_ = n.conn.Close()
		return err
	}
	return n.conn.Close()
}

var _ ports.Notifier = (*Notifier)(nil)

package amqp

import (
	"context"
	"log/slog"

	"foodcourt/internal/core/ports"
)

// NoopNotifier discards notifications. It stands in for the broker in
// local development when no AMQP URL is configured.
type NoopNotifier struct {
	logger *slog.Logger
}

func NewNoopNotifier(logger *slog.Logger) *NoopNotifier {
	return &NoopNotifier{logger: logger}
}

func (n *NoopNotifier) Notify(ctx context.Context, topic string, _ any) {
	n.logger.DebugContext(ctx, "notification dropped, no broker configured",
		slog.String("topic", topic))
}

var _ ports.Notifier = (*NoopNotifier)(nil)

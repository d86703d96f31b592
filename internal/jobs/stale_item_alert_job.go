package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// TopicStaleItem is the notification topic for items stuck in incoming.
const TopicStaleItem = "kitchen.item_stale"

// StaleItemAlertEvent reports one item that has waited in incoming past the
// configured threshold.
type StaleItemAlertEvent struct {
	ItemID     string    `json:"item_id"`
	ItemKind   string    `json:"item_kind"`
	OrderID    string    `json:"order_id,omitempty"`
	PlacedAt   time.Time `json:"placed_at"`
	WaitingFor string    `json:"waiting_for"`
}

// StaleItemAlertJob periodically scans for items that have sat in the
// incoming status past a threshold and notifies interested parties. The job
// only observes; it never mutates item or order state.
type StaleItemAlertJob struct {
	handler   queries.GetStaleItemsQueryHandler
	notifier  ports.Notifier
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleItemAlertJob creates a job that alerts on items stuck in incoming
// longer than threshold.
func NewStaleItemAlertJob(
	handler queries.GetStaleItemsQueryHandler,
	notifier ports.Notifier,
	threshold time.Duration,
	logger *slog.Logger,
) *StaleItemAlertJob {
	return &StaleItemAlertJob{
		handler:   handler,
		notifier:  notifier,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_item_alert_job"),
	}
}

// Start begins the stale item scan to run once a minute.
func (j *StaleItemAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale item alert job started (running every minute)",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the stale item alert job.
func (j *StaleItemAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale item alert job stopped")
}

func (j *StaleItemAlertJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetStaleItemsQuery(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale item alert job misconfigured", "error", err)
		return
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale item scan failed", "error", err)
		return
	}

	now := time.Now()
	for _, entry := range stale {
		event := StaleItemAlertEvent{
			ItemID:     entry.ItemID.String(),
			ItemKind:   entry.Kind,
			PlacedAt:   entry.PlacedAt,
			WaitingFor: now.Sub(entry.PlacedAt).Round(time.Second).String(),
		}
		if entry.OrderID != nil {
			event.OrderID = entry.OrderID.String()
		}

		j.notifier.Notify(ctx, TopicStaleItem, event)
	}

	if len(stale) > 0 {
		j.logger.WarnContext(ctx, "Stale incoming items detected",
			"count", len(stale), "threshold", j.threshold.String())
	}
}

package ports

import "context"

// Notifier is the best-effort signal to interested parties (e.g. a kitchen
// display) after a committed creation or status change.
//
// Notify is fire-and-forget: implementations log failures and never return
// them, ordering across notifications is not guaranteed, and delivery is at
// most once per change. Callers must invoke it only after their transaction
// has committed, and must never let a notification problem affect the
// operation that produced the state change.
type Notifier interface {
	Notify(ctx context.Context, topic string, payload any)
}

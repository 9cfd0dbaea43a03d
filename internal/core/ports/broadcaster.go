package ports

import "github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"

// EventPublisher fans lifecycle events out to the office's current
// subscribers. Publishing is best-effort and never blocks the transition
// that triggered it.
type EventPublisher interface {
	Publish(officeID string, event domain.LifecycleEvent)
}

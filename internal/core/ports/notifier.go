package ports

import "context"

// Notification describes a message scheduled after a successful transition.
// Delivery is fire-and-forget: a failed send is logged and never rolls the
// transition back.
type Notification struct {
	Kind          string // lifecycle event kind, e.g. "approved"
	AppointmentID string
	OfficeID      string
	Recipient     string // phone in E.164, or an email address
	Message       string
}

// Notifier delivers a single notification to its recipient.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NotificationScheduler accepts notifications for asynchronous delivery.
// Schedule never blocks the calling transition.
type NotificationScheduler interface {
	Schedule(n Notification)
}

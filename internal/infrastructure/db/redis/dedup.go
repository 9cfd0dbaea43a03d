package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// NotificationDedup suppresses duplicate notification sends for the same
// appointment and event kind, e.g. when a delivery is retried after a
// partial failure. Key format: notif:<appointment_id>:<kind>
type NotificationDedup struct {
	client *redis.Client
}

// NewNotificationDedup creates a NotificationDedup wrapping the given client.
func NewNotificationDedup(client *redis.Client) *NotificationDedup {
	return &NotificationDedup{client: client}
}

// Seen reports whether a notification for this appointment and kind has
// already been sent within the dedup window.
func (d *NotificationDedup) Seen(ctx context.Context, appointmentID, kind string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(appointmentID, kind)).Result()
	if err != nil {
		return false, fmt.Errorf("notification dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this notification has been sent (expires after dedupTTL).
func (d *NotificationDedup) Mark(ctx context.Context, appointmentID, kind string) error {
	return d.client.Set(ctx, d.key(appointmentID, kind), "1", dedupTTL).Err()
}

func (d *NotificationDedup) key(appointmentID, kind string) string {
	return fmt.Sprintf("notif:%s:%s", appointmentID, kind)
}

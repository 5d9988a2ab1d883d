package builder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savannatrails/safari-backend/pkg/logger"
)

const (
	packageCreatedEventType = "package.created"
	defaultPublishTimeout   = 10 * time.Second
)

// PackageCreatedEvent is emitted after a package is persisted. Consumers use
// it for notifications; the builder never waits on delivery.
type PackageCreatedEvent struct {
	EventID    string          `json:"event_id"`
	PackageID  uuid.UUID       `json:"package_id"`
	Name       string          `json:"name"`
	Total      decimal.Decimal `json:"total"`
	ItemCount  int             `json:"item_count"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Notifier publishes builder lifecycle events to Pub/Sub.
type Notifier struct {
	publisher *gcppubsub.Publisher
	logg      *logger.Logger
}

// NewNotifier wraps a Pub/Sub publisher handle. A nil publisher yields a
// notifier that drops events.
func NewNotifier(publisher *gcppubsub.Publisher, logg *logger.Logger) *Notifier {
	return &Notifier{publisher: publisher, logg: logg}
}

// PublishPackageCreated sends the event and waits for the server ack within
// the publish timeout.
func (n *Notifier) PublishPackageCreated(ctx context.Context, event PackageCreatedEvent) error {
	if n == nil || n.publisher == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", packageCreatedEventType, err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, defaultPublishTimeout)
	defer cancel()

	result := n.publisher.Publish(publishCtx, &gcppubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_id":    event.EventID,
			"event_type":  packageCreatedEventType,
			"occurred_at": event.OccurredAt.Format(time.RFC3339Nano),
		},
	})
	if _, err := result.Get(publishCtx); err != nil {
		return fmt.Errorf("publish %s event: %w", packageCreatedEventType, err)
	}
	if n.logg != nil {
		n.logg.Info(ctx, fmt.Sprintf("published %s event for package %s", packageCreatedEventType, event.PackageID))
	}
	return nil
}

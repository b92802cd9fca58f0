package port

import (
	"context"

	"github.com/hqv2016/shop-ledger/internal/core/domain"
)

type EventSink interface {
	// Publish appends one event to the notification log. The ledger writes
	// events after successful state changes and never reads them back.
	Publish(ctx context.Context, event domain.Event) error
}

package httpx

import (
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/puregold/inventory-api/internal/events"
	kafkax "github.com/puregold/inventory-api/internal/kafka"
	"github.com/puregold/inventory-api/internal/orders"
)

// publish wraps post-commit event publication. Publishing is fire-and-forget;
// a committed mutation never fails because of the event stream.
func publish(prod *kafkax.Producer, service, eventType, trace string, key []byte, payload any) {
	ev := events.Envelope{
		EventID:      uuid.NewString(),
		EventType:    eventType,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     service,
		TraceID:      trace,
		Payload:      kafkax.MustMarshal(payload),
	}
	prod.Publish(key, kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func publishStockChanges(prod *kafkax.Producer, service, trace string, changes []orders.StockChange) {
	for _, c := range changes {
		publish(prod, service, events.EventStockChanged, trace, events.PartitionKey(c.Transaction.ProductID), events.StockChangedPayload{
			TransactionID: c.Transaction.ID,
			ProductID:     c.Transaction.ProductID,
			Type:          string(c.Transaction.Type),
			Quantity:      c.Transaction.Quantity,
			Remaining:     c.Remaining,
			UserID:        c.Transaction.UserID,
		})
	}
}

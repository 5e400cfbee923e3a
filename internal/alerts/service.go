package alerts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/puregold/inventory-api/internal/catalog"
	"github.com/puregold/inventory-api/internal/events"
	kafkax "github.com/puregold/inventory-api/internal/kafka"
	"github.com/puregold/inventory-api/internal/redisx"
)

// ProductReader is the slice of the catalog the alert worker needs.
type ProductReader interface {
	GetProduct(ctx context.Context, id int64) (catalog.Product, error)
}

// Service watches stock-change events and raises a low-stock alert when a
// product drops to or below its reorder level. Alerts are suppressed per
// product for a TTL so a busy product does not flood the log.
type Service struct {
	Products ProductReader
	Redis    *redis.Client
	Log      zerolog.Logger
}

// HandleStockChanged is attached as the consumer handler.
func (s *Service) HandleStockChanged(ctx context.Context, m kafkago.Message) error {
	var env events.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != events.EventStockChanged {
		return nil
	}

	dkey := fmt.Sprintf(redisx.KeyDedup, "alerts", env.EventID)
	if seen, _ := redisx.Exists(ctx, s.Redis, dkey); seen {
		return nil
	}
	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	p, err := kafkax.UnwrapPayload[events.StockChangedPayload](env.Payload)
	if err != nil {
		return err
	}

	product, err := s.Products.GetProduct(ctx, p.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		return nil // deleted since the event was published
	}
	if err != nil {
		return err
	}
	if !product.LowStock() {
		return nil
	}

	akey := fmt.Sprintf(redisx.KeyLowStockAlert, product.ID)
	fresh, err := s.Redis.SetNX(ctx, akey, "1", redisx.TTLLowStockAlert).Result()
	if err == nil && !fresh {
		return nil // already alerted recently
	}

	s.Log.Warn().
		Int64("product_id", product.ID).
		Str("sku", product.SKU).
		Int("quantity", product.Quantity).
		Int("reorder_level", product.ReorderLevel).
		Msg("low stock alert")
	return nil
}

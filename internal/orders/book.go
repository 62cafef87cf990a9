package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/elavarasan-maker/RETAILIQO/internal/kafka"
	"github.com/elavarasan-maker/RETAILIQO/internal/redisx"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher is the slice of the event producer Book needs.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Book places orders: persists the row, primes the status cache, and
// broadcasts the order to the supplier topic. Cache and broadcast are best
// effort; the database row is the record.
type Book struct {
	Repo     *Repo
	Producer Publisher
	Redis    *redis.Client
	Service  string
}

func (b *Book) Place(ctx context.Context, o Order, merchantMobile, source string) error {
	if err := b.Repo.Create(ctx, o, merchantMobile); err != nil {
		return err
	}

	if b.Redis != nil {
		statusKey := fmt.Sprintf(redisx.KeyOrderStatus, o.ID)
		_ = b.Redis.Set(ctx, statusKey,
			fmt.Sprintf(`{"status":%q,"tracking_number":%q}`, o.Status, o.TrackingNumber),
			redisx.TTLStatusCache).Err()
	}

	if b.Producer == nil {
		return nil
	}
	items := make([]ItemQty, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemQty{ProductID: it.ID, Qty: it.Quantity})
	}
	ev := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderCreated,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      b.Service,
		CorrelationID: o.ID,
		Payload: kafka.MustMarshal(OrderCreatedPayload{
			OrderID:        o.ID,
			MerchantMobile: merchantMobile,
			Items:          items,
			Total:          o.Total,
			Source:         source,
		}),
	}
	b.Producer.Publish(PartitionKey(o.ID), kafka.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(EventOrderCreated)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
	return nil
}

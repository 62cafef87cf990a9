// Package dispatch is the supplier-side worker: it consumes order.created
// events and advances each order to Dispatched, emitting order.dispatched.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/elavarasan-maker/RETAILIQO/internal/kafka"
	"github.com/elavarasan-maker/RETAILIQO/internal/orders"
	"github.com/elavarasan-maker/RETAILIQO/internal/redisx"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

// OrderStore is the slice of the orders repo the worker needs.
type OrderStore interface {
	UpdateStatus(ctx context.Context, orderID string, to orders.Status) error
	GetStatus(ctx context.Context, orderID string) (orders.Status, string, error)
}

type Service struct {
	Store       OrderStore
	Redis       *redis.Client
	Producer    orders.Publisher
	ServiceName string
}

// HandleOrderCreated is installed as the consumer handler. A non-nil return
// leaves the offset uncommitted so the event is redelivered; the dedup key is
// only written once the status advance has succeeded, so a failed attempt
// never shadows the retry.
func (s *Service) HandleOrderCreated(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := kafka.UnmarshalEnvelope(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != orders.EventOrderCreated {
		return nil
	}

	dkey := fmt.Sprintf(redisx.KeyDedup, "dispatch", env.EventID)
	if exists, _ := redisx.Exists(ctx, s.Redis, dkey); exists {
		return nil
	}

	p, err := kafka.UnwrapPayload[orders.OrderCreatedPayload](env.Payload)
	if err != nil {
		return err
	}

	if err := s.Store.UpdateStatus(ctx, p.OrderID, orders.StatusDispatched); err != nil {
		return err
	}
	_, tracking, err := s.Store.GetStatus(ctx, p.OrderID)
	if err != nil {
		return err
	}

	_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()

	statusKey := fmt.Sprintf(redisx.KeyOrderStatus, p.OrderID)
	_ = s.Redis.Set(ctx, statusKey,
		fmt.Sprintf(`{"status":%q,"tracking_number":%q}`, orders.StatusDispatched, tracking),
		redisx.TTLStatusCache).Err()

	return s.publishDispatched(p.OrderID, tracking, env.TraceID)
}

func (s *Service) publishDispatched(orderID, tracking, trace string) error {
	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventOrderDispatched,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      s.ServiceName,
		TraceID:       trace,
		CorrelationID: orderID,
		Payload: kafka.MustMarshal(orders.OrderDispatchedPayload{
			OrderID:        orderID,
			TrackingNumber: tracking,
		}),
	}
	s.Producer.Publish(orders.PartitionKey(orderID), kafka.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderDispatched)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
	return nil
}

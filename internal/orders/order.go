package orders

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/elavarasan-maker/RETAILIQO/internal/catalog"
)

// Order is a placed purchase. Append-only from the merchant's side; only the
// dispatch worker advances Status afterwards.
type Order struct {
	ID             string             `json:"id"`
	Date           time.Time          `json:"date"`
	Items          []catalog.CartItem `json:"items"`
	Total          float64            `json:"total"`
	Status         Status             `json:"status"`
	TrackingNumber string             `json:"tracking_number"`
}

type Status string

const (
	StatusPending    Status = "Pending"
	StatusDispatched Status = "Dispatched"
	StatusDelivered  Status = "Delivered"
)

var validNext = map[Status]map[Status]bool{
	StatusPending:    {StatusDispatched: true},
	StatusDispatched: {StatusDelivered: true},
	StatusDelivered:  {},
}

func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewOrderID returns a human-readable order id like "RT-48213".
func NewOrderID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, 10000+rand.Intn(90000))
}

// NewTrackingNumber returns a tracking code like "TXN7G2K9QD".
func NewTrackingNumber() string {
	var b strings.Builder
	b.WriteString("TXN")
	for i := 0; i < 7; i++ {
		b.WriteByte(trackingAlphabet[rand.Intn(len(trackingAlphabet))])
	}
	return b.String()
}

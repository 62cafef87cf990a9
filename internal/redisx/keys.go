package redisx

import "time"

const (
	// Cached merchant profile under a fixed application key, one entry.
	// Written on every profile mutation, read at session start, deleted on logout.
	KeyProfile = "retailiqo_user"

	// Order status cache: order_status:{order_id} -> {"status": "...", "tracking_number": "..."}
	KeyOrderStatus = "order_status:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLStatusCache = 5 * time.Minute
	TTLDedup       = 48 * time.Hour
)

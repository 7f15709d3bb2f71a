package store

import "errors"

// In-memory stores backing the demo. Nothing here survives a restart: the
// system is explicitly non-persistent, every collection is seeded or filled
// at runtime.

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrDeliveryNotFound = errors.New("delivery not found")
)

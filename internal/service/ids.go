package service

import (
	"fmt"
	"sync/atomic"
	"time"
)

var lastID atomic.Int64

// newID builds identifiers like evt_1717257600123456789. Entity IDs are
// timestamp-shaped; the swap loop keeps them strictly increasing even when
// two allocations land on the same clock reading.
func newID(prefix string) string {
	now := time.Now().UnixNano()
	for {
		prev := lastID.Load()
		if now <= prev {
			now = prev + 1
		}
		if lastID.CompareAndSwap(prev, now) {
			break
		}
	}

	return fmt.Sprintf("%s_%d", prefix, now)
}

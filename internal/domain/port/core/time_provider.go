package core

import "time"

// TimeProvider abstracts clock access so timestamps stamped on transactions
// and order IDs are testable
type TimeProvider interface {
	Now() time.Time
}

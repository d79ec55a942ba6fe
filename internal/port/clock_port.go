package port

import "time"

// Clock supplies "today" for expiry checks.
type Clock interface {
	Today() time.Time
}

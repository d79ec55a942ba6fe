package clock

import (
	"github.com/nikolayk812/checkout-demo/internal/port"
	"time"
)

type systemClock struct{}

func System() port.Clock {
	return systemClock{}
}

func (systemClock) Today() time.Time {
	return time.Now()
}

type fixedClock struct {
	today time.Time
}

// Fixed always reports the given day, for tests and replaying a transcript.
func Fixed(today time.Time) port.Clock {
	return fixedClock{today: today}
}

func (c fixedClock) Today() time.Time {
	return c.today
}

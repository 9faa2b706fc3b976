package layoutdoc

import (
	"sync"
	"time"
)

// throttle ensures a minimum interval between successive reloads.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// wait blocks until the interval since the previous call has passed or done
// is closed. It reports false when cancelled.
func (t *throttle) wait(done <-chan struct{}) bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	for {
		t.mu.Lock()
		wait := time.Until(t.next)
		if wait <= 0 {
			t.next = time.Now().Add(t.interval)
			t.mu.Unlock()
			return true
		}
		t.mu.Unlock()
		if wait > t.interval {
			wait = t.interval
		}
		timer := time.NewTimer(wait)
		select {
		case <-done:
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}

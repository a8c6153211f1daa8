package session

import "time"

// timer is a deadline handle driven by Engine.Tick. A zero timer is inactive.
type timer struct {
	due    time.Time
	every  time.Duration
	active bool
}

func (t *timer) arm(due time.Time, every time.Duration) {
	t.due = due
	t.every = every
	t.active = true
}

func (t *timer) cancel() {
	*t = timer{}
}

// fire reports whether the timer is due at now. A periodic timer advances to
// its next deadline; a one-shot timer disarms.
func (t *timer) fire(now time.Time) bool {
	if !t.active || now.Before(t.due) {
		return false
	}
	if t.every <= 0 {
		t.active = false
		return true
	}
	for !now.Before(t.due) {
		t.due = t.due.Add(t.every)
	}
	return true
}

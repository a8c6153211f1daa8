package play

import "time"

// tickMsg drives the engine clock for one session. Ticks from an earlier
// session are dropped.
type tickMsg struct {
	session string
	at      time.Time
}

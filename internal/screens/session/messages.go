package session

import (
	"sync/atomic"
	"time"
)

// tickMsg drives the drill countdowns. Each screen only accepts ticks
// carrying its own id so a replaced screen's loop dies out.
type tickMsg struct {
	id uint64
	at time.Time
}

var screenIDs atomic.Uint64

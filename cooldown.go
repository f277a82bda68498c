package grasp

import "time"

// Guard enforces minimum re-trigger intervals per cooldown key. Keys are
// free-form strings; [GlobalTouchKey] is shared by all touch controls while
// each control also stamps its own key. Records live for the session.
type Guard struct {
	last map[string]time.Time
}

// NewGuard creates an empty guard. Every key's first fire succeeds.
func NewGuard() *Guard {
	return &Guard{last: make(map[string]time.Time)}
}

// TryFire returns true and records now as the key's last fire time only if
// at least window has elapsed since the previous fire. A key with no record
// always fires.
func (g *Guard) TryFire(key string, now time.Time, window time.Duration) bool {
	if !g.Ready(key, now, window) {
		return false
	}
	g.Stamp(key, now)
	return true
}

// Ready reports whether the key could fire at now, without recording
// anything. Machines that gate on several keys (global plus per-target)
// check all of them with Ready before stamping any, so a rejection on one
// key never burns another key's window.
func (g *Guard) Ready(key string, now time.Time, window time.Duration) bool {
	t, ok := g.last[key]
	if !ok {
		return true
	}
	return now.Sub(t) >= window
}

// Stamp records now as the key's last fire time.
func (g *Guard) Stamp(key string, now time.Time) {
	g.last[key] = now
}

// Reset forgets a key so its next fire succeeds.
func (g *Guard) Reset(key string) {
	delete(g.last, key)
}

// Clear forgets all keys.
func (g *Guard) Clear() {
	clear(g.last)
}

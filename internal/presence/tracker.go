// Package presence tracks the latest announced mood per user. Moods live in
// process memory only; the message store stays the single source of truth
// for anything durable.
package presence

import "sync"

// DefaultMood is assigned the first time a user announces presence.
const DefaultMood = "Happy"

// Tracker owns the username-to-mood map. It is only ever handed out as
// snapshots; the map itself never crosses a concurrency boundary. Entries
// are never removed, so a disconnected user keeps their last mood.
type Tracker struct {
	mu    sync.Mutex
	moods map[string]string
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{moods: make(map[string]string)}
}

// Announce records the default mood for username if they have none yet.
// It returns the current snapshot and whether the map changed, so the
// caller can decide between replying to the announcer only and
// broadcasting to everyone.
func (t *Tracker) Announce(username string) (map[string]string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	changed := false
	if _, ok := t.moods[username]; !ok {
		t.moods[username] = DefaultMood
		changed = true
	}
	return t.snapshotLocked(), changed
}

// SetMood unconditionally overwrites the user's mood and returns the
// updated snapshot.
func (t *Tracker) SetMood(username, mood string) map[string]string {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.moods[username] = mood
	return t.snapshotLocked()
}

// Snapshot returns a copy of the current mood map.
func (t *Tracker) Snapshot() map[string]string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Tracker) snapshotLocked() map[string]string {
	snapshot := make(map[string]string, len(t.moods))
	for username, mood := range t.moods {
		snapshot[username] = mood
	}
	return snapshot
}

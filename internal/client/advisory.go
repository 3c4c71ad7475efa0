package client

import (
	"sync"
	"time"
)

// AdvisorySyncFailed is shown when the server refused or never confirmed an
// action that was already drawn locally.
const AdvisorySyncFailed = "Sync failed, action undone."

// Advisory holds one short message for the player and forgets it after ttl.
type Advisory struct {
	mu      sync.Mutex
	text    string
	expires time.Time
	ttl     time.Duration
	now     func() time.Time
}

func NewAdvisory(ttl time.Duration) *Advisory {
	return &Advisory{ttl: ttl, now: time.Now}
}

// Post replaces the current message. An empty text clears it.
func (a *Advisory) Post(text string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.text = text
	a.expires = a.now().Add(a.ttl)
}

func (a *Advisory) Clear() {
	a.Post("")
}

// Text returns the message, or "" once it has expired. A zero ttl never
// expires.
func (a *Advisory) Text() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ttl > 0 && !a.now().Before(a.expires) {
		return ""
	}
	return a.text
}

package alert

import (
	"fmt"
	"sync"
)

// Deduper tracks which alerts have already fired and which languages have
// already heard the tithi announcement, for a single calendar date. All
// state resets when the date rolls over.
type Deduper struct {
	mu         sync.Mutex
	activeDate string
	fired      map[string]struct{}
	tithiLangs map[string]struct{}
}

func NewDeduper() *Deduper {
	return &Deduper{
		fired:      make(map[string]struct{}),
		tithiLangs: make(map[string]struct{}),
	}
}

func alertKey(muhurtaKey, language string) string {
	return fmt.Sprintf("%s-%s", muhurtaKey, language)
}

// EnsureDate clears all recorded state when date differs from the active
// date. Calling it again with the same date is a no-op.
func (d *Deduper) EnsureDate(date string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.activeDate == date {
		return
	}
	d.activeDate = date
	d.fired = make(map[string]struct{})
	d.tithiLangs = make(map[string]struct{})
}

// HasFired reports whether the (muhurta, language) alert already fired today.
func (d *Deduper) HasFired(muhurtaKey, language string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.fired[alertKey(muhurtaKey, language)]
	return ok
}

// MarkFired records a completed alert. Only call after speech finished
// uninterrupted.
func (d *Deduper) MarkFired(muhurtaKey, language string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fired[alertKey(muhurtaKey, language)] = struct{}{}
}

// HasSpokenTithi reports whether the tithi announcement already played in
// the given language today.
func (d *Deduper) HasSpokenTithi(language string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.tithiLangs[language]
	return ok
}

func (d *Deduper) MarkSpokenTithi(language string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tithiLangs[language] = struct{}{}
}

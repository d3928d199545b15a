package alert

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/panchang-seva/panchangam/internal/model"
	"github.com/panchang-seva/panchangam/internal/speech"
)

type fakeSpeaker struct {
	mu            sync.Mutex
	busy          bool
	interruptNext bool
	spoken        []string
}

func (f *fakeSpeaker) Speak(ctx context.Context, text, language string) speech.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
	if f.interruptNext {
		f.interruptNext = false
		return speech.Result{Interrupted: true}
	}
	return speech.Result{Interrupted: false}
}

func (f *fakeSpeaker) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

func (f *fakeSpeaker) setBusy(b bool) {
	f.mu.Lock()
	f.busy = b
	f.mu.Unlock()
}

func (f *fakeSpeaker) messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.spoken))
	copy(out, f.spoken)
	return out
}

type fakeAnnouncer struct {
	mu     sync.Mutex
	events []AlertEvent
}

func (f *fakeAnnouncer) AnnounceAlert(ctx context.Context, ev AlertEvent) {
	f.mu.Lock()
	f.events = append(f.events, ev)
	f.mu.Unlock()
}

func fixedDay(day *model.Day) DayFunc {
	return func(ctx context.Context, date string) (*model.Day, error) {
		return day, nil
	}
}

func testPoller(day *model.Day, now time.Time, speaker Speaker, announcer Announcer) (*Poller, *Session) {
	session := NewSession()
	p := NewPoller(session, fixedDay(day), speaker, announcer, PollerConfig{
		InstanceID: "test",
		Language:   "en",
		Now:        func() time.Time { return now },
	})
	return p, session
}

func TestPollerFiresAtAlertTimeAndOnlyOnce(t *testing.T) {
	day := &model.Day{Date: "26/08/2026", RahuKalam: "06:05 PM to 06:30 PM"}
	now := time.Date(2026, 8, 26, 17, 5, 0, 0, time.Local)
	speaker := &fakeSpeaker{}
	announcer := &fakeAnnouncer{}
	p, session := testPoller(day, now, speaker, announcer)

	p.tick(context.Background())

	msgs := speaker.messages()
	if len(msgs) != 1 {
		t.Fatalf("spoke %d messages, want 1: %v", len(msgs), msgs)
	}
	if !strings.Contains(msgs[0], "Rahu Kalam") {
		t.Errorf("announcement missing muhurta name: %q", msgs[0])
	}
	if !session.Deduper.HasFired("Rahu Kalam", "en") {
		t.Error("completed alert not recorded")
	}
	if len(announcer.events) != 1 || announcer.events[0].AlertTime != "17:05:00" {
		t.Errorf("announcer events = %+v", announcer.events)
	}

	// The next cycles inside the 30s slack must stay silent.
	p.tick(context.Background())
	p.tick(context.Background())
	if got := len(speaker.messages()); got != 1 {
		t.Fatalf("alert repeated, spoke %d messages", got)
	}
}

func TestPollerFiresNoonStraddlingWindow(t *testing.T) {
	// Abhijit starts before noon and ends after; its lead alert is 10:45 in
	// the morning, not anything derived from the end's PM.
	day := &model.Day{Date: "26/08/2026", Abhijit: "11:45 AM to 12:30 PM"}
	speaker := &fakeSpeaker{}
	announcer := &fakeAnnouncer{}

	now := time.Date(2026, 8, 26, 10, 45, 0, 0, time.Local)
	p, _ := testPoller(day, now, speaker, announcer)
	p.tick(context.Background())

	msgs := speaker.messages()
	if len(msgs) != 1 {
		t.Fatalf("spoke %d messages at 10:45, want 1: %v", len(msgs), msgs)
	}
	if !strings.Contains(msgs[0], "Abhijit") {
		t.Errorf("announcement missing muhurta name: %q", msgs[0])
	}
	if len(announcer.events) != 1 || announcer.events[0].AlertTime != "10:45:00" {
		t.Errorf("announcer events = %+v", announcer.events)
	}

	// The evening must stay quiet for the same window.
	evening := &fakeSpeaker{}
	p, _ = testPoller(day, time.Date(2026, 8, 26, 22, 45, 0, 0, time.Local), evening, nil)
	p.tick(context.Background())
	if len(evening.messages()) != 0 {
		t.Fatalf("spoke at 22:45 for a morning window: %v", evening.messages())
	}
}

func TestPollerOutsideTriggerWindowStaysQuiet(t *testing.T) {
	day := &model.Day{Date: "26/08/2026", RahuKalam: "06:05 PM to 06:30 PM"}
	now := time.Date(2026, 8, 26, 17, 5, 31, 0, time.Local)
	speaker := &fakeSpeaker{}
	p, _ := testPoller(day, now, speaker, nil)

	p.tick(context.Background())
	if len(speaker.messages()) != 0 {
		t.Fatalf("spoke outside trigger window: %v", speaker.messages())
	}
}

func TestPollerGroupsCoincidingAlerts(t *testing.T) {
	day := &model.Day{
		Date:         "26/08/2026",
		RahuKalam:    "09:00 AM to 10:30 AM",
		GulikaiKalam: "09:00 AM to 09:45 AM",
	}
	now := time.Date(2026, 8, 26, 8, 0, 0, 0, time.Local)
	speaker := &fakeSpeaker{}
	p, session := testPoller(day, now, speaker, nil)

	p.tick(context.Background())

	msgs := speaker.messages()
	if len(msgs) != 1 {
		t.Fatalf("coinciding alerts spoke %d messages, want 1 combined: %v", len(msgs), msgs)
	}
	if !strings.Contains(msgs[0], "Rahu Kalam") || !strings.Contains(msgs[0], "Gulikai Kalam") {
		t.Errorf("combined message missing a name: %q", msgs[0])
	}
	if !session.Deduper.HasFired("Rahu Kalam", "en") || !session.Deduper.HasFired("Gulikai Kalam", "en") {
		t.Error("not every grouped member was recorded")
	}
}

func TestPollerDefersWhileSpeechBusy(t *testing.T) {
	day := &model.Day{Date: "26/08/2026", Varjyam: "11:00 PM to 11:45 PM"}
	now := time.Date(2026, 8, 26, 22, 0, 10, 0, time.Local)
	speaker := &fakeSpeaker{}
	speaker.setBusy(true)
	p, session := testPoller(day, now, speaker, nil)

	p.tick(context.Background())
	if len(speaker.messages()) != 0 {
		t.Fatal("fired while speech was busy")
	}
	if session.Deduper.HasFired("Varjyam", "en") {
		t.Fatal("deferred alert marked fired")
	}

	speaker.setBusy(false)
	p.tick(context.Background())
	if len(speaker.messages()) != 1 {
		t.Fatal("deferred alert did not fire on the next cycle")
	}
}

func TestPollerRetriesInterruptedAlert(t *testing.T) {
	day := &model.Day{Date: "26/08/2026", Yamaganda: "02:00 PM to 03:30 PM"}
	now := time.Date(2026, 8, 26, 13, 0, 5, 0, time.Local)
	speaker := &fakeSpeaker{interruptNext: true}
	p, session := testPoller(day, now, speaker, nil)

	p.tick(context.Background())
	if session.Deduper.HasFired("Yamaganda", "en") {
		t.Fatal("interrupted alert marked fired")
	}

	p.tick(context.Background())
	if !session.Deduper.HasFired("Yamaganda", "en") {
		t.Fatal("alert not retried after interruption")
	}
	if got := len(speaker.messages()); got != 2 {
		t.Fatalf("spoke %d messages, want 2 (interrupted then retried)", got)
	}
}

func TestPollerLeaseArbitration(t *testing.T) {
	day := &model.Day{Date: "26/08/2026"}
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local)
	session := NewSession()
	speaker := &fakeSpeaker{}

	first := NewPoller(session, fixedDay(day), speaker, nil, PollerConfig{
		InstanceID: "one", Now: func() time.Time { return now },
	})
	second := NewPoller(session, fixedDay(day), speaker, nil, PollerConfig{
		InstanceID: "two", Now: func() time.Time { return now },
	})

	first.tick(context.Background())
	second.tick(context.Background())
	if first.State() != StateActive {
		t.Fatalf("first poller state = %v, want active", first.State())
	}
	if second.State() != StateUnleased {
		t.Fatalf("second poller state = %v, want unleased", second.State())
	}

	// Disabling the holder frees the lease for the passive instance.
	first.SetEnabled(false)
	second.tick(context.Background())
	if second.State() != StateActive {
		t.Fatalf("second poller did not take over, state = %v", second.State())
	}
}

func TestLanguageChangedSpeaksImmediateAlertAndTithi(t *testing.T) {
	day := &model.Day{
		Date:      "26/08/2026",
		Tithi:     "Ashtami",
		RahuKalam: "06:05 PM to 06:30 PM",
	}
	now := time.Date(2026, 8, 26, 17, 35, 0, 0, time.Local)
	speaker := &fakeSpeaker{}
	p, session := testPoller(day, now, speaker, nil)

	p.LanguageChanged(context.Background(), "hi")

	msgs := speaker.messages()
	if len(msgs) != 2 {
		t.Fatalf("spoke %d messages, want immediate alert + tithi: %v", len(msgs), msgs)
	}
	if !strings.Contains(msgs[0], "30") || !strings.Contains(msgs[0], "राहुकाल") {
		t.Errorf("immediate alert = %q, want minutes and localized name", msgs[0])
	}
	if !strings.Contains(msgs[1], "अष्टमी") && !strings.Contains(msgs[1], "Ashtami") {
		t.Errorf("tithi announcement = %q", msgs[1])
	}
	if !session.Deduper.HasSpokenTithi("hi") {
		t.Error("tithi language not recorded")
	}
	if p.Language() != "hi" {
		t.Errorf("poller language = %q", p.Language())
	}

	// Switching back and forth must not repeat the tithi for a language
	// that already heard it.
	p.LanguageChanged(context.Background(), "hi")
	msgs = speaker.messages()
	for _, m := range msgs[2:] {
		if strings.Contains(m, "तिथि") {
			t.Fatalf("tithi repeated for the same language: %q", m)
		}
	}
}

func TestLanguageChangedSkipsPassedWindows(t *testing.T) {
	day := &model.Day{
		Date:      "26/08/2026",
		Tithi:     "Navami",
		RahuKalam: "09:00 AM to 10:30 AM",
	}
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.Local)
	speaker := &fakeSpeaker{}
	p, _ := testPoller(day, now, speaker, nil)

	p.LanguageChanged(context.Background(), "en")
	msgs := speaker.messages()
	if len(msgs) != 1 {
		t.Fatalf("spoke %d messages, want tithi only: %v", len(msgs), msgs)
	}
	if !strings.Contains(msgs[0], "Navami") {
		t.Errorf("expected tithi announcement, got %q", msgs[0])
	}
}

func TestPollerRunReleasesLeaseOnShutdown(t *testing.T) {
	day := &model.Day{Date: "26/08/2026"}
	session := NewSession()
	speaker := &fakeSpeaker{}
	p := NewPoller(session, fixedDay(day), speaker, nil, PollerConfig{
		InstanceID: "one",
		Interval:   time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for session.Lease.Owner() != "one" {
		if time.Now().After(deadline) {
			t.Fatal("poller never acquired the lease")
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop")
	}
	if session.Lease.Owner() != "" {
		t.Fatal("lease not released on shutdown")
	}
}

package alert

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/panchang-seva/panchangam/internal/muhurta"
)

// ScheduleResult is the outcome of a schedule request, shaped for the HTTP
// reply.
type ScheduleResult struct {
	Message        string `json:"message"`
	Scheduled      bool   `json:"scheduled"`
	AlertTime      string `json:"alertTime,omitempty"`
	DurMuhurtam    string `json:"durMuhurtam,omitempty"`
	TimeUntilAlert string `json:"timeUntilAlert,omitempty"`
}

// Scheduler keeps at most one pending Durmuhurtham timer per date.
// Re-scheduling a date replaces its timer.
type Scheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	now    func() time.Time
	onFire func(date string)
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[string]*time.Timer),
		now:    time.Now,
	}
}

// SetOnFire installs a hook invoked when a scheduled alert fires. Used for
// device fan-out and by tests.
func (s *Scheduler) SetOnFire(fn func(date string)) {
	s.mu.Lock()
	s.onFire = fn
	s.mu.Unlock()
}

// SetNow overrides the clock in tests.
func (s *Scheduler) SetNow(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// Schedule arms a one-hour-lead timer for the given timing on the given
// date. Times already in the past reply without scheduling.
func (s *Scheduler) Schedule(date, timing string) ScheduleResult {
	clock, ok := muhurta.ParseClockAny(timing)
	if !ok {
		return ScheduleResult{Message: "Invalid time format", Scheduled: false}
	}

	s.mu.Lock()
	nowFn := s.now
	s.mu.Unlock()
	now := nowFn()

	target := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour, clock.Minute, 0, 0, now.Location())
	if !target.After(now) {
		return ScheduleResult{Message: "Durmuhurtham time has already passed today", Scheduled: false}
	}

	alertAt := target.Add(-time.Duration(muhurta.DefaultLeadMinutes) * time.Minute)
	untilAlert := alertAt.Sub(now)
	if untilAlert < 0 {
		return ScheduleResult{Message: "Alert time has passed, but Durmuhurtham is upcoming", Scheduled: false}
	}

	s.mu.Lock()
	if existing, ok := s.timers[date]; ok {
		existing.Stop()
	}
	s.timers[date] = time.AfterFunc(untilAlert, func() {
		s.mu.Lock()
		delete(s.timers, date)
		fire := s.onFire
		s.mu.Unlock()
		log.Info().Str("date", date).Msg("scheduled durmuhurtham alert triggered")
		if fire != nil {
			fire(date)
		}
	})
	s.mu.Unlock()

	return ScheduleResult{
		Message:        "Notification scheduled successfully",
		Scheduled:      true,
		AlertTime:      alertAt.Format("03:04 PM"),
		DurMuhurtam:    timing,
		TimeUntilAlert: fmt.Sprintf("%d seconds", int(untilAlert/time.Second)),
	}
}

// Pending reports whether a timer is armed for date.
func (s *Scheduler) Pending(date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[date]
	return ok
}

// Dates lists every date with an armed timer, sorted.
func (s *Scheduler) Dates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.timers))
	for date := range s.timers {
		out = append(out, date)
	}
	sort.Strings(out)
	return out
}

// Cancel stops and removes the timer for date, if any.
func (s *Scheduler) Cancel(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[date]; ok {
		t.Stop()
		delete(s.timers, date)
	}
}

// Stop cancels every pending timer.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for date, t := range s.timers {
		t.Stop()
		delete(s.timers, date)
	}
}

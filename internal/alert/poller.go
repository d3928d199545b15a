package alert

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/panchang-seva/panchangam/internal/model"
	"github.com/panchang-seva/panchangam/internal/muhurta"
	"github.com/panchang-seva/panchangam/internal/speech"
)

// State is the poller's lifecycle phase.
type State int

const (
	// StateIdle means alerts are disabled.
	StateIdle State = iota
	// StateUnleased means alerts are enabled but another instance holds the
	// poll lease.
	StateUnleased
	// StateActive means this instance holds the lease and is polling.
	StateActive
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUnleased:
		return "unleased"
	case StateActive:
		return "active"
	}
	return "unknown"
}

// Speaker is the slice of the speech sequencer the poller needs.
type Speaker interface {
	Speak(ctx context.Context, text, language string) speech.Result
	Busy() bool
}

// DayFunc resolves the panchang record for a DD/MM/YYYY date.
type DayFunc func(ctx context.Context, date string) (*model.Day, error)

// AlertEvent describes a fired muhurta alert, for fan-out to devices.
type AlertEvent struct {
	Date      string   `json:"date"`
	Muhurtas  []string `json:"muhurtas"`
	Timings   []string `json:"timings"`
	AlertTime string   `json:"alertTime"`
	Language  string   `json:"language"`
	Message   string   `json:"message"`
}

// Announcer receives fired alerts alongside the spoken announcement.
type Announcer interface {
	AnnounceAlert(ctx context.Context, event AlertEvent)
}

// Session is the per-deployment alert state shared between the poller and
// the HTTP layer. Constructed once at the composition root.
type Session struct {
	Deduper *Deduper
	Lease   *Lease
}

func NewSession() *Session {
	return &Session{Deduper: NewDeduper(), Lease: NewLease()}
}

// PollerConfig configures a notification poller instance.
type PollerConfig struct {
	// InstanceID identifies this poller for lease arbitration.
	InstanceID string
	// Language the announcements are spoken in.
	Language string
	// Interval between check cycles. Defaults to 10 seconds.
	Interval time.Duration
	// Now overrides the clock in tests.
	Now func() time.Time
}

// Poller drives the periodic muhurta alert checks. One leased instance polls
// at a fixed period; cycles never overlap because the timer is re-armed only
// after a cycle, including its speech, completes.
type Poller struct {
	session   *Session
	days      DayFunc
	speaker   Speaker
	announcer Announcer

	instanceID string
	interval   time.Duration
	now        func() time.Time

	mu       sync.Mutex
	language string
	enabled  bool
	state    State
}

func NewPoller(session *Session, days DayFunc, speaker Speaker, announcer Announcer, cfg PollerConfig) *Poller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	language := cfg.Language
	if language == "" {
		language = "en"
	}
	return &Poller{
		session:    session,
		days:       days,
		speaker:    speaker,
		announcer:  announcer,
		instanceID: cfg.InstanceID,
		interval:   interval,
		now:        now,
		language:   language,
		enabled:    true,
	}
}

func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Poller) Language() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.language
}

// SetEnabled toggles alerting. A disabled poller releases its lease so a
// passive instance can take over.
func (p *Poller) SetEnabled(enabled bool) {
	p.mu.Lock()
	p.enabled = enabled
	p.mu.Unlock()
	if !enabled {
		p.session.Lease.Release(p.instanceID)
		p.setState(StateIdle)
	}
}

func (p *Poller) setState(s State) {
	p.mu.Lock()
	if p.state != s {
		log.Debug().Str("instance", p.instanceID).Str("state", s.String()).Msg("poller state changed")
	}
	p.state = s
	p.mu.Unlock()
}

// Run polls until ctx is cancelled. The first check happens immediately;
// each subsequent check is scheduled only after the previous one finishes.
func (p *Poller) Run(ctx context.Context) {
	defer func() {
		p.session.Lease.Release(p.instanceID)
		p.setState(StateIdle)
	}()

	for {
		p.tick(ctx)
		select {
		case <-ctx.Done():
			return
		case <-time.After(p.interval):
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	p.mu.Lock()
	enabled := p.enabled
	p.mu.Unlock()

	if !enabled {
		p.setState(StateIdle)
		return
	}
	if !p.session.Lease.TryAcquire(p.instanceID) {
		p.setState(StateUnleased)
		return
	}
	p.setState(StateActive)
	p.checkCycle(ctx)
}

// candidate is one window whose alert time falls inside the trigger slack
// this cycle.
type candidate struct {
	window muhurta.Window
	check  muhurta.TriggerCheck
}

func (p *Poller) checkCycle(ctx context.Context) {
	now := p.now()
	date := now.Format("02/01/2006")
	p.session.Deduper.EnsureDate(date)

	day, err := p.days(ctx, date)
	if err != nil {
		log.Warn().Err(err).Str("date", date).Msg("poller could not load day data")
		return
	}
	if day == nil {
		return
	}

	language := p.Language()

	var candidates []candidate
	for _, w := range day.Windows() {
		if !w.Defined() {
			continue
		}
		if p.session.Deduper.HasFired(string(w.Key), language) {
			continue
		}
		check := muhurta.CheckTrigger(w.Raw, now)
		if !check.ShouldTrigger {
			continue
		}
		candidates = append(candidates, candidate{window: w, check: check})
	}
	if len(candidates) == 0 {
		return
	}

	// Coinciding alerts (same alert-time minute) are spoken as one combined
	// announcement instead of racing each other.
	groups := make(map[string][]candidate)
	var order []string
	for _, c := range candidates {
		key := c.check.GroupKey()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], c)
	}
	sort.Strings(order)

	for _, key := range order {
		group := groups[key]
		if p.anyFired(group, language) {
			continue
		}
		if p.speaker.Busy() {
			// Re-check on the next tick; the 30s trigger slack gives the
			// group a few more chances before the window closes for good.
			log.Debug().Str("group", key).Msg("speech busy, deferring alert group")
			return
		}
		p.fireGroup(ctx, date, language, group)
	}
}

func (p *Poller) anyFired(group []candidate, language string) bool {
	for _, c := range group {
		if p.session.Deduper.HasFired(string(c.window.Key), language) {
			return true
		}
	}
	return false
}

func (p *Poller) fireGroup(ctx context.Context, date, language string, group []candidate) {
	names := make([]string, 0, len(group))
	keys := make([]string, 0, len(group))
	timings := make([]string, 0, len(group))
	auspicious := true
	for _, c := range group {
		names = append(names, speech.MuhurtaName(c.window.Key, language))
		keys = append(keys, string(c.window.Key))
		timings = append(timings, c.window.Raw)
		if !c.window.Key.Auspicious() {
			auspicious = false
		}
	}

	message := speech.MuhurtaAlert(language, names, timings, auspicious)
	result := p.speaker.Speak(ctx, message, language)
	if result.Interrupted {
		// Not marked fired; the next tick retries while the trigger window
		// is still open.
		log.Info().Strs("muhurtas", keys).Msg("alert speech interrupted, will retry")
		return
	}

	for _, c := range group {
		p.session.Deduper.MarkFired(string(c.window.Key), language)
	}
	log.Info().Strs("muhurtas", keys).Str("language", language).Msg("muhurta alert fired")

	if p.announcer != nil {
		p.announcer.AnnounceAlert(ctx, AlertEvent{
			Date:      date,
			Muhurtas:  keys,
			Timings:   timings,
			AlertTime: group[0].check.AlertTime,
			Language:  language,
			Message:   message,
		})
	}
}

// LanguageChanged switches the announcement language and runs the one-shot
// catch-up: any window already inside its lead hour is announced immediately
// in the new language, then the day's tithi if this language has not heard
// it yet. Fired-alert state is not consulted or updated here; the regular
// cycle keeps its own bookkeeping per language.
func (p *Poller) LanguageChanged(ctx context.Context, language string) {
	p.mu.Lock()
	p.language = language
	p.mu.Unlock()

	now := p.now()
	date := now.Format("02/01/2006")
	p.session.Deduper.EnsureDate(date)

	day, err := p.days(ctx, date)
	if err != nil || day == nil {
		if err != nil {
			log.Warn().Err(err).Str("date", date).Msg("language change could not load day data")
		}
		return
	}

	var names, timings []string
	minutesLeft := 0
	auspicious := true
	for _, w := range day.Windows() {
		if !w.Defined() {
			continue
		}
		status := muhurta.CheckStatus(w.Raw, now)
		if !status.IsWithinOneHour || status.HasPassed {
			continue
		}
		names = append(names, speech.MuhurtaName(w.Key, language))
		timings = append(timings, w.Raw)
		if minutesLeft == 0 || status.MinutesUntilStart < minutesLeft {
			minutesLeft = status.MinutesUntilStart
		}
		if !w.Key.Auspicious() {
			auspicious = false
		}
	}

	if len(names) > 0 {
		message := speech.ImmediateAlert(language, names, timings, minutesLeft, auspicious)
		p.speaker.Speak(ctx, message, language)
	}

	if !p.session.Deduper.HasSpokenTithi(language) && day.Tithi != "" {
		result := p.speaker.Speak(ctx, speech.TithiSpeech(language, day.Tithi), language)
		if !result.Interrupted {
			p.session.Deduper.MarkSpokenTithi(language)
		}
	}
}

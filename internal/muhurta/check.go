package muhurta

import (
	"math"
	"time"
)

// TriggerCheck is the periodic-check result the 10-second poll consumes.
// ShouldTrigger is true only inside the 30-second window around the one-hour
// lead alert time. Field names mirror the HTTP contract.
type TriggerCheck struct {
	ShouldTrigger bool   `json:"shouldTrigger"`
	CurrentTime   string `json:"currentTime,omitempty"`
	AlertTime     string `json:"alertTime,omitempty"`
	TargetTime    string `json:"targetTime,omitempty"`
	DiffSeconds   int    `json:"diffSeconds,omitempty"`
}

// StatusCheck is the lead-alert check used by the language-change path.
type StatusCheck struct {
	IsWithinOneHour   bool   `json:"isWithinOneHour"`
	HasPassed         bool   `json:"hasPassed"`
	MinutesUntilStart int    `json:"minutesUntilStart"`
	CurrentTime       string `json:"currentTime,omitempty"`
	MuhurtaTime       string `json:"muhurtaTime,omitempty"`
}

// triggerSlack is the tolerance around the computed alert instant. The check
// is elapsed-time based, not minute-granularity.
const triggerSlack = 30 * time.Second

const clockLayout = "15:04:05"

// CheckTrigger evaluates whether an alert should fire right now for the
// window starting at the first clock token in raw. The alert instant is one
// hour before the window start; the check passes within 30 seconds either
// side of it. Unparseable input yields the safe default.
func CheckTrigger(raw string, now time.Time) TriggerCheck {
	start, ok := ParseClockAny(raw)
	if !ok {
		return TriggerCheck{}
	}

	target := time.Date(now.Year(), now.Month(), now.Day(), start.Hour, start.Minute, 0, 0, now.Location())
	alertAt := target.Add(-time.Duration(DefaultLeadMinutes) * time.Minute)

	diff := now.Sub(alertAt)
	if diff < 0 {
		diff = -diff
	}

	return TriggerCheck{
		ShouldTrigger: diff < triggerSlack,
		CurrentTime:   now.Format(clockLayout),
		AlertTime:     alertAt.Format(clockLayout),
		TargetTime:    target.Format(clockLayout),
		DiffSeconds:   int(math.Round(diff.Seconds())),
	}
}

// CheckStatus evaluates the immediate-alert condition: whether the window
// starting at the first clock token in raw begins within the next hour, and
// whether it has already begun. Minutes are rounded half-up, so a start
// 59m30s away reads as 60 minutes.
func CheckStatus(raw string, now time.Time) StatusCheck {
	start, ok := ParseClockAny(raw)
	if !ok {
		return StatusCheck{}
	}

	target := time.Date(now.Year(), now.Month(), now.Day(), start.Hour, start.Minute, 0, 0, now.Location())
	// Halves round toward +infinity, so -1.5 minutes reads as -1, matching
	// the clients' Math.round.
	minutes := int(math.Floor(target.Sub(now).Minutes() + 0.5))

	return StatusCheck{
		IsWithinOneHour:   WithinLeadWindow(minutes, DefaultLeadMinutes),
		HasPassed:         now.After(target),
		MinutesUntilStart: minutes,
		CurrentTime:       now.Format(clockLayout),
		MuhurtaTime:       target.Format(clockLayout),
	}
}

// GroupKey buckets trigger results whose lead alerts land in the same minute,
// so coinciding muhurtas fire as one combined announcement.
func (t TriggerCheck) GroupKey() string {
	if len(t.AlertTime) >= 5 {
		return t.AlertTime[:5]
	}
	return t.AlertTime
}

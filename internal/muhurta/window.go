package muhurta

// Key identifies one of the seven named muhurta intervals a day record
// carries. Values match the field names of the data source.
type Key string

const (
	KeyRahuKalam   Key = "Rahu Kalam"
	KeyYamaganda   Key = "Yamaganda"
	KeyGulikai     Key = "Gulikai Kalam"
	KeyDurMuhurtam Key = "Dur Muhurtam"
	KeyAbhijit     Key = "Abhijit"
	KeyAmritKalam  Key = "Amrit Kalam"
	KeyVarjyam     Key = "Varjyam"
)

// Keys lists every muhurta in the order the notification checker walks them.
var Keys = []Key{
	KeyDurMuhurtam,
	KeyRahuKalam,
	KeyYamaganda,
	KeyGulikai,
	KeyAbhijit,
	KeyAmritKalam,
	KeyVarjyam,
}

// Auspicious reports whether the muhurta is a favorable interval. Only
// Abhijit and Amrit Kalam are; the rest are inauspicious. The mapping is
// fixed and not configurable.
func (k Key) Auspicious() bool {
	return k == KeyAbhijit || k == KeyAmritKalam
}

// Window is one named interval of a single calendar day. Raw is the localized
// range string exactly as the data source provided it, or "-" when the
// interval does not occur that day.
type Window struct {
	Key Key
	Raw string
}

// Defined reports whether the window carries a usable range string.
func (w Window) Defined() bool {
	return w.Raw != "" && w.Raw != "-"
}

// Range holds the parsed bounds of a window in minutes since midnight.
// A nil bound means the raw string could not be parsed; such a window never
// triggers anything.
type Range struct {
	Start *int
	End   *int
}

// ParseWindowRange resolves a raw range string to minute offsets using the
// language-agnostic clock parser.
func ParseWindowRange(raw string, localizedSeps []string) Range {
	startText, endText, ok := ParseRange(raw, localizedSeps)
	if !ok {
		return Range{}
	}
	var r Range
	if c, ok := ParseClockAny(startText); ok {
		m := c.Minutes()
		r.Start = &m
	}
	if c, ok := ParseClockAny(endText); ok {
		m := c.Minutes()
		r.End = &m
	}
	return r
}

// InRange reports whether current (minutes since midnight) falls inside the
// window. A window whose end precedes its start wraps past midnight. Either
// bound missing means false.
func InRange(current int, start, end *int) bool {
	if start == nil || end == nil {
		return false
	}
	if *end >= *start {
		return current >= *start && current <= *end
	}
	// overnight wrap, e.g. 23:00-01:00
	return current >= *start || current <= *end
}

// Progress returns how much of the window has elapsed at current, clamped to
// 0-100. A degenerate or inverted duration counts as fully elapsed.
func Progress(current, start, end int) int {
	duration := end - start
	if duration <= 0 {
		return 100
	}
	p := 100 * (current - start) / duration
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// MinutesUntilStart is the signed distance from now to the window start,
// same-day semantics (negative once the start has passed).
func MinutesUntilStart(now, start int) int { return start - now }

// HasPassed reports whether now is strictly after the window start. The
// one-shot alerting model never wraps to the next day.
func HasPassed(now, start int) bool { return now > start }

// DefaultLeadMinutes is how far ahead of a window start the lead alert fires.
const DefaultLeadMinutes = 60

// WithinLeadWindow reports whether a window starting in minutesUntil minutes
// is inside the lead-alert horizon: strictly upcoming and at most lead away.
func WithinLeadWindow(minutesUntil, lead int) bool {
	return minutesUntil > 0 && minutesUntil <= lead
}

package muhurta

import (
	"regexp"
	"strconv"
	"strings"
)

// Clock is a wall-clock time of day in 24-hour form.
type Clock struct {
	Hour   int
	Minute int
}

// Minutes returns the clock position as minutes since midnight (0-1439).
func (c Clock) Minutes() int { return c.Hour*60 + c.Minute }

// Tokens holds the localized strings a parser needs to read a time range:
// the AM/PM markers and the words joining a start time to an end time.
type Tokens struct {
	AM   string
	PM   string
	To   string
	Upto string
}

// languageTokens maps a display language to its time tokens. ParseClockAny
// consults every entry, so the polling path works without translation context.
var languageTokens = map[string]Tokens{
	"en": {AM: "AM", PM: "PM", To: "to", Upto: "upto"},
	"hi": {AM: "पूर्वाह्न", PM: "अपराह्न", To: "से", Upto: "तक"},
	"te": {AM: "పూర్వాహ్నం", PM: "అపరాహ్నం", To: "నుండి", Upto: "వరకు"},
	"ta": {AM: "முற்பகல்", PM: "பிற்பகல்", To: "முதல்", Upto: "வரை"},
	"kn": {AM: "ಪೂರ್ವಾಹ್ನ", PM: "ಅಪರಾಹ್ನ", To: "ರಿಂದ", Upto: "ವರೆಗೆ"},
	"ml": {AM: "രാവിലെ", PM: "ഉച്ചകഴിഞ്ഞ്", To: "മുതൽ", Upto: "വരെ"},
}

// TokensFor returns the time tokens for a language, falling back to English.
func TokensFor(language string) Tokens {
	if tok, ok := languageTokens[language]; ok {
		return tok
	}
	return languageTokens["en"]
}

// digitBases lists the zero-digit code point of every numeral script the data
// source is known to emit. Each script's digits occupy ten consecutive code
// points starting at the base.
var digitBases = []rune{
	0x0660, // Arabic-Indic
	0x06F0, // Extended Arabic-Indic (Persian)
	0x0966, // Devanagari
	0x09E6, // Bengali
	0x0A66, // Gurmukhi
	0x0AE6, // Gujarati
	0x0B66, // Oriya
	0x0BE6, // Tamil
	0x0C66, // Telugu
	0x0CE6, // Kannada
	0x0D66, // Malayalam
	0x0E50, // Thai
}

// NormalizeDigits folds digits from any supported numeral script to ASCII.
func NormalizeDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		for _, base := range digitBases {
			if r >= base && r <= base+9 {
				r = '0' + (r - base)
				break
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

var clockPattern = regexp.MustCompile(`(\d{1,2})[:.](\d{2})`)

// ParseClock reads the first H:MM (or H.MM) token out of text and converts it
// to 24-hour form using the caller-supplied AM/PM tokens. English AM/PM is
// always recognized, case-insensitively. Only the marker attached to that
// first token counts; a range like "11:45 AM to 12:30 PM" must not pick up
// the end's PM. With no marker the hour is returned as written.
func ParseClock(text string, tok Tokens) (Clock, bool) {
	times := findTimes(NormalizeDigits(text))
	if len(times) == 0 {
		return Clock{}, false
	}
	return clockFromToken(times[0], func(token string) (bool, bool) {
		if am, pm := hasMeridiem(token, tok); am || pm {
			return am, pm
		}
		return hasMeridiem(token, languageTokens["en"])
	})
}

// ParseClockAny is the language-agnostic variant used by the polling timer:
// it recognizes the AM/PM markers of every language in the token table, so it
// works before any translation context is threaded through. For well-formed
// English input it agrees with ParseClock.
func ParseClockAny(text string) (Clock, bool) {
	times := findTimes(NormalizeDigits(text))
	if len(times) == 0 {
		return Clock{}, false
	}
	return clockFromToken(times[0], func(token string) (bool, bool) {
		for _, tok := range languageTokens {
			if am, pm := hasMeridiem(token, tok); am || pm {
				return am, pm
			}
		}
		return false, false
	})
}

// clockFromToken converts one clock token (as produced by findTimes, marker
// included) to 24-hour form.
func clockFromToken(token string, meridiem func(string) (am, pm bool)) (Clock, bool) {
	m := clockPattern.FindStringSubmatch(token)
	if m == nil {
		return Clock{}, false
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return Clock{}, false
	}
	am, pm := meridiem(token)
	return applyMeridiem(hour, minute, am, pm)
}

func hasMeridiem(text string, tok Tokens) (am, pm bool) {
	upper := strings.ToUpper(text)
	if tok.PM != "" && strings.Contains(upper, strings.ToUpper(tok.PM)) {
		return false, true
	}
	if tok.AM != "" && strings.Contains(upper, strings.ToUpper(tok.AM)) {
		return true, false
	}
	return false, false
}

func applyMeridiem(hour, minute int, am, pm bool) (Clock, bool) {
	switch {
	case pm && hour != 12:
		hour += 12
	case am && hour == 12:
		hour = 0
	}
	if hour > 23 {
		return Clock{}, false
	}
	return Clock{Hour: hour, Minute: minute}, true
}

// rangeSeparators are tried, longest first, when a range string does not carry
// two recognizable clock tokens on its own.
var rangeSeparators = []string{"upto", "to", "—", "–", "-"}

// ParseRange extracts the start and end time substrings from a free-form
// range such as "06:05 PM to 06:30 PM". A single clock token stands for both
// ends. When no token matches directly, the string is split once on a
// separator word ("-", en/em dash, "to", "upto", or any caller-supplied
// localized equivalent) and each half is re-matched.
func ParseRange(text string, localizedSeps []string) (start, end string, ok bool) {
	text = NormalizeDigits(text)
	times := findTimes(text)
	switch {
	case len(times) >= 2:
		return times[0], times[1], true
	case len(times) == 1:
		return times[0], times[0], true
	}

	seps := append(append([]string{}, localizedSeps...), rangeSeparators...)
	for _, sep := range seps {
		if sep == "" {
			continue
		}
		idx := strings.Index(text, sep)
		if idx < 0 {
			continue
		}
		left := findTimes(text[:idx])
		right := findTimes(text[idx+len(sep):])
		if len(left) > 0 && len(right) > 0 {
			return left[0], right[0], true
		}
	}
	return "", "", false
}

// findTimes returns every clock-shaped substring in text, each extended to
// include a directly following AM/PM marker from any language.
func findTimes(text string) []string {
	locs := clockPattern.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}
	out := make([]string, 0, len(locs))
	for _, loc := range locs {
		token := text[loc[0]:loc[1]]
		rest := text[loc[1]:]
		trimmed := strings.TrimLeft(rest, "  ")
		for _, tok := range languageTokens {
			for _, marker := range []string{tok.AM, tok.PM} {
				if marker == "" {
					continue
				}
				if len(trimmed) >= len(marker) && strings.EqualFold(trimmed[:len(marker)], marker) {
					token += " " + trimmed[:len(marker)]
					trimmed = ""
					break
				}
			}
			if trimmed == "" {
				break
			}
		}
		out = append(out, token)
	}
	return out
}

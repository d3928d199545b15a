package chat

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/panchang-seva/panchangam/internal/model"
)

const (
	// MissingInfo is the reply when a requested field is absent from the data.
	MissingInfo = "This information is currently unavailable in the Panchang data. Our team is working to add this in an upcoming update."
	// OnlyPanchang declines questions outside the assistant's domain.
	OnlyPanchang = "I can answer only Panchang-related questions. Please ask about tithi, nakshatra, yogam, karanam, auspicious or inauspicious timings, or whether the day is good for starting new work."

	greetingReply = "Namaste. I am your Panchang assistant. Ask me about tithi, nakshatra, yogam, karanam, auspicious and inauspicious timings, or whether this selected day is good for starting new work."
)

var (
	greetingOnly = regexp.MustCompile(`(?i)^(hello|hi|hey|namaste|vanakkam|good morning|good afternoon|good evening|hari om|om)\W*$`)

	// Fuzzy forms cover common transliteration spellings.
	tithiFuzzy     = regexp.MustCompile(`(?i)th+i+th+i+|ti?thi`)
	nakshatraFuzzy = regexp.MustCompile(`(?i)naksh?at?r?a|nakshtra|naksatra`)
	yogaFuzzy      = regexp.MustCompile(`(?i)yo+g(a|am)?`)
	karanamFuzzy   = regexp.MustCompile(`(?i)kara?na?m?`)
	muhurtaFuzzy   = regexp.MustCompile(`(?i)muhur?t?a?m?`)

	inauspiciousTithi = regexp.MustCompile(`(?i)ashtami|navami|amavasya`)

	dateShape = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

var panchangKeywords = []string{
	"panchang", "hindu calendar", "tithi", "nakshatra", "yoga", "yogam",
	"karana", "karanam", "paksha", "festival", "sunrise", "sunset",
	"moonrise", "moonset", "rahu", "yamaganda", "gulikai", "dur muhurtam",
	"muhurta", "muhurtam", "varjyam", "abhijit", "amrit", "auspicious",
	"inauspicious", "good day", "new work", "start work", "new beginning",
}

func containsWord(text, word string) bool {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	return re.MatchString(text)
}

// field normalizes a data value; "-" and "not available" count as absent.
func field(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "-" || strings.EqualFold(trimmed, "not available") {
		return ""
	}
	return trimmed
}

func tithiName(tithi string) string {
	cut := strings.IndexAny(tithi, ",(")
	if cut >= 0 {
		tithi = tithi[:cut]
	}
	return strings.ToLower(strings.TrimSpace(tithi))
}

// InauspiciousForBeginnings applies the traditional rule that Ashtami,
// Navami, and Amavasya are avoided for new beginnings.
func InauspiciousForBeginnings(tithi string) bool {
	return inauspiciousTithi.MatchString(tithiName(tithi))
}

func dayQualityMessage(tithi string) string {
	if tithi == "" {
		return MissingInfo
	}
	if InauspiciousForBeginnings(tithi) {
		return "The day is not good for starting new work. Traditional Panchang rule: Ashtami, Navami, and Amavasya are avoided for new beginnings."
	}
	return "The day is generally good for starting new work, while still avoiding inauspicious timings."
}

func dateLabel(date, weekday string) string {
	m := dateShape.FindStringSubmatch(strings.TrimSpace(date))
	if m == nil {
		return ""
	}
	pad := func(s string) string {
		if len(s) == 1 {
			return "0" + s
		}
		return s
	}
	label := fmt.Sprintf("%s-%s-%s", pad(m[1]), pad(m[2]), m[3])
	if weekday != "" {
		return weekday + ", " + label
	}
	return label
}

// MonthGoodDays lists the days of a month suitable for new beginnings, as
// "Weekday, DD-MM-YYYY (Tithi)" labels.
func MonthGoodDays(month []model.Day) []string {
	var out []string
	for i := range month {
		d := &month[i]
		tithi := field(d.Tithi)
		if tithi == "" || InauspiciousForBeginnings(tithi) {
			continue
		}
		label := dateLabel(d.Date, d.Weekday)
		if label == "" {
			continue
		}
		out = append(out, fmt.Sprintf("%s (%s)", label, tithi))
	}
	return out
}

// Reply answers a Panchang question about a selected day, optionally with
// the surrounding month's data for month-level questions.
func Reply(message string, day *model.Day, month []model.Day) string {
	lower := strings.ToLower(strings.TrimSpace(message))
	if lower == "" {
		return OnlyPanchang
	}

	if greetingOnly.MatchString(lower) {
		return greetingReply
	}

	onTopic := false
	for _, k := range panchangKeywords {
		if containsWord(lower, k) {
			onTopic = true
			break
		}
	}
	if !onTopic {
		onTopic = tithiFuzzy.MatchString(lower) || nakshatraFuzzy.MatchString(lower) ||
			yogaFuzzy.MatchString(lower) || karanamFuzzy.MatchString(lower) ||
			muhurtaFuzzy.MatchString(lower)
	}
	if !onTopic {
		return OnlyPanchang
	}

	if day == nil {
		day = &model.Day{}
	}

	askTithi := containsWord(lower, "tithi") || tithiFuzzy.MatchString(lower)
	askNakshatra := containsWord(lower, "nakshatra") || nakshatraFuzzy.MatchString(lower)
	askYoga := containsWord(lower, "yoga") || containsWord(lower, "yogam") || yogaFuzzy.MatchString(lower)
	askKaranam := containsWord(lower, "karana") || containsWord(lower, "karanam") || karanamFuzzy.MatchString(lower)

	askTimings := containsWord(lower, "timing") || containsWord(lower, "muhurta") ||
		containsWord(lower, "muhurtam") || containsWord(lower, "rahu") ||
		containsWord(lower, "yamaganda") || containsWord(lower, "gulikai") ||
		containsWord(lower, "dur muhurtam") || containsWord(lower, "varjyam") ||
		containsWord(lower, "abhijit") || containsWord(lower, "amrit")

	askGoodDay := strings.Contains(lower, "good day") || strings.Contains(lower, "start work") ||
		strings.Contains(lower, "new work") || strings.Contains(lower, "new beginning") ||
		strings.Contains(lower, "auspicious day") || strings.Contains(lower, "join") ||
		strings.Contains(lower, "joining") || strings.Contains(lower, "job")

	askFestival := containsWord(lower, "festival")
	askMonth := containsWord(lower, "month")

	askOverview := strings.Contains(lower, "full panchang") ||
		strings.Contains(lower, "complete panchang") ||
		strings.Contains(lower, "all panchang") ||
		strings.Contains(lower, "panchang details") ||
		strings.Contains(lower, "show panchang") ||
		strings.Contains(lower, "today panchang") ||
		(!askTithi && !askNakshatra && !askYoga && !askKaranam &&
			!askTimings && !askGoodDay && !askFestival)

	if askMonth && askGoodDay {
		goodDays := MonthGoodDays(month)
		if len(goodDays) == 0 {
			return MissingInfo
		}
		if len(goodDays) > 8 {
			goodDays = goodDays[:8]
		}
		var b strings.Builder
		b.WriteString("Based on the available Panchang data for this month, these days are generally suitable for starting new work or joining a job:\n\n")
		for i, d := range goodDays {
			fmt.Fprintf(&b, "%d. %s\n", i+1, d)
		}
		b.WriteString("\nPlease avoid inauspicious timings such as Rahu Kalam, Yamaganda, Gulikai Kalam, Dur Muhurtam, and Varjyam on the chosen day.")
		return b.String()
	}

	var parts []string
	push := func(title, value string) {
		if value != "" {
			parts = append(parts, title+": "+value)
		} else {
			parts = append(parts, title+": "+MissingInfo)
		}
	}
	explain := func(value, explanation string) {
		if value != "" {
			parts = append(parts, explanation)
		} else {
			parts = append(parts, MissingInfo)
		}
	}

	tithi := field(day.Tithi)

	if askOverview || askTithi {
		push("Tithi", tithi)
		explain(tithi, "Tithi is the lunar day in Panchang.")
	}
	if askOverview || askNakshatra {
		nakshatra := field(day.Nakshatra)
		push("Nakshatra", nakshatra)
		explain(nakshatra, "Nakshatra is the lunar mansion based on the Moon's position.")
	}
	if askOverview || askYoga {
		yoga := field(day.Yoga)
		push("Yogam", yoga)
		explain(yoga, "Yogam is the Sun-Moon angular combination used in Panchang.")
	}
	if askOverview || askKaranam {
		karanam := field(day.Karanam)
		push("Karanam", karanam)
		explain(karanam, "Karanam is half of a tithi and is used for muhurta judgement.")
	}
	if askOverview || askTimings {
		parts = append(parts, "Auspicious timings:")
		push("Abhijit", field(day.Abhijit))
		push("Amrit Kalam", field(day.AmritKalam))
		parts = append(parts, "Inauspicious timings:")
		push("Rahu Kalam", field(day.RahuKalam))
		push("Yamaganda", field(day.Yamaganda))
		push("Gulikai Kalam", field(day.GulikaiKalam))
		push("Dur Muhurtam", field(day.DurMuhurtam))
		push("Varjyam", field(day.Varjyam))
	}
	if askOverview || askFestival {
		if len(day.Festivals) > 0 {
			parts = append(parts, "Festivals: "+strings.Join(day.Festivals, ", "))
		} else {
			parts = append(parts, "Festivals: "+MissingInfo)
		}
	}
	if askOverview {
		push("Paksha", field(day.Paksha))
		push("Sunrise", field(day.Sunrise))
		push("Sunset", field(day.Sunset))
		push("Moonrise", field(day.Moonrise))
		push("Moonset", field(day.Moonset))
	}
	if askOverview || askGoodDay {
		if label := dateLabel(day.Date, day.Weekday); label != "" {
			parts = append(parts, "Selected day: "+label)
		}
		parts = append(parts, "Good for starting new work: "+dayQualityMessage(tithi))
	}

	reply := strings.Join(parts, "\n\n")
	if reply == "" {
		return OnlyPanchang
	}
	return reply
}

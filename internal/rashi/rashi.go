package rashi

import (
	"fmt"
	"time"
)

// Stats scores a prediction's life areas out of 100.
type Stats struct {
	Health int `json:"health"`
	Wealth int `json:"wealth"`
	Family int `json:"family"`
	Love   int `json:"love"`
	Career int `json:"career"`
}

// Prediction is one rendered rashiphalalu reading.
type Prediction struct {
	Rashi  string   `json:"rashi"`
	Name   string   `json:"name"`
	Period string   `json:"period"`
	Text   string   `json:"text"`
	Colors []string `json:"colors"`
	Stats  Stats    `json:"stats"`
}

// Periods accepted by Predict.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// ids in zodiac order, Mesha through Meena.
var ids = []string{
	"mesha", "vrishabha", "mithuna", "karka", "simha", "kanya",
	"tula", "vrishchika", "dhanu", "makara", "kumbha", "meena",
}

// IDs returns the twelve rashi identifiers in zodiac order.
func IDs() []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

var names = map[string]map[string]string{
	"mesha":      {"en": "Mesha", "te": "మేష", "hi": "मेष", "ml": "മേഷ", "kn": "ಮೇಷ", "ta": "மேஷ"},
	"vrishabha":  {"en": "Vrishabha", "te": "వృషభ", "hi": "वृषभ", "ml": "വൃഷഭ", "kn": "ವೃಷಭ", "ta": "விருஷப"},
	"mithuna":    {"en": "Mithuna", "te": "మితున", "hi": "मिथुन", "ml": "മിഥുന", "kn": "ಮಿಥುನ", "ta": "மிதுன"},
	"karka":      {"en": "Karka", "te": "కర్క", "hi": "कर्क", "ml": "കർക്കട", "kn": "ಕರ್ಕ", "ta": "கர்க்"},
	"simha":      {"en": "Simha", "te": "సిమ్హ", "hi": "सिंह", "ml": "സിംഹ", "kn": "ಸಿಂಹ", "ta": "சிம்ம"},
	"kanya":      {"en": "Kanya", "te": "కన్య", "hi": "कन्या", "ml": "കന്യ", "kn": "ಕನ್ಯಾ", "ta": "கன்யா"},
	"tula":       {"en": "Tula", "te": "తుల", "hi": "तुला", "ml": "തുല", "kn": "ತುಲಾ", "ta": "துலா"},
	"vrishchika": {"en": "Vrishchika", "te": "వృశ్చిక", "hi": "वृश्चिक", "ml": "വൃശ്ചിക", "kn": "ವೃಶ್ಚಿಕ", "ta": "விருச்சிக"},
	"dhanu":      {"en": "Dhanu", "te": "ధను", "hi": "धनु", "ml": "ധനു", "kn": "ಧನು", "ta": "தனு"},
	"makara":     {"en": "Makara", "te": "మకర", "hi": "मकर", "ml": "മകര", "kn": "ಮಕರ", "ta": "மகர"},
	"kumbha":     {"en": "Kumbha", "te": "కుంభ", "hi": "कुंभ", "ml": "കുംഭ", "kn": "ಕುಂಭ", "ta": "கும்ப"},
	"meena":      {"en": "Meena", "te": "మీన", "hi": "मीन", "ml": "മീന", "kn": "ಮೀನ", "ta": "மீன"},
}

// Name returns the localized display name of a rashi, falling back to
// English.
func Name(id, language string) string {
	byLang, ok := names[id]
	if !ok {
		return id
	}
	if name, ok := byLang[language]; ok {
		return name
	}
	return byLang["en"]
}

// Predict renders the reading for a rashi and period. Texts rotate
// deterministically with the date, so every caller sees the same reading on
// the same day.
func Predict(id, period, language string, date time.Time) (Prediction, error) {
	data, ok := predictions[id]
	if !ok {
		return Prediction{}, fmt.Errorf("unknown rashi %q", id)
	}

	var pd periodData
	switch period {
	case PeriodDaily:
		pd = data.daily
	case PeriodWeekly:
		pd = data.weekly
	case PeriodMonthly:
		pd = data.monthly
	case PeriodYearly:
		pd = data.yearly
	default:
		return Prediction{}, fmt.Errorf("unknown period %q", period)
	}

	return Prediction{
		Rashi:  id,
		Name:   Name(id, language),
		Period: period,
		Text:   pd.texts[textIndex(period, date, len(pd.texts))],
		Colors: pd.colors,
		Stats:  pd.stats,
	}, nil
}

func textIndex(period string, date time.Time, n int) int {
	if n <= 1 {
		return 0
	}
	switch period {
	case PeriodDaily:
		return (date.YearDay() - 1) % n
	case PeriodWeekly:
		return ((date.YearDay() - 1) / 7) % n
	case PeriodMonthly:
		return int(date.Month()-1) % n
	}
	return 0
}

// CurrentRashi approximates the Moon sign for a date using typical
// mid-month transit boundaries.
func CurrentRashi(date time.Time) string {
	// Month → rashi index for the sign in transit around the 15th
	// (Makara mid-January through Dhanu mid-December).
	offsets := [12]int{9, 10, 11, 0, 1, 2, 3, 4, 5, 6, 7, 8}
	rashiOrder := [12]string{
		"mesha", "vrishabha", "mithuna", "karka", "simha", "kanya",
		"tula", "vrishchika", "dhanu", "makara", "kumbha", "meena",
	}
	return rashiOrder[offsets[date.Month()-1]]
}

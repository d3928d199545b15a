package speech

import (
	"fmt"
	"strings"

	"github.com/panchang-seva/panchangam/internal/muhurta"
)

// muhurtaNames carries the display name of each muhurta per language.
var muhurtaNames = map[muhurta.Key]map[string]string{
	muhurta.KeyRahuKalam: {
		"en": "Rahu Kalam", "te": "రాహుకాలం", "hi": "राहुकाल",
		"kn": "ರಾಹುಕಾಲ", "ta": "ராகு காலம்", "ml": "രാഹുകാലം",
	},
	muhurta.KeyYamaganda: {
		"en": "Yamaganda", "te": "యమగండం", "hi": "यमगंड",
		"kn": "ಯಮಗಂಡ", "ta": "யமகண்டம்", "ml": "യമഗണ്ഡം",
	},
	muhurta.KeyGulikai: {
		"en": "Gulikai Kalam", "te": "గుళిక కాలం", "hi": "गुलिकाई काल",
		"kn": "ಗುಳಿಕೈ ಕಾಲ", "ta": "குலிகை காலம்", "ml": "ഗുളിക കാലം",
	},
	muhurta.KeyDurMuhurtam: {
		"en": "Durmuhurtham", "te": "దుర్ముహూర్తం", "hi": "दुर्मुहूर्त",
		"kn": "ದುರ್ಮುಹೂರ್ತ", "ta": "துர்முஹூர்த்தம்", "ml": "ദുർമുഹൂർത്തം",
	},
	muhurta.KeyAbhijit: {
		"en": "Abhijit", "te": "అభిజిత్", "hi": "अभिजित",
		"kn": "ಅಭಿಜಿತ್", "ta": "அபிஜித்", "ml": "അഭിജിത്",
	},
	muhurta.KeyAmritKalam: {
		"en": "Amrit Kalam", "te": "అమృత కాలం", "hi": "अमृत काल",
		"kn": "ಅಮೃತ ಕಾಲ", "ta": "அம்ருத காலம்", "ml": "അമൃത കാലം",
	},
	muhurta.KeyVarjyam: {
		"en": "Varjyam", "te": "వర్జ్యం", "hi": "वर्ज्यम्",
		"kn": "ವರ್ಜ್ಯಂ", "ta": "வர்ஜ்யம்", "ml": "വർജ്യം",
	},
}

// andWords joins grouped muhurta names in a combined announcement.
var andWords = map[string]string{
	"en": "and", "te": "మరియు", "hi": "और",
	"kn": "ಮತ್ತು", "ta": "மற்றும்", "ml": "ഒപ്പം",
}

// MuhurtaName returns the localized display name for a muhurta, falling back
// to English and then to the key itself.
func MuhurtaName(key muhurta.Key, language string) string {
	byLang, ok := muhurtaNames[key]
	if !ok {
		return string(key)
	}
	if name, ok := byLang[language]; ok {
		return name
	}
	return byLang["en"]
}

// JoinNames renders a name list as prose: "A, B and C" with the language's
// own conjunction.
func JoinNames(language string, names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	and, ok := andWords[language]
	if !ok {
		and = andWords["en"]
	}
	return strings.Join(names[:len(names)-1], ", ") + " " + and + " " + names[len(names)-1]
}

// splitTiming breaks a raw range string into its start and end halves. The
// grouped announcement always reads the first timing of the group, as the
// grouped windows start within the same minute.
func splitTiming(timing string) (start, end string) {
	s, e, ok := muhurta.ParseRange(timing, nil)
	if ok {
		return s, e
	}
	return timing, timing
}

// TithiSpeech builds the one-line tithi announcement.
func TithiSpeech(language, tithi string) string {
	switch language {
	case "te":
		return fmt.Sprintf("ఈ రోజు తిథి %s", tithi)
	case "hi":
		return fmt.Sprintf("आज की तिथि %s है", tithi)
	case "kn":
		return fmt.Sprintf("ಇಂದಿನ ತಿಥಿ %s", tithi)
	case "ta":
		return fmt.Sprintf("இன்றைய திதி %s", tithi)
	case "ml":
		return fmt.Sprintf("ഇന്നത്തെ തിഥി %s", tithi)
	default:
		return fmt.Sprintf("Today's Tithi is %s", tithi)
	}
}

// MuhurtaAlert builds the one-hour-lead announcement for one or more muhurtas
// sharing an alert time. Auspicious windows get the reminder register,
// inauspicious ones the warning register.
func MuhurtaAlert(language string, names, timings []string, auspicious bool) string {
	combined := JoinNames(language, names)
	start, end := "", ""
	if len(timings) > 0 {
		start, end = splitTiming(timings[0])
	}

	switch language {
	case "te":
		if auspicious {
			return fmt.Sprintf("గమనిక! ఒక గంటలో %s ఉంది. సమయం %s నుండి %s వరకు.", combined, start, end)
		}
		return fmt.Sprintf("హెచ్చరిక! ఒక గంటలో %s ఘడియలు ప్రారంభం అవుతాయి. సమయం %s నుండి %s వరకు.", combined, start, end)
	case "hi":
		if auspicious {
			return fmt.Sprintf("सूचना! एक घंटे में %s है। समय %s से %s तक है।", combined, start, end)
		}
		return fmt.Sprintf("सावधान! एक घंटे में %s है। समय %s से %s तक है।", combined, start, end)
	case "kn":
		if auspicious {
			return fmt.Sprintf("ಗಮನಿಸಿ! ಒಂದು ಗಂಟೆಯಲ್ಲಿ %s ಇದೆ. ಸಮಯ %s ರಿಂದ %s ವರೆಗೆ.", combined, start, end)
		}
		return fmt.Sprintf("ಎಚ್ಚರಿಕೆ! ಒಂದು ಗಂಟೆಯಲ್ಲಿ %s ಇದೆ. ಸಮಯ %s ರಿಂದ %s ವರೆಗೆ.", combined, start, end)
	case "ta":
		if auspicious {
			return fmt.Sprintf("கவனிக்க! ஒரு மணி நேரத்தில் %s உள்ளது. நேரம் %s முதல் %s வரை.", combined, start, end)
		}
		return fmt.Sprintf("எச்சரிக்கை! ஒரு மணி நேரத்தில் %s உள்ளது. நேரம் %s முதல் %s வரை.", combined, start, end)
	case "ml":
		if auspicious {
			return fmt.Sprintf("ശ്രദ്ധിക്കുക! ഒരു മണിക്കൂറിൽ %s ഉണ്ട്. സമയം %s മുതൽ %s വരെ.", combined, start, end)
		}
		return fmt.Sprintf("മുന്നറിയിപ്പ്! ഒരു മണിക്കൂറിൽ %s ഉണ്ട്. സമയം %s മുതൽ %s വരെ.", combined, start, end)
	default:
		if auspicious {
			return fmt.Sprintf("Reminder! In one hour there is %s. The timing is from %s to %s.", combined, start, end)
		}
		return fmt.Sprintf("Alert! In one hour there is %s. The timing is from %s to %s.", combined, start, end)
	}
}

// ImmediateAlert builds the "starts in N minutes" announcement used when the
// display language changes inside a window's lead hour.
func ImmediateAlert(language string, names, timings []string, minutesLeft int, auspicious bool) string {
	combined := JoinNames(language, names)
	start, end := "", ""
	if len(timings) > 0 {
		start, end = splitTiming(timings[0])
	}

	switch language {
	case "te":
		if auspicious {
			return fmt.Sprintf("గమనిక! %d నిమిషాల్లో %s ప్రారంభమవుతుంది. సమయం %s నుండి %s వరకు.", minutesLeft, combined, start, end)
		}
		return fmt.Sprintf("హెచ్చరిక! %d నిమిషాల్లో %s ప్రారంభమవుతుంది. సమయం %s నుండి %s వరకు.", minutesLeft, combined, start, end)
	case "hi":
		if auspicious {
			return fmt.Sprintf("सूचना! %d मिनट में %s शुरू होगा। समय %s से %s तक है।", minutesLeft, combined, start, end)
		}
		return fmt.Sprintf("सावधान! %d मिनट में %s शुरू होगा। समय %s से %s तक है।", minutesLeft, combined, start, end)
	case "kn":
		if auspicious {
			return fmt.Sprintf("ಗಮನಿಸಿ! %d ನಿಮಿಷಗಳಲ್ಲಿ %s ಪ್ರಾರಂಭವಾಗುತ್ತದೆ. ಸಮಯ %s ರಿಂದ %s ವರೆಗೆ.", minutesLeft, combined, start, end)
		}
		return fmt.Sprintf("ಎಚ್ಚರಿಕೆ! %d ನಿಮಿಷಗಳಲ್ಲಿ %s ಪ್ರಾರಂಭವಾಗುತ್ತದೆ. ಸಮಯ %s ರಿಂದ %s ವರೆಗೆ.", minutesLeft, combined, start, end)
	case "ta":
		if auspicious {
			return fmt.Sprintf("கவனிக்க! %d நிமிடங்களில் %s தொடங்கும். நேரம் %s முதல் %s வரை.", minutesLeft, combined, start, end)
		}
		return fmt.Sprintf("எச்சரிக்கை! %d நிமிடங்களில் %s தொடங்கும். நேரம் %s முதல் %s வரை.", minutesLeft, combined, start, end)
	case "ml":
		if auspicious {
			return fmt.Sprintf("ശ്രദ്ധിക്കുക! %d മിനിറ്റിൽ %s ആരംഭിക്കും. സമയം %s മുതൽ %s വരെ.", minutesLeft, combined, start, end)
		}
		return fmt.Sprintf("മുന്നറിയിപ്പ്! %d മിനിറ്റിൽ %s ആരംഭിക്കും. സമയം %s മുതൽ %s വരെ.", minutesLeft, combined, start, end)
	default:
		if auspicious {
			return fmt.Sprintf("Reminder! %s will start in %d minutes. The timing is from %s to %s.", combined, minutesLeft, start, end)
		}
		return fmt.Sprintf("Alert! %s will start in %d minutes. The timing is from %s to %s.", combined, minutesLeft, start, end)
	}
}

// DateSelectionSpeech is the short phrase spoken when a calendar date is
// picked: tithi, paksha, and the samvatsara name when present.
func DateSelectionSpeech(language, tithi, paksha, yearName string) string {
	year := ""
	if yearName != "" && yearName != "-" {
		parts := strings.Fields(strings.TrimSpace(yearName))
		if len(parts) > 1 {
			year = strings.Join(parts[1:], " ")
		}
	}
	if year != "" {
		return fmt.Sprintf("%s %s %s", tithi, paksha, year)
	}
	return fmt.Sprintf("%s %s", tithi, paksha)
}

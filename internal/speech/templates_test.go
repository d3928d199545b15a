package speech

import (
	"strings"
	"testing"

	"github.com/panchang-seva/panchangam/internal/muhurta"
)

func TestMuhurtaNameLocalization(t *testing.T) {
	if got := MuhurtaName(muhurta.KeyRahuKalam, "hi"); got != "राहुकाल" {
		t.Errorf("hindi Rahu Kalam = %q", got)
	}
	if got := MuhurtaName(muhurta.KeyRahuKalam, "gu"); got != "Rahu Kalam" {
		t.Errorf("unknown language should fall back to English, got %q", got)
	}
	if got := MuhurtaName(muhurta.Key("Custom"), "en"); got != "Custom" {
		t.Errorf("unknown key should fall back to the key itself, got %q", got)
	}
}

func TestJoinNames(t *testing.T) {
	if got := JoinNames("en", nil); got != "" {
		t.Errorf("empty list = %q", got)
	}
	if got := JoinNames("en", []string{"Rahu Kalam"}); got != "Rahu Kalam" {
		t.Errorf("single name = %q", got)
	}
	if got := JoinNames("en", []string{"Rahu Kalam", "Yamaganda"}); got != "Rahu Kalam and Yamaganda" {
		t.Errorf("pair = %q", got)
	}
	if got := JoinNames("te", []string{"a", "b", "c"}); got != "a, b మరియు c" {
		t.Errorf("telugu triple = %q", got)
	}
}

func TestMuhurtaAlertRegisters(t *testing.T) {
	timing := []string{"06:05 PM to 06:30 PM"}

	warn := MuhurtaAlert("en", []string{"Rahu Kalam"}, timing, false)
	if !strings.HasPrefix(warn, "Alert!") {
		t.Errorf("inauspicious alert missing warning register: %q", warn)
	}
	if !strings.Contains(warn, "from 06:05 PM to 06:30 PM") {
		t.Errorf("alert missing timing: %q", warn)
	}

	remind := MuhurtaAlert("en", []string{"Abhijit"}, timing, true)
	if !strings.HasPrefix(remind, "Reminder!") {
		t.Errorf("auspicious alert missing reminder register: %q", remind)
	}

	hi := MuhurtaAlert("hi", []string{"राहुकाल"}, timing, false)
	if !strings.HasPrefix(hi, "सावधान!") {
		t.Errorf("hindi warning register: %q", hi)
	}
}

func TestMuhurtaAlertGroupsNames(t *testing.T) {
	got := MuhurtaAlert("en", []string{"Rahu Kalam", "Gulikai Kalam"}, []string{"09:00 AM to 10:30 AM", "09:00 AM to 09:45 AM"}, false)
	if !strings.Contains(got, "Rahu Kalam and Gulikai Kalam") {
		t.Errorf("grouped names not joined: %q", got)
	}
	// Only the first group's timing is read out.
	if !strings.Contains(got, "from 09:00 AM to 10:30 AM") {
		t.Errorf("grouped alert should read the first timing: %q", got)
	}
}

func TestImmediateAlertMinutes(t *testing.T) {
	got := ImmediateAlert("en", []string{"Varjyam"}, []string{"11:00 PM to 11:45 PM"}, 42, false)
	if !strings.Contains(got, "42 minutes") {
		t.Errorf("minutes missing: %q", got)
	}
}

func TestTithiSpeech(t *testing.T) {
	if got := TithiSpeech("en", "Ashtami"); got != "Today's Tithi is Ashtami" {
		t.Errorf("english tithi = %q", got)
	}
	if got := TithiSpeech("hi", "अष्टमी"); got != "आज की तिथि अष्टमी है" {
		t.Errorf("hindi tithi = %q", got)
	}
}

func TestDateSelectionSpeech(t *testing.T) {
	got := DateSelectionSpeech("en", "Dwadashi", "Krishna Paksha", "1947 Vishvavasu")
	if got != "Dwadashi Krishna Paksha Vishvavasu" {
		t.Errorf("date selection = %q", got)
	}
	if got := DateSelectionSpeech("en", "Dwadashi", "Krishna Paksha", "-"); got != "Dwadashi Krishna Paksha" {
		t.Errorf("missing samvat = %q", got)
	}
}

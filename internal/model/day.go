package model

import (
	"github.com/panchang-seva/panchangam/internal/muhurta"
)

// Day is one calendar day of the panchang dataset. JSON tags mirror the field
// names of the source year documents, which use display names as keys.
type Day struct {
	Date        string `json:"date" db:"date"` // DD/MM/YYYY
	Weekday     string `json:"Weekday" db:"weekday"`
	Tithi       string `json:"Tithi" db:"tithi"`
	Paksha      string `json:"Paksha" db:"paksha"`
	Nakshatra   string `json:"Nakshatra" db:"nakshatra"`
	Yoga        string `json:"Yoga" db:"yoga"`
	Karanam     string `json:"Karanam,omitempty" db:"karanam"`
	ShakaSamvat string `json:"Shaka Samvat,omitempty" db:"shaka_samvat"`

	Sunrise  string `json:"Sunrise" db:"sunrise"`
	Sunset   string `json:"Sunset" db:"sunset"`
	Moonrise string `json:"Moonrise" db:"moonrise"`
	Moonset  string `json:"Moonset" db:"moonset"`

	Abhijit      string `json:"Abhijit" db:"abhijit"`
	RahuKalam    string `json:"Rahu Kalam" db:"rahu_kalam"`
	Yamaganda    string `json:"Yamaganda" db:"yamaganda"`
	GulikaiKalam string `json:"Gulikai Kalam" db:"gulikai_kalam"`
	DurMuhurtam  string `json:"Dur Muhurtam" db:"dur_muhurtam"`
	AmritKalam   string `json:"Amrit Kalam" db:"amrit_kalam"`
	Varjyam      string `json:"Varjyam" db:"varjyam"`

	// Festivals is populated from the festival dataset when a handler joins
	// the two sources; it is not a column of the days table.
	Festivals []string `json:"Festivals,omitempty" db:"-"`
}

// Raw reads a muhurta field by its key.
func (d *Day) Raw(key muhurta.Key) string {
	switch key {
	case muhurta.KeyRahuKalam:
		return d.RahuKalam
	case muhurta.KeyYamaganda:
		return d.Yamaganda
	case muhurta.KeyGulikai:
		return d.GulikaiKalam
	case muhurta.KeyDurMuhurtam:
		return d.DurMuhurtam
	case muhurta.KeyAbhijit:
		return d.Abhijit
	case muhurta.KeyAmritKalam:
		return d.AmritKalam
	case muhurta.KeyVarjyam:
		return d.Varjyam
	}
	return ""
}

// Windows returns the day's seven muhurta intervals in checker order,
// including the ones marked "-". Windows are rebuilt whenever the active day
// changes and are never mutated afterwards.
func (d *Day) Windows() []muhurta.Window {
	out := make([]muhurta.Window, 0, len(muhurta.Keys))
	for _, k := range muhurta.Keys {
		out = append(out, muhurta.Window{Key: k, Raw: d.Raw(k)})
	}
	return out
}

package packets

import "github.com/panchang-seva/panchangam/internal/model"

// returned for month listings
type MonthResponse struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Days  []model.Day `json:"days"`
}

// returned for festival lookups
type FestivalsResponse struct {
	Date      string   `json:"date"`
	Festivals []string `json:"festivals"`
}

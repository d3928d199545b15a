package packets

import "github.com/panchang-seva/panchangam/internal/model"

// body for chatbot questions. The client sends the day it is displaying and
// optionally the whole month for month-level questions.
type ChatRequest struct {
	Message      string      `json:"message"`
	SelectedDay  *model.Day  `json:"selectedDay"`
	CalendarData []model.Day `json:"calendarData"`
}

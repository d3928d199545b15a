package packets

// body for trigger/status checks. The older app versions sent the timing in
// a durMuhurtam field; both spellings are accepted.
type CheckRequest struct {
	TimeString  string `json:"timeString"`
	DurMuhurtam string `json:"durMuhurtam"`
}

// Timing returns whichever field the client filled.
func (r CheckRequest) Timing() string {
	if r.TimeString != "" {
		return r.TimeString
	}
	return r.DurMuhurtam
}

// body for scheduling a one-shot alert
type ScheduleRequest struct {
	DurMuhurtam string `json:"durMuhurtam" binding:"required"`
	Date        string `json:"date" binding:"required"`
}

// body for switching the announcement language
type LanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

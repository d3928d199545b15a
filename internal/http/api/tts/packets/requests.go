package packets

// body for speech synthesis
type SpeakRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
}

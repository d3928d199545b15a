package packets

// returned with base64-encoded mp3 audio
type SpeakResponse struct {
	Audio string `json:"audio"`
}

package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Clip is one synthesized utterance.
type Clip struct {
	Text     string
	Language string
	MP3      []byte
}

// Synthesizer turns text into playable audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) (Clip, error)
}

type voice struct {
	LanguageCode string `json:"languageCode"`
	Name         string `json:"name"`
}

// voiceMap picks a Google Cloud TTS voice per display language. Marwari has
// no dedicated voice and reuses the Hindi one.
var voiceMap = map[string]voice{
	"en":  {LanguageCode: "en-IN", Name: "en-IN-Neural2-D"},
	"hi":  {LanguageCode: "hi-IN", Name: "hi-IN-Neural2-A"},
	"te":  {LanguageCode: "te-IN", Name: "te-IN-Standard-A"},
	"ta":  {LanguageCode: "ta-IN", Name: "ta-IN-Standard-A"},
	"kn":  {LanguageCode: "kn-IN", Name: "kn-IN-Standard-A"},
	"ml":  {LanguageCode: "ml-IN", Name: "ml-IN-Standard-A"},
	"gu":  {LanguageCode: "gu-IN", Name: "gu-IN-Standard-A"},
	"bn":  {LanguageCode: "bn-IN", Name: "bn-IN-Standard-A"},
	"mrw": {LanguageCode: "hi-IN", Name: "hi-IN-Neural2-A"},
}

const googleTTSEndpoint = "https://texttospeech.googleapis.com/v1/text:synthesize"

// GoogleSynthesizer calls the Google Cloud text-to-speech REST API.
type GoogleSynthesizer struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewGoogleSynthesizer(apiKey string) *GoogleSynthesizer {
	return &GoogleSynthesizer{
		apiKey:   apiKey,
		endpoint: googleTTSEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// NewGoogleSynthesizerAt points the client at an alternate endpoint. Used by
// tests and proxies.
func NewGoogleSynthesizerAt(apiKey, endpoint string) *GoogleSynthesizer {
	s := NewGoogleSynthesizer(apiKey)
	s.endpoint = endpoint
	return s
}

type synthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice       voice `json:"voice"`
	AudioConfig struct {
		AudioEncoding string `json:"audioEncoding"`
	} `json:"audioConfig"`
}

type synthesizeResponse struct {
	AudioContent string `json:"audioContent"`
}

func (g *GoogleSynthesizer) Synthesize(ctx context.Context, text, language string) (Clip, error) {
	v, ok := voiceMap[language]
	if !ok {
		v = voiceMap["en"]
	}

	var payload synthesizeRequest
	payload.Input.Text = text
	payload.Voice = v
	payload.AudioConfig.AudioEncoding = "MP3"

	body, err := json.Marshal(payload)
	if err != nil {
		return Clip{}, fmt.Errorf("encode tts request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", g.endpoint, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Clip{}, fmt.Errorf("build tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return Clip{}, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		log.Warn().Int("status", resp.StatusCode).Str("language", language).Msg("tts synthesis rejected")
		return Clip{}, fmt.Errorf("tts status %d", resp.StatusCode)
	}

	var decoded synthesizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Clip{}, fmt.Errorf("decode tts response: %w", err)
	}
	audio, err := base64.StdEncoding.DecodeString(decoded.AudioContent)
	if err != nil {
		return Clip{}, fmt.Errorf("decode tts audio: %w", err)
	}
	if len(audio) == 0 {
		return Clip{}, fmt.Errorf("tts returned empty audio")
	}

	return Clip{Text: text, Language: language, MP3: audio}, nil
}

package speech

import (
	"context"
	"time"
)

// Player renders a clip to whatever audio sink the deployment has (paired
// devices over MQTT in production, a mock in tests). Play blocks until the
// clip finishes or ctx is cancelled; cancellation returns ctx.Err().
type Player interface {
	Play(ctx context.Context, clip Clip) error
}

// The Google TTS MP3 profile is 32 kbit/s, so byte length gives a usable
// playback duration without decoding frames.
const mp3BitsPerSecond = 32000

// EstimateDuration approximates how long a clip plays for.
func EstimateDuration(clip Clip) time.Duration {
	if len(clip.MP3) == 0 {
		return time.Second
	}
	d := time.Duration(len(clip.MP3)*8) * time.Second / mp3BitsPerSecond
	if d < time.Second {
		return time.Second
	}
	return d
}

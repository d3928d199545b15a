package speech

import (
	"context"
	"crypto/sha256"
	"fmt"
)

// AudioCache stores synthesized audio keyed by utterance. Misses are
// indistinguishable from cache errors on purpose; the synthesizer is always
// the fallback.
type AudioCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, audio []byte)
}

// CachingSynthesizer wraps a Synthesizer with an AudioCache. Alert texts
// repeat across days and devices, so synthesis for a given (text, language)
// pair is paid once per TTL.
type CachingSynthesizer struct {
	inner Synthesizer
	cache AudioCache
}

func NewCachingSynthesizer(inner Synthesizer, cache AudioCache) *CachingSynthesizer {
	return &CachingSynthesizer{inner: inner, cache: cache}
}

func cacheKey(text, language string) string {
	sum := sha256.Sum256([]byte(language + "\x00" + text))
	return fmt.Sprintf("tts:%s:%x", language, sum[:12])
}

func (c *CachingSynthesizer) Synthesize(ctx context.Context, text, language string) (Clip, error) {
	key := cacheKey(text, language)
	if audio, ok := c.cache.Get(ctx, key); ok {
		return Clip{Text: text, Language: language, MP3: audio}, nil
	}

	clip, err := c.inner.Synthesize(ctx, text, language)
	if err != nil {
		return Clip{}, err
	}
	c.cache.Set(ctx, key, clip.MP3)
	return clip, nil
}

package speech

import (
	"context"
	"testing"
)

type memCache struct {
	data map[string][]byte
}

func (m *memCache) Get(ctx context.Context, key string) ([]byte, bool) {
	audio, ok := m.data[key]
	return audio, ok
}

func (m *memCache) Set(ctx context.Context, key string, audio []byte) {
	m.data[key] = audio
}

func TestCachingSynthesizerHitSkipsInner(t *testing.T) {
	inner := &stubSynth{}
	cs := NewCachingSynthesizer(inner, &memCache{data: make(map[string][]byte)})
	ctx := context.Background()

	first, err := cs.Synthesize(ctx, "hello", "en")
	if err != nil {
		t.Fatal(err)
	}
	second, err := cs.Synthesize(ctx, "hello", "en")
	if err != nil {
		t.Fatal(err)
	}
	if string(first.MP3) != string(second.MP3) {
		t.Error("cached clip differs from the synthesized one")
	}
	if len(inner.calls) != 1 {
		t.Fatalf("inner synthesizer called %d times, want 1", len(inner.calls))
	}
}

func TestCachingSynthesizerKeysByLanguage(t *testing.T) {
	inner := &stubSynth{}
	cs := NewCachingSynthesizer(inner, &memCache{data: make(map[string][]byte)})
	ctx := context.Background()

	if _, err := cs.Synthesize(ctx, "hello", "en"); err != nil {
		t.Fatal(err)
	}
	if _, err := cs.Synthesize(ctx, "hello", "hi"); err != nil {
		t.Fatal(err)
	}
	if len(inner.calls) != 2 {
		t.Fatalf("inner synthesizer called %d times, want one per language", len(inner.calls))
	}
}

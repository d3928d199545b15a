package speech

import (
	"context"
	"sync"
	"time"
)

// MockPlayer simulates playback without producing sound. Tests control how
// long each clip "plays" and can inject playback failures.
type MockPlayer struct {
	mu        sync.Mutex
	played    []Clip
	playDelay time.Duration
	failNext  error

	// Started is signalled once per Play call as playback begins, letting a
	// test preempt a clip mid-flight deterministically.
	Started chan struct{}
}

func NewMockPlayer() *MockPlayer {
	return &MockPlayer{Started: make(chan struct{}, 16)}
}

// SetPlayDelay makes every subsequent Play block for d before completing.
func (m *MockPlayer) SetPlayDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playDelay = d
}

// FailNext makes the next Play return err immediately.
func (m *MockPlayer) FailNext(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNext = err
}

// Played returns a copy of every clip that completed playback.
func (m *MockPlayer) Played() []Clip {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Clip, len(m.played))
	copy(out, m.played)
	return out
}

func (m *MockPlayer) Play(ctx context.Context, clip Clip) error {
	m.mu.Lock()
	delay := m.playDelay
	err := m.failNext
	m.failNext = nil
	m.mu.Unlock()

	select {
	case m.Started <- struct{}{}:
	default:
	}

	if err != nil {
		return err
	}

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if ctx.Err() != nil {
		return ctx.Err()
	}

	m.mu.Lock()
	m.played = append(m.played, clip)
	m.mu.Unlock()
	return nil
}

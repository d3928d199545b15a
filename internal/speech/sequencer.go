package speech

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Result reports how a Speak call ended. Interruption covers every way an
// utterance can fail to play out in full: preemption by a newer request, an
// explicit Stop, a synthesis failure, or a playback failure. None of these
// are errors to the caller.
type Result struct {
	Interrupted bool
}

// Sequencer serializes speech so at most one utterance plays at a time.
// Each Speak call takes a fresh request id and cancels whatever was in
// flight; only the request holding the newest id may complete normally.
type Sequencer struct {
	synth  Synthesizer
	player Player

	mu       sync.Mutex
	activeID uint64
	cancel   context.CancelFunc
	inFlight int
}

func NewSequencer(synth Synthesizer, player Player) *Sequencer {
	return &Sequencer{synth: synth, player: player}
}

// Busy reports whether a request is currently synthesizing or playing. The
// notification poller defers a cycle's firing rather than queueing behind an
// active utterance.
func (s *Sequencer) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight > 0
}

// Stop halts current playback and invalidates any in-flight request. Their
// Speak calls resolve interrupted.
func (s *Sequencer) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeID++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Speak synthesizes text and plays it, blocking until playback finishes or
// the request is superseded. Of any set of overlapping calls, all but the
// most recent resolve interrupted; the survivor resolves interrupted only on
// synthesis/playback failure.
func (s *Sequencer) Speak(ctx context.Context, text, language string) Result {
	s.mu.Lock()
	if s.cancel != nil {
		// Preempt the in-flight request; its Speak resolves interrupted.
		s.cancel()
	}
	s.activeID++
	id := s.activeID
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.inFlight++
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.inFlight--
		if s.activeID == id {
			s.cancel = nil
		}
		s.mu.Unlock()
	}()

	clip, err := s.synth.Synthesize(reqCtx, text, language)
	if err != nil {
		log.Debug().Err(err).Str("language", language).Msg("speech synthesis failed")
		return Result{Interrupted: true}
	}

	// A newer request may have arrived while the fetch was in flight.
	if s.stale(id) || reqCtx.Err() != nil {
		return Result{Interrupted: true}
	}

	if err := s.player.Play(reqCtx, clip); err != nil {
		log.Debug().Err(err).Str("language", language).Msg("speech playback did not complete")
		return Result{Interrupted: true}
	}

	// Playback finished, but only the newest request may claim completion.
	if s.stale(id) || reqCtx.Err() != nil {
		return Result{Interrupted: true}
	}
	return Result{Interrupted: false}
}

func (s *Sequencer) stale(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID != id
}

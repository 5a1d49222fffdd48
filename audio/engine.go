// Package audio plays short synthesized cues for animation events.
// Everything is optional: a machine without a sound device runs the
// visualizer silently.
package audio

import (
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/treescope/constants"
)

// Engine owns the speaker and synthesizes cues on demand. Safe for use
// from the update goroutine; speaker.Play is non-blocking.
type Engine struct {
	rate  beep.SampleRate
	muted atomic.Bool
}

// NewEngine opens the speaker. The returned error is non-fatal to the
// caller; a nil *Engine is safe to pass around (cue sites nil-check).
func NewEngine() (*Engine, error) {
	rate := beep.SampleRate(constants.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferLength)); err != nil {
		return nil, err
	}
	return &Engine{rate: rate}, nil
}

// Close releases the speaker.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	speaker.Close()
}

// ToggleMute flips the mute flag and returns the new state.
func (e *Engine) ToggleMute() bool {
	if e == nil {
		return true
	}
	for {
		old := e.muted.Load()
		if e.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether cues are suppressed.
func (e *Engine) Muted() bool {
	return e == nil || e.muted.Load()
}

func (e *Engine) play(s beep.Streamer) {
	if e == nil || e.muted.Load() {
		return
	}
	speaker.Play(s)
}

// Visit plays the traversal/search hop blip.
func (e *Engine) Visit() {
	if e == nil {
		return
	}
	e.play(visitBlip(e.rate))
}

// Found plays the search success chime.
func (e *Engine) Found() {
	if e == nil {
		return
	}
	e.play(foundChime(e.rate))
}

// Error plays the no-op buzz.
func (e *Engine) Error() {
	if e == nil {
		return
	}
	e.play(errorBuzz(e.rate))
}

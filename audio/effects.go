package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/treescope/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// newOscillator creates an oscillator streamer for wave generation
func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// newEnvelope wraps s with attack/release volume shaping
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// visitBlip is the short tick played on each traversal visit or search
// hop.
func visitBlip(rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(constants.VisitBlipFreq, constants.VisitBlipDuration, WaveSine, rate)
	return newEnvelope(osc, constants.VisitBlipDuration, constants.VisitBlipAttack, constants.VisitBlipRelease, rate)
}

// foundChime is a rising two-note chime for a successful search.
func foundChime(rate beep.SampleRate) beep.Streamer {
	low := newEnvelope(
		newOscillator(constants.FoundChimeLowFreq, constants.FoundChimeDuration, WaveSine, rate),
		constants.FoundChimeDuration, constants.FoundChimeAttack, constants.FoundChimeRelease, rate)
	high := newEnvelope(
		newOscillator(constants.FoundChimeHighFreq, constants.FoundChimeDuration, WaveSine, rate),
		constants.FoundChimeDuration, constants.FoundChimeAttack, constants.FoundChimeRelease, rate)
	return beep.Seq(low, high)
}

// errorBuzz is a low saw buzz for no-op operations (absent key,
// duplicate insert).
func errorBuzz(rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(constants.ErrorBuzzFreq, constants.ErrorBuzzDuration, WaveSaw, rate)
	return newEnvelope(osc, constants.ErrorBuzzDuration, constants.ErrorBuzzAttack, constants.ErrorBuzzRelease, rate)
}

package constants

import "time"

// Audio engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferLength is the speaker buffer duration; latency/underrun
	// trade-off
	AudioBufferLength = 100 * time.Millisecond
)

// Visit blip (traversal visit, search hop arrival)
const (
	VisitBlipFreq     = 880.0
	VisitBlipDuration = 40 * time.Millisecond
	VisitBlipAttack   = 2 * time.Millisecond
	VisitBlipRelease  = 20 * time.Millisecond
)

// Found chime (search success)
const (
	FoundChimeLowFreq   = 660.0
	FoundChimeHighFreq  = 988.0
	FoundChimeDuration  = 120 * time.Millisecond
	FoundChimeAttack    = 5 * time.Millisecond
	FoundChimeRelease   = 80 * time.Millisecond
)

// Error buzz (absent key, duplicate insert)
const (
	ErrorBuzzFreq     = 110.0
	ErrorBuzzDuration = 150 * time.Millisecond
	ErrorBuzzAttack   = 5 * time.Millisecond
	ErrorBuzzRelease  = 60 * time.Millisecond
)

package constants

import "time"

// Audio Configuration
const (
	// AudioSampleRate is the playback sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// EffectVolume scales all generated sound effects
	EffectVolume = 0.6
)

// Eat Sound (two-note chime on food consumption)
const (
	EatSoundNote1Duration = 60 * time.Millisecond
	EatSoundNote2Duration = 90 * time.Millisecond
	EatSoundAttack        = 5 * time.Millisecond
	EatSoundNote1Release  = 30 * time.Millisecond
	EatSoundNote2Release  = 60 * time.Millisecond
)

// Crash Sound (buzz on game over)
const (
	CrashSoundDuration = 150 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 100 * time.Millisecond
)

package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate    = 44100
	AudioChannels      = 2
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * (AudioBitDepth / 8) // 4 bytes
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines latency and mixer tick rate
	AudioBufferDuration = 50 * time.Millisecond

	// AudioBufferSamples is frames per mixer tick at 44.1kHz
	AudioBufferSamples = (AudioSampleRate * 50) / 1000 // 2205

	// AudioPlayQueueSize bounds pending cue requests; overflow is dropped
	AudioPlayQueueSize = 32

	// AudioMaxActive bounds overlapping cues; the oldest is cut first
	AudioMaxActive = 12

	// AudioMaxCueDuration caps a rendered cue
	AudioMaxCueDuration = 2 * time.Second
)

// Cannon: noise crack over a low thump
const (
	CannonDuration   = 260 * time.Millisecond
	CannonAttack     = 2 * time.Millisecond
	CannonRelease    = 220 * time.Millisecond
	CannonThumpFreq  = 60.0
	CannonThumpLevel = 0.6
)

// Enemy cannon: shorter and duller than the player's
const (
	EnemyCannonDuration   = 180 * time.Millisecond
	EnemyCannonRelease    = 150 * time.Millisecond
	EnemyCannonThumpFreq  = 80.0
	EnemyCannonNoiseLevel = 0.5
)

// Hit: harsh saw buzz
const (
	HitDuration = 80 * time.Millisecond
	HitAttack   = 5 * time.Millisecond
	HitRelease  = 20 * time.Millisecond
	HitFreq     = 100.0
)

// Explosion: long noise decay with a sub rumble
const (
	ExplosionDuration   = 600 * time.Millisecond
	ExplosionAttack     = 5 * time.Millisecond
	ExplosionRelease    = 520 * time.Millisecond
	ExplosionRumbleFreq = 45.0
)

// Coin: two-note chime
const (
	CoinNote1Freq     = 987.77  // B5
	CoinNote2Freq     = 1318.51 // E6
	CoinNote1Duration = 80 * time.Millisecond
	CoinNote2Duration = 280 * time.Millisecond
	CoinAttack        = 5 * time.Millisecond
	CoinNote1Release  = 40 * time.Millisecond
	CoinNote2Release  = 200 * time.Millisecond
)

// Repair: bell with an octave overtone
const (
	RepairDuration           = 600 * time.Millisecond
	RepairAttack             = 5 * time.Millisecond
	RepairFundamentalRelease = 550 * time.Millisecond
	RepairOvertoneRelease    = 200 * time.Millisecond
	RepairFundamentalFreq    = 880.0
	RepairFundamentalLevel   = 0.7
	RepairOvertoneLevel      = 0.3
)

// Fanfares: wave start rises, game over falls
const (
	FanfareNoteDuration = 140 * time.Millisecond
	FanfareAttack       = 5 * time.Millisecond
	FanfareRelease      = 60 * time.Millisecond
	DirgeNoteDuration   = 260 * time.Millisecond
	DirgeRelease        = 180 * time.Millisecond
)

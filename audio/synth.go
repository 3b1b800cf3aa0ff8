package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/shiptapper/event"
	"github.com/lixenwraith/shiptapper/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator streams a fixed-length raw waveform
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
}

func newOscillator(freq float64, duration time.Duration, wave WaveType) beep.Streamer {
	return &oscillator{freq: freq, duration: sampleRate.N(duration), wave: wave}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
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
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack/release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  sampleRate.N(attack),
		releaseSamples: sampleRate.N(release),
		totalSamples:   sampleRate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := max(e.totalSamples-e.releaseSamples, e.attackSamples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer in a linear gain; zero gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// sine is a band-limited tone from beep's generator, cut to duration
func sine(freq float64, duration time.Duration) beep.Streamer {
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return newOscillator(freq, duration, WaveSine)
	}
	return beep.Take(sampleRate.N(duration), tone)
}

// render drains a finite streamer into a mono buffer, capped at AudioMaxCueDuration
func render(s beep.Streamer) floatBuffer {
	limit := sampleRate.N(parameter.AudioMaxCueDuration)
	out := make(floatBuffer, 0, 4096)
	chunk := make([][2]float64, 512)

	for len(out) < limit {
		n, ok := s.Stream(chunk)
		for i := 0; i < n && len(out) < limit; i++ {
			out = append(out, (chunk[i][0]+chunk[i][1])/2)
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

// mixFloatBuffers adds b into a, extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

func concatFloatBuffers(parts ...floatBuffer) floatBuffer {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make(floatBuffer, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// tone renders one shaped note
func tone(wave WaveType, freq float64, duration, attack, release time.Duration) floatBuffer {
	var src beep.Streamer
	if wave == WaveSine {
		src = sine(freq, duration)
	} else {
		src = newOscillator(freq, duration, wave)
	}
	return render(newEnvelope(src, duration, attack, release))
}

// --- Cue recipes (unity gain) ---

func generateCannon() floatBuffer {
	crack := tone(WaveNoise, 0, parameter.CannonDuration, parameter.CannonAttack, parameter.CannonRelease)
	thump := tone(WaveSine, parameter.CannonThumpFreq, parameter.CannonDuration, parameter.CannonAttack, parameter.CannonRelease)
	return mixFloatBuffers(crack, thump, parameter.CannonThumpLevel)
}

func generateEnemyCannon() floatBuffer {
	crack := render(newVolume(
		newEnvelope(newOscillator(0, parameter.EnemyCannonDuration, WaveNoise),
			parameter.EnemyCannonDuration, parameter.CannonAttack, parameter.EnemyCannonRelease),
		parameter.EnemyCannonNoiseLevel))
	thump := tone(WaveSine, parameter.EnemyCannonThumpFreq, parameter.EnemyCannonDuration, parameter.CannonAttack, parameter.EnemyCannonRelease)
	return mixFloatBuffers(crack, thump, 1)
}

func generateHit() floatBuffer {
	return tone(WaveSaw, parameter.HitFreq, parameter.HitDuration, parameter.HitAttack, parameter.HitRelease)
}

func generateExplosion() floatBuffer {
	noise := tone(WaveNoise, 0, parameter.ExplosionDuration, parameter.ExplosionAttack, parameter.ExplosionRelease)
	rumble := tone(WaveSine, parameter.ExplosionRumbleFreq, parameter.ExplosionDuration, parameter.ExplosionAttack, parameter.ExplosionRelease)
	return mixFloatBuffers(noise, rumble, 0.8)
}

func generateCoin() floatBuffer {
	n1 := tone(WaveSquare, parameter.CoinNote1Freq, parameter.CoinNote1Duration, parameter.CoinAttack, parameter.CoinNote1Release)
	n2 := tone(WaveSquare, parameter.CoinNote2Freq, parameter.CoinNote2Duration, parameter.CoinAttack, parameter.CoinNote2Release)
	return concatFloatBuffers(n1, n2)
}

func generateRepair() floatBuffer {
	fund := render(newVolume(newEnvelope(sine(parameter.RepairFundamentalFreq, parameter.RepairDuration),
		parameter.RepairDuration, parameter.RepairAttack, parameter.RepairFundamentalRelease),
		parameter.RepairFundamentalLevel))
	over := tone(WaveSine, 2*parameter.RepairFundamentalFreq, parameter.RepairDuration, parameter.RepairAttack, parameter.RepairOvertoneRelease)
	return mixFloatBuffers(fund, over, parameter.RepairOvertoneLevel)
}

func generateWaveStart() floatBuffer {
	// C5 E5 G5 C6
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	parts := make([]floatBuffer, len(notes))
	for i, f := range notes {
		parts[i] = tone(WaveSquare, f, parameter.FanfareNoteDuration, parameter.FanfareAttack, parameter.FanfareRelease)
	}
	return concatFloatBuffers(parts...)
}

func generateGameOver() floatBuffer {
	// G4 E4 C4
	notes := []float64{392.00, 329.63, 261.63}
	parts := make([]floatBuffer, len(notes))
	for i, f := range notes {
		parts[i] = tone(WaveSaw, f, parameter.DirgeNoteDuration, parameter.FanfareAttack, parameter.DirgeRelease)
	}
	return concatFloatBuffers(parts...)
}

// generateCue dispatches to a cue recipe
func generateCue(cue event.SoundCue) floatBuffer {
	switch cue {
	case event.SoundCannon:
		return generateCannon()
	case event.SoundEnemyCannon:
		return generateEnemyCannon()
	case event.SoundHit:
		return generateHit()
	case event.SoundExplosion:
		return generateExplosion()
	case event.SoundCoin:
		return generateCoin()
	case event.SoundRepair:
		return generateRepair()
	case event.SoundWaveStart:
		return generateWaveStart()
	case event.SoundGameOver:
		return generateGameOver()
	default:
		return nil
	}
}

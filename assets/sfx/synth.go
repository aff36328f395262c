// Package sfx synthesizes the game's sound effects with beep and renders
// them to PCM, so no audio files ship with the game.
package sfx

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/automoto/slimehop/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// sweep is an oscillator whose frequency glides linearly from startHz to
// endHz over its duration.
type sweep struct {
	wave     config.Waveform
	startHz  float64
	endHz    float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
	rng      *rand.Rand
}

func NewSweep(def config.ToneDef, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		wave:     def.Wave,
		startHz:  def.StartHz,
		endHz:    def.EndHz,
		duration: rate.N(time.Duration(def.DurationMs) * time.Millisecond),
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(def.DurationMs))),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, false
		}

		var val float64
		switch s.wave {
		case config.WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case config.WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case config.WaveNoise:
			val = s.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(s.position) / float64(s.duration)
		freq := s.startHz + (s.endHz-s.startHz)*t
		s.phase += freq / float64(s.rate)
		s.phase = s.phase - math.Floor(s.phase) // Keep in [0, 1)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// decay fades its source linearly to silence over total samples
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume scales linearly; beep's Volume is logarithmic and log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Tone builds the streamer for a tone definition.
func Tone(def config.ToneDef, rate beep.SampleRate) beep.Streamer {
	total := rate.N(time.Duration(def.DurationMs) * time.Millisecond)
	shaped := &decay{streamer: NewSweep(def, rate), total: total}
	return newVolume(shaped, def.Volume)
}

// Render drains s into signed 16-bit little-endian stereo PCM, the format
// ebiten's audio context plays.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := math.Max(-1, math.Min(1, buf[i][c]))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// RenderAll renders every configured tone at the configured sample rate.
func RenderAll(sound config.SoundConfig, audio config.AudioConfig) map[config.Trigger][]byte {
	rate := beep.SampleRate(audio.SampleRate)
	pcm := make(map[config.Trigger][]byte, len(sound.Tones))
	for trigger, def := range sound.Tones {
		pcm[trigger] = Render(Tone(def, rate))
	}
	return pcm
}

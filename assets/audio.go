package assets

import (
	"bytes"
	"sync"

	"github.com/automoto/slimehop/assets/sfx"
	"github.com/automoto/slimehop/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var (
	audioContext  *audio.Context
	audioInitOnce sync.Once
)

// AudioContext returns the process-wide audio context; ebiten allows only one.
func AudioContext() *audio.Context {
	audioInitOnce.Do(func() {
		audioContext = audio.NewContext(config.Audio.SampleRate)
	})
	return audioContext
}

// SoundBank plays the synthesized sound effect for each trigger.
type SoundBank struct {
	context *audio.Context
	pcm     map[config.Trigger][]byte
	volume  float64
	muted   bool

	// win jingle volume ramp
	fading *audio.Player
	fade   *gween.Tween
}

func NewSoundBank(ctx *audio.Context) *SoundBank {
	return &SoundBank{
		context: ctx,
		pcm:     sfx.RenderAll(config.Sound, config.Audio),
		volume:  config.Audio.DefaultSFXVol,
	}
}

func (b *SoundBank) Play(t config.Trigger) {
	if b.muted || b.volume <= 0 {
		return
	}
	data, ok := b.pcm[t]
	if !ok {
		return
	}

	player, err := b.context.NewPlayer(bytes.NewReader(data))
	if err != nil {
		log.Warn("Could not create sound player", "trigger", t, "error", err)
		return
	}

	if t == config.TriggerPlayerWon && config.Audio.WinFadeInMs > 0 {
		player.SetVolume(0)
		b.fading = player
		b.fade = gween.New(0, float32(b.volume), float32(config.Audio.WinFadeInMs), ease.InQuad)
	} else {
		player.SetVolume(b.volume)
	}
	player.Play()
}

func (b *SoundBank) PlayAll(triggers []config.Trigger) {
	for _, t := range triggers {
		b.Play(t)
	}
}

// Update advances the win jingle fade-in by dtMs.
func (b *SoundBank) Update(dtMs float64) {
	if b.fade == nil {
		return
	}
	v, done := b.fade.Update(float32(dtMs))
	b.fading.SetVolume(float64(v))
	if done {
		b.fade = nil
		b.fading = nil
	}
}

func (b *SoundBank) Volume() float64 { return b.volume }
func (b *SoundBank) Muted() bool     { return b.muted }

func (b *SoundBank) SetVolume(v float64) {
	b.volume = max(0, min(1, v))
}

func (b *SoundBank) SetMuted(m bool) {
	b.muted = m
}

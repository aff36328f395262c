package config

// Trigger is a discrete event emitted by the simulation for audio and UI.
type Trigger int

const (
	TriggerNone Trigger = iota
	TriggerJumped
	TriggerHit
	TriggerCoinCollected
	TriggerPlayerWon
	TriggerPlayerLost
)

var triggerNames = map[Trigger]string{
	TriggerNone:          "None",
	TriggerJumped:        "Jumped",
	TriggerHit:           "Hit",
	TriggerCoinCollected: "CoinCollected",
	TriggerPlayerWon:     "PlayerWon",
	TriggerPlayerLost:    "PlayerLost",
}

func (t Trigger) String() string {
	if name, ok := triggerNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Terminal reports whether the trigger ends the level.
func (t Trigger) Terminal() bool {
	return t == TriggerPlayerWon || t == TriggerPlayerLost
}

// Waveform selects the oscillator used to synthesize a tone.
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveSine
	WaveNoise
)

// ToneDef describes a synthesized sound effect: a frequency sweep with a
// linear decay envelope.
type ToneDef struct {
	Wave       Waveform
	StartHz    float64
	EndHz      float64
	DurationMs int
	Volume     float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int     `yaml:"sample_rate"`
	DefaultSFXVol float64 `yaml:"sfx_volume"`
	WinFadeInMs   float64 `yaml:"win_fade_in_ms"` // win jingle ramps in over this long
}

// SoundConfig maps triggers to synthesized tones
type SoundConfig struct {
	Tones map[Trigger]ToneDef
}

var Audio AudioConfig
var Sound SoundConfig

func resetAudio() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
		WinFadeInMs:   400,
	}

	Sound = SoundConfig{
		Tones: map[Trigger]ToneDef{
			TriggerJumped:        {Wave: WaveSquare, StartHz: 330, EndHz: 660, DurationMs: 120, Volume: 0.4},
			TriggerHit:           {Wave: WaveNoise, DurationMs: 150, Volume: 0.6},
			TriggerCoinCollected: {Wave: WaveSine, StartHz: 988, EndHz: 1319, DurationMs: 140, Volume: 0.5},
			TriggerPlayerWon:     {Wave: WaveSine, StartHz: 523, EndHz: 1047, DurationMs: 900, Volume: 0.7},
			TriggerPlayerLost:    {Wave: WaveSquare, StartHz: 392, EndHz: 98, DurationMs: 700, Volume: 0.5},
		},
	}
}

package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundThrow
	SoundDamage
	SoundDeath
	SoundLevelComplete
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	LevelMusic        string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.3,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 30,
	}

	Sound = SoundConfig{
		LevelMusic: "audio/music/beat.wav",
		SFXPaths: map[SoundID]string{
			SoundThrow:         "audio/sfx/shuriken_throw.wav",
			SoundDamage:        "audio/sfx/damage.wav",
			SoundDeath:         "audio/sfx/death.wav",
			SoundLevelComplete: "audio/sfx/level_complete.wav",
			SoundMenuSelect:    "audio/sfx/menu_select.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundThrow: 0.5,
		},
	}
}

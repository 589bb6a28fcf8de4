package systems

import (
	"slices"
	"sync"

	"github.com/automoto/ninja-platformer/assets"
	"github.com/automoto/ninja-platformer/components"
	cfg "github.com/automoto/ninja-platformer/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// mixer owns the audio device and the level track. Scenes come and go, the
// mixer lives for the whole process.
type mixer struct {
	once   sync.Once
	ctx    *audio.Context
	loader *assets.AudioLoader

	track     *audio.Player
	trackPath string
	musicVol  float64
	sfxVol    float64

	fadeLeft  int
	fadeTotal int
	fadeFrom  float64
}

var mix = &mixer{
	musicVol: cfg.Audio.DefaultMusicVol,
	sfxVol:   cfg.Audio.DefaultSFXVol,
}

// open creates the audio context on first use. ebiten allows one per process.
func (m *mixer) open() {
	m.once.Do(func() {
		m.ctx = audio.NewContext(cfg.Audio.SampleRate)
		m.loader = assets.NewAudioLoader(m.ctx)
	})
}

func (m *mixer) closeTrack() {
	if m.track != nil {
		_ = m.track.Close()
	}
	m.track = nil
	m.trackPath = ""
	m.fadeLeft = 0
}

// stepFade lowers the track volume linearly and closes it at the end.
func (m *mixer) stepFade() {
	if m.fadeLeft == 0 || m.track == nil {
		return
	}
	m.fadeLeft--
	m.track.SetVolume(m.fadeFrom * float64(m.fadeLeft) / float64(m.fadeTotal))
	if m.fadeLeft == 0 {
		m.closeTrack()
	}
}

func (m *mixer) play(id cfg.SoundID) {
	if m.sfxVol <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return
	}
	p, err := m.loader.LoadSFX(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("load sfx")
		return
	}
	vol := m.sfxVol
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		vol *= mult
	}
	p.SetVolume(vol)
	p.Play()
}

// PreloadAllSFX decodes every sound effect so the first throw does not stall.
func PreloadAllSFX() {
	mix.open()
	for id, path := range cfg.Sound.SFXPaths {
		if err := mix.loader.PreloadSFX(path); err != nil {
			log.Warn().Err(err).Int("sound", int(id)).Str("path", path).Msg("preload sfx")
		}
	}
}

// UpdateAudio plays the sounds queued during the frame and advances a
// running music fade.
func UpdateAudio(e *ecs.ECS) {
	mix.open()
	mix.stepFade()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	queue := components.Audio.Get(entry)
	for _, id := range queue.PendingSFX {
		mix.play(id)
	}
	queue.PendingSFX = queue.PendingSFX[:0]
}

// PlayMusic loops the track at path. Asking for the running track is a no-op.
func PlayMusic(path string) {
	mix.open()
	if mix.trackPath == path && mix.fadeLeft == 0 {
		return
	}
	mix.closeTrack()

	p, err := mix.loader.LoadMusic(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("load music")
		return
	}
	p.SetVolume(mix.musicVol)
	p.Play()
	mix.track = p
	mix.trackPath = path
}

// FadeOutMusic fades the track out over cfg.Audio.MusicFadeDuration frames.
func FadeOutMusic() {
	if mix.track == nil || mix.fadeLeft > 0 {
		return
	}
	mix.fadeTotal = max(cfg.Audio.MusicFadeDuration, 1)
	mix.fadeLeft = mix.fadeTotal
	mix.fadeFrom = mix.track.Volume()
}

func StopMusic() {
	mix.closeTrack()
}

func PauseMusic() {
	if mix.track != nil {
		mix.track.Pause()
	}
}

func ResumeMusic() {
	if mix.track != nil {
		mix.track.Play()
	}
}

// PlaySFX queues a sound for the next UpdateAudio. A sound already queued
// this frame is not queued again. Nothing here touches the audio device.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	queue := GetOrCreateAudio(e)
	if slices.Contains(queue.PendingSFX, sound) {
		return
	}
	queue.PendingSFX = append(queue.PendingSFX, sound)
}

// PlayUISound plays a sound right away. Menus use it for sounds that must
// survive the scene change they trigger.
func PlayUISound(sound cfg.SoundID) {
	mix.open()
	mix.play(sound)
}

// GetOrCreateAudio returns the sound queue of this world.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

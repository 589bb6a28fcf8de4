package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// loopStream is what both decoders hand back.
type loopStream interface {
	io.ReadSeeker
	Length() int64
}

// AudioLoader decodes embedded sound files and keeps short effects in memory.
type AudioLoader struct {
	sfxCache map[string][]byte
	context  *audio.Context
}

func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

func (l *AudioLoader) decode(path string) (loopStream, error) {
	data, err := audioFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read audio file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode ogg %s: %w", path, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode wav %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}

// PreloadSFX decodes a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}

	stream, err := l.decode(path)
	if err != nil {
		return err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("read decoded audio %s: %w", path, err)
	}

	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX returns a fresh player for a cached effect, decoding it on first use.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[path]))
}

// LoadMusic returns a looping player streaming from the embedded file.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	stream, err := l.decode(path)
	if err != nil {
		return nil, err
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}

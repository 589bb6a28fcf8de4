package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/automoto/ninja-platformer/assets/animations"
	"github.com/automoto/ninja-platformer/config"
	"github.com/automoto/ninja-platformer/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Animations is the registry every entity copies its playheads from.
var Animations = animations.NewRegistry()

func init() {
	for key, def := range config.Animations {
		Animations.Register(key, animations.NewAnimation(def.Frames, def.ImgDuration, def.Loop))
	}
}

// LevelFS returns the level directory: the embedded copy, or the directory
// named by NINJA_LEVEL_DIR while editing levels.
func LevelFS() fs.FS {
	if config.Debug.LevelDir != "" {
		return os.DirFS(config.Debug.LevelDir)
	}
	sub, err := fs.Sub(levelFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("embedded levels missing: %v", err))
	}
	return sub
}

// LoadLevelRoster reads levels.yaml from the level directory.
func LoadLevelRoster() ([]config.LevelDef, error) {
	data, err := fs.ReadFile(LevelFS(), "levels.yaml")
	if err != nil {
		return nil, fmt.Errorf("read level roster: %w", err)
	}
	return config.ParseLevels(data)
}

// LoadLevel parses the TMX file of a roster entry.
func LoadLevel(def config.LevelDef) (*leveldata.Level, error) {
	return leveldata.Load(LevelFS(), def.Tilemap)
}

// ImageLoader caches decoded images and the frames cut from them.
type ImageLoader struct {
	cache  map[string]*ebiten.Image
	frames map[string][]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache:  make(map[string]*ebiten.Image),
		frames: make(map[string][]*ebiten.Image),
	}
}

var images = NewImageLoader()

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img
	return img
}

// Strip cuts a horizontal strip into count frames of frameWidth pixels.
func (l *ImageLoader) Strip(path string, frameWidth, count int) []*ebiten.Image {
	if frames, ok := l.frames[path]; ok {
		return frames
	}

	sheet := l.MustLoadImage(path)
	h := sheet.Bounds().Dy()
	if frameWidth*count > sheet.Bounds().Dx() {
		panic(fmt.Sprintf("image %s holds fewer than %d frames of width %d", path, count, frameWidth))
	}

	frames := make([]*ebiten.Image, count)
	for i := range frames {
		rect := image.Rect(i*frameWidth, 0, (i+1)*frameWidth, h)
		frames[i] = sheet.SubImage(rect).(*ebiten.Image)
	}
	l.frames[path] = frames
	return frames
}

// AnimationFrames returns the frames of a registered animation strip.
func AnimationFrames(key string) []*ebiten.Image {
	def, ok := config.Animations[key]
	if !ok {
		panic(fmt.Sprintf("no animation definition for %q", key))
	}
	return images.Strip("images/"+key+".png", def.FrameWidth, def.Frames)
}

// AnimationImage returns the frame on screen for a playhead of the given key.
func AnimationImage(key string, anim *animations.Animation) *ebiten.Image {
	frames := AnimationFrames(key)
	return frames[anim.Frame()%len(frames)]
}

// TileImage returns the image of a tile variant.
func TileImage(tileType string, variant int) *ebiten.Image {
	count, ok := config.TileVariants[tileType]
	if !ok {
		panic(fmt.Sprintf("no tile images for type %q", tileType))
	}
	frames := images.Strip("images/tiles/"+tileType+".png", config.C.TileSize, count)
	if variant < 0 || variant >= len(frames) {
		panic(fmt.Sprintf("tile %s has no variant %d", tileType, variant))
	}
	return frames[variant]
}

// Background returns a full-screen sky image by name.
func Background(name string) *ebiten.Image {
	return images.MustLoadImage("images/backgrounds/" + name + ".png")
}

// CloudImages returns the cloud variants.
func CloudImages() []*ebiten.Image {
	return images.Strip("images/clouds.png", 32, 2)
}

// Checkmark is drawn next to completed levels.
func Checkmark() *ebiten.Image {
	return images.MustLoadImage("images/ui/checkmark.png")
}

// PreloadAllAnimations decodes every strip up front to avoid a hitch the
// first time an action is shown.
func PreloadAllAnimations() {
	for _, key := range Animations.Keys() {
		AnimationFrames(key)
	}
	for tileType := range config.TileVariants {
		TileImage(tileType, 0)
	}
}

package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// Shader names, files under shaders/ without the extension.
const (
	ShaderIris = "iris"
)

var shaders = map[string]*ebiten.Shader{}

// Shader returns the compiled shader, compiling it on first use.
func Shader(name string) (*ebiten.Shader, error) {
	if s, ok := shaders[name]; ok {
		return s, nil
	}
	src, err := shaderFS.ReadFile("shaders/" + name + ".kage")
	if err != nil {
		return nil, fmt.Errorf("read shader %s: %w", name, err)
	}
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile shader %s: %w", name, err)
	}
	shaders[name] = s
	return s, nil
}

// LoadShaders compiles every shader the game draws with.
func LoadShaders() error {
	_, err := Shader(ShaderIris)
	return err
}

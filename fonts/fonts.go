package fonts

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the text/v2 face used by ebitenui widgets and text.Draw.
func (f FontName) Face() text.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	return face
}

var (
	fonts = map[FontName]font.Face{}
	faces = map[FontName]text.Face{}
)

func init() {
	LoadFontWithSize(Regular, goregular.TTF, 10)
	LoadFontWithSize(Title, goregular.TTF, 16)
	LoadFontWithSize(Small, goregular.TTF, 8)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("parse font %s: %v", name, err))
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})

	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic(fmt.Sprintf("parse font %s: %v", name, err))
	}
	faces[name] = &text.GoTextFace{Source: src, Size: size}
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

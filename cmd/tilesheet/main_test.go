package main

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func solid(size int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestStitchWrapsRows(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	tiles := []image.Image{solid(16, red), solid(16, red), solid(16, blue)}
	sheet := Stitch(tiles, 2, 16)

	assert.Equal(t, image.Rect(0, 0, 32, 32), sheet.Bounds())
	assert.Equal(t, red, sheet.RGBAAt(20, 4))
	assert.Equal(t, blue, sheet.RGBAAt(4, 20))
	assert.Equal(t, color.RGBA{}, sheet.RGBAAt(20, 20))
}

func TestStitchScalesOddSizes(t *testing.T) {
	green := color.RGBA{G: 255, A: 255}
	sheet := Stitch([]image.Image{solid(8, green)}, 10, 16)

	assert.Equal(t, image.Rect(0, 0, 16, 16), sheet.Bounds())
	assert.Equal(t, green, sheet.RGBAAt(15, 15))
}

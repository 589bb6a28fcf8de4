// Command tilesheet stitches single tile PNGs into one tilesheet for the
// level editor. Tiles are placed in file name order, ten per row by default.
// Tiles of another size are scaled to fit their cell.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/draw"
)

func main() {
	in := flag.String("in", "assets/images/tiles/src", "directory of tile PNGs")
	out := flag.String("out", "assets/levels/tiles.png", "tilesheet to write")
	perRow := flag.Int("per-row", 10, "tiles per row")
	size := flag.Int("tile", 16, "tile size in pixels")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	tiles, err := loadTiles(*in)
	if err != nil {
		log.Fatal().Err(err).Str("dir", *in).Msg("load tiles")
	}

	sheet := Stitch(tiles, *perRow, *size)
	if err := writePNG(*out, sheet); err != nil {
		log.Fatal().Err(err).Str("out", *out).Msg("write tilesheet")
	}
	log.Info().Int("tiles", len(tiles)).Str("out", *out).Msg("tilesheet written")
}

// Stitch lays tiles out row-major in cells of size x size pixels.
func Stitch(tiles []image.Image, perRow, size int) *image.RGBA {
	if perRow < 1 {
		perRow = 1
	}
	cols := min(perRow, max(len(tiles), 1))
	rows := (len(tiles) + perRow - 1) / perRow
	sheet := image.NewRGBA(image.Rect(0, 0, cols*size, max(rows, 1)*size))

	for i, tile := range tiles {
		x, y := (i%perRow)*size, (i/perRow)*size
		cell := image.Rect(x, y, x+size, y+size)
		if tile.Bounds().Dx() == size && tile.Bounds().Dy() == size {
			draw.Draw(sheet, cell, tile, tile.Bounds().Min, draw.Src)
			continue
		}
		draw.NearestNeighbor.Scale(sheet, cell, tile, tile.Bounds(), draw.Src, nil)
	}
	return sheet
}

func loadTiles(dir string) ([]image.Image, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	tiles := make([]image.Image, 0, len(names))
	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		tiles = append(tiles, img)
	}
	return tiles, nil
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

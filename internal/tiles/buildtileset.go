package tiles

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path"
	"runtime"
	"sync"

	"github.com/nfnt/resize"
	"golang.org/x/sync/semaphore"
)

// BuildTileSet splits the image into 2^lod x 2^lod tiles, resizes each to
// 256x256 pixels and writes them to <outputDirectory>/<lod>/<col>/<row>.png.
func BuildTileSet(lod uint8, img *image.RGBA, outputDirectory string) {
	outputDirectory = path.Join(outputDirectory, fmt.Sprintf("%d", lod))

	tilesPerRowCol := 1 << lod

	// make col directories
	wg := sync.WaitGroup{}
	for col := 0; col < tilesPerRowCol; col++ {
		wg.Add(1)
		go func(col int) {
			defer wg.Done()
			dirPath := path.Join(outputDirectory, fmt.Sprintf("%d", col))
			if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
				log.Fatal(err)
			}
		}(col)
	}
	wg.Wait()

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	tileWidth := width / tilesPerRowCol
	tileHeight := height / tilesPerRowCol

	// remaining pixels are distributed among the first columns / rows
	widthRemainder := width % tilesPerRowCol
	heightRemainder := height % tilesPerRowCol

	wg2 := sync.WaitGroup{}

	for col := 0; col < tilesPerRowCol; col++ {
		for row := 0; row < tilesPerRowCol; row++ {
			wg2.Add(1)
			go func(col int, row int) {
				defer wg2.Done()

				tilePath := path.Join(outputDirectory, fmt.Sprintf("%d", col), fmt.Sprintf("%d.png", row))

				x := tileWidth*col + min(col, widthRemainder)
				y := tileHeight*row + min(row, heightRemainder)
				w := tileWidth
				h := tileHeight

				if col < widthRemainder {
					w++
				}
				if row < heightRemainder {
					h++
				}

				p := image.Point{x, y}
				rect := image.Rectangle{p, p.Add(image.Point{w, h})}
				createTile(img, rect, tilePath)
			}(col, row)
		}
	}

	wg2.Wait()
}

var sem = semaphore.NewWeighted(int64(runtime.NumCPU()))

func createTile(img *image.RGBA, rect image.Rectangle, tilePath string) {
	sem.Acquire(context.Background(), 1)
	defer sem.Release(1)

	tile := resize.Resize(tileSizeInPx, tileSizeInPx, img.SubImage(rect), resize.MitchellNetravali)

	out, err := os.Create(tilePath)
	if err != nil {
		fmt.Println(err)
		return
	}

	png.Encode(out, tile)

	if err := out.Close(); err != nil {
		fmt.Println(err)
	}
}

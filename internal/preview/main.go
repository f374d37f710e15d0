package preview

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"time"

	"github.com/nfnt/resize"

	"github.com/gruppe-adler/dem-utils/internal/dem"
	"github.com/gruppe-adler/dem-utils/internal/hillshade"
	"github.com/gruppe-adler/dem-utils/internal/palette"
	"github.com/gruppe-adler/dem-utils/internal/raster"
	"github.com/gruppe-adler/dem-utils/internal/relief"
	"github.com/gruppe-adler/dem-utils/internal/utils"
)

var sizes = []uint{128, 256, 512, 1024}

// Run is the preview command's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	inputPtr := flagSet.String("in", "", "Path to DEM file (Esri ASCII grid, optionally gzipped)")
	outputPtr := flagSet.String("out", ".", "Path to output directory")
	palettePtr := flagSet.String("palette", palette.Default, "Color gradient for the relief")

	flagSet.Parse(os.Args[2:])

	// make sure input flag is present
	if *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	if !utils.IsFile(*inputPtr) {
		log.Fatal(errors.New("Input DEM doesn't exists"))
	}

	// make sure given output directory is a valid directory
	if !utils.IsDirectory(*outputPtr) {
		log.Fatal(errors.New("Output directory doesn't exists"))
	}

	gradient, err := palette.ByName(*palettePtr)
	if err != nil {
		log.Fatal(err)
	}

	timer = time.Now()
	fmt.Println("▶️  Loading DEM")

	grid, err := dem.Read(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("✔️  Loaded DEM in", time.Now().Sub(timer).String())

	timer = time.Now()
	fmt.Println("▶️  Rendering preview image")

	base := relief.ColorImage(relief.Normalize(grid.Data), int(grid.Ncols), int(grid.Nrows), palette.ColorFunc(gradient))
	_, shaded := hillshade.Shade(grid, hillshade.DefaultLight, base)

	previewImage := shaded.Image()
	if previewImage.Bounds().Dx() == 0 || previewImage.Bounds().Dy() == 0 {
		log.Fatal(errors.New("DEM is too small to render a preview"))
	}

	fmt.Println("✔️  Rendered preview image in", time.Now().Sub(timer).String())

	timer = time.Now()
	fmt.Println("▶️  Writing full size preview image")

	if err := raster.WritePNG(path.Join(*outputPtr, "preview.png"), previewImage); err != nil {
		log.Fatal(err)
	}

	fmt.Println("✔️  Wrote full size preview image in", time.Now().Sub(timer).String())

	for _, size := range sizes {
		timer = time.Now()
		fmt.Printf("▶️  Building x%d image\n", size)

		img := resize.Resize(0, size, previewImage, resize.MitchellNetravali)
		if err := raster.WritePNG(path.Join(*outputPtr, fmt.Sprintf("preview_%d.png", size)), img); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("✔️  Built x%d in %s\n", size, time.Now().Sub(timer).String())
	}

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}

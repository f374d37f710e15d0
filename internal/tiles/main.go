package tiles

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path"
	"strings"
	"time"

	"github.com/gruppe-adler/dem-utils/internal/dem"
	"github.com/gruppe-adler/dem-utils/internal/hillshade"
	"github.com/gruppe-adler/dem-utils/internal/palette"
	"github.com/gruppe-adler/dem-utils/internal/relief"
	"github.com/gruppe-adler/dem-utils/internal/utils"
)

// Run is the tiles command's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	inputPtr := flagSet.String("in", "", "Path to DEM file (Esri ASCII grid, optionally gzipped)")
	outputPtr := flagSet.String("out", ".", "Path to output directory")
	palettePtr := flagSet.String("palette", palette.Default, "Color gradient for the relief")
	shadedPtr := flagSet.Bool("shaded", true, "Shade the relief with a hillshade pass")
	azimuthPtr := flagSet.Float64("azimuth", hillshade.DefaultLight.Azimuth, "Light direction in degrees clockwise from north")
	altitudePtr := flagSet.Float64("altitude", hillshade.DefaultLight.Altitude, "Light angle in degrees above the horizon")

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

	// load DEM
	timer = time.Now()
	fmt.Println("▶️  Loading DEM")
	grid, err := dem.Read(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Loaded DEM in", time.Now().Sub(timer).String())

	// render relief
	timer = time.Now()
	fmt.Println("▶️  Rendering relief image")

	colorFn := palette.ColorFunc(gradient)
	base := relief.ColorImage(relief.Normalize(grid.Data), int(grid.Ncols), int(grid.Nrows), colorFn)

	var img *image.RGBA
	if *shadedPtr {
		light := hillshade.Light{Azimuth: *azimuthPtr, Altitude: *altitudePtr}
		_, shaded := hillshade.Shade(grid, light, base)
		img = shaded.Image()
	} else {
		img = base.Image()
	}

	fmt.Println("✔️  Rendered relief image in", time.Now().Sub(timer).String())

	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		log.Fatal(errors.New("DEM is too small to render any tiles"))
	}

	// calculate max LOD
	maxLod := MaxLod(img)
	fmt.Println("ℹ️  Calculated max lod:", maxLod)

	// build tiles
	timer = time.Now()
	fmt.Println("▶️  Building tiles")
	for lod := uint8(0); lod <= maxLod; lod++ {
		timer2 := time.Now()
		BuildTileSet(lod, img, *outputPtr)
		fmt.Println("    ✔️  Finished tiles for LOD", lod, "in", time.Now().Sub(timer2).String())
	}
	fmt.Println("✔️  Built relief tiles in", time.Now().Sub(timer).String())

	// write tile.json
	timer = time.Now()
	fmt.Println("▶️  Creating tile.json")
	if err := WriteTileJSON(*outputPtr, demName(*inputPtr), maxLod); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Created tile.json in", time.Now().Sub(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}

// demName derives a display name from the DEM file name.
func demName(inputPath string) string {
	name := path.Base(inputPath)
	name = strings.TrimSuffix(name, ".gz")
	name = strings.TrimSuffix(name, ".asc")

	return name
}

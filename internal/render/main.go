package render

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

	"golang.org/x/sync/errgroup"

	"github.com/gruppe-adler/dem-utils/internal/dem"
	"github.com/gruppe-adler/dem-utils/internal/hillshade"
	"github.com/gruppe-adler/dem-utils/internal/palette"
	"github.com/gruppe-adler/dem-utils/internal/raster"
	"github.com/gruppe-adler/dem-utils/internal/utils"
)

// Run is the render command's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	inputPtr := flagSet.String("in", "", "Path to DEM file (Esri ASCII grid, optionally gzipped)")
	outputPtr := flagSet.String("out", ".", "Path to output directory")
	palettePtr := flagSet.String("palette", palette.Default, "Color gradient for the colored products")
	azimuthPtr := flagSet.Float64("azimuth", hillshade.DefaultLight.Azimuth, "Light direction in degrees clockwise from north")
	altitudePtr := flagSet.Float64("altitude", hillshade.DefaultLight.Altitude, "Light angle in degrees above the horizon")
	timestampPtr := flagSet.Bool("timestamp", true, "Add a timestamp to output file names")

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

	paletteName := strings.ToLower(*palettePtr)
	gradient, err := palette.ByName(paletteName)
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

	fmt.Printf("ℹ️  Grid is %d x %d cells at %g m\n", grid.Ncols, grid.Nrows, grid.CellSize)
	fmt.Println("✔️  Loaded DEM in", time.Now().Sub(timer).String())

	// render products
	timer = time.Now()
	fmt.Println("▶️  Rendering products")

	light := hillshade.Light{Azimuth: *azimuthPtr, Altitude: *altitudePtr}
	products := BuildProducts(grid, palette.ColorFunc(gradient), light)

	// a grid below 3x3 has no interior to shade
	if products.Hillshade.Width == 0 || products.Hillshade.Height == 0 {
		log.Fatal(errors.New("DEM is too small to render hillshade products"))
	}

	fmt.Println("✔️  Rendered products in", time.Now().Sub(timer).String())

	// write products
	timer = time.Now()
	fmt.Println("▶️  Writing products")

	suffix := ".png"
	paletteSuffix := fmt.Sprintf("_%s.png", paletteName)
	if *timestampPtr {
		ts := utils.Timestamp()
		suffix = fmt.Sprintf("_%s.png", ts)
		paletteSuffix = fmt.Sprintf("_%s_%s.png", ts, paletteName)
	}

	outputs := []struct {
		name string
		img  image.Image
	}{
		{"elevation" + suffix, products.Elevation.Image()},
		{"elevation_rgb" + paletteSuffix, products.ElevationRGB.Image()},
		{"hillshade" + suffix, products.Hillshade.Image()},
		{"hillshade_rgb" + paletteSuffix, products.HillshadeRGB.Image()},
	}

	var g errgroup.Group
	for _, output := range outputs {
		output := output
		g.Go(func() error {
			if err := raster.WritePNG(path.Join(*outputPtr, output.name), output.img); err != nil {
				return err
			}

			fmt.Println("    ✔️  Wrote", output.name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	fmt.Println("✔️  Wrote products in", time.Now().Sub(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}

package contours

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path"
	"sync"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/gruppe-adler/dem-utils/internal/dem"
	"github.com/gruppe-adler/dem-utils/internal/utils"
)

// Run is the contours command's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	inputPtr := flagSet.String("in", "", "Path to DEM file (Esri ASCII grid, optionally gzipped)")
	outputPtr := flagSet.String("out", ".", "Path to output directory")
	intervalPtr := flagSet.Float64("interval", 10, "Elevation difference between contour levels")
	peaksPtr := flagSet.Bool("peaks", false, "Also write local maxima to peaks.geojson")

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

	if *intervalPtr <= 0 || math.IsNaN(*intervalPtr) {
		log.Fatal(errors.New("Contour interval must be positive"))
	}

	timer = time.Now()
	fmt.Println("▶️  Loading DEM")

	grid, err := dem.Read(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("✔️  Loaded DEM in", time.Now().Sub(timer).String())

	timer = time.Now()
	fmt.Println("▶️  Building contour lines")

	levels := Levels(grid, *intervalPtr)

	// every goroutine writes only into its own slot
	lines := make([][]orb.LineString, len(levels))

	var wg sync.WaitGroup
	for i, level := range levels {
		wg.Add(1)
		go func(i int, level float64) {
			defer wg.Done()
			lines[i] = MarchingSquares(grid, level)
		}(i, level)
	}
	wg.Wait()

	collection := geojson.NewFeatureCollection()
	for i, level := range levels {
		for _, line := range lines[i] {
			feature := geojson.NewFeature(line)
			feature.Properties["elevation"] = level
			collection.Append(feature)
		}
	}

	if err := writeCollection(path.Join(*outputPtr, "contours.geojson"), collection); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("✔️  Built %d contour lines in %s\n", len(collection.Features), time.Now().Sub(timer).String())

	if *peaksPtr {
		timer = time.Now()
		fmt.Println("▶️  Finding peaks")

		peaks := geojson.NewFeatureCollection()
		for _, feature := range Peaks(grid) {
			peaks.Append(feature)
		}

		if err := writeCollection(path.Join(*outputPtr, "peaks.geojson"), peaks); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("✔️  Found %d peaks in %s\n", len(peaks.Features), time.Now().Sub(timer).String())
	}

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}

// Levels returns the contour levels for the grid: every multiple of
// interval between the lowest and highest valid elevation.
func Levels(grid *dem.Grid, interval float64) []float64 {
	stats := grid.Stats()
	if stats.Valid == 0 {
		return nil
	}

	levels := []float64{}
	for level := math.Ceil(stats.Min/interval) * interval; level <= stats.Max; level += interval {
		levels = append(levels, level)
	}

	return levels
}

func writeCollection(path string, collection *geojson.FeatureCollection) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

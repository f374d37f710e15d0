package info

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gruppe-adler/dem-utils/internal/dem"
	"github.com/gruppe-adler/dem-utils/internal/utils"
)

// Run is the info command's entrypoint
func Run(flagSet *flag.FlagSet) {

	start := time.Now()

	inputPtr := flagSet.String("in", "", "Path to DEM file (Esri ASCII grid, optionally gzipped)")

	flagSet.Parse(os.Args[2:])

	// make sure input flag is present
	if *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	if !utils.IsFile(*inputPtr) {
		log.Fatal(errors.New("Input DEM doesn't exists"))
	}

	grid, err := dem.Read(*inputPtr)
	if err != nil {
		log.Fatal(err)
	}

	stats := grid.Stats()

	fmt.Println("ℹ️  Columns:      ", grid.Ncols)
	fmt.Println("ℹ️  Rows:         ", grid.Nrows)
	fmt.Println("ℹ️  Lower left:   ", grid.Xcorner, grid.Ycorner)
	fmt.Println("ℹ️  Cell size:    ", grid.CellSize)
	fmt.Println("ℹ️  Nodata value: ", grid.NoDataValue)
	fmt.Println("ℹ️  Valid cells:  ", stats.Valid)
	fmt.Println("ℹ️  Missing cells:", stats.Missing)

	if stats.Valid > 0 {
		fmt.Printf("ℹ️  Elevation:     %g m to %g m (mean %.2f m, stddev %.2f m)\n", stats.Min, stats.Max, stats.Mean, stats.StdDev)
	}

	fmt.Printf("\n    🎉  Finished in %s\n", time.Now().Sub(start).String())
}

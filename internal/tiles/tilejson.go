package tiles

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
)

// TileJSON is the subset of TileJSON 2.2.0 the tiles command emits.
type TileJSON struct {
	TileJSON    string `json:"tilejson"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Scheme      string `json:"scheme"`
	Minzoom     uint8  `json:"minzoom"`
	Maxzoom     uint8  `json:"maxzoom"`
}

// WriteTileJSON writes a tile.json describing the tile set into the output
// directory.
func WriteTileJSON(outputDirectory string, name string, maxLod uint8) error {
	obj := TileJSON{
		TileJSON:    "2.2.0",
		Name:        fmt.Sprintf("%s Relief Tiles", name),
		Description: fmt.Sprintf("Shaded relief tiles rendered from '%s'", name),
		Scheme:      "xyz",
		Minzoom:     0,
		Maxzoom:     maxLod,
	}

	bytes, err := json.MarshalIndent(obj, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(path.Join(outputDirectory, "tile.json"), bytes, 0644)
}

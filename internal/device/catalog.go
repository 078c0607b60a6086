package device

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// catalogPaths are tried in order so the catalog is found whether run from
// the repo root or cmd/viewer. The file is optional; defaults below apply.
var catalogPaths = []string{
	"assets/catalog.yaml",
	"../../assets/catalog.yaml",
}

// CameraPose is a stored camera preset: where the camera sits and what it
// looks at when a module is selected.
type CameraPose struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
}

// Entry is the presentation data for one module: panel title, caption,
// legend lines, and the camera preset.
type Entry struct {
	Title   string     `yaml:"title"`
	Caption string     `yaml:"caption"`
	Legend  []string   `yaml:"legend"`
	Camera  CameraPose `yaml:"camera"`
}

// Catalog maps module names to their presentation entries.
type Catalog struct {
	Modules map[string]Entry `yaml:"modules"`
}

// defaultCatalog is the built-in module catalog; assets/catalog.yaml
// overrides entries per module when present.
const defaultCatalog = `
modules:
  electronics:
    title: Electronics
    caption: Controller, power distribution, and sensor wiring.
    legend:
      - Green board, controller PCB
      - White blocks, field terminals
      - Amber light, status LED
    camera:
      position: [24, 14, 26]
      target: [0, 5, 0]
  sorbant:
    title: Sorbant Chamber
    caption: Desiccant cartridges adsorb moisture from intake air.
    legend:
      - Amber cylinders, silica cartridges
      - Sloped lid matches the wall taper
      - Rear fan, intake airflow
    camera:
      position: [26, 14, 30]
      target: [0, 7, 0]
  peltier:
    title: Peltier Condenser
    caption: A thermoelectric stack chills the cold fins below dew point.
    legend:
      - Copper fins, hot side
      - Aluminum fins, cold side
      - Tray collects condensate
    camera:
      position: [24, 13, 26]
      target: [0, 8, 0]
  filtration:
    title: Filtration + Reservoir
    caption: Three filter stages polish condensate into the clear tank.
    legend:
      - Left to right, sediment, carbon, mineral stages
      - Blue volume, stored water
      - Front spigot dispenses
    camera:
      position: [24, 9, 28]
      target: [0, 7, 0]
  assembly:
    title: Full Assembly
    caption: All modules stacked, with plumbing and the solar mast.
    legend:
      - Electronics at the base
      - Sorbant chamber on top
      - White tubes, condensate plumbing
    camera:
      position: [55, 60, 62]
      target: [0, 32, 0]
`

// LoadCatalog returns the module catalog: built-in defaults, overlaid with
// assets/catalog.yaml when that file exists and parses. A missing or invalid
// file is not an error; the defaults stand.
func LoadCatalog() (Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal([]byte(defaultCatalog), &cat); err != nil {
		return Catalog{}, err
	}
	for _, p := range catalogPaths {
		data, err := os.ReadFile(filepath.Clean(p))
		if err != nil {
			continue
		}
		var override Catalog
		if err := yaml.Unmarshal(data, &override); err != nil {
			break // malformed override; keep defaults
		}
		for name, entry := range override.Modules {
			cat.Modules[name] = entry
		}
		break
	}
	return cat, nil
}

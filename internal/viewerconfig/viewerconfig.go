package viewerconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigPath is the prefs file, relative to the process working directory.
const ConfigPath = "config/viewer.json"

// Prefs holds the view toggles persisted across runs: which module was
// active, the display toggles, and the FPS overlay.
type Prefs struct {
	ActiveModule string `json:"active_module"`
	Wireframe    bool   `json:"wireframe"`
	AutoRotate   bool   `json:"auto_rotate"`
	ShowFPS      bool   `json:"show_fps"`
}

// Default returns the startup preferences: Peltier chamber shown, everything
// else off.
func Default() Prefs {
	return Prefs{ActiveModule: "peltier"}
}

// Load reads preferences from config/viewer.json. A missing or invalid file
// yields Default() without error and without creating a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(ConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.ActiveModule == "" {
		p.ActiveModule = Default().ActiveModule
	}
	return p, nil
}

// Save writes preferences to config/viewer.json, creating the config
// directory if needed.
func Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(ConfigPath), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath, data, 0644)
}

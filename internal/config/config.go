// Package config resolves the slicer's full parameter set from an
// optional TOML file plus command-line overrides into one immutable
// Config, replacing the original's flat `main()` locals and
// process-wide globals (`debug`, `places`, `fixed`, `fixplaces`).
//
// Grounded on _examples/original_source/e3d.c's popt option table:
// every flag name and default value below is carried over unchanged.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the fully-resolved, immutable parameter bag threaded
// explicitly into build.Config and the output emitters' Params.
type Config struct {
	STLFile   string `toml:"stl"`
	GCodeFile string `toml:"gcode"`
	SVGFile   string `toml:"svg"`

	LayerHeight float64 `toml:"layer_height"`
	WidthRatio  float64 `toml:"width_ratio"`
	StartZ      float64 `toml:"start_z"`
	EndZ        float64 `toml:"end_z"`
	Places      int     `toml:"places"`

	Skins       int     `toml:"skins"`
	AltSkins    int     `toml:"alt_skins"`
	SolidLayers int     `toml:"layers"`
	FillDensity float64 `toml:"fill_density"`

	AnchorLoops int     `toml:"anchor"`
	AnchorGap   float64 `toml:"anchor_gap"`
	AnchorStep  float64 `toml:"anchor_step"`
	AnchorFlow  float64 `toml:"anchor_flow"`

	Filament float64 `toml:"filament"`
	Packing  float64 `toml:"packing"`

	Speed   float64 `toml:"speed"`
	Speed0  float64 `toml:"speed0"`
	ZSpeed  float64 `toml:"z_speed"`
	Hop     float64 `toml:"hop"`
	Back    float64 `toml:"back"`
	EPlaces int     `toml:"e_places"`

	Mirror bool `toml:"mirror"`
	Fast   bool `toml:"fast"`
	Debug  bool `toml:"debug"`
	Quiet  bool `toml:"quiet"`
}

// Default returns the parameter set the original ships as its
// built-in flag defaults.
func Default() Config {
	return Config{
		LayerHeight: 0.4,
		WidthRatio:  1.6,
		StartZ:      -1,
		EndZ:        -1,
		Places:      4,

		Skins:       2,
		AltSkins:    0,
		SolidLayers: 3,
		FillDensity: 0.2,

		AnchorLoops: 4,
		AnchorGap:   1,
		AnchorStep:  5,
		AnchorFlow:  1.5,

		Filament: 2.9,
		Packing:  1,

		Speed:   50,
		Speed0:  20,
		ZSpeed:  2,
		Hop:     0.5,
		Back:    2,
		EPlaces: 4,
	}
}

// LoadFile decodes a TOML config file over base, returning the merged
// result. Fields absent from the file keep base's value, matching the
// original's config-file-before-flags precedence (an explicit flag
// always wins, applied by the caller after LoadFile returns).
func LoadFile(path string, base Config) (Config, error) {
	cfg := base
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return base, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return cfg, nil
}

// Command slicer turns an ASCII STL file into a G-code program (and,
// optionally, an SVG preview), following the same parameter surface as
// the original e3d command-line tool.
//
// Grounded on _examples/original_source/e3d.c's popt option table and
// driver order (read STL, slice, fill, anchor, order, emit).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/revk3d/e3dgo/build"
	"github.com/revk3d/e3dgo/dim"
	"github.com/revk3d/e3dgo/gcodeout"
	"github.com/revk3d/e3dgo/internal/config"
	"github.com/revk3d/e3dgo/internal/xlog"
	"github.com/revk3d/e3dgo/stlascii"
	"github.com/revk3d/e3dgo/svgout"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	var configFile, stlFile, gcodeFile, svgFile string

	cmd := &cobra.Command{
		Use:   "slicer",
		Short: "Slice an STL file into G-code",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				explicit := map[string]string{}
				cmd.Flags().Visit(func(f *pflag.Flag) { explicit[f.Name] = f.Value.String() })
				merged, err := config.LoadFile(configFile, cfg)
				if err != nil {
					return err
				}
				cfg = merged
				for name, value := range explicit {
					if err := cmd.Flags().Set(name, value); err != nil {
						return err
					}
				}
			}
			if stlFile == "" && len(args) > 0 {
				stlFile = args[0]
			}
			if len(args) > 1 && gcodeFile == "" {
				gcodeFile = args[1]
			}
			if stlFile == "" {
				return fmt.Errorf("no STL file specified")
			}

			xlog.SetDebug(cfg.Debug)
			xlog.SetQuiet(cfg.Quiet)
			return run(cfg, stlFile, gcodeFile, svgFile)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configFile, "config-file", "c", "", "Config file")
	flags.StringVarP(&stlFile, "stl", "i", "", "Input file (filename.stl)")
	flags.StringVarP(&gcodeFile, "gcode", "o", "", "Output file (filename.gcode)")
	flags.StringVarP(&svgFile, "svg", "s", "", "Output svg (filename.svg)")

	flags.Float64VarP(&cfg.LayerHeight, "layer-height", "l", cfg.LayerHeight, "Layer height")
	flags.Float64VarP(&cfg.WidthRatio, "width-ratio", "w", cfg.WidthRatio, "Layer width to height ratio")
	flags.Float64VarP(&cfg.StartZ, "start-z", "z", cfg.StartZ, "Start Z (default half layer)")
	flags.Float64VarP(&cfg.EndZ, "end-z", "e", cfg.EndZ, "End Z (default top)")
	flags.IntVarP(&cfg.Places, "places", "p", cfg.Places, "Number of decimal places in output")
	flags.IntVarP(&cfg.Skins, "skins", "k", cfg.Skins, "Number of skins (perimeter loops)")
	flags.IntVar(&cfg.AltSkins, "alt-skins", cfg.AltSkins, "Extra skins on alternate layers")
	flags.IntVarP(&cfg.SolidLayers, "layers", "L", cfg.SolidLayers, "Number of solid layers")
	flags.Float64Var(&cfg.FillDensity, "fill-density", cfg.FillDensity, "Fill density for non-solid layers (0-1)")
	flags.IntVarP(&cfg.AnchorLoops, "anchor", "A", cfg.AnchorLoops, "Layer 0 anchor loops around perimeter")
	flags.Float64Var(&cfg.AnchorGap, "anchor-gap", cfg.AnchorGap, "Gap between perimeter and anchor, in whole widths")
	flags.Float64Var(&cfg.AnchorStep, "anchor-step", cfg.AnchorStep, "Spacing of joins between perimeter and anchor, in whole widths")
	flags.Float64Var(&cfg.AnchorFlow, "anchor-flow", cfg.AnchorFlow, "Extrude multiplier for anchor")
	flags.Float64VarP(&cfg.Filament, "filament", "f", cfg.Filament, "Filament diameter")
	flags.Float64Var(&cfg.Packing, "packing", cfg.Packing, "Multiplier for feed rate")
	flags.Float64VarP(&cfg.Speed, "speed", "S", cfg.Speed, "Speed (units/sec)")
	flags.Float64Var(&cfg.Speed0, "speed0", cfg.Speed0, "Speed, layer 0 (units/sec)")
	flags.Float64Var(&cfg.ZSpeed, "z-speed", cfg.ZSpeed, "Max Z speed (units/sec)")
	flags.Float64Var(&cfg.Hop, "hop", cfg.Hop, "Hop up when moving and not extruding")
	flags.Float64Var(&cfg.Back, "back", cfg.Back, "Pull back extruder when not extruding")
	flags.IntVar(&cfg.EPlaces, "e-places", cfg.EPlaces, "Number of decimal places for the extruder axis")
	flags.BoolVarP(&cfg.Mirror, "mirror", "m", cfg.Mirror, "Mirror image G-code output")
	flags.BoolVar(&cfg.Fast, "fast", cfg.Fast, "Add a coarser tidy pass to inner perimeter loops and fill")
	flags.BoolVarP(&cfg.Debug, "debug", "v", cfg.Debug, "Debug logging")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Suppress warning logging")

	return cmd
}

func run(cfg config.Config, stlFile, gcodeFile, svgFile string) error {
	f, err := os.Open(stlFile)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", stlFile, err)
	}
	defer f.Close()

	stl, err := stlascii.Parse(f, stlFile)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", stlFile, err)
	}

	buildCfg := build.Config{
		LayerHeight: dim.FromReal(cfg.LayerHeight),
		WidthRatio:  cfg.WidthRatio,
		StartZ:      dim.FromReal(cfg.StartZ),
		EndZ:        dim.FromReal(cfg.EndZ),
		Tolerance:   -1,
		Skins:       cfg.Skins,
		AltSkins:    cfg.AltSkins,
		SkinFast:    cfg.Fast,
		SolidLayers: cfg.SolidLayers,
		FillDensity: cfg.FillDensity,
		FillFlow:    1,
		AnchorLoops: cfg.AnchorLoops,
		AnchorGap:   dim.Dim(cfg.AnchorGap),
		AnchorStep:  dim.Dim(cfg.AnchorStep),
	}
	result := build.Run(stl, buildCfg)

	if gcodeFile != "" {
		out, err := os.Create(gcodeFile)
		if err != nil {
			return fmt.Errorf("cannot open %s for writing: %w", gcodeFile, err)
		}
		defer out.Close()

		params := gcodeout.Params{
			LayerHeight: dim.FromReal(cfg.LayerHeight),
			WidthRatio:  cfg.WidthRatio,
			Filament:    cfg.Filament,
			Packing:     cfg.Packing,
			Speed0:      dim.FromReal(cfg.Speed0),
			Speed:       dim.FromReal(cfg.Speed),
			ZSpeed:      dim.FromReal(cfg.ZSpeed),
			Hop:         dim.FromReal(cfg.Hop),
			Retract:     cfg.Back,
			EPlaces:     cfg.EPlaces,
			AnchorFlow:  cfg.AnchorFlow,
			Mirror:      cfg.Mirror,
			Places:      cfg.Places,
		}
		estimate, err := gcodeout.Write(out, stl, result, params)
		if err != nil {
			return fmt.Errorf("writing %s: %w", gcodeFile, err)
		}
		if !cfg.Quiet {
			xlog.Info().Dur("estimate", estimate).Msg("G-code written")
		}
	}

	if svgFile != "" {
		out, err := os.Create(svgFile)
		if err != nil {
			return fmt.Errorf("cannot open %s for writing: %w", svgFile, err)
		}
		defer out.Close()

		width := dim.Dim(float64(dim.FromReal(cfg.LayerHeight)) * cfg.WidthRatio)
		if err := svgout.Write(out, stl, result, width); err != nil {
			return fmt.Errorf("writing %s: %w", svgFile, err)
		}
	}

	return nil
}

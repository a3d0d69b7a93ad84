package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kstackpole/platmap-pro/internal/geom"
	"github.com/kstackpole/platmap-pro/internal/svgmap"
	"github.com/kstackpole/platmap-pro/internal/tui"
)

func main() {
	var (
		lots   = flag.String("lots", "", "comma-separated lot layer files (.geojson, .json, .shp)")
		grass  = flag.String("grass", "", "comma-separated grass layer files")
		water  = flag.String("water", "", "comma-separated water layer files")
		road   = flag.String("road", "", "comma-separated road layer files")
		out    = flag.String("o", "platmap.svg", "output base name; _print/_digital suffixes are appended")
		width  = flag.Float64("width", svgmap.DefaultCanvas.Width, "canvas width in px")
		height = flag.Float64("height", svgmap.DefaultCanvas.Height, "canvas height in px")
		edit   = flag.String("edit", "", "open a generated drawing in the marker editor")
	)
	flag.Parse()

	if *edit != "" || flag.NFlag() == 0 {
		runEditor(*edit)
		return
	}
	if *lots == "" {
		log.Fatal("at least one -lots file is required")
	}

	inputs := map[geom.Role][]string{
		geom.RoleLots:  splitPaths(*lots),
		geom.RoleGrass: splitPaths(*grass),
		geom.RoleWater: splitPaths(*water),
		geom.RoleRoad:  splitPaths(*road),
	}
	for _, paths := range inputs {
		for _, p := range paths {
			if _, err := os.Stat(p); err != nil {
				log.Fatalf("input file %s: %v", p, err)
			}
		}
	}

	var layers svgmap.Layers
	for role, dst := range map[geom.Role]*geom.Layer{
		geom.RoleLots:  &layers.Lots,
		geom.RoleGrass: &layers.Grass,
		geom.RoleWater: &layers.Water,
		geom.RoleRoad:  &layers.Road,
	} {
		layer, err := geom.LoadLayer(role, inputs[role])
		if err != nil {
			log.Fatal(err)
		}
		*dst = layer
	}

	canvas := svgmap.Canvas{Width: *width, Height: *height}
	printPath, digitalPath, err := svgmap.WriteFiles(layers, canvas, *out)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("wrote", printPath)
	fmt.Println("wrote", digitalPath)
}

func runEditor(path string) {
	var m tea.Model
	if path != "" {
		m = tui.NewWithPath(path)
	} else {
		m = tui.New()
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

func splitPaths(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// tiletool converts between geographic coordinates, Web Mercator world
// positions and slippy-map tiles from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/LGK-Productions/LgkProductions.Geo/config"
	"github.com/LGK-Productions/LgkProductions.Geo/geo"
	"github.com/LGK-Productions/LgkProductions.Geo/internal/logging"
	"github.com/LGK-Productions/LgkProductions.Geo/mercator"
	"github.com/LGK-Productions/LgkProductions.Geo/tile"
)

func main() {
	var (
		pointArg   = flag.String("point", "", `geographic point "(lat, lon[, alt])"`)
		areaArg    = flag.String("area", "", `geographic area "((lat, lon), (lat, lon))"`)
		tileArg    = flag.String("tile", "", `tile id "{zoom}_{x}_{y}"`)
		quadkeyArg = flag.String("quadkey", "", "base-4 quadkey to decode")
		zoom       = flag.Int("zoom", 12, "zoom level for point and area conversions")
		target     = flag.Int("target", 0, "pick the zoom whose tile count best matches this target")
		logLevel   = flag.String("log-level", "info", "debug, info, warn or error")
		logFormat  = flag.String("log-format", "text", "text or json")
	)
	flag.Parse()
	logging.Setup(*logLevel, *logFormat)

	settings, err := config.Load()
	if err != nil {
		slog.Error("invalid settings", "error", err)
		os.Exit(1)
	}
	slog.Debug("settings loaded", "min_zoom", settings.MinZoom, "max_zoom", settings.MaxZoom)

	switch {
	case *pointArg != "":
		err = runPoint(*pointArg, *zoom)
	case *areaArg != "":
		err = runArea(*areaArg, *zoom, *target, settings)
	case *tileArg != "":
		err = runTile(*tileArg)
	case *quadkeyArg != "":
		err = runQuadkey(*quadkeyArg)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

func runPoint(arg string, zoom int) error {
	p, err := geo.ParsePoint(arg)
	if err != nil {
		return err
	}
	t := mercator.PointToTile(p, zoom)
	w := mercator.ToWorld(p)

	fmt.Printf("point:      %s  (%s %s)\n", p, p.LatDMS(), p.LonDMS())
	fmt.Printf("world:      %s\n", w)
	fmt.Printf("tile:       %s\n", t)
	if key, err := t.QuadKey(); err == nil {
		fmt.Printf("quadkey:    %s\n", key)
	}
	fmt.Printf("covers:     %s\n", mercator.TileToArea(t))
	fmt.Printf("resolution: %.2f m/px\n", mercator.Resolution(zoom, p.Lat))
	return nil
}

func runArea(arg string, zoom, target int, settings config.Settings) error {
	a, err := geo.ParseArea(arg)
	if err != nil {
		return err
	}

	var tiles []tile.ID
	if target > 0 {
		tiles = mercator.AreaToTilesForCount(a, settings.ZoomBounds(), target)
	} else {
		tiles = mercator.AreaToTiles(a, zoom, false)
	}

	fmt.Printf("area:    %s  midpoint %s\n", a, a.MidPoint())
	fmt.Printf("tiles:   %d\n", len(tiles))
	for _, t := range tiles {
		fmt.Printf("  %s\n", t)
	}
	return nil
}

func runTile(arg string) error {
	t, err := tile.ParseID(arg)
	if err != nil {
		// Fall back to the legacy tuple form.
		if t, err = tile.ParseIDTuple(arg); err != nil {
			return err
		}
	}

	fmt.Printf("tile:     %s  inbounds=%v\n", t, t.Inbounds())
	fmt.Printf("corner:   %s\n", mercator.TileToPoint(t))
	fmt.Printf("covers:   %s\n", mercator.TileToArea(t))
	if t.Zoom > 0 {
		fmt.Printf("parent:   %s\n", t.Parent(1))
	}
	if key, err := t.QuadKey(); err == nil {
		fmt.Printf("quadkey:  %s\n", key)
	}
	fmt.Printf("children:")
	for sub := range t.SubTiles(1) {
		fmt.Printf(" %s", sub)
	}
	fmt.Println()
	return nil
}

func runQuadkey(arg string) error {
	t, err := tile.FromQuadKey(arg)
	if err != nil {
		return err
	}
	fmt.Printf("tile:   %s\n", t)
	fmt.Printf("covers: %s\n", mercator.TileToArea(t))
	return nil
}

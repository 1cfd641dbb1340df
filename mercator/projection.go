// Package mercator converts between geographic coordinates, planar world
// positions and slippy-map tiles using the spherical Web Mercator
// projection (EPSG:3857). All functions are stateless and pure.
package mercator

import (
	"math"

	"github.com/LGK-Productions/LgkProductions.Geo/geo"
	"github.com/LGK-Productions/LgkProductions.Geo/tile"
)

const (
	// EarthRadius is the WGS84 spherical radius in meters.
	EarthRadius = 6378137.0
	// OriginShift is half the projected world size, π·EarthRadius.
	OriginShift = math.Pi * EarthRadius
	// MaxLatitude is the highest latitude at which tile math stays
	// numerically valid; beyond it the Mercator y diverges.
	MaxLatitude = 85.0511
	// MaxLongitude keeps a +180° point from indexing one tile past the
	// date line.
	MaxLongitude = 179.9998
	// TileSize is the standard tile edge in pixels.
	TileSize = 256
)

// Latitude and longitude limits applied before tile math.
var (
	latLimits = geo.Bounds[float64]{Min: -MaxLatitude, Max: MaxLatitude}
	lonLimits = geo.Bounds[float64]{Min: -MaxLongitude, Max: MaxLongitude}
)

// ScaleFactor is the Mercator linear distortion at the point's latitude,
// 1/cos(lat). It keeps extruded heights visually consistent across
// latitudes; at the equator it is exactly 1.
func ScaleFactor(p geo.Point) float64 {
	return 1 / math.Cos(p.Lat*math.Pi/180)
}

// ToWorld projects a geographic point onto the Mercator plane. X and Z are
// the plane axes, Y carries the altitude scaled by the local distortion.
func ToWorld(p geo.Point) geo.WorldPosition {
	return geo.WorldPosition{
		X: p.Lon * OriginShift / 180,
		Y: p.Alt * ScaleFactor(p),
		Z: math.Log(math.Tan((90+p.Lat)*math.Pi/360)) / (math.Pi / 180) * OriginShift / 180,
	}
}

// ToGlobe is the inverse of ToWorld. The altitude divides out the scale
// factor at the recovered surface point.
func ToGlobe(w geo.WorldPosition) geo.Point {
	lon := w.X / OriginShift * 180
	lat := w.Z / OriginShift * 180
	lat = 180 / math.Pi * (2*math.Atan(math.Exp(lat*math.Pi/180)) - math.Pi/2)
	p := geo.NewPoint(lat, lon, 0)
	return p.WithAltitude(w.Y / ScaleFactor(p))
}

// PointToTileCoordinate returns the tile grid coordinate containing p at
// the given zoom, clamping latitude and longitude into the limits first so
// the result is always inside the pyramid.
func PointToTileCoordinate(p geo.Point, zoom int) tile.Coordinate {
	return pointToTileCoordinate(p, zoom, true)
}

// PointToTileCoordinateUnclamped skips the limit clamping; the poles and
// the +180° meridian then index one row or column past the pyramid edge.
func PointToTileCoordinateUnclamped(p geo.Point, zoom int) tile.Coordinate {
	return pointToTileCoordinate(p, zoom, false)
}

func pointToTileCoordinate(p geo.Point, zoom int, clamp bool) tile.Coordinate {
	lat, lon := p.Lat, p.Lon
	if clamp {
		lat = latLimits.Clamp(lat)
		lon = lonLimits.Clamp(lon)
	}
	n := float64(int(1) << zoom)
	latRad := lat * math.Pi / 180
	x := math.Floor((lon + 180) / 360 * n)
	y := math.Floor((1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * n)
	return tile.Coordinate{X: int(x), Y: int(y)}
}

// PointToTile returns the full tile ID containing p at the given zoom.
func PointToTile(p geo.Point, zoom int) tile.ID {
	return tile.ID{Coord: PointToTileCoordinate(p, zoom), Zoom: zoom}
}

// TileToPoint returns the tile's north-west corner.
func TileToPoint(t tile.ID) geo.Point {
	n := float64(int(1) << t.Zoom)
	lon := float64(t.Coord.X)/n*360 - 180
	lat := math.Atan(math.Sinh(math.Pi*(1-2*float64(t.Coord.Y)/n))) * 180 / math.Pi
	return geo.NewPoint(lat, lon, 0)
}

// TileToArea returns the geographic rectangle the tile covers, spanned
// between its own north-west corner and its south-east neighbour's.
func TileToArea(t tile.ID) geo.Area {
	return geo.NewArea(TileToPoint(t), TileToPoint(t.Neighbour(tile.One)))
}

// AreaToTileRect projects the area's north-east and south-west corners at
// the given zoom and returns the inclusive rectangle of tiles between
// them.
func AreaToTileRect(a geo.Area, zoom int) tile.Rect {
	ne := PointToTileCoordinate(a.NorthEast(), zoom)
	sw := PointToTileCoordinate(a.SouthWest(), zoom)
	return tile.NewRect(ne, sw, zoom)
}

// AreaToTiles enumerates the tiles covering the area at the given zoom,
// row-major. Tiles outside the pyramid are filtered out unless
// includeOutOfBounds is set; filtering is the safe default since corner
// clamping already keeps regular input inside the pyramid.
func AreaToTiles(a geo.Area, zoom int, includeOutOfBounds bool) []tile.ID {
	rect := AreaToTileRect(a, zoom)
	tiles := make([]tile.ID, 0, rect.Count())
	for t := range rect.Tiles() {
		if !includeOutOfBounds && !t.Inbounds() {
			continue
		}
		tiles = append(tiles, t)
	}
	return tiles
}

// AreaToTilesForCount picks the zoom level inside zoomBounds whose tile
// cover best matches targetCount and returns that cover. Searching upward
// from the lower bound: the first zoom matching the target exactly wins;
// the first zoom exceeding it returns the previous, coarser level clamped
// into the bounds; if the upper bound is reached without exceeding the
// target, the upper bound wins. The tile count grows monotonically with
// zoom, so the loop always terminates within the bounds.
func AreaToTilesForCount(a geo.Area, zoomBounds geo.Bounds[int], targetCount int) []tile.ID {
	for zoom := zoomBounds.Min; zoom <= zoomBounds.Max; zoom++ {
		count := AreaToTileRect(a, zoom).Count()
		if count == targetCount {
			return AreaToTiles(a, zoom, false)
		}
		if count > targetCount {
			return AreaToTiles(a, zoomBounds.Clamp(zoom-1), false)
		}
	}
	return AreaToTiles(a, zoomBounds.Max, false)
}

// Resolution returns the ground resolution in meters per pixel at the
// given zoom level and latitude, assuming 256-pixel tiles.
func Resolution(zoom int, lat float64) float64 {
	return 2 * math.Pi * EarthRadius * math.Cos(lat*math.Pi/180) / float64(int(TileSize)<<zoom)
}

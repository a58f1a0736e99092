package geo

import (
	"errors"
	"math"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
)

const earthRadiusKm = 6371.0088

// ParsePoint decodes a GeoJSON geometry and requires it to be a Point
// in lon/lat order (SRID 4326).
func ParsePoint(raw []byte) (*geom.Point, error) {
	var g geom.T
	if err := gjson.Unmarshal(raw, &g); err != nil {
		return nil, err
	}
	p, ok := g.(*geom.Point)
	if !ok {
		return nil, errors.New("geometry must be a Point")
	}
	return p, nil
}

// DistanceKm returns the great-circle distance between two points in
// kilometers (haversine).
func DistanceKm(a, b *geom.Point) float64 {
	lat1 := a.Y() * math.Pi / 180
	lat2 := b.Y() * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.X() - a.X()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

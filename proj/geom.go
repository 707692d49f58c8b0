/*
Copyright © 2017 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package proj

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
)

// ForwardGeom projects a geometry whose X coordinates are longitudes and
// Y coordinates latitudes, trimming it to the map frame. Lines may be
// split into several parts and polygons are clipped to the frame.
func ForwardGeom(pr *Projection, g geom.Geom) (geom.Geom, error) {
	return transformGeom(g, func(lat, lon []float64, obj ObjectType) ([]float64, []float64, error) {
		x, y, _, err := pr.Forward(lat, lon, obj)
		return y, x, err
	})
}

// InverseGeom unprojects a geometry in map coordinates. The result has
// longitudes as X and latitudes as Y.
func InverseGeom(pr *Projection, g geom.Geom) (geom.Geom, error) {
	return transformGeom(g, func(y, x []float64, obj ObjectType) ([]float64, []float64, error) {
		lat, lon, err := pr.Inverse(x, y, nil)
		return lat, lon, err
	})
}

// geomFunc transforms parallel Y and X coordinate arrays.
type geomFunc func(y, x []float64, obj ObjectType) (y2, x2 []float64, err error)

func transformGeom(g geom.Geom, f geomFunc) (geom.Geom, error) {
	switch t := g.(type) {
	case geom.Point:
		y, x, err := f([]float64{t.Y}, []float64{t.X}, Point)
		if err != nil {
			return nil, err
		}
		return geom.Point{X: x[0], Y: y[0]}, nil
	case geom.MultiPoint:
		y, x := flatten([][]geom.Point{t})
		y, x, err := f(y, x, Point)
		if err != nil {
			return nil, err
		}
		var out geom.MultiPoint
		for _, part := range split(y, x) {
			out = append(out, part...)
		}
		return out, nil
	case geom.LineString:
		return transformLines(geom.MultiLineString{t}, f)
	case geom.MultiLineString:
		return transformLines(t, f)
	case geom.Polygon:
		return transformPolygon(t, f)
	case geom.MultiPolygon:
		var out geom.MultiPolygon
		for _, p := range t {
			pp, err := transformPolygon(p, f)
			if err != nil {
				return nil, err
			}
			if len(pp) > 0 {
				out = append(out, pp)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("proj: unsupported geometry type %T", g)
}

func transformLines(ml geom.MultiLineString, f geomFunc) (geom.Geom, error) {
	parts := make([][]geom.Point, len(ml))
	for i, l := range ml {
		parts[i] = l
	}
	y, x := flatten(parts)
	y, x, err := f(y, x, Line)
	if err != nil {
		return nil, err
	}
	var out geom.MultiLineString
	for _, part := range split(y, x) {
		out = append(out, geom.LineString(part))
	}
	if len(out) == 1 {
		return out[0], nil
	}
	return out, nil
}

func transformPolygon(p geom.Polygon, f geomFunc) (geom.Polygon, error) {
	parts := make([][]geom.Point, len(p))
	for i, r := range p {
		parts[i] = r
	}
	y, x := flatten(parts)
	y, x, err := f(y, x, Polygon)
	if err != nil {
		return nil, err
	}
	var out geom.Polygon
	for _, ring := range split(y, x) {
		out = append(out, ring)
	}
	return out, nil
}

// flatten joins parts into NaN-separated coordinate arrays.
func flatten(parts [][]geom.Point) (y, x []float64) {
	for i, part := range parts {
		if i > 0 {
			y = append(y, math.NaN())
			x = append(x, math.NaN())
		}
		for _, pt := range part {
			y = append(y, pt.Y)
			x = append(x, pt.X)
		}
	}
	return y, x
}

// split is the inverse of flatten. Empty parts are dropped.
func split(y, x []float64) [][]geom.Point {
	var parts [][]geom.Point
	var part []geom.Point
	for i := range y {
		if math.IsNaN(y[i]) || math.IsNaN(x[i]) {
			if len(part) > 0 {
				parts = append(parts, part)
			}
			part = nil
			continue
		}
		part = append(part, geom.Point{X: x[i], Y: y[i]})
	}
	if len(part) > 0 {
		parts = append(parts, part)
	}
	return parts
}

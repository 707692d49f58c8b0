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
	"math"

	"github.com/spatialmodel/mapproj/geodesy"
)

// rotation moves points on the sphere so that the origin (lat0, lon0) lands
// on the native frame's (0, 0) and the frame is turned by orient about it.
type rotation struct {
	lat0, lon0, orient float64
	shiftOnly          bool

	sinLat0, cosLat0 float64
	sinOr, cosOr     float64
}

func newRotation(lat0, lon0, orient float64) rotation {
	r := rotation{lat0: lat0, lon0: lon0, orient: orient}
	r.shiftOnly = lat0 == 0 && orient == 0
	r.sinLat0, r.cosLat0 = math.Sincos(lat0)
	r.sinOr, r.cosOr = math.Sincos(orient)
	return r
}

func (r rotation) forward(lat, lon float64) (nlat, nlon float64) {
	lon = geodesy.WrapLongitude(lon - r.lon0)
	if r.shiftOnly {
		return lat, lon
	}
	sinlat, coslat := math.Sincos(lat)
	sinlon, coslon := math.Sincos(lon)
	x := coslat * coslon
	y := coslat * sinlon
	z := sinlat

	x1 := x*r.cosLat0 + z*r.sinLat0
	z1 := -x*r.sinLat0 + z*r.cosLat0

	y2 := y*r.cosOr + z1*r.sinOr
	z2 := -y*r.sinOr + z1*r.cosOr
	return math.Asin(clamp(z2)), math.Atan2(y2, x1)
}

func (r rotation) inverse(nlat, nlon float64) (lat, lon float64) {
	if r.shiftOnly {
		return nlat, geodesy.WrapLongitude(nlon + r.lon0)
	}
	sinlat, coslat := math.Sincos(nlat)
	sinlon, coslon := math.Sincos(nlon)
	x1 := coslat * coslon
	y2 := coslat * sinlon
	z2 := sinlat

	y := y2*r.cosOr - z2*r.sinOr
	z1 := y2*r.sinOr + z2*r.cosOr

	x := x1*r.cosLat0 - z1*r.sinLat0
	z := x1*r.sinLat0 + z1*r.cosLat0
	return math.Asin(clamp(z)), geodesy.WrapLongitude(math.Atan2(y, x) + r.lon0)
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	} else if v < -1 {
		return -1
	}
	return v
}

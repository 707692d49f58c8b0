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

package geodesy

import (
	"fmt"
	"math"
	"strings"

	"github.com/StefanSchroeder/Golang-Ellipsoid/ellipsoid"
)

// geodesicNames maps catalog names to the names used by the geodesic solver.
var geodesicNames = map[string]string{
	"wgs84": "WGS84",
	"grs80": "GRS80",
	"wgs72": "WGS72",
}

// Geodesic solves the direct and inverse geodesic problems on one of the
// catalog ellipsoids. Distances are in meters and angles in radians.
type Geodesic struct {
	Ellipsoid Ellipsoid
	geo       ellipsoid.Ellipsoid
}

// NewGeodesic returns a geodesic solver for the named catalog ellipsoid.
func NewGeodesic(name string) (*Geodesic, error) {
	gname, ok := geodesicNames[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("geodesy: no geodesic solver for ellipsoid %q", name)
	}
	ell, err := Named(name)
	if err != nil {
		return nil, err
	}
	return &Geodesic{
		Ellipsoid: ell,
		geo: ellipsoid.Init(gname, ellipsoid.Degrees, ellipsoid.Meter,
			ellipsoid.LongitudeIsSymmetric, ellipsoid.BearingIsSymmetric),
	}, nil
}

// Inverse returns the geodesic distance and initial azimuth from point 1
// to point 2.
func (g *Geodesic) Inverse(lat1, lon1, lat2, lon2 float64) (dist, az float64) {
	dist, bearing := g.geo.To(lat1*deg, lon1*deg, lat2*deg, lon2*deg)
	return dist, bearing / deg
}

// Forward returns the point reached from point 1 after dist meters along
// initial azimuth az.
func (g *Geodesic) Forward(lat1, lon1, dist, az float64) (lat2, lon2 float64) {
	lat2, lon2 = g.geo.At(lat1*deg, lon1*deg, dist, az*deg)
	return lat2 / deg, WrapLongitude(lon2 / deg)
}

const deg = 180 / math.Pi

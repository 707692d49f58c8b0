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
	"github.com/spatialmodel/mapproj/auxlat"
	"github.com/spatialmodel/mapproj/geodesy"
)

// globeKernel converts between geodetic and earth-centered, earth-fixed
// coordinates. It is not a map projection; its third coordinate is height.
type globeKernel struct {
	info
}

func (g *globeKernel) Transformers3(p Params) (forward, inverse func(a, b, c float64) (float64, float64, float64), err error) {
	ell := p.Ellipsoid
	forward = func(lat, lon, h float64) (x, y, z float64) {
		return geodesy.ToECEF(ell, lat, lon, h)
	}
	inverse = func(x, y, z float64) (lat, lon, h float64) {
		return geodesy.FromECEF(ell, x, y, z)
	}
	return
}

// Transformers returns the globe conversion restricted to zero height
// and the x-y plane.
func (g *globeKernel) Transformers(p Params) (forward, inverse Transformer, err error) {
	f3, i3, err := g.Transformers3(p)
	if err != nil {
		return nil, nil, err
	}
	forward = func(lat, lon float64) (x, y float64) {
		x, y, _ = f3(lat, lon, 0)
		return
	}
	inverse = func(x, y float64) (lat, lon float64) {
		lat, lon, _ = i3(x, y, 0)
		return
	}
	return
}

func init() {
	register(&globeKernel{info{
		title:   "Globe",
		class:   ClassGlobe,
		aux:     auxlat.Geodetic,
		trimLat: worldLat,
		trimLon: worldLon,
	}}, "globe")
}

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

	"github.com/spatialmodel/mapproj/auxlat"
)

// radial is the scaling law of an azimuthal projection: the distance from
// the map center of a point at angular range c, on a sphere of radius r.
type radial struct {
	rho    func(r, c float64) float64
	rhoInv func(r, rho float64) float64
	// twist, if set, returns the angle the azimuth is turned by at range c.
	twist func(c float64) float64
}

func (rl radial) build(aux auxlat.Type) func(p Params) (forward, inverse Transformer, err error) {
	return func(p Params) (forward, inverse Transformer, err error) {
		r := p.Ellipsoid.A
		switch aux {
		case auxlat.Authalic:
			r = p.Ellipsoid.AuthalicRadius()
		case auxlat.Rectifying:
			r = p.Ellipsoid.RectifyingRadius()
		}
		forward = func(c, az float64) (x, y float64) {
			rho := rl.rho(r, c)
			if rl.twist != nil {
				az += rl.twist(c)
			}
			s, co := math.Sincos(az)
			return rho * s, rho * co
		}
		inverse = func(x, y float64) (c, az float64) {
			c = rl.rhoInv(r, math.Hypot(x, y))
			if x == 0 && y == 0 {
				return c, 0
			}
			az = math.Atan2(x, y)
			if rl.twist != nil {
				az -= rl.twist(c)
			}
			return c, az
		}
		return
	}
}

var (
	orthographic = radial{
		rho:    func(r, c float64) float64 { return r * math.Sin(c) },
		rhoInv: func(r, rho float64) float64 { return asinz(rho / r) },
	}
	stereographic = radial{
		rho:    func(r, c float64) float64 { return 2 * r * math.Tan(c/2) },
		rhoInv: func(r, rho float64) float64 { return 2 * math.Atan(rho/(2*r)) },
	}
	gnomonic = radial{
		rho:    func(r, c float64) float64 { return r * math.Tan(c) },
		rhoInv: func(r, rho float64) float64 { return math.Atan(rho / r) },
	}
	equidistantAzimuthal = radial{
		rho:    func(r, c float64) float64 { return r * c },
		rhoInv: func(r, rho float64) float64 { return rho / r },
	}
	equalAreaAzimuthal = radial{
		rho:    func(r, c float64) float64 { return 2 * r * math.Sin(c/2) },
		rhoInv: func(r, rho float64) float64 { return 2 * asinz(rho/(2*r)) },
	}
	breusing = radial{
		rho:    func(r, c float64) float64 { return 4 * r * math.Tan(c/4) },
		rhoInv: func(r, rho float64) float64 { return 4 * math.Atan(rho/(4*r)) },
	}
	wiechel = radial{
		rho:    equalAreaAzimuthal.rho,
		rhoInv: equalAreaAzimuthal.rhoInv,
		twist:  func(c float64) float64 { return c / 2 },
	}
)

// verticalPerspective views the sphere from altitude h above its surface.
func verticalPerspective(p Params) (forward, inverse Transformer, err error) {
	r := p.Ellipsoid.A
	P := 1 + p.Altitude/r
	rl := radial{
		rho: func(r, c float64) float64 {
			return r * (P - 1) * math.Sin(c) / (P - math.Cos(c))
		},
		rhoInv: func(r, rho float64) float64 {
			k := rho / (r * (P - 1))
			return asinz(k*P/math.Sqrt(1+k*k)) - math.Atan(k)
		},
	}
	return rl.build(auxlat.Geodetic)(p)
}

// perspectiveKernel defaults the viewpoint altitude and limits the map
// to the visible part of the globe.
type perspectiveKernel struct {
	kern
}

func (k *perspectiveKernel) Defaults(p Params) (Params, error) {
	p = p.clone()
	r := 1.
	if p.ellipsoidSet() {
		r = p.Ellipsoid.A
	} else if k.ellipsoid != nil {
		r = k.ellipsoid.A
	}
	if !isSet(p.Altitude) {
		p.Altitude = r
	}
	if !(p.Altitude > 0) {
		return p, configErr(p.ID, "altitude", "must be positive; got %g", p.Altitude)
	}
	if !isSet(p.FlatLimit[1]) {
		p.FlatLimit[1] = p.AngleUnits.fromRadians(math.Acos(r / (r + p.Altitude)))
	}
	return k.kern.Defaults(p)
}

func azimuthalInfo(title string, aux auxlat.Type, flatLimit float64) info {
	in := info{
		title:     title,
		class:     ClassAzimuthal,
		aux:       aux,
		flatLimit: flatLimit,
	}
	if aux == auxlat.Geodetic {
		in.sphereOnly = true
	}
	return in
}

func init() {
	register(&kern{info: azimuthalInfo("Orthographic", auxlat.Geodetic, 89),
		build: orthographic.build(auxlat.Geodetic)}, "ortho")
	register(&kern{info: azimuthalInfo("Stereographic", auxlat.Conformal, 90),
		build: stereographic.build(auxlat.Conformal)}, "stereo")
	register(&kern{info: azimuthalInfo("Gnomonic", auxlat.Geodetic, 65),
		build: gnomonic.build(auxlat.Geodetic)}, "gnomonic")
	register(&kern{info: azimuthalInfo("Equidistant Azimuthal", auxlat.Rectifying, 180),
		build: equidistantAzimuthal.build(auxlat.Rectifying)}, "eqdazim")
	register(&kern{info: azimuthalInfo("Equal Area Azimuthal", auxlat.Authalic, 180),
		build: equalAreaAzimuthal.build(auxlat.Authalic)}, "eqaazim")
	register(&kern{info: azimuthalInfo("Breusing Harmonic Mean", auxlat.Geodetic, 90),
		build: breusing.build(auxlat.Geodetic)}, "breusing")
	register(&kern{info: azimuthalInfo("Wiechel Equal Area", auxlat.Authalic, 90),
		build: wiechel.build(auxlat.Authalic)}, "wiechel")
	register(&perspectiveKernel{kern{info: azimuthalInfo("Vertical Perspective Azimuthal", auxlat.Geodetic, 0),
		build: verticalPerspective}}, "vperspec")
}

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
	"github.com/spatialmodel/mapproj/internal/newton"
	"github.com/spatialmodel/mapproj/internal/singular"
)

func modifiedAzimuthal(title string) info {
	return info{
		title:   title,
		class:   ClassModifiedAzimuthal,
		aux:     auxlat.Geodetic,
		trimLat: worldLat,
		trimLon: worldLon,
	}
}

// aitoffXY is the Aitoff projection on the unit sphere.
func aitoffXY(phi, lam float64) (x, y float64) {
	cosphi := math.Cos(phi)
	alpha := acosz(cosphi * math.Cos(lam/2))
	sinc := 1.
	if alpha > 1e-9 {
		sinc = math.Sin(alpha) / alpha
	}
	return 2 * cosphi * math.Sin(lam/2) / sinc, math.Sin(phi) / sinc
}

func aitoff(p Params) (forward, inverse Transformer, err error) {
	r := p.Ellipsoid.A
	bound := func(phi, lam float64) (float64, float64) {
		return math.Max(-halfPi, math.Min(halfPi, phi)), math.Max(-math.Pi, math.Min(math.Pi, lam))
	}
	forward = func(phi, lam float64) (x, y float64) {
		x, y = aitoffXY(singular.Latitude(phi, 500), lam)
		return r * x, r * y
	}
	inverse = func(x, y float64) (phi, lam float64) {
		x, y = x/r, y/r
		if x == 0 && y == 0 {
			return 0, 0
		}
		fn := func(phi, lam float64) (float64, float64) {
			fx, fy := aitoffXY(phi, lam)
			return fx - x, fy - y
		}
		phi0, lam0 := bound(y, x)
		phi, lam, _, ok := newton.Solve2(fn, phi0, lam0, newton.Tolerance, newton.MaxIter, bound)
		if !ok {
			solverCapped(p.ID, x)
		}
		return phi, lam
	}
	return
}

// hammerXY is the Hammer projection on the unit sphere.
func hammerXY(phi, lam float64) (x, y float64) {
	sinphi, cosphi := math.Sincos(phi)
	sinl, cosl := math.Sincos(lam / 2)
	d := math.Sqrt(1 + cosphi*cosl)
	return 2 * math.Sqrt2 * cosphi * sinl / d, math.Sqrt2 * sinphi / d
}

func hammerInverse(x, y float64) (phi, lam float64) {
	z := math.Sqrt(math.Max(0, 1-x*x/16-y*y/4))
	phi = asinz(z * y)
	if math.Abs(math.Abs(phi)-halfPi) < singular.Eps {
		return phi, 0
	}
	return phi, 2 * math.Atan2(z*x, 2*(2*z*z-1))
}

// hammerFamily returns the Hammer projection with its x axis stretched
// by sx and its y axis by sy.
func hammerFamily(sx, sy float64) func(p Params) (forward, inverse Transformer, err error) {
	return func(p Params) (forward, inverse Transformer, err error) {
		r := p.Ellipsoid.A
		forward = func(phi, lam float64) (x, y float64) {
			x, y = hammerXY(phi, lam)
			return r * sx * x, r * sy * y
		}
		inverse = func(x, y float64) (phi, lam float64) {
			return hammerInverse(x/(r*sx), y/(r*sy))
		}
		return
	}
}

func init() {
	ai := modifiedAzimuthal("Aitoff")
	ai.sphereOnly = true
	register(&kern{info: ai, build: aitoff}, "aitoff")

	ha := modifiedAzimuthal("Hammer")
	ha.ignoreFlattening = true
	register(&kern{info: ha, build: hammerFamily(1, 1)}, "hammer")

	br := modifiedAzimuthal("Briesemeister")
	br.ignoreFlattening = true
	br.origin = [3]float64{45, 10, 0}
	register(&kern{info: br, build: hammerFamily(math.Sqrt(0.875), 1/math.Sqrt(0.875))}, "briesemeister")
}

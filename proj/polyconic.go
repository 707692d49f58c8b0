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
	"github.com/spatialmodel/mapproj/internal/singular"
)

// polyconic is the American polyconic projection on the ellipsoid. Its
// inverse solves Snyder's implicit equation for latitude by Newton's method.
func polyconic(p Params) (forward, inverse Transformer, err error) {
	ell := p.Ellipsoid
	a, es := ell.A, ell.Es()
	lat0, _, _ := p.origin()
	m0 := geodesy.MeridianArc(ell, lat0)

	forward = func(phi, lam float64) (x, y float64) {
		if math.Abs(phi) < 1e-12 {
			return a * lam, -m0
		}
		phi = singular.Latitude(phi, 1)
		sinphi, cosphi := math.Sincos(phi)
		ncot := geodesy.PrimeVerticalRadius(ell, phi) * cosphi / sinphi
		s, c := math.Sincos(lam * sinphi)
		return ncot * s, geodesy.MeridianArc(ell, phi) - m0 + ncot*(1-c)
	}
	inverse = func(x, y float64) (phi, lam float64) {
		A := (m0 + y) / a
		if math.Abs(A) < 1e-12 {
			return 0, x / a
		}
		B := x*x/(a*a) + A*A
		fn := func(phi float64) (f, df float64) {
			sinphi, cosphi := math.Sincos(phi)
			w := 1 - es*sinphi*sinphi
			C := math.Sqrt(w) * sinphi / cosphi
			mn := geodesy.MeridianArc(ell, phi) / a
			dmn := (1 - es) / (w * math.Sqrt(w))
			sin2 := math.Sin(2 * phi)
			f = A*(C*mn+1) - mn - 0.5*(mn*mn+B)*C
			df = es*sin2*(mn*mn+B-2*A*mn)/(4*C) + (A-mn)*(C*dmn-2/sin2) - dmn
			return
		}
		phi = solveTheta(p.ID, fn, A, y)
		sinphi, cosphi := math.Sincos(phi)
		if math.Abs(sinphi) < 1e-12 {
			return phi, x / a
		}
		C := math.Sqrt(1-es*sinphi*sinphi) * sinphi / cosphi
		return phi, asinz(x*C/a) / sinphi
	}
	return
}

func init() {
	poly := standardInfo("Polyconic", worldLat, [2]float64{-75, 75})
	register(&kern{info: poly, build: polyconic}, "polycon")
}

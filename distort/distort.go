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

// Package distort measures the scale distortion of a map projection at a
// point, from a numerical Jacobian of the forward projection.
package distort

import (
	"fmt"
	"math"

	"github.com/spatialmodel/mapproj/geodesy"
	"github.com/spatialmodel/mapproj/proj"
	"gonum.org/v1/gonum/mat"
)

// step is the finite difference step, in radians.
const step = 1e-5

// Scales holds the distortion of a projection at one point.
type Scales struct {
	// H and K are the scale factors along the meridian and the parallel.
	H, K float64

	// Area is the areal scale factor, H·K·sin θ' where θ' is the angle at
	// which the projected meridian and parallel intersect.
	Area float64

	// A and B are the semi-axes of the Tissot indicatrix.
	A, B float64

	// Omega is the maximum angular distortion, in the angle units of the
	// projection.
	Omega float64
}

// At returns the distortion of projection pr at (lat, lon), given in the
// projection's angle units. Scale factors are relative to the ellipsoid of
// pr and include its scale factor.
func At(pr *proj.Projection, lat, lon float64) (Scales, error) {
	p := pr.Params()
	conv := math.Pi / 180
	if p.AngleUnits == proj.Radians {
		conv = 1
	}
	phi := lat * conv
	if math.IsNaN(phi) || math.IsNaN(lon) {
		return Scales{}, fmt.Errorf("distort: invalid point (%g, %g)", lat, lon)
	}
	if math.Abs(phi) > math.Pi/2-step {
		return Scales{}, fmt.Errorf("distort: distortion is undefined at latitude %g", lat)
	}
	d := step / conv

	xe, ye := pr.ForwardPoint(lat, lon+d)
	xw, yw := pr.ForwardPoint(lat, lon-d)
	xn, yn := pr.ForwardPoint(lat+d, lon)
	xs, ys := pr.ForwardPoint(lat-d, lon)
	j := mat.NewDense(2, 2, []float64{
		(xe - xw) / (2 * step), (xn - xs) / (2 * step),
		(ye - yw) / (2 * step), (yn - ys) / (2 * step),
	})
	for _, v := range j.RawMatrix().Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Scales{}, fmt.Errorf("distort: projection is not differentiable at (%g, %g)", lat, lon)
		}
	}

	// Scale the columns by the lengths on the ellipsoid of unit changes in
	// longitude and latitude.
	ell := pr.Ellipsoid()
	j.Apply(func(_, c int, v float64) float64 {
		if c == 0 {
			return v / (geodesy.PrimeVerticalRadius(ell, phi) * math.Cos(phi))
		}
		return v / geodesy.MeridionalRadius(ell, phi)
	}, j)

	var s Scales
	s.K = math.Hypot(j.At(0, 0), j.At(1, 0))
	s.H = math.Hypot(j.At(0, 1), j.At(1, 1))
	s.Area = math.Abs(mat.Det(j))

	var svd mat.SVD
	if !svd.Factorize(j, mat.SVDNone) {
		return s, fmt.Errorf("distort: singular value decomposition failed at (%g, %g)", lat, lon)
	}
	sv := svd.Values(nil)
	s.A, s.B = sv[0], sv[1]
	s.Omega = 2 * math.Asin((s.A-s.B)/(s.A+s.B)) / conv
	return s, nil
}

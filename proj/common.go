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
)

func msfnz(e, sinphi, cosphi float64) float64 {
	con := e * sinphi
	return cosphi / math.Sqrt(1-con*con)
}

func tsfnz(e, phi, sinphi float64) float64 {
	con := e * sinphi
	return math.Tan(0.5*(halfPi-phi)) / math.Pow((1-con)/(1+con), 0.5*e)
}

// phi2z is the inverse of tsfnz. It returns its best estimate if the
// iteration does not converge.
func phi2z(id string, e, ts float64) float64 {
	eh := 0.5 * e
	phi := halfPi - 2*math.Atan(ts)
	for i := 0; i <= 15; i++ {
		con := e * math.Sin(phi)
		dphi := halfPi - 2*math.Atan(ts*math.Pow((1-con)/(1+con), eh)) - phi
		phi += dphi
		if math.Abs(dphi) <= 1e-14 {
			return phi
		}
	}
	solverCapped(id, ts)
	return phi
}

func qsfnz(e, sinphi float64) float64 { return auxlat.Q(e, sinphi) }

// qsInverse returns the latitude whose q is qs.
func qsInverse(id string, e, qs float64) float64 {
	phi := asinz(0.5 * qs)
	if e < 1e-10 {
		return phi
	}
	if qp := qsfnz(e, 1); math.Abs(qs) >= qp {
		return math.Copysign(halfPi, qs)
	}
	es := e * e
	for i := 1; i <= 25; i++ {
		sinphi, cosphi := math.Sincos(phi)
		if cosphi < 1e-12 {
			return phi
		}
		con := e * sinphi
		com := 1 - con*con
		dphi := 0.5 * com * com / cosphi * (qs/(1-es) - sinphi/com + 0.5/e*math.Log((1-con)/(1+con)))
		phi += dphi
		if math.Abs(dphi) <= 1e-12 {
			return phi
		}
	}
	solverCapped(id, qs)
	return phi
}

func asinz(x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return math.Asin(x)
}

func acosz(x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return math.Acos(x)
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// solveTheta solves fn for an auxiliary angle with the settings shared by
// the equal-area kernels, logging when the iteration cap is reached.
func solveTheta(id string, fn newton.Func, x0, input float64) float64 {
	x, _, ok := newton.Solve(fn, x0, newton.Tolerance, newton.MaxIter)
	if !ok {
		solverCapped(id, input)
	}
	return x
}

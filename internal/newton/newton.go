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

// Package newton solves the scalar and two-variable equations that
// projections without closed-form inverses need.
package newton

import "math"

// The settings used by the equal-area projections.
const (
	Tolerance = 1e-10
	MaxIter   = 100
)

// Func returns the value of a function and its derivative at x.
type Func func(x float64) (f, df float64)

// Solve finds a root of fn starting from x0. Iteration stops when the
// correction is smaller than tol or after maxIter steps. If the iteration
// cap is reached the last iterate is returned with converged == false.
func Solve(fn Func, x0, tol float64, maxIter int) (x float64, iter int, converged bool) {
	x = x0
	for iter = 1; iter <= maxIter; iter++ {
		f, df := fn(x)
		if f == 0 {
			return x, iter, true
		}
		if df == 0 || math.IsNaN(df) {
			return x, iter, false
		}
		dx := f / df
		x -= dx
		if math.Abs(dx) < tol {
			return x, iter, true
		}
	}
	return x, maxIter, false
}

// Func2 returns the residuals of a two-equation system at (x, y).
type Func2 func(x, y float64) (f, g float64)

// Solve2 finds a root of a two-equation system with Newton's method,
// using a central finite-difference Jacobian. bound, if not nil, is
// applied to each iterate to keep it inside the function's domain.
func Solve2(fn Func2, x0, y0, tol float64, maxIter int, bound func(x, y float64) (float64, float64)) (x, y float64, iter int, converged bool) {
	const h = 1e-7
	x, y = x0, y0
	for iter = 1; iter <= maxIter; iter++ {
		f, g := fn(x, y)
		fx1, gx1 := fn(x+h, y)
		fx0, gx0 := fn(x-h, y)
		fy1, gy1 := fn(x, y+h)
		fy0, gy0 := fn(x, y-h)
		a := (fx1 - fx0) / (2 * h)
		b := (fy1 - fy0) / (2 * h)
		c := (gx1 - gx0) / (2 * h)
		d := (gy1 - gy0) / (2 * h)
		det := a*d - b*c
		if det == 0 || math.IsNaN(det) {
			return x, y, iter, false
		}
		dx := (d*f - b*g) / det
		dy := (a*g - c*f) / det
		x -= dx
		y -= dy
		if bound != nil {
			x, y = bound(x, y)
		}
		if math.Abs(dx) < tol && math.Abs(dy) < tol {
			return x, y, iter, true
		}
	}
	return x, y, maxIter, false
}

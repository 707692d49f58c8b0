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

package newton

import (
	"math"
	"testing"
)

func TestSolve(t *testing.T) {
	// Mollweide auxiliary angle at 60°.
	phi := math.Pi / 3
	x, _, ok := Solve(func(th float64) (float64, float64) {
		return th + math.Sin(th) - math.Pi*math.Sin(phi), 1 + math.Cos(th)
	}, phi, Tolerance, MaxIter)
	if !ok {
		t.Fatal("did not converge")
	}
	if r := x + math.Sin(x) - math.Pi*math.Sin(phi); math.Abs(r) > 1e-12 {
		t.Errorf("residual %g", r)
	}
}

func TestSolveCap(t *testing.T) {
	// x² + 1 has no real root; the best iterate comes back unflagged as converged.
	x, iter, ok := Solve(func(x float64) (float64, float64) {
		return x*x + 1, 2 * x
	}, 0.5, Tolerance, MaxIter)
	if ok {
		t.Error("should not converge")
	}
	if iter != MaxIter || math.IsNaN(x) {
		t.Errorf("iter = %d, x = %g", iter, x)
	}
}

func TestSolve2(t *testing.T) {
	x, y, _, ok := Solve2(func(x, y float64) (float64, float64) {
		return x*x + y*y - 4, x - y
	}, 1, 0.5, 1e-12, MaxIter, nil)
	if !ok {
		t.Fatal("did not converge")
	}
	if math.Abs(x-math.Sqrt2) > 1e-10 || math.Abs(y-math.Sqrt2) > 1e-10 {
		t.Errorf("got %g, %g", x, y)
	}
}

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

package singular

import (
	"math"
	"testing"
)

func TestBackOffSnap(t *testing.T) {
	for _, x := range []float64{math.Pi / 2, -math.Pi / 2} {
		b := Latitude(x, 1)
		if math.Abs(b) >= math.Pi/2 {
			t.Errorf("%g not backed off", x)
		}
		if s := Snap(b, math.Pi/2, 10*Eps); s != x {
			t.Errorf("snap(%g) = %g, want %g", b, s, x)
		}
	}
	if v := Longitude(1, 1); v != 1 {
		t.Errorf("interior value changed to %g", v)
	}
	if v := Snap(1, math.Pi, 10*Eps); v != 1 {
		t.Errorf("interior value snapped to %g", v)
	}
	if v := Longitude(-math.Pi, 5); v != -math.Pi+5*Eps {
		t.Errorf("longitude = %g", v)
	}
}

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
	"runtime"
	"sync"
)

// parallelThreshold is the array length above which kernels are
// evaluated concurrently.
const parallelThreshold = 4096

// evaluate applies t to each coordinate pair. NaN pairs stay NaN.
func evaluate(t Transformer, a, b []float64) (c, d []float64) {
	n := len(a)
	c = make([]float64, n)
	d = make([]float64, n)
	run := func(i int) {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			c[i], d[i] = math.NaN(), math.NaN()
			return
		}
		c[i], d[i] = t(a[i], b[i])
	}
	if n < parallelThreshold {
		for i := 0; i < n; i++ {
			run(i)
		}
		return
	}
	nprocs := runtime.GOMAXPROCS(0)
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			for ii := pp; ii < n; ii += nprocs {
				run(ii)
			}
			wg.Done()
		}(pp)
	}
	wg.Wait()
	return
}

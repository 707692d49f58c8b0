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

	"github.com/ctessum/geom"
)

// frame is the region of the native frame that is kept when trimming.
// Points are compared and clipped in a planar representation of the frame.
type frame interface {
	toPlane(a, b float64) (x, y float64)
	fromPlane(x, y float64) (a, b float64)
	contains(x, y float64) bool
	// clip returns the parameter interval [t0, t1] ⊂ [0, 1] of the segment
	// from (x0, y0) to (x1, y1) that lies inside the frame.
	clip(x0, y0, x1, y1 float64) (t0, t1 float64, ok bool)
	boundary() geom.Polygon
	// period is the distance in x at which the plane wraps around, or 0 if
	// it does not.
	period() float64
}

const frameTol = 1e-12

// quadFrame is a latitude-longitude quadrangle. Its plane is (lon, lat).
type quadFrame struct {
	latMin, latMax, lonMin, lonMax float64
}

func (q quadFrame) toPlane(lat, lon float64) (float64, float64) { return lon, lat }
func (q quadFrame) fromPlane(x, y float64) (float64, float64)   { return y, x }

func (q quadFrame) period() float64 { return twoPi }

func (q quadFrame) contains(x, y float64) bool {
	return y >= q.latMin-frameTol && y <= q.latMax+frameTol &&
		x >= q.lonMin-frameTol && x <= q.lonMax+frameTol
}

// clip uses the Liang-Barsky algorithm.
func (q quadFrame) clip(x0, y0, x1, y1 float64) (t0, t1 float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 = 0, 1
	edges := [4][2]float64{
		{-dx, x0 - q.lonMin},
		{dx, q.lonMax - x0},
		{-dy, y0 - q.latMin},
		{dy, q.latMax - y0},
	}
	for _, e := range edges {
		p, r := e[0], e[1]
		if p == 0 {
			if r < 0 {
				return 0, 0, false
			}
			continue
		}
		t := r / p
		if p < 0 {
			if t > t1 {
				return 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return t0, t1, true
}

func (q quadFrame) boundary() geom.Polygon {
	return geom.Polygon{{
		{X: q.lonMin, Y: q.latMin},
		{X: q.lonMax, Y: q.latMin},
		{X: q.lonMax, Y: q.latMax},
		{X: q.lonMin, Y: q.latMax},
		{X: q.lonMin, Y: q.latMin},
	}}
}

// circleFrame keeps points within an angular range of the azimuthal
// center. Its plane is the azimuthal equidistant one, (rng·sin az, rng·cos az).
type circleFrame struct {
	rmax float64
}

func (c circleFrame) toPlane(rng, az float64) (float64, float64) {
	s, co := math.Sincos(az)
	return rng * s, rng * co
}

func (c circleFrame) fromPlane(x, y float64) (float64, float64) {
	return math.Hypot(x, y), math.Atan2(x, y)
}

func (c circleFrame) period() float64 { return 0 }

func (c circleFrame) contains(x, y float64) bool {
	return math.Hypot(x, y) <= c.rmax*(1+frameTol)
}

func (c circleFrame) clip(x0, y0, x1, y1 float64) (t0, t1 float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	a := dx*dx + dy*dy
	b := 2 * (x0*dx + y0*dy)
	cc := x0*x0 + y0*y0 - c.rmax*c.rmax
	if a == 0 {
		return 0, 1, cc <= 0
	}
	disc := b*b - 4*a*cc
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	t0 = math.Max(0, (-b-sq)/(2*a))
	t1 = math.Min(1, (-b+sq)/(2*a))
	return t0, t1, t0 <= t1
}

const circleVertices = 360

func (c circleFrame) boundary() geom.Polygon {
	ring := make([]geom.Point, circleVertices+1)
	for i := 0; i < circleVertices; i++ {
		s, co := math.Sincos(twoPi * float64(i) / circleVertices)
		ring[i] = geom.Point{X: c.rmax * s, Y: c.rmax * co}
	}
	ring[circleVertices] = ring[0]
	return geom.Polygon{ring}
}

// TrimRecord describes how a forward projection trimmed its input, so
// that an inverse projection can restore the original coordinates.
// Coordinates are saved in the native frame.
type TrimRecord struct {
	// trimmed maps output positions holding NaN to the vertices they replaced.
	trimmed []trimmedRun
	// clipped lists output positions of vertices inserted on the frame edge.
	clipped []int
	// split lists output positions of NaN separators inserted where a line
	// crosses the frame's longitude seam.
	split []int
	// polygon holds the complete input of a clipped polygon.
	polygon *trimmedRun
}

type trimmedRun struct {
	index int
	a, b  []float64
}

// Trimmed returns the number of input vertices removed by trimming.
func (r *TrimRecord) Trimmed() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, t := range r.trimmed {
		n += len(t.a)
	}
	if r.polygon != nil {
		n += len(r.polygon.a)
	}
	return n
}

// Clipped returns the number of vertices inserted on the frame edge.
func (r *TrimRecord) Clipped() int {
	if r == nil {
		return 0
	}
	return len(r.clipped)
}

// Empty reports whether trimming left the input unchanged.
func (r *TrimRecord) Empty() bool {
	return r.Trimmed() == 0 && r.Clipped() == 0 && (r == nil || len(r.split) == 0)
}

// undo restores the trimmed input from the inverse-projected output.
func (r *TrimRecord) undo(a, b []float64) (oa, ob []float64) {
	if r.polygon != nil {
		return append([]float64(nil), r.polygon.a...), append([]float64(nil), r.polygon.b...)
	}
	if r.Empty() {
		return a, b
	}
	skip := make(map[int]bool, len(r.clipped)+len(r.split))
	for _, i := range r.clipped {
		skip[i] = true
	}
	for _, i := range r.split {
		skip[i] = true
	}
	runs := make(map[int]trimmedRun, len(r.trimmed))
	for _, t := range r.trimmed {
		runs[t.index] = t
	}
	for i := range a {
		if skip[i] {
			continue
		}
		if t, ok := runs[i]; ok {
			oa = append(oa, t.a...)
			ob = append(ob, t.b...)
			continue
		}
		oa = append(oa, a[i])
		ob = append(ob, b[i])
	}
	return oa, ob
}

// trim removes the parts of the input outside f. a and b are native
// frame coordinates.
func trim(f frame, a, b []float64, obj ObjectType) ([]float64, []float64, *TrimRecord) {
	switch obj {
	case Line:
		return trimLines(f, a, b)
	case Polygon:
		return trimPolygons(f, a, b)
	}
	return trimPoints(f, a, b)
}

// trimPoints replaces points outside the frame with NaN.
func trimPoints(f frame, a, b []float64) ([]float64, []float64, *TrimRecord) {
	rec := new(TrimRecord)
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		if !f.contains(f.toPlane(a[i], b[i])) {
			rec.trimmed = append(rec.trimmed, trimmedRun{index: i, a: []float64{a[i]}, b: []float64{b[i]}})
			a[i], b[i] = math.NaN(), math.NaN()
		}
	}
	return a, b, rec
}

// wrapShift returns the shift that moves x1 next to x0 when the segment
// between them crosses the seam of a wrapping frame, or 0.
func wrapShift(f frame, x0, x1 float64) float64 {
	period := f.period()
	if period == 0 {
		return 0
	}
	switch d := x1 - x0; {
	case d > period/2:
		return -period
	case d < -period/2:
		return period
	}
	return 0
}

// trimLines splits lines where they leave the frame. Each run of outside
// vertices becomes a single NaN separator and a vertex is inserted where
// a segment crosses the frame edge. A segment that crosses the longitude
// seam is cut there.
func trimLines(f frame, a, b []float64) ([]float64, []float64, *TrimRecord) {
	rec := new(TrimRecord)
	oa := make([]float64, 0, len(a))
	ob := make([]float64, 0, len(b))
	emit := func(va, vb float64) {
		oa = append(oa, va)
		ob = append(ob, vb)
	}
	run := -1 // index into rec.trimmed of the open outside run
	startRun := func(va, vb float64) {
		emit(math.NaN(), math.NaN())
		rec.trimmed = append(rec.trimmed, trimmedRun{index: len(oa) - 1, a: []float64{va}, b: []float64{vb}})
		run = len(rec.trimmed) - 1
	}
	var px, py float64
	prevIn, havePrev := false, false
	insertAt := func(x0, y0, x1, y1, t float64) {
		va, vb := f.fromPlane(x0+t*(x1-x0), y0+t*(y1-y0))
		emit(va, vb)
		rec.clipped = append(rec.clipped, len(oa)-1)
	}
	insert := func(x, y, t float64) { insertAt(px, py, x, y, t) }
	split := func() {
		emit(math.NaN(), math.NaN())
		rec.split = append(rec.split, len(oa)-1)
	}
	// cross handles a segment that crosses the seam: it leaves the frame
	// towards x+w and re-enters from px-w.
	cross := func(x, y, w float64, in bool, va, vb float64) {
		sep := prevIn
		if t0, t1, ok := f.clip(px, py, x+w, y); ok && t1 < 1 {
			if !prevIn && t1 > t0 {
				insertAt(px, py, x+w, y, t0)
				sep = true
			}
			if sep {
				insertAt(px, py, x+w, y, t1)
			}
		}
		qx := px - w
		t0, t1, ok := f.clip(qx, py, x, y)
		switch {
		case in:
			if sep {
				split()
			}
			if ok {
				insertAt(qx, py, x, y, t0)
			}
			run = -1
			emit(va, vb)
		case ok && t1 > t0:
			if sep {
				split()
			}
			insertAt(qx, py, x, y, t0)
			insertAt(qx, py, x, y, t1)
			startRun(va, vb)
		case sep || run < 0:
			startRun(va, vb)
		default:
			r := &rec.trimmed[run]
			r.a = append(r.a, va)
			r.b = append(r.b, vb)
		}
	}
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			emit(a[i], b[i])
			havePrev, run = false, -1
			continue
		}
		x, y := f.toPlane(a[i], b[i])
		in := f.contains(x, y)
		if havePrev {
			if w := wrapShift(f, px, x); w != 0 {
				cross(x, y, w, in, a[i], b[i])
				px, py, prevIn = x, y, in
				continue
			}
		}
		switch {
		case !havePrev && in:
			emit(a[i], b[i])
		case !havePrev:
			startRun(a[i], b[i])
		case prevIn && in:
			emit(a[i], b[i])
		case prevIn:
			if _, t1, ok := f.clip(px, py, x, y); ok {
				insert(x, y, t1)
			}
			startRun(a[i], b[i])
		case in:
			if t0, _, ok := f.clip(px, py, x, y); ok {
				insert(x, y, t0)
			}
			run = -1
			emit(a[i], b[i])
		default:
			if t0, t1, ok := f.clip(px, py, x, y); ok && t1 > t0 {
				insert(x, y, t0)
				insert(x, y, t1)
				startRun(a[i], b[i])
			} else {
				r := &rec.trimmed[run]
				r.a = append(r.a, a[i])
				r.b = append(r.b, b[i])
			}
		}
		px, py, prevIn, havePrev = x, y, in, true
	}
	return oa, ob, rec
}

// trimPolygons intersects NaN-separated polygon rings with the frame.
// On a wrapping frame, rings are made continuous across the seam and the
// parts on either side of it are clipped separately.
func trimPolygons(f frame, a, b []float64) ([]float64, []float64, *TrimRecord) {
	rec := new(TrimRecord)
	period := f.period()
	var poly geom.Polygon
	var ring []geom.Point
	ref := math.NaN() // mean x of the first ring
	closeRing := func() {
		if len(ring) == 0 {
			return
		}
		if period != 0 {
			if math.IsNaN(ref) {
				ref = meanX(ring)
			} else if k := math.Floor((ref-meanX(ring))/period + 0.5); k != 0 {
				for i := range ring {
					ring[i].X += k * period
				}
			}
		}
		poly = append(poly, ring)
		ring = nil
	}
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			closeRing()
			continue
		}
		x, y := f.toPlane(a[i], b[i])
		if n := len(ring); n > 0 {
			x += wrapShift(f, ring[n-1].X, x)
		}
		ring = append(ring, geom.Point{X: x, Y: y})
	}
	closeRing()

	allIn := true
	for _, r := range poly {
		for _, pt := range r {
			if !f.contains(pt.X, pt.Y) {
				allIn = false
			}
		}
	}
	if allIn {
		return a, b, rec
	}
	rec.polygon = &trimmedRun{a: append([]float64(nil), a...), b: append([]float64(nil), b...)}
	shifts := []float64{0}
	if period != 0 {
		shifts = append(shifts, -period, period)
	}
	var oa, ob []float64
	for _, shift := range shifts {
		clipped := shiftX(poly, shift).Intersection(f.boundary())
		for _, r := range clipped {
			if len(oa) > 0 {
				oa = append(oa, math.NaN())
				ob = append(ob, math.NaN())
			}
			for _, pt := range r {
				va, vb := f.fromPlane(pt.X, pt.Y)
				oa = append(oa, va)
				ob = append(ob, vb)
			}
		}
	}
	return oa, ob, rec
}

func meanX(ring []geom.Point) float64 {
	var sum float64
	for _, pt := range ring {
		sum += pt.X
	}
	return sum / float64(len(ring))
}

// shiftX returns a copy of p moved by dx.
func shiftX(p geom.Polygon, dx float64) geom.Polygon {
	if dx == 0 {
		return p
	}
	out := make(geom.Polygon, len(p))
	for i, r := range p {
		nr := make([]geom.Point, len(r))
		for j, pt := range r {
			nr[j] = geom.Point{X: pt.X + dx, Y: pt.Y}
		}
		out[i] = nr
	}
	return out
}

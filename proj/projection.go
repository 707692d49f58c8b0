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
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/spatialmodel/mapproj/auxlat"
	"github.com/spatialmodel/mapproj/geodesy"
	"github.com/spatialmodel/mapproj/internal/singular"
	"gonum.org/v1/gonum/floats"
)

// ObjectType tells trimming how a coordinate sequence is connected.
type ObjectType int

// The object types. NaN values separate parts of lines and polygons.
const (
	Point ObjectType = iota
	Line
	Polygon
)

// ParseObjectType parses "point", "line" or "polygon".
func ParseObjectType(s string) (ObjectType, error) {
	switch strings.ToLower(s) {
	case "point", "points":
		return Point, nil
	case "line", "lines", "polyline":
		return Line, nil
	case "polygon", "patch", "surface":
		return Polygon, nil
	}
	return Point, fmt.Errorf("proj: invalid object type %q", s)
}

// Direction selects forward (geographic to map) or inverse projection.
type Direction int

// The directions.
const (
	DirForward Direction = iota
	DirInverse
)

// Coords holds parallel coordinate arrays: latitude, longitude and
// height for geographic coordinates, or x, y and z for map coordinates.
// C is only used by globe projections and may be nil.
type Coords struct {
	A, B, C []float64
}

// Projection is a defaulted parameter record bound to its kernel.
// It is immutable and safe for concurrent use.
type Projection struct {
	params Params
	kernel Kernel
	pipe   pipeline

	fwd, inv Transformer
	fwd3     func(a, b, c float64) (x, y, z float64)
	inv3     func(x, y, z float64) (a, b, c float64)

	e     float64
	aux   auxlat.Type
	rot   rotation
	frame frame

	// Azimuthal center in auxiliary latitude, longitude and orientation.
	azLat0, azLon0, azOrient float64
}

type kernel3 interface {
	Transformers3(p Params) (forward, inverse func(a, b, c float64) (float64, float64, float64), err error)
}

// New defaults p and builds the projection it describes.
func New(p Params) (*Projection, error) {
	k, err := Resolve(p.ID)
	if err != nil {
		return nil, err
	}
	p, err = k.Defaults(p)
	if err != nil {
		return nil, err
	}
	fwd, inv, err := k.Transformers(p)
	if err != nil {
		return nil, err
	}
	pr := &Projection{
		params: p,
		kernel: k,
		pipe:   k.Class().pipeline(),
		fwd:    fwd,
		inv:    inv,
		e:      p.Ellipsoid.E,
		aux:    k.AuxLat(),
	}
	lat0, lon0, orient := p.origin()
	switch pr.pipe {
	case generic:
		pr.rot = newRotation(lat0, lon0, orient)
		pr.frame = pr.quadFrame()
	case standard:
		pr.rot = newRotation(0, lon0, 0)
		pr.frame = pr.quadFrame()
	case azimuthal:
		pr.azLat0 = auxlat.ConvertNoCheck(pr.e, lat0, auxlat.Geodetic, pr.aux)
		pr.azLon0 = lon0
		pr.azOrient = orient
		pr.frame = circleFrame{rmax: p.radians(p.FlatLimit[1])}
	case globe:
		k3, ok := k.(kernel3)
		if !ok {
			return nil, fmt.Errorf("proj: %s has no three-dimensional transform", p.ID)
		}
		if pr.fwd3, pr.inv3, err = k3.Transformers3(p); err != nil {
			return nil, err
		}
	}
	return pr, nil
}

func (pr *Projection) quadFrame() frame {
	p := pr.params
	return quadFrame{
		latMin: p.radians(p.TrimLat[0]), latMax: p.radians(p.TrimLat[1]),
		lonMin: p.radians(p.TrimLon[0]), lonMax: p.radians(p.TrimLon[1]),
	}
}

// Params returns the defaulted parameter record.
func (pr *Projection) Params() Params { return pr.params.clone() }

// Kernel returns the projection kernel.
func (pr *Projection) Kernel() Kernel { return pr.kernel }

// Ellipsoid returns the ellipsoid the projection is defined on.
func (pr *Projection) Ellipsoid() geodesy.Ellipsoid { return pr.params.Ellipsoid }

func shapeErr(n1, n2 int) error {
	return errors.Wrapf(ErrShape, "%d and %d elements", n1, n2)
}

// Forward projects geographic coordinates to map coordinates, trimming
// them to the map frame according to obj. The returned record describes
// the trimming and can be passed to Inverse to undo it.
func (pr *Projection) Forward(lat, lon []float64, obj ObjectType) (x, y []float64, rec *TrimRecord, err error) {
	if len(lat) != len(lon) {
		return nil, nil, nil, shapeErr(len(lat), len(lon))
	}
	if pr.pipe == globe {
		x, y, _, err = pr.Forward3(lat, lon, nil)
		return x, y, &TrimRecord{}, err
	}
	a := make([]float64, len(lat))
	b := make([]float64, len(lat))
	for i := range lat {
		if math.IsNaN(lat[i]) || math.IsNaN(lon[i]) {
			a[i], b[i] = math.NaN(), math.NaN()
			continue
		}
		phi := pr.checkLatitude(lat[i])
		if math.IsNaN(phi) {
			a[i], b[i] = math.NaN(), math.NaN()
			continue
		}
		a[i], b[i] = pr.native(phi, pr.params.radians(lon[i]))
	}
	a, b, rec = trim(pr.frame, a, b, obj)
	x, y = evaluate(pr.fwd, a, b)
	pr.scaleShift(x, y)
	return x, y, rec, nil
}

// Inverse projects map coordinates to geographic coordinates. If rec is
// not nil, the trimming it describes is undone.
func (pr *Projection) Inverse(x, y []float64, rec *TrimRecord) (lat, lon []float64, err error) {
	if len(x) != len(y) {
		return nil, nil, shapeErr(len(x), len(y))
	}
	if pr.pipe == globe {
		lat, lon, _, err = pr.Inverse3(x, y, nil)
		return lat, lon, err
	}
	a := append([]float64(nil), x...)
	b := append([]float64(nil), y...)
	pr.unscaleShift(a, b)
	a, b = evaluate(pr.inv, a, b)
	if rec != nil {
		a, b = rec.undo(a, b)
	}
	lat = make([]float64, len(a))
	lon = make([]float64, len(a))
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			lat[i], lon[i] = math.NaN(), math.NaN()
			continue
		}
		phi, lam := pr.geographic(a[i], b[i])
		lat[i] = pr.params.AngleUnits.fromRadians(phi)
		lon[i] = pr.params.AngleUnits.fromRadians(lam)
	}
	return lat, lon, nil
}

// ForwardPoint projects a single point without trimming it.
func (pr *Projection) ForwardPoint(lat, lon float64) (x, y float64) {
	phi := pr.checkLatitude(lat)
	if math.IsNaN(phi) || math.IsNaN(lon) {
		return math.NaN(), math.NaN()
	}
	if pr.pipe == globe {
		x, y, _ = pr.fwd3(phi, pr.params.radians(lon), 0)
		return
	}
	a, b := pr.native(phi, pr.params.radians(lon))
	x, y = pr.fwd(a, b)
	p := pr.params
	return p.ScaleFactor*x + p.FalseEasting, p.ScaleFactor*y + p.FalseNorthing
}

// InversePoint unprojects a single point.
func (pr *Projection) InversePoint(x, y float64) (lat, lon float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.NaN(), math.NaN()
	}
	p := pr.params
	if pr.pipe == globe {
		lat, lon, _ = pr.inv3(x, y, 0)
		return p.AngleUnits.fromRadians(lat), p.AngleUnits.fromRadians(lon)
	}
	a, b := pr.inv((x-p.FalseEasting)/p.ScaleFactor, (y-p.FalseNorthing)/p.ScaleFactor)
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.NaN(), math.NaN()
	}
	lat, lon = pr.geographic(a, b)
	return p.AngleUnits.fromRadians(lat), p.AngleUnits.fromRadians(lon)
}

// Forward3 converts geographic coordinates and heights for projections
// with a third dimension. h may be nil, meaning zero height.
func (pr *Projection) Forward3(lat, lon, h []float64) (x, y, z []float64, err error) {
	if pr.pipe != globe {
		return nil, nil, nil, fmt.Errorf("proj: %s is two-dimensional", pr.params.ID)
	}
	if len(lat) != len(lon) || (h != nil && len(h) != len(lat)) {
		return nil, nil, nil, shapeErr(len(lat), len(lon))
	}
	x, y, z = make([]float64, len(lat)), make([]float64, len(lat)), make([]float64, len(lat))
	for i := range lat {
		hh := 0.
		if h != nil {
			hh = h[i]
		}
		if math.IsNaN(lat[i]) || math.IsNaN(lon[i]) || math.IsNaN(hh) {
			x[i], y[i], z[i] = math.NaN(), math.NaN(), math.NaN()
			continue
		}
		phi := pr.checkLatitude(lat[i])
		if math.IsNaN(phi) {
			x[i], y[i], z[i] = math.NaN(), math.NaN(), math.NaN()
			continue
		}
		x[i], y[i], z[i] = pr.fwd3(phi, pr.params.radians(lon[i]), hh)
	}
	return x, y, z, nil
}

// Inverse3 is the inverse of Forward3. z may be nil, meaning zero.
func (pr *Projection) Inverse3(x, y, z []float64) (lat, lon, h []float64, err error) {
	if pr.pipe != globe {
		return nil, nil, nil, fmt.Errorf("proj: %s is two-dimensional", pr.params.ID)
	}
	if len(x) != len(y) || (z != nil && len(z) != len(x)) {
		return nil, nil, nil, shapeErr(len(x), len(y))
	}
	lat, lon, h = make([]float64, len(x)), make([]float64, len(x)), make([]float64, len(x))
	u := pr.params.AngleUnits
	for i := range x {
		zz := 0.
		if z != nil {
			zz = z[i]
		}
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) || math.IsNaN(zz) {
			lat[i], lon[i], h[i] = math.NaN(), math.NaN(), math.NaN()
			continue
		}
		phi, lam, hh := pr.inv3(x[i], y[i], zz)
		lat[i], lon[i], h[i] = u.fromRadians(phi), u.fromRadians(lam), hh
	}
	return lat, lon, h, nil
}

// Transform runs the projection in direction dir. rec is only used by
// inverse transforms; forward transforms return a new record.
func (pr *Projection) Transform(c Coords, obj ObjectType, dir Direction, rec *TrimRecord) (Coords, *TrimRecord, error) {
	var out Coords
	var err error
	switch {
	case pr.pipe == globe && dir == DirForward:
		out.A, out.B, out.C, err = pr.Forward3(c.A, c.B, c.C)
		return out, &TrimRecord{}, err
	case pr.pipe == globe:
		out.A, out.B, out.C, err = pr.Inverse3(c.A, c.B, c.C)
		return out, nil, err
	case dir == DirForward:
		out.A, out.B, rec, err = pr.Forward(c.A, c.B, obj)
		return out, rec, err
	}
	out.A, out.B, err = pr.Inverse(c.A, c.B, rec)
	return out, nil, err
}

// checkLatitude converts lat to radians. Latitudes beyond the poles
// become NaN so that only the offending point is dropped.
func (pr *Projection) checkLatitude(lat float64) float64 {
	phi := pr.params.radians(lat)
	if math.Abs(phi) > halfPi {
		if math.Abs(phi) > halfPi+1e-9 {
			Log.WithField("latitude", lat).Warn("proj: latitude out of range")
			return math.NaN()
		}
		phi = math.Copysign(halfPi, phi)
	}
	return phi
}

// native moves a geodetic point (radians) into the kernel's native frame.
func (pr *Projection) native(phi, lam float64) (a, b float64) {
	switch pr.pipe {
	case azimuthal:
		alat := auxlat.ConvertNoCheck(pr.e, phi, auxlat.Geodetic, pr.aux)
		rng := geodesy.Distance(pr.azLat0, pr.azLon0, alat, lam)
		az := geodesy.Azimuth(pr.azLat0, pr.azLon0, alat, lam) - pr.azOrient
		return rng, az
	case standard:
		return phi, singular.Longitude(geodesy.WrapLongitude(lam-pr.rot.lon0), 1)
	}
	alat := auxlat.ConvertNoCheck(pr.e, phi, auxlat.Geodetic, pr.aux)
	a, b = pr.rot.forward(alat, lam)
	return a, singular.Longitude(b, 1)
}

// geographic is the inverse of native.
func (pr *Projection) geographic(a, b float64) (phi, lam float64) {
	const snap = 10 * singular.Eps
	switch pr.pipe {
	case azimuthal:
		alat, lam := geodesy.Reckon(pr.azLat0, pr.azLon0, a, b+pr.azOrient)
		alat = singular.Snap(alat, halfPi, snap)
		return auxlat.ConvertNoCheck(pr.e, alat, pr.aux, auxlat.Geodetic), lam
	case standard:
		a = singular.Snap(a, halfPi, snap)
		b = singular.Snap(b, math.Pi, snap)
		return a, geodesy.WrapLongitude(b + pr.rot.lon0)
	}
	a = singular.Snap(a, halfPi, snap)
	b = singular.Snap(b, math.Pi, snap)
	alat, lam := pr.rot.inverse(a, b)
	return auxlat.ConvertNoCheck(pr.e, alat, pr.aux, auxlat.Geodetic), lam
}

func (pr *Projection) scaleShift(x, y []float64) {
	p := pr.params
	if p.ScaleFactor != 1 {
		floats.Scale(p.ScaleFactor, x)
		floats.Scale(p.ScaleFactor, y)
	}
	floats.AddConst(p.FalseEasting, x)
	floats.AddConst(p.FalseNorthing, y)
}

func (pr *Projection) unscaleShift(x, y []float64) {
	p := pr.params
	floats.AddConst(-p.FalseEasting, x)
	floats.AddConst(-p.FalseNorthing, y)
	if p.ScaleFactor != 1 {
		floats.Scale(1/p.ScaleFactor, x)
		floats.Scale(1/p.ScaleFactor, y)
	}
}

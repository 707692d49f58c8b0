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
	"sort"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/mapproj/auxlat"
	"github.com/spatialmodel/mapproj/geodesy"
)

// A Transformer maps one coordinate pair to another. Kernel transformers
// work in radians in the projection's native frame; azimuthal kernels take
// (range, azimuth) instead of (latitude, longitude).
type Transformer func(a, b float64) (c, d float64)

// Class is the family a projection belongs to. It selects how the
// projection is applied.
type Class int

// The projection classes.
const (
	ClassCylindrical Class = iota
	ClassPseudocylindrical
	ClassConic
	ClassModifiedAzimuthal
	ClassAzimuthal
	// ClassStandard kernels handle the origin latitude themselves
	// instead of through a rotation of the globe.
	ClassStandard
	ClassGlobe
)

var classNames = []string{"cylindrical", "pseudocylindrical", "conic",
	"modified azimuthal", "azimuthal", "standard", "globe"}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "unknown"
}

type pipeline int

const (
	generic pipeline = iota
	azimuthal
	standard
	globe
)

func (c Class) pipeline() pipeline {
	switch c {
	case ClassAzimuthal:
		return azimuthal
	case ClassStandard:
		return standard
	case ClassGlobe:
		return globe
	}
	return generic
}

// Kernel is a single map projection.
type Kernel interface {
	// Title is a human readable name.
	Title() string
	Class() Class
	// AuxLat is the latitude the kernel expects its input in.
	AuxLat() auxlat.Type
	// Defaults fills the unset fields of p and checks it for consistency.
	Defaults(p Params) (Params, error)
	// Transformers returns the forward and inverse kernel functions for a
	// defaulted parameter record.
	Transformers(p Params) (forward, inverse Transformer, err error)
}

var kernels map[string]Kernel

func register(k Kernel, ids ...string) {
	if kernels == nil {
		kernels = make(map[string]Kernel)
	}
	for _, id := range ids {
		kernels[id] = k
	}
}

// Resolve returns the kernel registered as id. Identifiers are
// case-sensitive.
func Resolve(id string) (Kernel, error) {
	k, ok := kernels[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownProjection, "%q", id)
	}
	return k, nil
}

// Names returns the registered projection identifiers in order.
func Names() []string {
	names := make([]string, 0, len(kernels))
	for n := range kernels {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// info holds the metadata and default parameters shared by kernels, and
// implements everything in Kernel except Transformers.
type info struct {
	title string
	class Class
	aux   auxlat.Type

	maxParallels int
	// Defaults in degrees.
	parallels        []float64
	origin           [3]float64
	trimLat, trimLon [2]float64
	flatLimit        float64

	// If orientFixed is set, fixedOrient is the only allowed orientation (degrees).
	orientFixed bool
	fixedOrient float64

	ellipsoid *geodesy.Ellipsoid
	scale     float64

	sphereOnly       bool
	ignoreFlattening bool
	// ellipsoidalOblique allows rotated aspects on an ellipsoid even though
	// the kernel works in geodetic latitude.
	ellipsoidalOblique bool
	// obliqueSphereOnly forbids rotated aspects on an ellipsoid.
	obliqueSphereOnly bool
}

func (in *info) Title() string       { return in.title }
func (in *info) Class() Class        { return in.class }
func (in *info) AuxLat() auxlat.Type { return in.aux }

func (in *info) Defaults(p Params) (Params, error) {
	p = p.clone()
	u := p.AngleUnits
	var errs *multierror.Error
	bad := func(field, format string, args ...interface{}) {
		errs = multierror.Append(errs, configErr(p.ID, field, format, args...))
	}

	if !p.ellipsoidSet() {
		if in.ellipsoid != nil {
			p.Ellipsoid = *in.ellipsoid
		} else {
			p.Ellipsoid = geodesy.UnitSphere
		}
	} else if err := p.Ellipsoid.Validate(); err != nil {
		bad("ellipsoid", "%v", err)
	}
	if !p.Ellipsoid.IsSphere() {
		switch {
		case in.ignoreFlattening:
			Log.WithFields(logrus.Fields{"projection": p.ID}).Warn("proj: ellipsoid flattening is ignored")
		case in.sphereOnly:
			bad("ellipsoid", "projection is defined on a sphere only")
		}
	}

	if p.MapParallels == nil {
		for _, v := range in.parallels {
			p.MapParallels = append(p.MapParallels, u.fromDegrees(v))
		}
	}
	if len(p.MapParallels) > in.maxParallels {
		bad("mapparallels", "at most %d standard parallels allowed; got %d", in.maxParallels, len(p.MapParallels))
	}
	p.NParallels = len(p.MapParallels)
	for _, v := range p.MapParallels {
		if math.Abs(p.radians(v)) > halfPi {
			bad("mapparallels", "parallel %g out of range", v)
		}
	}

	for i, v := range p.Origin {
		if !isSet(v) {
			p.Origin[i] = u.fromDegrees(in.origin[i])
		}
	}
	if in.orientFixed || in.class.pipeline() == standard {
		fixed := u.fromDegrees(in.fixedOrient)
		if p.Origin[2] != fixed {
			Log.WithFields(logrus.Fields{"projection": p.ID, "orientation": p.Origin[2]}).
				Warn("proj: orientation is fixed for this projection")
			p.Origin[2] = fixed
		}
		p.FixedOrient = fixed
	} else {
		p.FixedOrient = math.NaN()
	}
	if math.Abs(p.radians(p.Origin[0])) > halfPi {
		bad("origin", "origin latitude %g out of range", p.Origin[0])
	}

	if !isSet(p.ScaleFactor) {
		p.ScaleFactor = 1
		if in.scale > 0 {
			p.ScaleFactor = in.scale
		}
	}
	if !(p.ScaleFactor > 0) {
		bad("scalefactor", "must be positive; got %g", p.ScaleFactor)
	}
	if !isSet(p.FalseEasting) {
		p.FalseEasting = 0
	}
	if !isSet(p.FalseNorthing) {
		p.FalseNorthing = 0
	}

	if in.class.pipeline() == azimuthal {
		if !isSet(p.FlatLimit[0]) {
			p.FlatLimit[0] = math.Inf(-1)
		}
		if !isSet(p.FlatLimit[1]) {
			p.FlatLimit[1] = u.fromDegrees(in.flatLimit)
		}
		if !(p.radians(p.FlatLimit[1]) > 0 && p.radians(p.FlatLimit[1]) <= math.Pi) {
			bad("flatlimit", "maximum range must be in (0, 180°]; got %g", p.FlatLimit[1])
		}
	} else {
		for i := range p.TrimLat {
			if !isSet(p.TrimLat[i]) {
				p.TrimLat[i] = u.fromDegrees(in.trimLat[i])
			}
			if !isSet(p.TrimLon[i]) {
				p.TrimLon[i] = u.fromDegrees(in.trimLon[i])
			}
		}
		if !(p.TrimLat[0] < p.TrimLat[1]) || !(p.TrimLon[0] < p.TrimLon[1]) {
			bad("trimlat/trimlon", "limits must be increasing; got %v, %v", p.TrimLat, p.TrimLon)
		}
	}

	p.Aspect = in.aspect(p)
	if in.class.pipeline() == generic && p.Aspect != Normal && !p.Ellipsoid.IsSphere() &&
		!in.ignoreFlattening && (in.obliqueSphereOnly || in.aux == auxlat.Geodetic && !in.ellipsoidalOblique) {
		bad("origin", "%s aspect requires a sphere", p.Aspect)
	}
	return p, errs.ErrorOrNil()
}

// aspect classifies the rotation given by the origin.
func (in *info) aspect(p Params) Aspect {
	const tol = 1e-9
	lat0, _, orient := p.origin()
	switch in.class.pipeline() {
	case standard, globe:
		return Normal
	case azimuthal:
		switch {
		case math.Abs(math.Abs(lat0)-halfPi) < tol:
			return Normal
		case math.Abs(lat0) < tol:
			return Transverse
		}
		return Oblique
	}
	switch {
	case math.Abs(lat0) < tol && math.Abs(orient) < tol:
		return Normal
	case math.Abs(math.Abs(lat0)-halfPi) < tol:
		return Transverse
	}
	return Oblique
}

func (p Params) clone() Params {
	if p.MapParallels != nil {
		p.MapParallels = append([]float64(nil), p.MapParallels...)
	}
	return p
}

// alias is a kernel with some parameters fixed.
type alias struct {
	Kernel
	title     string
	parallels []float64 // degrees
}

func registerAlias(target string, title string, parallels []float64, ids ...string) {
	k, err := Resolve(target)
	if err != nil {
		panic(err)
	}
	register(&alias{Kernel: k, title: title, parallels: parallels}, ids...)
}

func (a *alias) Title() string { return a.title }

func (a *alias) Defaults(p Params) (Params, error) {
	fixed := make([]float64, len(a.parallels))
	for i, v := range a.parallels {
		fixed[i] = p.AngleUnits.fromDegrees(v)
	}
	if p.MapParallels != nil && !equalFloats(p.MapParallels, fixed) {
		Log.WithFields(logrus.Fields{"projection": p.ID, "mapparallels": p.MapParallels}).
			Warn("proj: standard parallels are fixed for this projection")
	}
	p.MapParallels = fixed
	return a.Kernel.Defaults(p)
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Defaults resolves p.ID and fills the unset fields of p with the
// projection's defaults. p itself is not modified.
func Defaults(p Params) (Params, error) {
	k, err := Resolve(p.ID)
	if err != nil {
		return p, err
	}
	return k.Defaults(p)
}

// kern is a Kernel made of its metadata and a constructor for its
// transformers.
type kern struct {
	info
	build func(p Params) (forward, inverse Transformer, err error)
}

func (k *kern) Transformers(p Params) (forward, inverse Transformer, err error) {
	return k.build(p)
}

// firstParallel returns the first standard parallel in radians, or 0.
func firstParallel(p Params) float64 {
	if len(p.MapParallels) == 0 {
		return 0
	}
	return p.radians(p.MapParallels[0])
}

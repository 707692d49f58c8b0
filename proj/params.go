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
	"reflect"
	"strings"

	"github.com/spatialmodel/mapproj/geodesy"
)

// AngleUnit is the unit of the angles in a parameter record and of the
// geographic coordinates passed to a Projection.
type AngleUnit int

// The angle units.
const (
	Degrees AngleUnit = iota
	Radians
)

// ParseAngleUnit parses "degrees" or "radians" (or their abbreviations).
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(s) {
	case "degrees", "degree", "deg":
		return Degrees, nil
	case "radians", "radian", "rad":
		return Radians, nil
	}
	return Degrees, fmt.Errorf("proj: invalid angle unit %q", s)
}

func (u AngleUnit) String() string {
	if u == Radians {
		return "radians"
	}
	return "degrees"
}

// MarshalText implements encoding.TextMarshaler.
func (u AngleUnit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *AngleUnit) UnmarshalText(b []byte) error {
	v, err := ParseAngleUnit(string(b))
	*u = v
	return err
}

func (u AngleUnit) toRadians(v float64) float64 {
	if u == Radians {
		return v
	}
	return v * deg2rad
}

func (u AngleUnit) fromRadians(v float64) float64 {
	if u == Radians {
		return v
	}
	return v * rad2deg
}

// fromDegrees converts a value in degrees to u.
func (u AngleUnit) fromDegrees(v float64) float64 {
	if u == Radians {
		return v * deg2rad
	}
	return v
}

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
	halfPi  = math.Pi / 2
	twoPi   = 2 * math.Pi
)

// Aspect describes how the projection's native frame is rotated relative
// to the globe.
type Aspect int

// The aspects.
const (
	Normal Aspect = iota
	Transverse
	Oblique
)

func (a Aspect) String() string {
	switch a {
	case Transverse:
		return "transverse"
	case Oblique:
		return "oblique"
	}
	return "normal"
}

// MarshalText implements encoding.TextMarshaler.
func (a Aspect) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Aspect) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "normal", "":
		*a = Normal
	case "transverse":
		*a = Transverse
	case "oblique":
		*a = Oblique
	default:
		return fmt.Errorf("proj: invalid aspect %q", b)
	}
	return nil
}

// Params is a projection parameter record. Angles are in AngleUnits.
// Float fields set to NaN are unset and are filled in by Defaults.
type Params struct {
	// ID selects the projection kernel.
	ID string

	Ellipsoid  geodesy.Ellipsoid
	AngleUnits AngleUnit

	// MapParallels are the standard parallels; NParallels is the
	// number the kernel uses.
	MapParallels []float64
	NParallels   int

	// Origin is the latitude and longitude of the frame origin followed by
	// the orientation angle.
	Origin [3]float64

	// FixedOrient is the orientation imposed by the kernel, or NaN.
	FixedOrient float64

	ScaleFactor   float64
	FalseEasting  float64
	FalseNorthing float64

	// Zone is the UTM or UPS zone designator.
	Zone string

	// Altitude is the viewpoint height of perspective projections, in
	// the length units of the ellipsoid.
	Altitude float64

	// TrimLat and TrimLon bound the native frame of non-azimuthal
	// projections. FlatLimit holds [-Inf, maximum range] for azimuthal ones.
	TrimLat   [2]float64
	TrimLon   [2]float64
	FlatLimit [2]float64

	Aspect Aspect
}

// NewParams returns a parameter record for projection id with every
// numeric field unset.
func NewParams(id string) Params {
	p := Params{ID: id}
	v := reflect.ValueOf(&p).Elem()
	for i := 0; i < v.NumField(); i++ {
		setNaN(v.Field(i))
	}
	return p
}

func setNaN(f reflect.Value) {
	switch f.Kind() {
	case reflect.Float64:
		f.SetFloat(math.NaN())
	case reflect.Array:
		for j := 0; j < f.Len(); j++ {
			setNaN(f.Index(j))
		}
	case reflect.Struct:
		for j := 0; j < f.NumField(); j++ {
			if f.Field(j).CanSet() {
				setNaN(f.Field(j))
			}
		}
	}
}

func (p Params) radians(v float64) float64 { return p.AngleUnits.toRadians(v) }

// parallels returns the standard parallels in radians.
func (p Params) parallels() []float64 {
	out := make([]float64, len(p.MapParallels))
	for i, v := range p.MapParallels {
		out[i] = p.radians(v)
	}
	return out
}

// origin returns the origin latitude, longitude and orientation in radians.
func (p Params) origin() (lat0, lon0, orient float64) {
	return p.radians(p.Origin[0]), p.radians(p.Origin[1]), p.radians(p.Origin[2])
}

// ellipsoidSet reports whether an ellipsoid has been given.
func (p Params) ellipsoidSet() bool {
	return p.Ellipsoid.A > 0 && !math.IsNaN(p.Ellipsoid.E)
}

func isSet(v float64) bool { return !math.IsNaN(v) }

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

// Package auxlat converts between geodetic latitude and the auxiliary
// latitudes used to project an ellipsoid through a sphere: authalic
// (equal-area), conformal, rectifying (equidistant along meridians) and
// parametric (reduced). All angles are in radians.
package auxlat

import (
	"fmt"
	"math"
	"strings"
)

// Type identifies a kind of latitude.
type Type int

// The supported latitude kinds.
const (
	Geodetic Type = iota
	Authalic
	Conformal
	Rectifying
	Parametric
)

var typeNames = map[Type]string{
	Geodetic:   "geodetic",
	Authalic:   "authalic",
	Conformal:  "conformal",
	Rectifying: "rectifying",
	Parametric: "parametric",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType returns the latitude kind with the given name. "geographic" is
// accepted as a synonym for geodetic and "reduced" for parametric.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "geodetic", "geographic":
		return Geodetic, nil
	case "authalic":
		return Authalic, nil
	case "conformal":
		return Conformal, nil
	case "rectifying":
		return Rectifying, nil
	case "parametric", "reduced":
		return Parametric, nil
	}
	return Geodetic, fmt.Errorf("auxlat: unknown latitude type %q", s)
}

// ErrLatitudeRange is returned when an input latitude lies outside [-π/2, π/2].
var ErrLatitudeRange = fmt.Errorf("auxlat: latitude outside [-π/2, π/2]")

// Convert converts latitude lat, of kind from, on an ellipsoid with
// eccentricity e to a latitude of kind to.
func Convert(e, lat float64, from, to Type) (float64, error) {
	if math.Abs(lat) > math.Pi/2 {
		return math.NaN(), ErrLatitudeRange
	}
	if _, ok := typeNames[from]; !ok {
		return math.NaN(), fmt.Errorf("auxlat: invalid source type %v", from)
	}
	if _, ok := typeNames[to]; !ok {
		return math.NaN(), fmt.Errorf("auxlat: invalid target type %v", to)
	}
	return ConvertNoCheck(e, lat, from, to), nil
}

// ConvertNoCheck is Convert without validation of its inputs, for use
// in inner loops where the latitude range has already been checked.
func ConvertNoCheck(e, lat float64, from, to Type) float64 {
	if from == to || e == 0 || math.IsNaN(lat) {
		return lat
	}
	if from != Geodetic {
		lat = toGeodetic(e, lat, from)
	}
	return fromGeodetic(e, lat, to)
}

// ConvertSlice converts each latitude in lats in place.
// NaN values are left as they are.
func ConvertSlice(e float64, lats []float64, from, to Type) error {
	for i, lat := range lats {
		if math.IsNaN(lat) {
			continue
		}
		v, err := Convert(e, lat, from, to)
		if err != nil {
			return fmt.Errorf("auxlat: element %d: %v", i, err)
		}
		lats[i] = v
	}
	return nil
}

func fromGeodetic(e, phi float64, to Type) float64 {
	switch to {
	case Authalic:
		return authalic(e, phi)
	case Conformal:
		return conformal(e, phi)
	case Rectifying:
		return rectifying(e, phi)
	case Parametric:
		return math.Atan2(math.Sqrt(1-e*e)*math.Sin(phi), math.Cos(phi))
	}
	return phi
}

func toGeodetic(e, lat float64, from Type) float64 {
	switch from {
	case Authalic:
		return authalicInverse(e, lat)
	case Conformal:
		return conformalInverse(e, lat)
	case Rectifying:
		return rectifyingInverse(e, lat)
	case Parametric:
		return math.Atan2(math.Sin(lat), math.Sqrt(1-e*e)*math.Cos(lat))
	}
	return lat
}

// Q is the authalic q function of sin(φ).
func Q(e, sinphi float64) float64 {
	if e == 0 {
		return 2 * sinphi
	}
	es := e * e
	con := e * sinphi
	return (1 - es) * (sinphi/(1-con*con) - (0.5/e)*math.Log((1-con)/(1+con)))
}

// authalic is evaluated on |φ| so that the hemispheres are exact mirror
// images and the poles map to themselves.
func authalic(e, phi float64) float64 {
	if math.Abs(phi) >= math.Pi/2 {
		return phi
	}
	r := Q(e, math.Abs(math.Sin(phi))) / Q(e, 1)
	if r > 1 {
		r = 1
	}
	return math.Copysign(math.Asin(r), phi)
}

// authalicInverse uses the series in e² and then polishes the result
// with Newton steps on q.
func authalicInverse(e, beta float64) float64 {
	if math.Abs(beta) >= math.Pi/2 {
		return beta
	}
	if beta < 0 {
		return -authalicInverse(e, -beta)
	}
	es := e * e
	e4 := es * es
	e6 := e4 * es
	phi := beta +
		(es/3+31*e4/180+517*e6/5040)*math.Sin(2*beta) +
		(23*e4/360+251*e6/3780)*math.Sin(4*beta) +
		(761*e6/45360)*math.Sin(6*beta)

	q := Q(e, 1) * math.Sin(beta)
	for i := 0; i < 4; i++ {
		sinphi := math.Sin(phi)
		cosphi := math.Cos(phi)
		if cosphi < 1e-12 {
			break
		}
		con := e * sinphi
		com := 1 - con*con
		dphi := 0.5 * com * com / cosphi *
			(q/(1-es) - sinphi/com + 0.5/e*math.Log((1-con)/(1+con)))
		phi += dphi
		if math.Abs(dphi) < 1e-15 {
			break
		}
	}
	return phi
}

// IsometricLatitude returns ψ = asinh(tan φ) − e·atanh(e·sin φ).
func IsometricLatitude(e, phi float64) float64 {
	return math.Asinh(math.Tan(phi)) - e*math.Atanh(e*math.Sin(phi))
}

func conformal(e, phi float64) float64 {
	if math.Abs(phi) == math.Pi/2 {
		return phi
	}
	return math.Atan(math.Sinh(IsometricLatitude(e, phi)))
}

func conformalInverse(e, chi float64) float64 {
	es := e * e
	e4 := es * es
	e6 := e4 * es
	e8 := e6 * es
	phi := chi +
		(es/2+5*e4/24+e6/12+13*e8/360)*math.Sin(2*chi) +
		(7*e4/48+29*e6/240+811*e8/11520)*math.Sin(4*chi) +
		(7*e6/120+81*e8/1120)*math.Sin(6*chi) +
		(4279*e8/161280)*math.Sin(8*chi)

	// One Newton step on the isometric latitude.
	cosphi := math.Cos(phi)
	if cosphi > 1e-9 {
		psi := math.Asinh(math.Tan(chi))
		sinphi := math.Sin(phi)
		phi -= (IsometricLatitude(e, phi) - psi) * (1 - es*sinphi*sinphi) * cosphi / (1 - es)
	}
	return phi
}

// ThirdFlattening returns n = (a−b)/(a+b) for eccentricity e.
func ThirdFlattening(e float64) float64 {
	r := math.Sqrt(1 - e*e)
	return (1 - r) / (1 + r)
}

func rectifying(e, phi float64) float64 {
	n := ThirdFlattening(e)
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	return phi -
		(3*n/2-9*n3/16)*math.Sin(2*phi) +
		(15*n2/16-15*n4/32)*math.Sin(4*phi) -
		(35*n3/48)*math.Sin(6*phi) +
		(315*n4/512)*math.Sin(8*phi)
}

func rectifyingInverse(e, mu float64) float64 {
	n := ThirdFlattening(e)
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	return mu +
		(3*n/2-27*n3/32)*math.Sin(2*mu) +
		(21*n2/16-55*n4/32)*math.Sin(4*mu) +
		(151*n3/96)*math.Sin(6*mu) +
		(1097*n4/512)*math.Sin(8*mu)
}

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

	"github.com/spatialmodel/mapproj/auxlat"
	"github.com/spatialmodel/mapproj/geodesy"
	"github.com/spatialmodel/mapproj/internal/singular"
)

func standardInfo(title string, trimLat, trimLon [2]float64) info {
	return info{
		title:   title,
		class:   ClassStandard,
		aux:     auxlat.Geodetic,
		trimLat: trimLat,
		trimLon: trimLon,
	}
}

// kruger holds the coefficients of the Krüger series for the transverse
// Mercator projection, to sixth order in the third flattening.
type kruger struct {
	alpha, beta [6]float64
}

func newKruger(n float64) kruger {
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n
	n6 := n5 * n
	return kruger{
		alpha: [6]float64{
			n/2 - 2*n2/3 + 5*n3/16 + 41*n4/180 - 127*n5/288 + 7891*n6/37800,
			13*n2/48 - 3*n3/5 + 557*n4/1440 + 281*n5/630 - 1983433*n6/1935360,
			61*n3/240 - 103*n4/140 + 15061*n5/26880 + 167603*n6/181440,
			49561*n4/161280 - 179*n5/168 + 6601661*n6/7257600,
			34729*n5/80640 - 3418889*n6/1995840,
			212378941 * n6 / 319334400,
		},
		beta: [6]float64{
			n/2 - 2*n2/3 + 37*n3/96 - n4/360 - 81*n5/512 + 96199*n6/604800,
			n2/48 + n3/15 - 437*n4/1440 + 46*n5/105 - 1118711*n6/3870720,
			17*n3/480 - 37*n4/840 - 209*n5/4480 + 5569*n6/90720,
			4397*n4/161280 - 11*n5/504 - 830251*n6/7257600,
			4583*n5/161280 - 108847*n6/3991680,
			20648693 * n6 / 638668800,
		},
	}
}

// transverseMercator uses the Krüger series, which reduce to the exact
// spherical formulas when the eccentricity is zero.
func transverseMercator(p Params) (forward, inverse Transformer, err error) {
	ell := p.Ellipsoid
	e := ell.E
	A := ell.RectifyingRadius()
	k := newKruger(ell.N())
	lat0, _, _ := p.origin()
	m0 := geodesy.MeridianArc(ell, lat0)

	forward = func(phi, lam float64) (x, y float64) {
		phi = singular.Latitude(phi, 1)
		if math.Abs(math.Abs(lam)-halfPi) < singular.Eps {
			lam = math.Copysign(halfPi-singular.Eps, lam)
		}
		t := math.Tan(auxlat.ConvertNoCheck(e, phi, auxlat.Geodetic, auxlat.Conformal))
		sinlam, coslam := math.Sincos(lam)
		xi := math.Atan2(t, coslam)
		eta := math.Atanh(sinlam / math.Sqrt(1+t*t))
		xs, es := xi, eta
		for j, a := range k.alpha {
			jj := 2 * float64(j+1)
			xs += a * math.Sin(jj*xi) * math.Cosh(jj*eta)
			es += a * math.Cos(jj*xi) * math.Sinh(jj*eta)
		}
		return A * es, A*xs - m0
	}
	inverse = func(x, y float64) (phi, lam float64) {
		xi := (y + m0) / A
		eta := x / A
		xs, es := xi, eta
		for j, b := range k.beta {
			jj := 2 * float64(j+1)
			xs -= b * math.Sin(jj*xi) * math.Cosh(jj*eta)
			es -= b * math.Cos(jj*xi) * math.Sinh(jj*eta)
		}
		chi := asinz(math.Sin(xs) / math.Cosh(es))
		lam = math.Atan2(math.Sinh(es), math.Cos(xs))
		return auxlat.ConvertNoCheck(e, chi, auxlat.Conformal, auxlat.Geodetic), lam
	}
	return
}

// upsRho is the polar stereographic radius factor that makes the scale
// true at the pole.
func upsRho(a, e float64) float64 {
	return 2 * a / math.Sqrt(math.Pow(1+e, 1+e)*math.Pow(1-e, 1-e))
}

// polarStereographic is the ellipsoidal polar stereographic projection
// centered on the pole of the origin latitude's hemisphere.
func polarStereographic(p Params) (forward, inverse Transformer, err error) {
	a, e := p.Ellipsoid.A, p.Ellipsoid.E
	lat0, _, _ := p.origin()
	s := sign(lat0)
	f := upsRho(a, e)
	forward = func(phi, lam float64) (x, y float64) {
		phi *= s
		rho := f * tsfnz(e, phi, math.Sin(phi))
		sinlam, coslam := math.Sincos(lam)
		return rho * sinlam, -s * rho * coslam
	}
	inverse = func(x, y float64) (phi, lam float64) {
		rho := math.Hypot(x, y)
		phi = s * phi2z(p.ID, e, rho/f)
		if rho == 0 {
			return phi, 0
		}
		return phi, math.Atan2(x, -s*y)
	}
	return
}

// cassiniStandard is the Cassini-Soldner projection, using Snyder's
// series on the ellipsoid and the exact formulas on the sphere.
func cassiniStandard(p Params) (forward, inverse Transformer, err error) {
	ell := p.Ellipsoid
	a, es := ell.A, ell.Es()
	lat0, _, _ := p.origin()
	m0 := geodesy.MeridianArc(ell, lat0)
	if es == 0 {
		forward = func(phi, lam float64) (x, y float64) {
			phi = singular.Latitude(phi, 1)
			sinphi, cosphi := math.Sincos(phi)
			return a * asinz(cosphi*math.Sin(lam)), a*math.Atan2(sinphi/cosphi, math.Cos(lam)) - m0
		}
		inverse = func(x, y float64) (phi, lam float64) {
			d := (y + m0) / a
			x /= a
			return asinz(math.Sin(d) * math.Cos(x)), math.Atan2(math.Tan(x), math.Cos(d))
		}
		return
	}
	ep2 := es / (1 - es)
	forward = func(phi, lam float64) (x, y float64) {
		phi = singular.Latitude(phi, 1)
		sinphi, cosphi := math.Sincos(phi)
		n := a / math.Sqrt(1-es*sinphi*sinphi)
		tq := sinphi / cosphi
		t := tq * tq
		A := lam * cosphi
		A2 := A * A
		c := ep2 * cosphi * cosphi
		x = n * A * (1 - A2*t*(1.0/6+(8-t+8*c)*A2/120))
		y = geodesy.MeridianArc(ell, phi) - m0 + n*tq*A2*(0.5+(5-t+6*c)*A2/24)
		return
	}
	inverse = func(x, y float64) (phi, lam float64) {
		phi1 := geodesy.InverseMeridianArc(ell, m0+y)
		if math.Abs(math.Abs(phi1)-halfPi) < singular.Eps {
			return phi1, 0
		}
		sinphi, cosphi := math.Sincos(phi1)
		tq := sinphi / cosphi
		t := tq * tq
		w := 1 - es*sinphi*sinphi
		n := a / math.Sqrt(w)
		r := a * (1 - es) / (w * math.Sqrt(w))
		d := x / n
		d2 := d * d
		phi = phi1 - n*tq/r*d2*(0.5-(1+3*t)*d2/24)
		lam = d * (1 - d2*t*(1.0/3-(1+3*t)*d2/15)) / cosphi
		return
	}
	return
}

// zoneKernel is a projection whose parameters are determined by a UTM
// or UPS zone designator.
type zoneKernel struct {
	kern
	polar       bool
	defaultZone string
}

func (k *zoneKernel) Defaults(p Params) (Params, error) {
	p = p.clone()
	if p.Zone == "" {
		p.Zone = k.defaultZone
	}
	z, err := k.zone(p.Zone)
	if err != nil {
		return p, configErr(p.ID, "zone", "%v", err)
	}
	p.Zone = z.String()
	u := p.AngleUnits
	lat, lon := z.limits()
	var lat0, lon0, fn float64
	if z.polar() {
		lat0 = 90
		if z.south() {
			lat0 = -90
		}
		fn = 2e6
	} else {
		lon0 = z.centralMeridian()
		if z.south() {
			fn = 1e7
		}
	}
	if !isSet(p.Origin[0]) {
		p.Origin[0] = u.fromDegrees(lat0)
	}
	if !isSet(p.Origin[1]) {
		p.Origin[1] = u.fromDegrees(lon0)
	}
	if !isSet(p.FalseNorthing) {
		p.FalseNorthing = fn
	}
	if !isSet(p.FalseEasting) {
		p.FalseEasting = 5e5
		if z.polar() {
			p.FalseEasting = 2e6
		}
	}
	for i := range lat {
		if !isSet(p.TrimLat[i]) {
			p.TrimLat[i] = u.fromDegrees(lat[i])
		}
		if !isSet(p.TrimLon[i]) {
			p.TrimLon[i] = u.fromDegrees(lon[i] - lon0)
		}
	}
	return k.kern.Defaults(p)
}

// zone parses a designator and checks that it suits the kernel.
// UPS kernels also accept "north" and "south".
func (k *zoneKernel) zone(s string) (zone, error) {
	if k.polar {
		switch s {
		case "north", "N":
			return zone{band: 'N'}, nil
		case "south", "S":
			return zone{band: 'S'}, nil
		}
	}
	z, err := parseZone(s)
	if err != nil {
		return z, err
	}
	if z.polar() != k.polar {
		return z, fmt.Errorf("zone %q is not a %s zone", s, k.Title())
	}
	return z, nil
}

func init() {
	tm := standardInfo("Transverse Mercator", [2]float64{-80, 80}, [2]float64{-20, 20})
	register(&kern{info: tm, build: transverseMercator}, "tranmerc")

	utm := standardInfo("Universal Transverse Mercator", worldLat, worldLon)
	utm.ellipsoid = &geodesy.WGS84
	utm.scale = 0.9996
	register(&zoneKernel{kern: kern{info: utm, build: transverseMercator}, defaultZone: "31N"}, "utm")

	ups := standardInfo("Universal Polar Stereographic", worldLat, worldLon)
	ups.ellipsoid = &geodesy.WGS84
	ups.scale = 0.994
	register(&zoneKernel{kern: kern{info: ups, build: polarStereographic}, polar: true, defaultZone: "north"}, "ups")

	cas := standardInfo("Cassini", [2]float64{-80, 80}, [2]float64{-10, 10})
	register(&kern{info: cas, build: cassiniStandard}, "cassinistd")
}

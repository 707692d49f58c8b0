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

	"github.com/spatialmodel/mapproj/auxlat"
	"github.com/spatialmodel/mapproj/geodesy"
	"github.com/spatialmodel/mapproj/internal/singular"
)

// coneEps is the smallest magnitude allowed for a cone constant. Cone
// constants closer to zero, from parallels on opposite sides of the
// equator, are moved to it.
const coneEps = 1e-6

func nudgeCone(n float64) float64 {
	if math.Abs(n) < coneEps {
		return math.Copysign(coneEps, n)
	}
	return n
}

// twoParallels returns the standard parallels in radians. A single
// parallel is used twice.
func twoParallels(p Params) (phi1, phi2 float64) {
	pp := p.parallels()
	switch len(pp) {
	case 0:
		return 0, 0
	case 1:
		return pp[0], pp[0]
	}
	return pp[0], pp[1]
}

func conicInfo(title string, class Class) info {
	return info{
		title:        title,
		class:        class,
		aux:          auxlat.Geodetic,
		maxParallels: 2,
		parallels:    []float64{15, 75},
		trimLat:      worldLat,
		trimLon:      [2]float64{-135, 135},
	}
}

// coneInverse converts conic map coordinates to the radius from the apex
// and the angle about it, taking the sign of the cone constant into account.
func coneInverse(n, rho0, x, y float64) (rho, theta float64) {
	y = rho0 - y
	rho = math.Hypot(x, y)
	if n < 0 {
		rho, x, y = -rho, -x, -y
	}
	if rho != 0 {
		theta = math.Atan2(x, y)
	}
	return rho, theta
}

// lambertConformal is the Lambert conformal conic projection with its
// origin at latitude lat0.
func lambertConformal(p Params, lat0 float64) (forward, inverse Transformer) {
	a, e := p.Ellipsoid.A, p.Ellipsoid.E
	phi1, phi2 := twoParallels(p)
	sin1, cos1 := math.Sincos(phi1)
	ms1, ts1 := msfnz(e, sin1, cos1), tsfnz(e, phi1, sin1)
	sin2, cos2 := math.Sincos(phi2)
	ms2, ts2 := msfnz(e, sin2, cos2), tsfnz(e, phi2, sin2)

	ns := sin1
	if math.Abs(phi1-phi2) > singular.Eps {
		ns = math.Log(ms1/ms2) / math.Log(ts1/ts2)
	}
	if math.IsNaN(ns) {
		ns = sin1
	}
	ns = nudgeCone(ns)
	f0 := ms1 / (ns * math.Pow(ts1, ns))
	rho := func(phi float64) float64 {
		phi = singular.Latitude(phi, 1)
		return a * f0 * math.Pow(tsfnz(e, phi, math.Sin(phi)), ns)
	}
	rh := rho(lat0)

	forward = func(phi, lam float64) (x, y float64) {
		rh1 := rho(phi)
		s, c := math.Sincos(ns * lam)
		return rh1 * s, rh - rh1*c
	}
	inverse = func(x, y float64) (phi, lam float64) {
		rh1, theta := coneInverse(ns, rh, x, y)
		if rh1 == 0 {
			return math.Copysign(halfPi, ns), 0
		}
		ts := math.Pow(rh1/(a*f0), 1/ns)
		return phi2z(p.ID, e, ts), theta / ns
	}
	return
}

// albers is the Albers equal-area conic projection with its origin at
// latitude lat0.
func albers(p Params, lat0 float64) (forward, inverse Transformer) {
	a, e := p.Ellipsoid.A, p.Ellipsoid.E
	phi1, phi2 := twoParallels(p)
	sin1, cos1 := math.Sincos(phi1)
	ms1, qs1 := msfnz(e, sin1, cos1), qsfnz(e, sin1)
	sin2, cos2 := math.Sincos(phi2)
	ms2, qs2 := msfnz(e, sin2, cos2), qsfnz(e, sin2)

	ns0 := sin1
	if math.Abs(phi1-phi2) > singular.Eps {
		ns0 = (ms1*ms1 - ms2*ms2) / (qs2 - qs1)
	}
	ns0 = nudgeCone(ns0)
	c := ms1*ms1 + ns0*qs1
	rho := func(sinphi float64) float64 {
		return a * math.Sqrt(math.Max(0, c-ns0*qsfnz(e, sinphi))) / ns0
	}
	rh := rho(math.Sin(lat0))

	forward = func(phi, lam float64) (x, y float64) {
		rh1 := rho(math.Sin(phi))
		s, co := math.Sincos(ns0 * lam)
		return rh1 * s, rh - rh1*co
	}
	inverse = func(x, y float64) (phi, lam float64) {
		rh1, theta := coneInverse(ns0, rh, x, y)
		con := rh1 * ns0 / a
		return qsInverse(p.ID, e, (c-con*con)/ns0), theta / ns0
	}
	return
}

// equidistantConic has true scale along the meridians.
func equidistantConic(p Params, lat0 float64) (forward, inverse Transformer) {
	ell := p.Ellipsoid
	a, e := ell.A, ell.E
	phi1, phi2 := twoParallels(p)
	sin1, cos1 := math.Sincos(phi1)
	sin2, cos2 := math.Sincos(phi2)
	ms1, ms2 := msfnz(e, sin1, cos1), msfnz(e, sin2, cos2)
	m1, m2 := geodesy.MeridianArc(ell, phi1), geodesy.MeridianArc(ell, phi2)

	ns := sin1
	if math.Abs(phi1-phi2) > singular.Eps {
		ns = a * (ms1 - ms2) / (m2 - m1)
	}
	ns = nudgeCone(ns)
	g := ms1/ns + m1/a
	rh := a*g - geodesy.MeridianArc(ell, lat0)

	forward = func(phi, lam float64) (x, y float64) {
		rh1 := a*g - geodesy.MeridianArc(ell, phi)
		s, c := math.Sincos(ns * lam)
		return rh1 * s, rh - rh1*c
	}
	inverse = func(x, y float64) (phi, lam float64) {
		rh1, theta := coneInverse(ns, rh, x, y)
		return geodesy.InverseMeridianArc(ell, a*g-rh1), theta / ns
	}
	return
}

type murdochKind int

const (
	murdochI murdochKind = iota
	murdochIII
)

// murdoch returns the Murdoch I or III equidistant conic on a sphere.
func murdoch(kind murdochKind) func(p Params) (forward, inverse Transformer, err error) {
	return func(p Params) (forward, inverse Transformer, err error) {
		r := p.Ellipsoid.A
		phi1, phi2 := twoParallels(p)
		del := (phi2 - phi1) / 2
		sig := (phi2 + phi1) / 2
		if math.Abs(del) < coneEps {
			del = coneEps
		}
		if math.Abs(sig) < coneEps {
			sig = math.Copysign(coneEps, sig)
		}
		var rhoc, ns float64
		switch kind {
		case murdochI:
			rhoc = math.Sin(del)/(del*math.Tan(sig)) + sig
			ns = math.Sin(sig)
		case murdochIII:
			rhoc = del/(math.Tan(sig)*math.Tan(del)) + sig
			ns = math.Sin(sig) * math.Sin(del) * math.Tan(del) / (del * del)
		}
		ns = nudgeCone(ns)
		rho0 := rhoc

		forward = func(phi, lam float64) (x, y float64) {
			rho := rhoc - phi
			s, c := math.Sincos(ns * lam)
			return r * rho * s, r * (rho0 - rho*c)
		}
		inverse = func(x, y float64) (phi, lam float64) {
			rho, theta := coneInverse(ns, rho0, x/r, y/r)
			return rhoc - rho, theta / ns
		}
		return
	}
}

// conicAtEquator builds a generic conic kernel, whose origin latitude is
// handled by rotation.
func conicAtEquator(f func(Params, float64) (Transformer, Transformer)) func(Params) (Transformer, Transformer, error) {
	return func(p Params) (forward, inverse Transformer, err error) {
		forward, inverse = f(p, 0)
		return
	}
}

// conicAtOrigin builds a standard conic kernel, whose map origin is at
// the origin latitude.
func conicAtOrigin(f func(Params, float64) (Transformer, Transformer)) func(Params) (Transformer, Transformer, error) {
	return func(p Params) (forward, inverse Transformer, err error) {
		lat0, _, _ := p.origin()
		forward, inverse = f(p, lat0)
		return
	}
}

func init() {
	lcc := conicInfo("Lambert Conformal Conic", ClassConic)
	lcc.trimLat = [2]float64{-75, 89}
	register(&kern{info: lcc, build: conicAtEquator(lambertConformal)}, "lambert")

	aea := conicInfo("Albers Equal-Area Conic", ClassConic)
	register(&kern{info: aea, build: conicAtEquator(albers)}, "eqaconic")

	eqdc := conicInfo("Equidistant Conic", ClassConic)
	register(&kern{info: eqdc, build: conicAtEquator(equidistantConic)}, "eqdconic")

	m1 := conicInfo("Murdoch I Conic", ClassConic)
	m1.sphereOnly = true
	register(&kern{info: m1, build: murdoch(murdochI)}, "murdoch1")

	m3 := conicInfo("Murdoch III Minimum Error Conic", ClassConic)
	m3.sphereOnly = true
	register(&kern{info: m3, build: murdoch(murdochIII)}, "murdoch3")

	lccs := conicInfo("Lambert Conformal Conic (Standard)", ClassStandard)
	lccs.trimLat = [2]float64{-75, 89}
	register(&kern{info: lccs, build: conicAtOrigin(lambertConformal)}, "lambertstd")

	aeas := conicInfo("Albers Equal-Area Conic (Standard)", ClassStandard)
	register(&kern{info: aeas, build: conicAtOrigin(albers)}, "eqaconicstd")
}

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
	"github.com/spatialmodel/mapproj/internal/singular"
)

var (
	worldLat = [2]float64{-90, 90}
	worldLon = [2]float64{-180, 180}
)

func cylindrical(title string, aux auxlat.Type, nparallels int, parallels ...float64) info {
	return info{
		title:        title,
		class:        ClassCylindrical,
		aux:          aux,
		maxParallels: nparallels,
		parallels:    parallels,
		trimLat:      worldLat,
		trimLon:      worldLon,
	}
}

// parallelScale is the scale factor k0 along the equator that gives true
// scale at geodetic latitude phi.
func parallelScale(e, phi float64) float64 {
	s, c := math.Sincos(phi)
	return msfnz(e, s, c)
}

// eqaCylin is the general equal-area cylindrical projection on the
// authalic sphere.
func eqaCylin(p Params) (forward, inverse Transformer, err error) {
	a, e := p.Ellipsoid.A, p.Ellipsoid.E
	k0 := parallelScale(e, firstParallel(p))
	qp := qsfnz(e, 1)
	forward = func(beta, lam float64) (x, y float64) {
		return a * k0 * lam, a * qp * math.Sin(beta) / (2 * k0)
	}
	inverse = func(x, y float64) (beta, lam float64) {
		return asinz(2 * k0 * y / (a * qp)), x / (a * k0)
	}
	return
}

// eqdCylin is the equidistant cylindrical projection. Meridian distances
// are true on the ellipsoid through the rectifying latitude.
func eqdCylin(p Params) (forward, inverse Transformer, err error) {
	a, e := p.Ellipsoid.A, p.Ellipsoid.E
	k0 := parallelScale(e, firstParallel(p))
	r := p.Ellipsoid.RectifyingRadius()
	forward = func(mu, lam float64) (x, y float64) {
		return a * k0 * lam, r * mu
	}
	inverse = func(x, y float64) (mu, lam float64) {
		return y / r, x / (a * k0)
	}
	return
}

func mercator(p Params) (forward, inverse Transformer, err error) {
	a, e := p.Ellipsoid.A, p.Ellipsoid.E
	ak := a * parallelScale(e, firstParallel(p))
	forward = func(chi, lam float64) (x, y float64) {
		chi = singular.Latitude(chi, 1)
		return ak * lam, ak * math.Asinh(math.Tan(chi))
	}
	inverse = func(x, y float64) (chi, lam float64) {
		return math.Atan(math.Sinh(y / ak)), x / ak
	}
	return
}

func miller(p Params) (forward, inverse Transformer, err error) {
	r := p.Ellipsoid.A
	forward = func(phi, lam float64) (x, y float64) {
		return r * lam, 1.25 * r * math.Asinh(math.Tan(0.8*phi))
	}
	inverse = func(x, y float64) (phi, lam float64) {
		return math.Atan(math.Sinh(0.8*y/r)) / 0.8, x / r
	}
	return
}

func gallStereo(p Params) (forward, inverse Transformer, err error) {
	r := p.Ellipsoid.A
	cy := r * (1 + math.Sqrt2/2)
	forward = func(phi, lam float64) (x, y float64) {
		return r * lam / math.Sqrt2, cy * math.Tan(phi/2)
	}
	inverse = func(x, y float64) (phi, lam float64) {
		return 2 * math.Atan(y/cy), x * math.Sqrt2 / r
	}
	return
}

func braun(p Params) (forward, inverse Transformer, err error) {
	r := p.Ellipsoid.A
	forward = func(phi, lam float64) (x, y float64) {
		return r * lam, 2 * r * math.Tan(phi/2)
	}
	inverse = func(x, y float64) (phi, lam float64) {
		return 2 * math.Atan(y/(2*r)), x / r
	}
	return
}

func centralCylin(p Params) (forward, inverse Transformer, err error) {
	r := p.Ellipsoid.A
	forward = func(phi, lam float64) (x, y float64) {
		phi = singular.Latitude(phi, 1)
		return r * lam, r * math.Tan(phi)
	}
	inverse = func(x, y float64) (phi, lam float64) {
		return math.Atan(y / r), x / r
	}
	return
}

// cassini is the spherical transverse equidistant cylindrical projection.
func cassini(p Params) (forward, inverse Transformer, err error) {
	r := p.Ellipsoid.A
	forward = func(phi, lam float64) (x, y float64) {
		phi = singular.Latitude(phi, 1)
		sinphi, cosphi := math.Sincos(phi)
		return r * asinz(cosphi*math.Sin(lam)), r * math.Atan2(sinphi/cosphi, math.Cos(lam))
	}
	inverse = func(x, y float64) (phi, lam float64) {
		x, y = x/r, y/r
		return asinz(math.Sin(y) * math.Cos(x)), math.Atan2(math.Tan(x), math.Cos(y))
	}
	return
}

func init() {
	eqa := cylindrical("Equal Area Cylindrical", auxlat.Authalic, 1, 0)
	register(&kern{info: eqa, build: eqaCylin}, "eqacylin")
	registerAlias("eqacylin", "Lambert Equal Area Cylindrical", []float64{0}, "lambcyln")
	registerAlias("eqacylin", "Behrmann Cylindrical", []float64{30}, "behrmann")
	registerAlias("eqacylin", "Balthasart Cylindrical", []float64{50}, "balthsrt")
	registerAlias("eqacylin", "Gall Orthographic Cylindrical", []float64{45}, "gortho")
	registerAlias("eqacylin", "Trystan Edwards Cylindrical", []float64{37.4}, "trystan")

	eqd := cylindrical("Equidistant Cylindrical", auxlat.Rectifying, 1, 0)
	eqd.obliqueSphereOnly = true
	register(&kern{info: eqd, build: eqdCylin}, "eqdcylin")
	registerAlias("eqdcylin", "Plate Carree", []float64{0}, "pcarree")
	registerAlias("eqdcylin", "Gall Isographic", []float64{45}, "giso")

	merc := cylindrical("Mercator Cylindrical", auxlat.Conformal, 1, 0)
	merc.trimLat = [2]float64{-86, 86}
	register(&kern{info: merc, build: mercator}, "mercator")

	mill := cylindrical("Miller Cylindrical", auxlat.Geodetic, 0)
	mill.sphereOnly = true
	register(&kern{info: mill, build: miller}, "miller")

	gst := cylindrical("Gall Stereographic Cylindrical", auxlat.Geodetic, 0)
	gst.sphereOnly = true
	register(&kern{info: gst, build: gallStereo}, "gstereo")

	br := cylindrical("Braun Perspective Cylindrical", auxlat.Geodetic, 0)
	br.sphereOnly = true
	register(&kern{info: br, build: braun}, "braun")

	cc := cylindrical("Central Cylindrical", auxlat.Geodetic, 0)
	cc.sphereOnly = true
	cc.trimLat = [2]float64{-75, 75}
	register(&kern{info: cc, build: centralCylin}, "ccylin")

	cas := cylindrical("Cassini Transverse Cylindrical", auxlat.Geodetic, 0)
	cas.sphereOnly = true
	register(&kern{info: cas, build: cassini}, "cassini")
}

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

func pseudocylindrical(title string, aux auxlat.Type) info {
	in := info{
		title:   title,
		class:   ClassPseudocylindrical,
		aux:     aux,
		trimLat: worldLat,
		trimLon: worldLon,
	}
	if aux == auxlat.Geodetic {
		in.sphereOnly = true
	}
	return in
}

// radius returns the radius of the sphere a kernel works on: the authalic
// sphere for kernels that take authalic latitudes.
func radius(p Params, aux auxlat.Type) float64 {
	if aux == auxlat.Authalic {
		return p.Ellipsoid.AuthalicRadius()
	}
	return p.Ellipsoid.A
}

// solvePlusSin solves u + sin(u) = target for u in [-π, π].
func solvePlusSin(id string, target, u0 float64) float64 {
	if math.Abs(target) >= math.Pi {
		return math.Copysign(math.Pi, target)
	}
	return solveTheta(id, func(u float64) (float64, float64) {
		return u + math.Sin(u) - target, 1 + math.Cos(u)
	}, u0, target)
}

func sinusoidal(p Params) (forward, inverse Transformer, err error) {
	r := radius(p, auxlat.Authalic)
	forward = func(phi, lam float64) (x, y float64) {
		return r * lam * math.Cos(phi), r * phi
	}
	inverse = func(x, y float64) (phi, lam float64) {
		phi = y / r
		c := math.Cos(phi)
		if c < singular.Eps {
			return phi, 0
		}
		return phi, x / (r * c)
	}
	return
}

// mollweideFamily returns kernels of the form x = cx·λ·cos θ, y = cy·sin θ
// with 2θ + sin 2θ = cp·sin φ.
func mollweideFamily(cx, cy, cp float64) func(p Params) (forward, inverse Transformer, err error) {
	return func(p Params) (forward, inverse Transformer, err error) {
		r := radius(p, auxlat.Authalic)
		forward = func(phi, lam float64) (x, y float64) {
			theta := solvePlusSin(p.ID, cp*math.Sin(phi), phi) / 2
			s, c := math.Sincos(theta)
			return r * cx * lam * c, r * cy * s
		}
		inverse = func(x, y float64) (phi, lam float64) {
			theta := asinz(y / (r * cy))
			phi = asinz((2*theta + math.Sin(2*theta)) / cp)
			c := math.Cos(theta)
			if c < singular.Eps {
				return phi, 0
			}
			return phi, x / (r * cx * c)
		}
		return
	}
}

var mollweide = mollweideFamily(2*math.Sqrt2/math.Pi, math.Sqrt2, math.Pi)

// Hatano asymmetrical equal-area constants for the northern and
// southern hemispheres.
const (
	hatanoCN  = 2.67595
	hatanoCS  = 2.43763
	hatanoFYN = 1.75859
	hatanoFYS = 1.93052
	hatanoFX  = 0.85
)

func hatano(p Params) (forward, inverse Transformer, err error) {
	r := radius(p, auxlat.Authalic)
	forward = func(phi, lam float64) (x, y float64) {
		k, fy := hatanoCN, hatanoFYN
		if phi < 0 {
			k, fy = hatanoCS, hatanoFYS
		}
		theta := solvePlusSin(p.ID, k*math.Sin(phi), phi) / 2
		s, c := math.Sincos(theta)
		return r * hatanoFX * lam * c, r * fy * s
	}
	inverse = func(x, y float64) (phi, lam float64) {
		k, fy := hatanoCN, hatanoFYN
		if y < 0 {
			k, fy = hatanoCS, hatanoFYS
		}
		theta := asinz(y / (r * fy))
		phi = asinz((2*theta + math.Sin(2*theta)) / k)
		c := math.Cos(theta)
		if c < singular.Eps {
			return phi, 0
		}
		return phi, x / (r * hatanoFX * c)
	}
	return
}

// goodeBreak is the latitude (radians) where the Goode homolosine
// projection changes from the sinusoidal to the Mollweide projection.
const goodeBreak = 40.74115 * deg2rad

func goode(p Params) (forward, inverse Transformer, err error) {
	r := radius(p, auxlat.Authalic)
	sfwd, sinv, _ := sinusoidal(p)
	mfwd, minv, _ := mollweide(p)
	_, yb := mfwd(goodeBreak, 0)
	off := r*goodeBreak - yb
	forward = func(phi, lam float64) (x, y float64) {
		if math.Abs(phi) <= goodeBreak {
			return sfwd(phi, lam)
		}
		x, y = mfwd(phi, lam)
		return x, y + off*sign(phi)
	}
	inverse = func(x, y float64) (phi, lam float64) {
		if math.Abs(y) <= r*goodeBreak {
			return sinv(x, y)
		}
		return minv(x, y-off*sign(y))
	}
	return
}

func eckert1(p Params) (forward, inverse Transformer, err error) {
	r := p.Ellipsoid.A
	c := 2 * math.Sqrt(2/(3*math.Pi))
	forward = func(phi, lam float64) (x, y float64) {
		return r * c * lam * (1 - math.Abs(phi)/math.Pi), r * c * phi
	}
	inverse = func(x, y float64) (phi, lam float64) {
		phi = y / (r * c)
		return phi, x / (r * c * (1 - math.Abs(phi)/math.Pi))
	}
	return
}

func eckert2(p Params) (forward, inverse Transformer, err error) {
	r := radius(p, auxlat.Authalic)
	cx := 2 / math.Sqrt(6*math.Pi)
	cy := math.Sqrt(2 * math.Pi / 3)
	forward = func(phi, lam float64) (x, y float64) {
		s := math.Sqrt(4 - 3*math.Sin(math.Abs(phi)))
		return r * cx * lam * s, math.Copysign(r*cy*(2-s), phi)
	}
	inverse = func(x, y float64) (phi, lam float64) {
		s := 2 - math.Abs(y)/(r*cy)
		phi = math.Copysign(asinz((4-s*s)/3), y)
		return phi, x / (r * cx * s)
	}
	return
}

func eckert3(p Params) (forward, inverse Transformer, err error) {
	r := p.Ellipsoid.A
	k := math.Sqrt(math.Pi * (4 + math.Pi))
	shape := func(phi float64) float64 {
		v := 2 * phi / math.Pi
		return 1 + math.Sqrt(math.Max(0, 1-v*v))
	}
	forward = func(phi, lam float64) (x, y float64) {
		return 2 * r * lam * shape(phi) / k, 4 * r * phi / k
	}
	inverse = func(x, y float64) (phi, lam float64) {
		phi = y * k / (4 * r)
		return phi, x * k / (2 * r * shape(phi))
	}
	return
}

func eckert4(p Params) (forward, inverse Transformer, err error) {
	r := radius(p, auxlat.Authalic)
	cp := 2 + halfPi
	cx := 2 / math.Sqrt(math.Pi*(4+math.Pi))
	cy := 2 * math.Sqrt(math.Pi/(4+math.Pi))
	forward = func(phi, lam float64) (x, y float64) {
		target := cp * math.Sin(phi)
		var theta float64
		if math.Abs(target) >= cp {
			theta = math.Copysign(halfPi, phi)
		} else {
			theta = solveTheta(p.ID, func(t float64) (float64, float64) {
				s, c := math.Sincos(t)
				return t + s*c + 2*s - target, 2 * c * (1 + c)
			}, phi/2, target)
		}
		s, c := math.Sincos(theta)
		return r * cx * lam * (1 + c), r * cy * s
	}
	inverse = func(x, y float64) (phi, lam float64) {
		theta := asinz(y / (r * cy))
		s, c := math.Sincos(theta)
		return asinz((theta + s*c + 2*s) / cp), x / (r * cx * (1 + c))
	}
	return
}

func eckert5(p Params) (forward, inverse Transformer, err error) {
	r := p.Ellipsoid.A
	k := math.Sqrt(2 + math.Pi)
	forward = func(phi, lam float64) (x, y float64) {
		return r * lam * (1 + math.Cos(phi)) / k, 2 * r * phi / k
	}
	inverse = func(x, y float64) (phi, lam float64) {
		phi = y * k / (2 * r)
		return phi, x * k / (r * (1 + math.Cos(phi)))
	}
	return
}

func eckert6(p Params) (forward, inverse Transformer, err error) {
	r := radius(p, auxlat.Authalic)
	cp := 1 + halfPi
	k := math.Sqrt(2 + math.Pi)
	forward = func(phi, lam float64) (x, y float64) {
		target := cp * math.Sin(phi)
		var theta float64
		if math.Abs(target) >= cp {
			theta = math.Copysign(halfPi, phi)
		} else {
			theta = solveTheta(p.ID, func(t float64) (float64, float64) {
				return t + math.Sin(t) - target, 1 + math.Cos(t)
			}, phi, target)
		}
		return r * lam * (1 + math.Cos(theta)) / k, 2 * r * theta / k
	}
	inverse = func(x, y float64) (phi, lam float64) {
		theta := y * k / (2 * r)
		return asinz((theta + math.Sin(theta)) / cp), x * k / (r * (1 + math.Cos(theta)))
	}
	return
}

func craster(p Params) (forward, inverse Transformer, err error) {
	r := radius(p, auxlat.Authalic)
	cx := math.Sqrt(3 / math.Pi)
	cy := math.Sqrt(3 * math.Pi)
	forward = func(phi, lam float64) (x, y float64) {
		return r * cx * lam * (2*math.Cos(2*phi/3) - 1), r * cy * math.Sin(phi/3)
	}
	inverse = func(x, y float64) (phi, lam float64) {
		phi = 3 * asinz(y/(r*cy))
		return phi, x / (r * cx * (2*math.Cos(2*phi/3) - 1))
	}
	return
}

func putnins5(p Params) (forward, inverse Transformer, err error) {
	const c = 1.01346
	r := p.Ellipsoid.A
	shape := func(phi float64) float64 {
		return 2 - math.Sqrt(1+12*phi*phi/(math.Pi*math.Pi))
	}
	forward = func(phi, lam float64) (x, y float64) {
		return r * c * lam * shape(phi), r * c * phi
	}
	inverse = func(x, y float64) (phi, lam float64) {
		phi = y / (r * c)
		return phi, x / (r * c * shape(phi))
	}
	return
}

// sineSeries returns the equal-area kernels with
// x = (q/p)·λ·cos φ / cos(φ/q), y = p·sin(φ/q).
func sineSeries(pp, q float64) func(p Params) (forward, inverse Transformer, err error) {
	return func(p Params) (forward, inverse Transformer, err error) {
		r := radius(p, auxlat.Authalic)
		cx := q / pp
		forward = func(phi, lam float64) (x, y float64) {
			s, c := math.Sincos(phi / q)
			return r * cx * lam * math.Cos(phi) / c, r * pp * s
		}
		inverse = func(x, y float64) (phi, lam float64) {
			t := asinz(y / (r * pp))
			phi = t * q
			c := math.Cos(phi)
			if c < singular.Eps {
				return phi, 0
			}
			return phi, x * math.Cos(t) / (r * cx * c)
		}
		return
	}
}

func collignon(p Params) (forward, inverse Transformer, err error) {
	r := radius(p, auxlat.Authalic)
	sqpi := math.Sqrt(math.Pi)
	forward = func(phi, lam float64) (x, y float64) {
		s := math.Sqrt(1 - math.Sin(phi))
		return 2 * r * lam * s / sqpi, r * sqpi * (1 - s)
	}
	inverse = func(x, y float64) (phi, lam float64) {
		s := 1 - y/(r*sqpi)
		phi = asinz(1 - s*s)
		if s < singular.Eps {
			return phi, 0
		}
		return phi, x * sqpi / (2 * r * s)
	}
	return
}

// kavraisky6 is Kavraisky VI (Wagner I).
func kavraisky6(p Params) (forward, inverse Transformer, err error) {
	const cx = 0.8773826753
	n := math.Sqrt(3) / 2
	cy := 1.139753528477 / n
	r := radius(p, auxlat.Authalic)
	forward = func(phi, lam float64) (x, y float64) {
		theta := asinz(n * math.Sin(phi))
		return r * cx * lam * math.Cos(theta), r * cy * theta
	}
	inverse = func(x, y float64) (phi, lam float64) {
		theta := y / (r * cy)
		return asinz(math.Sin(theta) / n), x / (r * cx * math.Cos(theta))
	}
	return
}

// flatPolarQuartic is the McBryde-Thomas flat-polar quartic projection.
func flatPolarQuartic(p Params) (forward, inverse Transformer, err error) {
	const (
		cp = 1 + math.Sqrt2/2
		fy = 1.87475828462269495505
		fx = 0.31245971410378249250
	)
	r := radius(p, auxlat.Authalic)
	shape := func(t float64) float64 { return 1 + 2*math.Cos(t)/math.Cos(t/2) }
	forward = func(phi, lam float64) (x, y float64) {
		target := cp * math.Sin(phi)
		t := solveTheta(p.ID, func(t float64) (float64, float64) {
			return math.Sin(t/2) + math.Sin(t) - target, 0.5*math.Cos(t/2) + math.Cos(t)
		}, phi, target)
		return r * fx * lam * shape(t), r * fy * math.Sin(t/2)
	}
	inverse = func(x, y float64) (phi, lam float64) {
		t := 2 * asinz(y/(r*fy))
		return asinz((math.Sin(t/2) + math.Sin(t)) / cp), x / (r * fx * shape(t))
	}
	return
}

// bonne is the ellipsoidal Bonne projection. Its standard parallel must
// not be the equator.
func bonne(p Params) (forward, inverse Transformer, err error) {
	ell := p.Ellipsoid
	a, e := ell.A, ell.E
	phi1 := firstParallel(p)
	if math.Abs(phi1) < coneEps {
		phi1 = coneEps
	}
	sin1, cos1 := math.Sincos(phi1)
	am1 := a * msfnz(e, sin1, cos1) / sin1
	m1 := geodesy.MeridianArc(ell, phi1)
	s := sign(phi1)
	forward = func(phi, lam float64) (x, y float64) {
		phi = singular.Latitude(phi, 1)
		sinphi, cosphi := math.Sincos(phi)
		rho := am1 + m1 - geodesy.MeridianArc(ell, phi)
		E := a * msfnz(e, sinphi, cosphi) * lam / rho
		sE, cE := math.Sincos(E)
		return rho * sE, am1 - rho*cE
	}
	inverse = func(x, y float64) (phi, lam float64) {
		yy := am1 - y
		rho := s * math.Hypot(x, yy)
		phi = geodesy.InverseMeridianArc(ell, am1+m1-rho)
		sinphi, cosphi := math.Sincos(phi)
		m := a * msfnz(e, sinphi, cosphi)
		if m < singular.Eps*a {
			return phi, 0
		}
		return phi, rho * math.Atan2(s*x, s*yy) / m
	}
	return
}

func init() {
	ea := func(title string) info { return pseudocylindrical(title, auxlat.Authalic) }
	other := func(title string) info { return pseudocylindrical(title, auxlat.Geodetic) }

	register(&kern{info: ea("Sinusoidal"), build: sinusoidal}, "sinusoid")
	register(&kern{info: ea("Mollweide"), build: mollweide}, "mollweid")
	register(&kern{info: ea("Hatano Asymmetrical Equal Area"), build: hatano}, "hatano")
	register(&kern{info: ea("Goode Homolosine"), build: goode}, "goode")
	register(&kern{info: other("Eckert I"), build: eckert1}, "eckert1")
	register(&kern{info: ea("Eckert II"), build: eckert2}, "eckert2")
	register(&kern{info: other("Eckert III"), build: eckert3}, "eckert3")
	register(&kern{info: ea("Eckert IV"), build: eckert4}, "eckert4")
	register(&kern{info: other("Eckert V"), build: eckert5}, "eckert5")
	register(&kern{info: ea("Eckert VI"), build: eckert6}, "eckert6")
	register(&kern{info: ea("Wagner IV"),
		build: mollweideFamily(0.86310, 1.56548, (4*math.Pi+3*math.Sqrt(3))/6)}, "wagner4")
	register(&kern{info: ea("Craster Parabolic"), build: craster}, "craster")
	register(&kern{info: other("Putnins P5"), build: putnins5}, "putnins5")
	register(&kern{info: ea("Quartic Authalic"), build: sineSeries(2, 2)}, "quartic")
	register(&kern{info: ea("Collignon"), build: collignon}, "collig")
	register(&kern{info: ea("Kavraisky V"), build: sineSeries(1.50488, 1.35439)}, "kavrsky5")
	register(&kern{info: ea("Kavraisky VI"), build: kavraisky6}, "kavrsky6")
	register(&kern{info: ea("McBryde-Thomas Flat-Polar Quartic"), build: flatPolarQuartic}, "flatplrq")

	b := pseudocylindrical("Bonne", auxlat.Geodetic)
	b.sphereOnly = false
	b.maxParallels = 1
	b.parallels = []float64{30}
	register(&kern{info: b, build: bonne}, "bonne")
	registerAlias("bonne", "Werner", []float64{90}, "werner")
}

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
	"strconv"
	"strings"
)

// utmBands are the UTM latitude bands from south to north. Each spans 8°
// except X, which spans 12°.
const utmBands = "CDEFGHJKLMNPQRSTUVWX"

// zone is a parsed UTM or UPS designator. number is 0 for UPS zones and
// band is 0 if no band letter is given. The whole polar caps are UPS zones
// with bands 'N' and 'S'.
type zone struct {
	number int
	band   byte
}

func (z zone) String() string {
	switch {
	case z.number == 0 && z.band == 'N':
		return "north"
	case z.number == 0 && z.band == 'S':
		return "south"
	case z.number == 0:
		return string(z.band)
	case z.band == 0:
		return strconv.Itoa(z.number)
	}
	return strconv.Itoa(z.number) + string(z.band)
}

func (z zone) polar() bool { return z.number == 0 }

// south reports whether the zone lies in the southern hemisphere.
func (z zone) south() bool {
	if z.polar() {
		return z.band == 'A' || z.band == 'B' || z.band == 'S'
	}
	return z.band != 0 && z.band < 'N'
}

// centralMeridian returns the UTM central meridian in degrees.
func (z zone) centralMeridian() float64 { return float64(6*z.number - 183) }

func parseZone(s string) (zone, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return zone{}, fmt.Errorf("proj: empty zone designator")
	}
	if len(s) == 1 && strings.Contains("ABYZ", s) {
		return zone{band: s[0]}, nil
	}
	digits := s
	var band byte
	if last := s[len(s)-1]; last < '0' || last > '9' {
		band = last
		digits = s[:len(s)-1]
		if !strings.ContainsRune(utmBands, rune(band)) {
			return zone{}, fmt.Errorf("proj: invalid latitude band in zone %q", s)
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || len(digits) > 2 || n < 1 || n > 60 {
		return zone{}, fmt.Errorf("proj: invalid zone number in zone %q", s)
	}
	z := zone{number: n, band: band}
	if band == 'X' && (n == 32 || n == 34 || n == 36) {
		return zone{}, fmt.Errorf("proj: zone %q does not exist", s)
	}
	return z, nil
}

func (z zone) limits() (lat, lon [2]float64) {
	if z.polar() {
		switch z.band {
		case 'A':
			return [2]float64{-90, -80}, [2]float64{-180, 0}
		case 'B':
			return [2]float64{-90, -80}, [2]float64{0, 180}
		case 'Y':
			return [2]float64{84, 90}, [2]float64{-180, 0}
		case 'N':
			return [2]float64{84, 90}, [2]float64{-180, 180}
		case 'S':
			return [2]float64{-90, -80}, [2]float64{-180, 180}
		}
		return [2]float64{84, 90}, [2]float64{0, 180}
	}
	west := float64(6*z.number - 186)
	lon = [2]float64{west, west + 6}
	if z.band == 0 {
		return [2]float64{-80, 84}, lon
	}
	i := strings.IndexByte(utmBands, z.band)
	lat = [2]float64{float64(-80 + 8*i), float64(-72 + 8*i)}
	switch z.band {
	case 'X':
		lat[1] = 84
		switch z.number {
		case 31:
			lon = [2]float64{0, 9}
		case 33:
			lon = [2]float64{9, 21}
		case 35:
			lon = [2]float64{21, 33}
		case 37:
			lon = [2]float64{33, 42}
		}
	case 'V':
		switch z.number {
		case 31:
			lon = [2]float64{0, 3}
		case 32:
			lon = [2]float64{3, 12}
		}
	}
	return lat, lon
}

// ZoneLimits returns the latitude and longitude limits (degrees) of a UTM
// zone such as "31N" or "18" or of a UPS zone ("A", "B", "Y" or "Z").
// The limits are closed at the south and west and open at the north and east.
func ZoneLimits(designator string) (lat, lon [2]float64, err error) {
	z, err := parseZone(designator)
	if err != nil {
		return lat, lon, err
	}
	lat, lon = z.limits()
	return lat, lon, nil
}

// FindZone returns the UTM or UPS zone containing the point (lat, lon)
// in degrees.
func FindZone(lat, lon float64) (string, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.Abs(lat) > 90 {
		return "", fmt.Errorf("proj: invalid position (%g, %g)", lat, lon)
	}
	lon = wrapDegrees(lon)
	switch {
	case lat >= 84:
		if lon < 0 {
			return "Y", nil
		}
		return "Z", nil
	case lat < -80:
		if lon < 0 {
			return "A", nil
		}
		return "B", nil
	}
	i := int(math.Floor((lat + 80) / 8))
	if i > len(utmBands)-1 {
		i = len(utmBands) - 1
	}
	band := utmBands[i]
	n := int(math.Floor((lon+180)/6)) + 1
	if n > 60 {
		n = 60
	}
	switch {
	case band == 'V' && lon >= 3 && lon < 12:
		n = 32
	case band == 'X' && lon >= 0 && lon < 42:
		switch {
		case lon < 9:
			n = 31
		case lon < 21:
			n = 33
		case lon < 33:
			n = 35
		default:
			n = 37
		}
	}
	return zone{number: n, band: band}.String(), nil
}

// LimitsToZone returns the zone containing the geographic mean of a
// latitude-longitude quadrangle given in degrees.
func LimitsToZone(lat, lon [2]float64) (string, error) {
	return FindZone((lat[0]+lat[1])/2, (lon[0]+lon[1])/2)
}

// Zones returns every valid zone designator with a latitude band,
// followed by the UPS zones.
func Zones() []string {
	var out []string
	for n := 1; n <= 60; n++ {
		for i := range utmBands {
			z := zone{number: n, band: utmBands[i]}
			if z.band == 'X' && (n == 32 || n == 34 || n == 36) {
				continue
			}
			out = append(out, z.String())
		}
	}
	return append(out, "A", "B", "Y", "Z")
}

// RecommendedEllipsoids returns catalog names of the ellipsoids
// traditionally used for mapping in a zone, most suitable first.
func RecommendedEllipsoids(designator string) ([]string, error) {
	z, err := parseZone(designator)
	if err != nil {
		return nil, err
	}
	if z.polar() {
		return []string{"international", "wgs84"}, nil
	}
	lat, lon := z.limits()
	clat, clon := (lat[0]+lat[1])/2, (lon[0]+lon[1])/2
	var names []string
	switch {
	case clon < -30 && clat > 10:
		names = []string{"clarke66", "grs80"}
	case clon < -30:
		names = []string{"international"}
	case clon < 45 && clat > 35:
		names = []string{"international", "bessel", "airy"}
	case clon < 55:
		names = []string{"clarke80"}
	case clon < 100 && clat > 0 && clat < 35:
		names = []string{"everest"}
	case clat > 35:
		names = []string{"krasovsky"}
	case clon > 110 && clat < -10:
		names = []string{"grs80"}
	default:
		names = []string{"international"}
	}
	return append(names, "wgs84"), nil
}

func wrapDegrees(lon float64) float64 {
	if lon >= -180 && lon <= 180 {
		return lon
	}
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

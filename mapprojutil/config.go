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

package mapprojutil

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/mapproj/geodesy"
	"github.com/spatialmodel/mapproj/proj"
	"github.com/spf13/cast"
)

// Params builds a projection parameter record from a configuration.
// Values that are not configured are left unset so that proj.Defaults
// fills them in.
func Params(cfg *viper.Viper) (proj.Params, error) {
	id := os.ExpandEnv(cfg.GetString("Projection"))
	if id == "" {
		return proj.Params{}, fmt.Errorf("mapproj: the Projection configuration variable is not set")
	}
	p := proj.NewParams(id)

	var err error
	if p.AngleUnits, err = proj.ParseAngleUnit(cfg.GetString("AngleUnits")); err != nil {
		return p, err
	}
	if p.Ellipsoid, err = parseEllipsoid(cfg.Get("Ellipsoid")); err != nil {
		return p, err
	}

	if p.MapParallels, err = toFloat64SliceE(cfg.Get("MapParallels")); err != nil {
		return p, fmt.Errorf("mapproj: MapParallels: %v", err)
	}
	origin, err := toFloat64SliceE(cfg.Get("Origin"))
	if err != nil {
		return p, fmt.Errorf("mapproj: Origin: %v", err)
	}
	if len(origin) > 3 {
		return p, fmt.Errorf("mapproj: Origin has %d elements; it may have at most 3", len(origin))
	}
	copy(p.Origin[:], origin)

	for _, lim := range []struct {
		name string
		dst  *[2]float64
	}{{"TrimLat", &p.TrimLat}, {"TrimLon", &p.TrimLon}} {
		v, err := toFloat64SliceE(cfg.Get(lim.name))
		if err != nil {
			return p, fmt.Errorf("mapproj: %s: %v", lim.name, err)
		}
		switch len(v) {
		case 0:
		case 2:
			copy(lim.dst[:], v)
		default:
			return p, fmt.Errorf("mapproj: %s must have 2 elements; it has %d", lim.name, len(v))
		}
	}

	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"ScaleFactor", &p.ScaleFactor},
		{"FalseEasting", &p.FalseEasting},
		{"FalseNorthing", &p.FalseNorthing},
		{"Altitude", &p.Altitude},
		{"MaxRange", &p.FlatLimit[1]},
	} {
		v := cfg.Get(f.name)
		if v == nil || v == "" {
			continue // unset; NewParams left it NaN
		}
		if *f.dst, err = cast.ToFloat64E(v); err != nil {
			return p, fmt.Errorf("mapproj: %s: %v", f.name, err)
		}
	}
	p.Zone = cfg.GetString("Zone")
	return p, nil
}

// Projection builds the configured projection.
func Projection(cfg *viper.Viper) (*proj.Projection, error) {
	p, err := Params(cfg)
	if err != nil {
		return nil, err
	}
	return proj.New(p)
}

// parseEllipsoid accepts a catalog name, a sphere radius, or an [a, e]
// vector given as a list or as a comma-separated string. An empty value
// selects the projection's default ellipsoid.
func parseEllipsoid(v interface{}) (geodesy.Ellipsoid, error) {
	unset := geodesy.Ellipsoid{A: math.NaN(), E: math.NaN()}
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(os.ExpandEnv(s))
		if s == "" {
			return unset, nil
		}
		if ell, err := geodesy.Named(s); err == nil {
			return ell, nil
		}
	}
	vec, err := toFloat64SliceE(v)
	if err != nil {
		return unset, fmt.Errorf("mapproj: Ellipsoid must be a name, a radius or [a, e]: %v", err)
	}
	if len(vec) == 0 {
		return unset, nil
	}
	return geodesy.FromVector(vec)
}

// toFloat64SliceE converts a configuration value to a slice of floats.
// Values set on the command line arrive as strings or string slices, and
// values from configuration files as lists.
func toFloat64SliceE(v interface{}) ([]float64, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []float64:
		return t, nil
	case string:
		t = strings.TrimSpace(t)
		if t == "" {
			return nil, nil
		}
		if strings.HasPrefix(t, "[") {
			var o []float64
			if err := json.Unmarshal([]byte(t), &o); err != nil {
				return nil, err
			}
			return o, nil
		}
		return toFloat64SliceE(strings.Split(t, ","))
	case []string:
		o := make([]float64, 0, len(t))
		for _, s := range t {
			if s = strings.TrimSpace(s); s == "" {
				continue
			}
			f, err := cast.ToFloat64E(s)
			if err != nil {
				return nil, err
			}
			o = append(o, f)
		}
		return o, nil
	}
	s, err := cast.ToSliceE(v)
	if err != nil {
		f, ferr := cast.ToFloat64E(v)
		if ferr != nil {
			return nil, err
		}
		return []float64{f}, nil
	}
	o := make([]float64, len(s))
	for i, val := range s {
		if o[i], err = cast.ToFloat64E(val); err != nil {
			return nil, err
		}
	}
	return o, nil
}

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
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/geom/encoding/geojson"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/mapproj"
	"github.com/spatialmodel/mapproj/distort"
	"github.com/spatialmodel/mapproj/proj"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// stdin is where coordinates are read from when no input file is given.
var stdin io.Reader = os.Stdin

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	transforms := func() []*pflag.FlagSet {
		return []*pflag.FlagSet{Root.PersistentFlags()}
	}
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location. The file
              holds a projection parameter record in TOML format, such as
              the output of the defaults command.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the lowest level of log messages that are printed.
              Warnings report parameters that were overridden; debug
              messages report iterative solvers that did not converge.`,
			defaultVal: "warning",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Projection",
			usage: `
              Projection is the identifier of the map projection. The list
              command prints all identifiers.`,
			shorthand:  "p",
			defaultVal: "mercator",
			flagsets:   transforms(),
		},
		{
			name: "Ellipsoid",
			usage: `
              Ellipsoid is the name of a reference ellipsoid (such as wgs84 or
              grs80), the radius of a sphere, or the semimajor axis and
              eccentricity separated by a comma. If empty, the default of the
              projection is used.`,
			shorthand:  "e",
			defaultVal: "",
			flagsets:   transforms(),
		},
		{
			name: "AngleUnits",
			usage: `
              AngleUnits is the unit of all angles, both in coordinates and in
              parameters: degrees or radians.`,
			defaultVal: "degrees",
			flagsets:   transforms(),
		},
		{
			name: "MapParallels",
			usage: `
              MapParallels are the standard parallels of the projection.`,
			defaultVal: []string{},
			flagsets:   transforms(),
		},
		{
			name: "Origin",
			usage: `
              Origin is the latitude and longitude of the map origin followed
              by the orientation angle.`,
			defaultVal: []string{},
			flagsets:   transforms(),
		},
		{
			name: "ScaleFactor",
			usage: `
              ScaleFactor multiplies the map coordinates. NaN selects the
              default of the projection.`,
			defaultVal: math.NaN(),
			flagsets:   transforms(),
		},
		{
			name: "FalseEasting",
			usage: `
              FalseEasting is added to map x coordinates.`,
			defaultVal: math.NaN(),
			flagsets:   transforms(),
		},
		{
			name: "FalseNorthing",
			usage: `
              FalseNorthing is added to map y coordinates.`,
			defaultVal: math.NaN(),
			flagsets:   transforms(),
		},
		{
			name: "Zone",
			usage: `
              Zone is the UTM zone (such as 31N) or UPS zone (north or
              south) of the utm and ups projections.`,
			defaultVal: "",
			flagsets:   transforms(),
		},
		{
			name: "Altitude",
			usage: `
              Altitude is the height of the viewpoint of the vertical
              perspective projection, in the length units of the ellipsoid.`,
			defaultVal: math.NaN(),
			flagsets:   transforms(),
		},
		{
			name: "TrimLat",
			usage: `
              TrimLat is the latitude range of the map frame.`,
			defaultVal: []string{},
			flagsets:   transforms(),
		},
		{
			name: "TrimLon",
			usage: `
              TrimLon is the longitude range of the map frame, relative to
              the central meridian.`,
			defaultVal: []string{},
			flagsets:   transforms(),
		},
		{
			name: "MaxRange",
			usage: `
              MaxRange is the largest angular distance from the center that
              azimuthal projections show.`,
			defaultVal: math.NaN(),
			flagsets:   transforms(),
		},
		{
			name: "ObjectType",
			usage: `
              ObjectType tells how input coordinates are connected when they
              are trimmed to the map frame: point, line or polygon. NaN
              coordinates separate lines and polygon rings.`,
			defaultVal: "point",
			flagsets:   []*pflag.FlagSet{forwardCmd.Flags()},
		},
		{
			name: "Input",
			usage: `
              Input is the path of the input file. If empty, standard input
              is read.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{forwardCmd.Flags(), inverseCmd.Flags(), geojsonCmd.Flags()},
		},
		{
			name: "Output",
			usage: `
              Output is the path of the output file. If empty, results are
              written to standard output.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{forwardCmd.Flags(), inverseCmd.Flags(), geojsonCmd.Flags(), defaultsCmd.Flags()},
		},
		{
			name: "Inverse",
			usage: `
              If Inverse is true, geojson converts map coordinates to
              geographic coordinates.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{geojsonCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("MAPPROJ")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case []string:
				set.StringSliceP(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, v, option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(forwardCmd)
	Root.AddCommand(inverseCmd)
	Root.AddCommand(geojsonCmd)
	Root.AddCommand(defaultsCmd)
	Root.AddCommand(listCmd)
	Root.AddCommand(zoneCmd)
	Root.AddCommand(distortCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets up logging.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("mapproj: problem reading configuration file: %v", err)
		}
	}
	lvl, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("mapproj: %v", err)
	}
	log := logrus.New()
	log.Out = os.Stderr
	log.Level = lvl
	proj.Log = log
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "mapproj",
	Short: "Map projections.",
	Long: `mapproj converts between geographic coordinates (latitude and longitude)
and map coordinates using one of many map projections.
Use the subcommands specified below to access the functionality.

Projection parameters can be set using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'MAPPROJ_var' where 'var' is
the name of the variable to be set. Parameters that are not set take the
default values of the projection; the defaults command prints them.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of mapproj.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mapproj v%s\n", mapproj.Version)
	},
	DisableAutoGenTag: true,
}

var forwardCmd = &cobra.Command{
	Use:   "forward",
	Short: "Project geographic coordinates.",
	Long: `forward reads latitude,longitude pairs in CSV format and writes the
corresponding x,y map coordinates. Points outside the map frame are
written as NaN; lines and polygons are clipped to the frame.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pr, err := Projection(Cfg)
		if err != nil {
			return err
		}
		obj, err := proj.ParseObjectType(Cfg.GetString("ObjectType"))
		if err != nil {
			return err
		}
		lat, lon, err := readInput(Cfg.GetString("Input"))
		if err != nil {
			return err
		}
		x, y, rec, err := pr.Forward(lat, lon, obj)
		if err != nil {
			return err
		}
		proj.Log.WithFields(logrus.Fields{"trimmed": rec.Trimmed(), "clipped": rec.Clipped()}).Info("mapproj: forward projection")
		return writeOutput(cmd, Cfg.GetString("Output"), x, y)
	},
	DisableAutoGenTag: true,
}

var inverseCmd = &cobra.Command{
	Use:   "inverse",
	Short: "Unproject map coordinates.",
	Long: `inverse reads x,y map coordinates in CSV format and writes the
corresponding latitude,longitude pairs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pr, err := Projection(Cfg)
		if err != nil {
			return err
		}
		x, y, err := readInput(Cfg.GetString("Input"))
		if err != nil {
			return err
		}
		lat, lon, err := pr.Inverse(x, y, nil)
		if err != nil {
			return err
		}
		return writeOutput(cmd, Cfg.GetString("Output"), lat, lon)
	},
	DisableAutoGenTag: true,
}

var geojsonCmd = &cobra.Command{
	Use:   "geojson",
	Short: "Project a GeoJSON geometry.",
	Long: `geojson projects a GeoJSON geometry whose coordinates are longitude
and latitude, or unprojects one in map coordinates if --Inverse is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pr, err := Projection(Cfg)
		if err != nil {
			return err
		}
		r, closeIn, err := openInput(Cfg.GetString("Input"))
		if err != nil {
			return err
		}
		defer closeIn()
		b, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("mapproj: reading input: %v", err)
		}
		g, err := geojson.Decode(b)
		if err != nil {
			return fmt.Errorf("mapproj: decoding GeoJSON: %v", err)
		}
		if Cfg.GetBool("Inverse") {
			g, err = proj.InverseGeom(pr, g)
		} else {
			g, err = proj.ForwardGeom(pr, g)
		}
		if err != nil {
			return err
		}
		out, err := geojson.Encode(g)
		if err != nil {
			return fmt.Errorf("mapproj: encoding GeoJSON: %v", err)
		}
		w, closeOut, err := openOutput(cmd, Cfg.GetString("Output"))
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(w, string(out)); err != nil {
			return err
		}
		return closeOut()
	},
	DisableAutoGenTag: true,
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the projection parameters.",
	Long: `defaults prints the complete parameter record of the configured
projection, with unset parameters filled in, in TOML format. The output
can be used as a configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := Params(Cfg)
		if err != nil {
			return err
		}
		if p, err = proj.Defaults(p); err != nil {
			return err
		}
		w, closeOut, err := openOutput(cmd, Cfg.GetString("Output"))
		if err != nil {
			return err
		}
		if err := toml.NewEncoder(w).Encode(newParamsFile(p)); err != nil {
			return fmt.Errorf("mapproj: encoding parameters: %v", err)
		}
		return closeOut()
	},
	DisableAutoGenTag: true,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available projections.",
	Long:  "list prints the identifier, name and class of each projection.",
	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "NAME", "CLASS", "LATITUDE"})
		for _, id := range proj.Names() {
			k, err := proj.Resolve(id)
			if err != nil {
				return err
			}
			t.AppendRow(table.Row{id, k.Title(), k.Class(), k.AuxLat()})
		}
		t.Render()
		return nil
	},
	DisableAutoGenTag: true,
}

var zoneCmd = &cobra.Command{
	Use:   "zone {designator | lat lon}",
	Short: "Look up UTM and UPS zones.",
	Long: `zone prints the latitude and longitude limits and the recommended
ellipsoids of a UTM or UPS zone. Given a latitude and longitude in degrees
instead, it prints the zone containing that point. With no arguments it
lists every zone.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		zones := proj.Zones()
		switch len(args) {
		case 1:
			zones = []string{args[0]}
		case 2:
			lat, err := cast.ToFloat64E(args[0])
			if err != nil {
				return fmt.Errorf("mapproj: invalid latitude: %v", err)
			}
			lon, err := cast.ToFloat64E(args[1])
			if err != nil {
				return fmt.Errorf("mapproj: invalid longitude: %v", err)
			}
			z, err := proj.FindZone(lat, lon)
			if err != nil {
				return err
			}
			zones = []string{z}
		}
		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ZONE", "LATITUDE", "LONGITUDE", "ELLIPSOIDS"})
		for _, z := range zones {
			lat, lon, err := proj.ZoneLimits(z)
			if err != nil {
				return err
			}
			ell, err := proj.RecommendedEllipsoids(z)
			if err != nil {
				return err
			}
			t.AppendRow(table.Row{strings.ToUpper(z), fmt.Sprintf("%g to %g", lat[0], lat[1]),
				fmt.Sprintf("%g to %g", lon[0], lon[1]), strings.Join(ell, ", ")})
		}
		t.Render()
		return nil
	},
	DisableAutoGenTag: true,
}

var distortCmd = &cobra.Command{
	Use:   "distort lat lon",
	Short: "Print the distortion of the projection at a point.",
	Long: `distort prints the scale factors along the meridian (h) and the
parallel (k), the areal scale, the axes of the Tissot indicatrix and the
maximum angular distortion of the configured projection at a point.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pr, err := Projection(Cfg)
		if err != nil {
			return err
		}
		lat, err := cast.ToFloat64E(args[0])
		if err != nil {
			return fmt.Errorf("mapproj: invalid latitude: %v", err)
		}
		lon, err := cast.ToFloat64E(args[1])
		if err != nil {
			return fmt.Errorf("mapproj: invalid longitude: %v", err)
		}
		s, err := distort.At(pr, lat, lon)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "h=%.9g k=%.9g area=%.9g a=%.9g b=%.9g omega=%.9g\n",
			s.H, s.K, s.Area, s.A, s.B, s.Omega)
		return nil
	},
	DisableAutoGenTag: true,
}

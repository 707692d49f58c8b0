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
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spatialmodel/mapproj/proj"
	"github.com/spf13/cobra"
)

// openInput opens the file at path, or standard input if path is empty.
func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return nil, nil, fmt.Errorf("mapproj: opening input: %v", err)
	}
	return f, f.Close, nil
}

// openOutput creates the file at path, or returns the command's output if
// path is empty.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(os.ExpandEnv(path))
	if err != nil {
		return nil, nil, fmt.Errorf("mapproj: creating output: %v", err)
	}
	return f, f.Close, nil
}

// readInput reads two columns of coordinates in CSV format. A line holding
// a single NaN is read as a NaN separator, and a header line is skipped.
func readInput(path string) (a, b []float64, err error) {
	in, closeIn, err := openInput(path)
	if err != nil {
		return nil, nil, err
	}
	defer closeIn()
	return readCSV(in)
}

func readCSV(in io.Reader) (a, b []float64, err error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	line := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("mapproj: reading CSV: %v", err)
		}
		line++
		if len(rec) == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "nan") {
			a = append(a, math.NaN())
			b = append(b, math.NaN())
			continue
		}
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf("mapproj: line %d: need 2 columns; have %d", line, len(rec))
		}
		va, erra := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		vb, errb := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if erra != nil || errb != nil {
			if line == 1 {
				continue // header
			}
			return nil, nil, fmt.Errorf("mapproj: line %d: invalid coordinates %q", line, rec[:2])
		}
		a = append(a, va)
		b = append(b, vb)
	}
	return a, b, nil
}

// writeOutput writes two columns of coordinates in CSV format.
func writeOutput(cmd *cobra.Command, path string, a, b []float64) error {
	out, closeOut, err := openOutput(cmd, path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(out)
	for i := range a {
		rec := []string{strconv.FormatFloat(a[i], 'g', -1, 64), strconv.FormatFloat(b[i], 'g', -1, 64)}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("mapproj: writing CSV: %v", err)
	}
	return closeOut()
}

// paramsFile is the TOML form of a parameter record. Its keys match the
// configuration variables, so that it can be read back as a
// configuration file.
type paramsFile struct {
	Projection    string
	Ellipsoid     []float64
	AngleUnits    string
	MapParallels  []float64
	Origin        []float64
	ScaleFactor   float64
	FalseEasting  float64
	FalseNorthing float64
	Zone          string    `toml:",omitempty"`
	Altitude      *float64  `toml:",omitempty"`
	TrimLat       []float64 `toml:",omitempty"`
	TrimLon       []float64 `toml:",omitempty"`
	MaxRange      *float64  `toml:",omitempty"`
	Aspect        string
}

func newParamsFile(p proj.Params) paramsFile {
	f := paramsFile{
		Projection:    p.ID,
		Ellipsoid:     p.Ellipsoid.Vector(),
		AngleUnits:    p.AngleUnits.String(),
		MapParallels:  p.MapParallels,
		Origin:        p.Origin[:],
		ScaleFactor:   p.ScaleFactor,
		FalseEasting:  p.FalseEasting,
		FalseNorthing: p.FalseNorthing,
		Zone:          p.Zone,
		Aspect:        p.Aspect.String(),
	}
	if f.MapParallels == nil {
		f.MapParallels = []float64{}
	}
	if !math.IsNaN(p.Altitude) {
		f.Altitude = &p.Altitude
	}
	if !math.IsNaN(p.TrimLat[0]) {
		f.TrimLat, f.TrimLon = p.TrimLat[:], p.TrimLon[:]
	}
	if !math.IsNaN(p.FlatLimit[1]) {
		f.MaxRange = &p.FlatLimit[1]
	}
	return f
}

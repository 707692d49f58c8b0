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

import "github.com/sirupsen/logrus"

// Log receives warnings about parameters that were adjusted while being
// defaulted, and debug messages about iterative solvers that stopped at
// their iteration cap.
var Log logrus.FieldLogger = logrus.StandardLogger()

func solverCapped(id string, input float64) {
	Log.WithFields(logrus.Fields{
		"projection": id,
		"input":      input,
	}).Debug("proj: iteration limit reached; returning best estimate")
}

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

// Package mapproj projects geographic coordinates onto map coordinates and
// back. The projections themselves are in package proj, the latitude and
// ellipsoid mathematics they build on in packages auxlat and geodesy, and
// the command-line interface in package mapprojutil.
package mapproj

// Version is the version of this software.
const Version = "0.1.0"

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

	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ErrUnknownProjection is the cause of the error returned when a
// projection identifier is not registered.
var ErrUnknownProjection = errors.New("proj: unknown projection")

// ErrShape is the cause of the error returned when coordinate arrays
// have different lengths.
var ErrShape = errors.New("proj: coordinate arrays have different shapes")

// ConfigError describes an invalid or inconsistent parameter record.
type ConfigError struct {
	ID, Field, Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("proj: %s: %s: %s", e.ID, e.Field, e.Msg)
}

func configErr(id, field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{ID: id, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err is, or contains, a ConfigError.
func IsConfigError(err error) bool {
	switch e := errors.Cause(err).(type) {
	case *ConfigError:
		return true
	case *multierror.Error:
		for _, ee := range e.Errors {
			if IsConfigError(ee) {
				return true
			}
		}
	}
	return false
}

// SPDX-License-Identifier: MPL-2.0

package conf

import "fmt"

// UnknownSettingError reports a Get for a key the settings module does
// not define. Propagated to the caller, never swallowed.
type UnknownSettingError struct {
	Key    string
	Module string
}

func (e *UnknownSettingError) Error() string {
	if e.Module == "" {
		return fmt.Sprintf("setting %q is not defined", e.Key)
	}
	return fmt.Sprintf("setting %q is not defined in module %q", e.Key, e.Module)
}

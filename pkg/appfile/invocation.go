// SPDX-License-Identifier: MPL-2.0

package appfile

import "fmt"

// Invocation carries the converted argument and flag values for a single
// command execution. Values have already been validated and converted to
// their declared parameter types by the time a RunFunc sees them.
type Invocation struct {
	args  map[string]any
	flags map[string]any
	// Raw holds the positional arguments as typed by the user, in order.
	Raw []string
}

// NewInvocation returns an empty invocation.
func NewInvocation() *Invocation {
	return &Invocation{
		args:  make(map[string]any),
		flags: make(map[string]any),
	}
}

// SetArg stores a converted positional argument value.
func (inv *Invocation) SetArg(name string, value any) {
	inv.args[name] = value
}

// SetFlag stores a converted flag value.
func (inv *Invocation) SetFlag(name string, value any) {
	inv.flags[name] = value
}

// Arg returns the converted value of a positional argument, or nil when
// the argument was not provided.
func (inv *Invocation) Arg(name string) any {
	return inv.args[name]
}

// Flag returns the converted value of a flag, or nil when the flag was
// not provided and has no default.
func (inv *Invocation) Flag(name string) any {
	return inv.flags[name]
}

// String returns the argument or flag value as a string. Arguments take
// precedence over flags when both carry the same name.
func (inv *Invocation) String(name string) string {
	if v, ok := inv.lookup(name); ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Bool returns the value as a bool, or false when absent or not boolean.
func (inv *Invocation) Bool(name string) bool {
	if v, ok := inv.lookup(name); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// Int returns the value as an int, or 0 when absent or not an integer.
func (inv *Invocation) Int(name string) int {
	if v, ok := inv.lookup(name); ok {
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}

// Float returns the value as a float64, or 0 when absent or not numeric.
func (inv *Invocation) Float(name string) float64 {
	if v, ok := inv.lookup(name); ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
	}
	return 0
}

func (inv *Invocation) lookup(name string) (any, bool) {
	if v, ok := inv.args[name]; ok {
		return v, true
	}
	if v, ok := inv.flags[name]; ok {
		return v, true
	}
	return nil, false
}

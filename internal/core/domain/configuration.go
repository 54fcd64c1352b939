// Package domain contains the core types of the build matrix.
package domain

// Settings holds the compiler/platform settings of a single build
// (build_type, arch, compiler, ...). Keys and values follow conan naming.
type Settings map[string]string

// Options holds package options. Values are either bool or string,
// matching what conan accepts on the command line.
type Options map[string]any

// BuildConfiguration is one point in the build matrix: the settings,
// package options, environment overrides and build-time requirements
// for a single package build.
type BuildConfiguration struct {
	Settings      Settings
	Options       Options
	EnvVars       map[string]string
	BuildRequires []string
}

// Matrix is the ordered set of configurations built in one CI run.
type Matrix []BuildConfiguration

// Clone returns a deep copy of the configuration. Mutating the copy's
// maps or slices must never be visible through the original.
func (c BuildConfiguration) Clone() BuildConfiguration {
	return BuildConfiguration{
		Settings:      cloneStringMap(c.Settings),
		Options:       c.Options.Clone(),
		EnvVars:       cloneStringMap(c.EnvVars),
		BuildRequires: cloneStrings(c.BuildRequires),
	}
}

// Clone returns a deep copy of the options map.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	res := make(Options, len(o))
	for k, v := range o {
		res[k] = v
	}
	return res
}

// Truthy reports whether an option value is set in the conan sense.
// Absent values, false, empty strings and the literals "False", "false"
// and "0" are falsy; everything else is truthy.
func (o Options) Truthy(name string) bool {
	v, ok := o[name]
	if !ok {
		return false
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		switch val {
		case "", "False", "false", "0":
			return false
		}
		return true
	case nil:
		return false
	default:
		return true
	}
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	res := make(map[string]string, len(m))
	for k, v := range m {
		res[k] = v
	}
	return res
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	res := make([]string, len(s))
	copy(res, s)
	return res
}

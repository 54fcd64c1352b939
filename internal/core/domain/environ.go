package domain

import "strings"

// Environment variable names consumed by the matrix filter.
const (
	// EnvBuildNumber carries the CI build number stamped into every
	// retained configuration. Defaults to "-" when unset.
	EnvBuildNumber = "BITPRIM_BUILD_NUMBER"

	// EnvRunTests enables the package's test build when set to "true".
	EnvRunTests = "BITPRIM_RUN_TESTS"
)

// ParseEnviron converts "KEY=VALUE" pairs, as returned by os.Environ,
// into a map. Later duplicates win. Entries without a separator are
// skipped.
func ParseEnviron(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, entry := range environ {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			env[k] = v
		}
	}
	return env
}

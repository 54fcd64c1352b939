package conan

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bitprim/bitprim-ci/internal/core/domain"
)

// createArgs builds the argument list of a `conan create` invocation for
// one configuration. Settings, options and environment overrides are
// emitted in sorted key order so invocations are reproducible.
func createArgs(spec *domain.PackagerSpec, cfg domain.BuildConfiguration) []string {
	args := []string{"create", spec.Recipe, spec.Reference.User + "/" + spec.Reference.Channel}

	for _, k := range sortedKeys(cfg.Settings) {
		args = append(args, "-s", k+"="+cfg.Settings[k])
	}
	for _, k := range sortedKeys(cfg.Options) {
		args = append(args, "-o", k+"="+formatOption(cfg.Options[k]))
	}
	for _, k := range sortedKeys(cfg.EnvVars) {
		args = append(args, "-e", k+"="+cfg.EnvVars[k])
	}

	return args
}

// remoteArgs builds the argument list registering one conan remote.
func remoteArgs(name, url string) []string {
	return []string{"remote", "add", name, url, "--force"}
}

// formatOption renders an option value the way conan expects it on the
// command line. Booleans become "True"/"False".
func formatOption(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "True"
		}
		return "False"
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// buildRequiresEnv renders the CONAN_BUILD_REQUIRES value injecting
// build-time requirements into the invocation.
func buildRequiresEnv(requires []string) string {
	return strings.Join(requires, ",")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

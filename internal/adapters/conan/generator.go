// Package conan drives the conan CLI: it generates the candidate build
// matrix and executes configurations with `conan create`.
package conan

import (
	"context"
	"runtime"

	"github.com/bitprim/bitprim-ci/internal/core/domain"
	"github.com/bitprim/bitprim-ci/internal/engine/filter"
)

// Generate enumerates the candidate configurations for the given spec:
// each architecture crossed with each build type, once with the shared
// option off and once with it on. This is the local analog of conan
// package tools' common builds.
func (b *Builder) Generate(_ context.Context, spec *domain.PackagerSpec) (domain.Matrix, error) {
	sharedKey := spec.Reference.OptionKey(filter.OptionShared)

	matrix := make(domain.Matrix, 0, 2*len(spec.Archs)*len(spec.BuildTypes))
	for _, arch := range spec.Archs {
		for _, buildType := range spec.BuildTypes {
			for _, shared := range []bool{false, true} {
				settings := make(domain.Settings, len(spec.BaseSettings)+3)
				for k, v := range spec.BaseSettings {
					settings[k] = v
				}
				// Axis values always win over base settings.
				settings["os"] = osSetting(runtime.GOOS)
				settings["arch"] = arch
				settings["build_type"] = buildType

				matrix = append(matrix, domain.BuildConfiguration{
					Settings:      settings,
					Options:       domain.Options{sharedKey: shared},
					EnvVars:       map[string]string{},
					BuildRequires: append([]string(nil), spec.BuildRequires...),
				})
			}
		}
	}

	return matrix, nil
}

// osSetting maps a GOOS value to the corresponding conan os setting.
func osSetting(goos string) string {
	switch goos {
	case "linux":
		return "Linux"
	case "darwin":
		return "Macos"
	case "windows":
		return "Windows"
	case "freebsd":
		return "FreeBSD"
	default:
		return "Linux"
	}
}

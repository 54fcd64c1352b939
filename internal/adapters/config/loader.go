// Package config provides the packager configuration loader.
package config

import (
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/bitprim/bitprim-ci/internal/core/domain"
)

// Defaults applied when the configuration omits a field. They mirror the
// values the CI scripts have always used.
const (
	DefaultUser        = "bitprim"
	DefaultChannel     = "testing"
	DefaultRemote      = "https://api.bintray.com/conan/bitprim/bitprim"
	DefaultRecipe      = "."
	DefaultParallelism = 1
)

var defaultBuildTypes = []string{"Release", "Debug"}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads a configuration file from the given path and returns the
// validated packager spec.
func (l *Loader) Load(path string) (*domain.PackagerSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var packfile Packfile
	if err := yaml.Unmarshal(data, &packfile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	spec := toSpec(packfile)
	if err := spec.Reference.Validate(); err != nil {
		return nil, err
	}
	if spec.Parallelism < 1 {
		return nil, zerr.With(zerr.New("parallelism must be positive"), "parallelism", spec.Parallelism)
	}
	for _, bt := range spec.BuildTypes {
		if bt != "Release" && bt != "Debug" && bt != "RelWithDebInfo" && bt != "MinSizeRel" {
			return nil, zerr.With(zerr.New("unknown build type"), "build_type", bt)
		}
	}

	return spec, nil
}

func toSpec(packfile Packfile) *domain.PackagerSpec {
	spec := &domain.PackagerSpec{
		Reference: domain.PackageReference{
			Name:    packfile.Package.Name,
			Version: packfile.Package.Version,
			User:    packfile.Package.User,
			Channel: packfile.Package.Channel,
		},
		Remotes:       packfile.Remotes,
		Archs:         packfile.Archs,
		BuildTypes:    packfile.BuildTypes,
		BaseSettings:  domain.Settings(packfile.Settings),
		BuildRequires: packfile.BuildRequires,
		Recipe:        packfile.Recipe,
		Parallelism:   packfile.Parallelism,
	}

	if spec.Reference.User == "" {
		spec.Reference.User = DefaultUser
	}
	if spec.Reference.Channel == "" {
		spec.Reference.Channel = DefaultChannel
	}
	if len(spec.Remotes) == 0 {
		spec.Remotes = []string{DefaultRemote}
	}
	if len(spec.Archs) == 0 {
		spec.Archs = []string{"x86_64"}
	}
	if len(spec.BuildTypes) == 0 {
		spec.BuildTypes = append([]string(nil), defaultBuildTypes...)
	}
	if spec.Recipe == "" {
		spec.Recipe = DefaultRecipe
	}
	if spec.Parallelism == 0 {
		spec.Parallelism = DefaultParallelism
	}

	return spec
}

package config

// Packfile represents the structure of the packager.yaml configuration file.
type Packfile struct {
	Package       PackageDTO        `yaml:"package"`
	Remotes       []string          `yaml:"remotes"`
	Archs         []string          `yaml:"archs"`
	BuildTypes    []string          `yaml:"build_types"`
	Settings      map[string]string `yaml:"settings"`
	BuildRequires []string          `yaml:"build_requires"`
	Recipe        string            `yaml:"recipe"`
	Parallelism   int               `yaml:"parallelism"`
}

// PackageDTO identifies the conan package in the configuration.
type PackageDTO struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	User    string `yaml:"user"`
	Channel string `yaml:"channel"`
}

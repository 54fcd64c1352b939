package domain

// PackagerSpec is the loaded packager configuration: the package to
// build and the axes the generated matrix enumerates.
type PackagerSpec struct {
	Reference PackageReference

	// Remotes are conan remote URLs registered before building.
	Remotes []string

	// Archs, BuildTypes and BaseSettings span the generated matrix.
	Archs        []string
	BuildTypes   []string
	BaseSettings Settings

	// BuildRequires are build-time dependency specs applied to every
	// generated configuration.
	BuildRequires []string

	// Recipe is the path to the directory holding the conanfile.
	Recipe string

	// Parallelism bounds concurrent package builds. 1 means sequential.
	Parallelism int
}

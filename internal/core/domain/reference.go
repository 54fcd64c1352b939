package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// PackageReference identifies the conan package being built,
// e.g. bitprim-network/0.7.0@bitprim/testing.
type PackageReference struct {
	Name    string
	Version string
	User    string
	Channel string
}

// String renders the reference in conan's name/version@user/channel form.
func (r PackageReference) String() string {
	return r.Name + "/" + r.Version + "@" + r.User + "/" + r.Channel
}

// OptionKey returns the fully qualified key of a package option,
// e.g. "bitprim-network:shared".
func (r PackageReference) OptionKey(option string) string {
	return r.Name + ":" + option
}

// Validate checks that all reference fields are present and free of
// separator characters.
func (r PackageReference) Validate() error {
	fields := map[string]string{
		"name":    r.Name,
		"version": r.Version,
		"user":    r.User,
		"channel": r.Channel,
	}
	for field, value := range fields {
		if value == "" {
			return zerr.With(ErrInvalidReference, "missing_field", field)
		}
		if strings.ContainsAny(value, "/@:") {
			return zerr.With(ErrInvalidReference, "field", field)
		}
	}
	return nil
}

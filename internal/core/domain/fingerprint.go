package domain

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes a deterministic identifier for a configuration.
// Two configurations with equal settings, options and build requirements
// always produce the same fingerprint, regardless of map iteration order.
// Environment overrides are excluded so that CI metadata like build
// numbers does not change the identity of a build.
func Fingerprint(c BuildConfiguration) string {
	hasher := xxhash.New()

	writeSorted(hasher, "settings", keysOf(c.Settings), func(k string) string {
		return c.Settings[k]
	})
	writeSorted(hasher, "options", keysOf(c.Options), func(k string) string {
		return fmt.Sprintf("%v", c.Options[k])
	})

	requires := cloneStrings(c.BuildRequires)
	slices.Sort(requires)
	_, _ = hasher.WriteString("requires;")
	for _, r := range requires {
		_, _ = hasher.WriteString(r)
		_, _ = hasher.WriteString(";")
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

func writeSorted(hasher *xxhash.Digest, section string, keys []string, value func(string) string) {
	slices.Sort(keys)
	_, _ = hasher.WriteString(section)
	_, _ = hasher.WriteString(";")
	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.WriteString("=")
		_, _ = hasher.WriteString(value(k))
		_, _ = hasher.WriteString(";")
	}
}

func keysOf[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Package filter narrows the generated build matrix to the
// configurations actually packaged in CI.
package filter

import "github.com/bitprim/bitprim-ci/internal/core/domain"

// Option names of the packaged library, qualified per configuration
// with the package name (e.g. "bitprim-network:shared").
const (
	OptionShared   = "shared"
	OptionTests    = "with_tests"
	OptionCurrency = "currency"
)

// Filter retains Release static builds and expands each of them into
// one configuration per currency variant.
type Filter struct {
	sharedKey   string
	testsKey    string
	currencyKey string
}

// New creates a Filter for the given package reference.
func New(ref domain.PackageReference) *Filter {
	return &Filter{
		sharedKey:   ref.OptionKey(OptionShared),
		testsKey:    ref.OptionKey(OptionTests),
		currencyKey: ref.OptionKey(OptionCurrency),
	}
}

// Apply computes the output matrix in a single stateless pass.
//
// A configuration is retained iff its build_type setting is "Release"
// and the shared option is falsy. Every retained configuration is
// stamped with the CI build number from env (default "-"), gets its
// test option enabled when env requests it, and is expanded into a BCH
// and a BTC variant whose options are independent deep copies.
// Dropped configurations are never touched.
func (f *Filter) Apply(in domain.Matrix, env map[string]string) domain.Matrix {
	out := make(domain.Matrix, 0, 2*len(in))

	for _, cfg := range in {
		if cfg.Settings["build_type"] != "Release" || cfg.Options.Truthy(f.sharedKey) {
			continue
		}

		buildNumber, ok := env[domain.EnvBuildNumber]
		if !ok {
			buildNumber = "-"
		}
		if cfg.EnvVars == nil {
			cfg.EnvVars = make(map[string]string, 1)
		}
		cfg.EnvVars[domain.EnvBuildNumber] = buildNumber

		if cfg.Options == nil {
			cfg.Options = make(domain.Options, 2)
		}
		if env[domain.EnvRunTests] == "true" {
			cfg.Options[f.testsKey] = true
		}

		for _, currency := range domain.Currencies() {
			opts := cfg.Options.Clone()
			opts[f.currencyKey] = currency.String()
			out = append(out, domain.BuildConfiguration{
				Settings:      cfg.Settings,
				Options:       opts,
				EnvVars:       cfg.EnvVars,
				BuildRequires: cfg.BuildRequires,
			})
		}
	}

	return out
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitprim/bitprim-ci/internal/core/domain"
)

func TestBuildConfiguration_Clone(t *testing.T) {
	original := domain.BuildConfiguration{
		Settings:      domain.Settings{"build_type": "Release"},
		Options:       domain.Options{"pkg:shared": false},
		EnvVars:       map[string]string{"CC": "gcc"},
		BuildRequires: []string{"cmake_installer/3.29.0@conan/stable"},
	}

	clone := original.Clone()
	clone.Settings["build_type"] = "Debug"
	clone.Options["pkg:shared"] = true
	clone.EnvVars["CC"] = "clang"
	clone.BuildRequires[0] = "ninja/1.11.1"

	assert.Equal(t, "Release", original.Settings["build_type"])
	assert.Equal(t, false, original.Options["pkg:shared"])
	assert.Equal(t, "gcc", original.EnvVars["CC"])
	assert.Equal(t, "cmake_installer/3.29.0@conan/stable", original.BuildRequires[0])
}

func TestBuildConfiguration_CloneNilMaps(t *testing.T) {
	clone := domain.BuildConfiguration{}.Clone()

	assert.Nil(t, clone.Settings)
	assert.Nil(t, clone.Options)
	assert.Nil(t, clone.EnvVars)
	assert.Nil(t, clone.BuildRequires)
}

func TestOptions_Truthy(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"string True", "True", true},
		{"string False", "False", false},
		{"lowercase false", "false", false},
		{"zero", "0", false},
		{"empty string", "", false},
		{"nil", nil, false},
		{"arbitrary string", "BCH", true},
		{"number-like string", "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := domain.Options{"pkg:flag": tt.value}
			assert.Equal(t, tt.want, opts.Truthy("pkg:flag"))
		})
	}
}

func TestOptions_TruthyAbsentKey(t *testing.T) {
	assert.False(t, domain.Options{}.Truthy("pkg:flag"))
	assert.False(t, domain.Options(nil).Truthy("pkg:flag"))
}

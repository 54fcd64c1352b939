package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bitprim/bitprim-ci/internal/app"
	"github.com/bitprim/bitprim-ci/internal/core/domain"
	"github.com/bitprim/bitprim-ci/internal/core/ports/mocks"
)

func testSpec() *domain.PackagerSpec {
	return &domain.PackagerSpec{
		Reference: domain.PackageReference{
			Name:    "bitprim-network",
			Version: "0.7.0",
			User:    "bitprim",
			Channel: "testing",
		},
		Archs:       []string{"x86_64"},
		BuildTypes:  []string{"Release", "Debug"},
		Recipe:      ".",
		Parallelism: 1,
	}
}

func candidateMatrix() domain.Matrix {
	return domain.Matrix{
		{
			Settings: domain.Settings{"build_type": "Release", "arch": "x86_64"},
			Options:  domain.Options{"bitprim-network:shared": false},
			EnvVars:  map[string]string{},
		},
		{
			Settings: domain.Settings{"build_type": "Release", "arch": "x86_64"},
			Options:  domain.Options{"bitprim-network:shared": true},
			EnvVars:  map[string]string{},
		},
		{
			Settings: domain.Settings{"build_type": "Debug", "arch": "x86_64"},
			Options:  domain.Options{"bitprim-network:shared": false},
			EnvVars:  map[string]string{},
		},
	}
}

func TestApp_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockBuilder := mocks.NewMockMatrixBuilder(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	spec := testSpec()
	mockLoader.EXPECT().Load("packager.yaml").Return(spec, nil)
	mockBuilder.EXPECT().Generate(gomock.Any(), spec).Return(candidateMatrix(), nil)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	var built domain.Matrix
	mockBuilder.EXPECT().Run(gomock.Any(), spec, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.PackagerSpec, matrix domain.Matrix) error {
			built = matrix
			return nil
		})

	a := app.New(mockLoader, mockBuilder, mockLogger, map[string]string{
		"BITPRIM_BUILD_NUMBER": "7",
	})

	err := a.Run(context.Background(), app.RunOptions{ConfigPath: "packager.yaml"})
	require.NoError(t, err)

	// One Release static candidate expands into the two currency variants.
	require.Len(t, built, 2)
	assert.Equal(t, "BCH", built[0].Options["bitprim-network:currency"])
	assert.Equal(t, "BTC", built[1].Options["bitprim-network:currency"])
	assert.Equal(t, "7", built[0].EnvVars["BITPRIM_BUILD_NUMBER"])
}

func TestApp_Run_EmptyAfterFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockBuilder := mocks.NewMockMatrixBuilder(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	spec := testSpec()
	debugOnly := domain.Matrix{
		{
			Settings: domain.Settings{"build_type": "Debug"},
			Options:  domain.Options{"bitprim-network:shared": false},
			EnvVars:  map[string]string{},
		},
	}

	mockLoader.EXPECT().Load(gomock.Any()).Return(spec, nil)
	mockBuilder.EXPECT().Generate(gomock.Any(), spec).Return(debugOnly, nil)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any())
	// Builder.Run must not be called for an empty matrix.

	a := app.New(mockLoader, mockBuilder, mockLogger, map[string]string{})

	err := a.Run(context.Background(), app.RunOptions{ConfigPath: "packager.yaml"})
	assert.NoError(t, err)
}

func TestApp_Run_BuildFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockBuilder := mocks.NewMockMatrixBuilder(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	spec := testSpec()
	mockLoader.EXPECT().Load(gomock.Any()).Return(spec, nil)
	mockBuilder.EXPECT().Generate(gomock.Any(), spec).Return(candidateMatrix(), nil)
	mockBuilder.EXPECT().Run(gomock.Any(), spec, gomock.Any()).Return(domain.ErrBuildExecutionFailed)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	a := app.New(mockLoader, mockBuilder, mockLogger, map[string]string{})

	err := a.Run(context.Background(), app.RunOptions{ConfigPath: "packager.yaml"})
	assert.ErrorIs(t, err, domain.ErrBuildExecutionFailed)
}

func TestApp_Matrix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockBuilder := mocks.NewMockMatrixBuilder(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	spec := testSpec()
	mockLoader.EXPECT().Load(gomock.Any()).Return(spec, nil)
	mockBuilder.EXPECT().Generate(gomock.Any(), spec).Return(candidateMatrix(), nil)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	// Builder.Run must never run for a dry-run matrix computation.

	a := app.New(mockLoader, mockBuilder, mockLogger, map[string]string{})

	matrix, err := a.Matrix(context.Background(), app.RunOptions{ConfigPath: "packager.yaml"})
	require.NoError(t, err)
	assert.Len(t, matrix, 2)
}

func TestApp_Run_ConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockBuilder := mocks.NewMockMatrixBuilder(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLoader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrInvalidReference)

	a := app.New(mockLoader, mockBuilder, mockLogger, map[string]string{})

	err := a.Run(context.Background(), app.RunOptions{ConfigPath: "packager.yaml"})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BasicAcid/meshrelax/internal/subgrid"
)

func identity() subgrid.Transition[float64] {
	return func(g subgrid.Reader[float64], i, j int) float64 { return g.At(i, j) }
}

func baseConfig() Config[float64] {
	return Config[float64]{
		Q:          2,
		M:          4,
		Initial:    InitialValues[float64]{North: 1, South: 0, East: 0, West: 0, Interior: 0},
		Transition: identity(),
	}
}

func TestValidateAccepts(t *testing.T) {
	require.NoError(t, baseConfig().Validate())
}

func TestValidateRejectsNonPositiveQ(t *testing.T) {
	c := baseConfig()
	c.Q = 0
	require.Error(t, c.Validate())
}

func TestValidateRejectsOddM(t *testing.T) {
	c := baseConfig()
	c.M = 5
	require.Error(t, c.Validate())
}

func TestValidateRejectsMissingTransition(t *testing.T) {
	c := baseConfig()
	c.Transition = nil
	require.Error(t, c.Validate())
}

func TestValidateRejectsNegativeSteps(t *testing.T) {
	c := baseConfig()
	c.RelaxationStepsPerOutput = -1
	require.Error(t, c.Validate())
}

func TestStepsPerOutputDefaults(t *testing.T) {
	c := baseConfig()
	require.Equal(t, DefaultRelaxationStepsPerOutput, c.StepsPerOutput())

	c.RelaxationStepsPerOutput = 3
	require.Equal(t, 3, c.StepsPerOutput())
}

func TestN(t *testing.T) {
	require.Equal(t, 8, baseConfig().N())
}

func TestCellInitBoundariesAndInterior(t *testing.T) {
	c := baseConfig()
	init := c.CellInit()
	n := c.N()

	require.Equal(t, 1.0, init(0, 3))
	require.Equal(t, 0.0, init(n+1, 3))
	require.Equal(t, 0.0, init(3, 0))
	require.Equal(t, 0.0, init(3, n+1))
	require.Equal(t, 0.0, init(3, 3))
}

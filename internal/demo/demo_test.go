package demo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BasicAcid/meshrelax/internal/subgrid"
)

type constReader[V any] struct{ v V }

func (r constReader[V]) At(i, j int) V { return r.v }

type mapReader struct{ m map[[2]int]float64 }

func (r mapReader) At(i, j int) float64 { return r.m[[2]int{i, j}] }

type mapBoolReader struct{ m map[[2]int]bool }

func (r mapBoolReader) At(i, j int) bool { return r.m[[2]int{i, j}] }

func TestIdentityReturnsCenter(t *testing.T) {
	f := Identity[int]()
	require.Equal(t, 5, f(constReader[int]{v: 5}, 1, 1))
}

func TestLaplaceAveragesFourNeighbors(t *testing.T) {
	g := mapReader{m: map[[2]int]float64{
		{0, 1}: 1, {2, 1}: 3, {1, 0}: 5, {1, 2}: 7,
	}}
	got := Laplace()(g, 1, 1)
	require.Equal(t, (1.0+3.0+5.0+7.0)/4, got)
}

func TestVonNeumannLifeBirth(t *testing.T) {
	g := mapBoolReader{m: map[[2]int]bool{
		{0, 1}: true, {2, 1}: true, {1, 0}: true, {1, 2}: false, {1, 1}: false,
	}}
	require.True(t, VonNeumannLife()(g, 1, 1))
}

func TestVonNeumannLifeDeathByIsolation(t *testing.T) {
	g := mapBoolReader{m: map[[2]int]bool{
		{0, 1}: false, {2, 1}: false, {1, 0}: false, {1, 2}: false, {1, 1}: true,
	}}
	require.False(t, VonNeumannLife()(g, 1, 1))
}

func TestVonNeumannLifeSurvival(t *testing.T) {
	g := mapBoolReader{m: map[[2]int]bool{
		{0, 1}: true, {2, 1}: false, {1, 0}: false, {1, 2}: false, {1, 1}: true,
	}}
	require.True(t, VonNeumannLife()(g, 1, 1))
}

var _ subgrid.Reader[float64] = mapReader{}
var _ subgrid.Reader[bool] = mapBoolReader{}

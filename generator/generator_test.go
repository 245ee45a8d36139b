package generator_test

import (
	"context"
	"testing"

	"github.com/nagare-zdd/nagare/generator"
	"github.com/stretchr/testify/require"
)

func TestGenerator_EmptyTwoByTwoIsAlreadyUnique(t *testing.T) {
	g := generator.New(1)

	p, err := g.Generate(context.Background(), 2, 2, 0)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.True(t, p.IsConnected())
	require.Greater(t, g.NumCallCountSolutions(), 0)
}

func TestGenerator_SameSeedIsDeterministic(t *testing.T) {
	g1 := generator.New(42)
	g2 := generator.New(42)

	p1, err := g1.Generate(context.Background(), 3, 3, 1)
	require.NoError(t, err)
	p2, err := g2.Generate(context.Background(), 3, 3, 1)
	require.NoError(t, err)

	require.Equal(t, p1.String(), p2.String())
}

func TestGenerator_ResetClearsCallCounter(t *testing.T) {
	g := generator.New(7)

	_, err := g.Generate(context.Background(), 2, 2, 0)
	require.NoError(t, err)
	require.Greater(t, g.NumCallCountSolutions(), 0)

	g.Reset()
	require.Equal(t, 0, g.NumCallCountSolutions())
}

func TestGenerator_GenerateIsCancellable(t *testing.T) {
	g := generator.New(3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx, 4, 4, 3)
	require.Error(t, err)
}

func TestGenerator_SeedReportsConstructionValue(t *testing.T) {
	g := generator.New(99)
	require.Equal(t, int64(99), g.Seed())
}

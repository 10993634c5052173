package pricing

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ResolveReturnsRegisteredInstance(t *testing.T) {
	registry := NewRegistry()
	s := NewPercentageDiscount(decimal.RequireFromString("0.10"))

	registry.Register("percentage", s)

	got, err := registry.Resolve("percentage")
	require.NoError(t, err)
	require.Same(t, s, got, "expected the exact registered instance")
}

func TestRegistry_ResolveUnknownKeyFails(t *testing.T) {
	registry := NewRegistry()

	got, err := registry.Resolve("unknown")
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, got, "must never fall back to a default strategy")
}

func TestRegistry_ReRegisterOverwrites(t *testing.T) {
	registry := NewRegistry()
	s1 := NewFixedDiscount(decimal.RequireFromString("10"))
	s2 := NewFixedDiscount(decimal.RequireFromString("20"))

	registry.Register("fixed", s1)
	registry.Register("fixed", s2)

	got, err := registry.Resolve("fixed")
	require.NoError(t, err)
	require.Same(t, s2, got, "last registration wins")
}

func TestRegistry_Keys(t *testing.T) {
	registry := NewRegistry()
	require.Empty(t, registry.Keys())

	registry.Register("percentage", NewPercentageDiscount(decimal.RequireFromString("0.10")))
	registry.Register("fixed", NewFixedDiscount(decimal.RequireFromString("15")))

	require.ElementsMatch(t, []string{"percentage", "fixed"}, registry.Keys())
}

func TestRegistry_ConcurrentRegisterAndResolve(t *testing.T) {
	registry := NewRegistry()
	s := NewFixedDiscount(decimal.RequireFromString("15"))
	registry.Register("fixed", s)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.Register("fixed", s)
		}()
		go func() {
			defer wg.Done()
			got, err := registry.Resolve("fixed")
			require.NoError(t, err)
			require.Same(t, s, got)
		}()
	}
	wg.Wait()
}

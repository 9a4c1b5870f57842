package pvectortesting

import (
	"math/rand/v2"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-pvector/pvector"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	Rng *rand.Rand
}

type TestConfig struct {
	// The generator is seeded from Seed. It is normal to force it to some
	// fixed value so that the generated data is the same from run to run.
	Seed            uint64
	TestLabelPrefix string
	LogLevel        string // can be "" defaults to INFO
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "INFO"
	}
	logger.New(level)

	return TestContext{
		T:   t,
		Log: logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		Rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Sequence returns 0..n-1.
func Sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

// AppendBuilt builds 0..n-1 one Add at a time, so the tree is shaped by
// growth rather than by the bulk builder.
func AppendBuilt(n int) pvector.Vector[int] {
	v := pvector.Empty[int]()
	for i := range n {
		v = v.Add(i)
	}
	return v
}

// RandomInts returns n values drawn from the context generator.
func (c *TestContext) RandomInts(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = c.Rng.IntN(1 << 20)
	}
	return items
}

// RandomIndex returns an index in [0, n).
func (c *TestContext) RandomIndex(n int) int {
	require.Positive(c.T, n)
	return c.Rng.IntN(n)
}

// RequireElements asserts that v holds exactly want, checking both random
// access and forward traversal.
func (c *TestContext) RequireElements(v pvector.Vector[int], want []int) {
	c.T.Helper()
	RequireElements(c.T, v, want)
}

func RequireElements[T comparable](t *testing.T, v pvector.Vector[T], want []T) {
	t.Helper()
	require.Equal(t, len(want), v.Len())
	for i, w := range want {
		got, ok := v.Get(i)
		require.True(t, ok, "index %d missing", i)
		require.Equal(t, w, got, "index %d", i)
	}
	if len(want) == 0 {
		require.Empty(t, v.ToSlice())
		return
	}
	require.Equal(t, want, v.ToSlice())
}

// RequirePathCopied asserts the structural sharing guarantee for a single
// update: only the root to leaf path of `to` is newly allocated.
func RequirePathCopied[T any](t *testing.T, from, to pvector.Vector[T]) {
	t.Helper()
	s := pvector.Sharing(from, to)
	require.Equal(t, to.Height()+1, s.Fresh(), "fresh nodes: %+v", s)
}

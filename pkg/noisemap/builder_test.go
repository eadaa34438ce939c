package noisemap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noisegraph/pkg/noise"
	"noisegraph/pkg/noise/module"
)

func TestBuilderValidatesBounds(t *testing.T) {
	b := NewBuilder()
	b.SetSourceModule(module.NewConst(0))
	b.SetDestNoiseMap(NewNoiseMap())
	b.SetDestSize(4, 4)

	b.SetBounds(1, 1, 0, 4) // empty x window
	assert.ErrorIs(t, b.Build(), noise.ErrInvalidParam)

	b.SetBounds(2, 1, 0, 4) // inverted x window
	assert.ErrorIs(t, b.Build(), noise.ErrInvalidParam)

	b.SetBounds(0, 4, 4, 0) // inverted z window
	assert.ErrorIs(t, b.Build(), noise.ErrInvalidParam)
}

func TestBuilderValidatesSize(t *testing.T) {
	b := NewBuilder()
	b.SetSourceModule(module.NewConst(0))
	b.SetDestNoiseMap(NewNoiseMap())
	b.SetBounds(0, 1, 0, 1)

	b.SetDestSize(0, 4)
	assert.ErrorIs(t, b.Build(), noise.ErrInvalidParam)

	b.SetDestSize(4, -1)
	assert.ErrorIs(t, b.Build(), noise.ErrInvalidParam)
}

func TestBuilderRequiresSource(t *testing.T) {
	// Bounds, size and destination are all valid here, so the only
	// complaint left is the unbound source module.
	b := NewBuilder()
	b.SetDestNoiseMap(NewNoiseMap())
	b.SetDestSize(4, 4)
	b.SetBounds(0, 1, 0, 1)

	assert.ErrorIs(t, b.Build(), noise.ErrInvalidParam)
	assert.ErrorIs(t, b.BuildWithCallback(func(x, z int, value float64) {}), noise.ErrInvalidParam)
}

func TestBuilderRequiresDest(t *testing.T) {
	b := NewBuilder()
	b.SetSourceModule(module.NewConst(0))
	b.SetDestSize(4, 4)
	b.SetBounds(0, 1, 0, 1)

	assert.ErrorIs(t, b.Build(), noise.ErrInvalidParam)
}

func TestBuilderSamplesIndexGrid(t *testing.T) {
	// With a unit cell size the world position of cell (x, z) is
	// exactly (x, z), so a coordinate-reporting module exposes the
	// sampling grid directly.
	probe := module.NewFunc(func(x, y float64) float64 { return x*10.0 + y })

	dst := NewNoiseMap()
	b := NewBuilder()
	b.SetSourceModule(probe)
	b.SetDestNoiseMap(dst)
	b.SetDestSize(4, 8)
	b.SetBounds(0, 4, 0, 8)
	require.NoError(t, b.Build())

	require.Equal(t, 4, dst.Width())
	require.Equal(t, 8, dst.Height())
	for z := 0; z < 8; z++ {
		for x := 0; x < 4; x++ {
			want := float64(x)*10.0 + float64(z)
			assert.Equal(t, want, dst.GetValue(x, z))
		}
	}
}

func TestBuilderMatchesModuleSamples(t *testing.T) {
	p := module.NewPerlin()
	p.SetSeed(99)

	dst := NewNoiseMap()
	b := NewBuilder()
	b.SetSourceModule(p)
	b.SetDestNoiseMap(dst)
	b.SetDestSize(16, 16)
	b.SetBounds(-2, 2, -2, 2)
	require.NoError(t, b.Build())

	xDelta := 4.0 / 16.0
	zDelta := 4.0 / 16.0
	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
			worldX := -2.0 + float64(x)*xDelta
			worldZ := -2.0 + float64(z)*zDelta
			assert.Equal(t, p.GetValue(worldX, worldZ), dst.GetValue(x, z))
		}
	}
}

func TestBuilderCallbackMatchesBuild(t *testing.T) {
	// The callback path must produce the same samples as the parallel
	// map-filling path, in row-major order.
	p := module.NewPerlin()
	p.SetSeed(5)

	dst := NewNoiseMap()
	b := NewBuilder()
	b.SetSourceModule(p)
	b.SetDestNoiseMap(dst)
	b.SetDestSize(32, 16)
	b.SetBounds(0.5, 3.5, -1.25, 1.75)
	b.EnableSeamless(true)
	require.NoError(t, b.Build())

	type cell struct {
		x, z  int
		value float64
	}
	var streamed []cell
	require.NoError(t, b.BuildWithCallback(func(x, z int, value float64) {
		streamed = append(streamed, cell{x, z, value})
	}))

	require.Equal(t, 32*16, len(streamed))
	for i, c := range streamed {
		assert.Equal(t, i%32, c.x)
		assert.Equal(t, i/32, c.z)
		assert.Equal(t, dst.GetValue(c.x, c.z), c.value)
	}
}

func TestBuilderCallbackRejectsNil(t *testing.T) {
	b := NewBuilder()
	b.SetSourceModule(module.NewConst(0))
	b.SetDestSize(4, 4)
	b.SetBounds(0, 1, 0, 1)

	assert.ErrorIs(t, b.BuildWithCallback(nil), noise.ErrInvalidParam)
}

func TestBuilderCallbackLeavesDestUntouched(t *testing.T) {
	dst := NewNoiseMap()
	require.NoError(t, dst.SetSize(2, 2))
	dst.Clear(42.0)

	b := NewBuilder()
	b.SetSourceModule(module.NewConst(1))
	b.SetDestNoiseMap(dst)
	b.SetDestSize(8, 8)
	b.SetBounds(0, 1, 0, 1)
	require.NoError(t, b.BuildWithCallback(func(x, z int, value float64) {}))

	assert.Equal(t, 2, dst.Width())
	assert.Equal(t, 42.0, dst.GetValue(0, 0))
}

func TestBuilderResizesDest(t *testing.T) {
	dst := NewNoiseMap()
	require.NoError(t, dst.SetSize(2, 2))

	b := NewBuilder()
	b.SetSourceModule(module.NewConst(3))
	b.SetDestNoiseMap(dst)
	b.SetDestSize(16, 9)
	b.SetBounds(0, 1, 0, 1)
	require.NoError(t, b.Build())

	assert.Equal(t, 16, dst.Width())
	assert.Equal(t, 9, dst.Height())
	assert.Equal(t, 3.0, dst.GetValue(15, 8))
}

func TestBuilderSeamlessEdgesAgree(t *testing.T) {
	// In seamless mode the jump between the last column and the first
	// column of the adjacent tile must be no larger than typical
	// in-tile cell-to-cell jumps. The same holds for rows.
	const n = 64

	p := module.NewPerlin()
	p.SetSeed(1234)
	p.SetFrequency(8.0)

	dst := NewNoiseMap()
	b := NewBuilder()
	b.SetSourceModule(p)
	b.SetDestNoiseMap(dst)
	b.SetDestSize(n, n)
	b.SetBounds(0, 1, 0, 1)
	b.EnableSeamless(true)
	require.NoError(t, b.Build())

	maxInterior := 0.0
	for z := 0; z < n; z++ {
		for x := 0; x+1 < n; x++ {
			maxInterior = math.Max(maxInterior, math.Abs(dst.GetValue(x+1, z)-dst.GetValue(x, z)))
		}
	}
	for x := 0; x < n; x++ {
		for z := 0; z+1 < n; z++ {
			maxInterior = math.Max(maxInterior, math.Abs(dst.GetValue(x, z+1)-dst.GetValue(x, z)))
		}
	}
	require.Greater(t, maxInterior, 0.0)

	seamBound := 3.0 * maxInterior
	for z := 0; z < n; z++ {
		seam := math.Abs(dst.GetValue(0, z) - dst.GetValue(n-1, z))
		assert.LessOrEqual(t, seam, seamBound, "column seam at row %d", z)
	}
	for x := 0; x < n; x++ {
		seam := math.Abs(dst.GetValue(x, 0) - dst.GetValue(x, n-1))
		assert.LessOrEqual(t, seam, seamBound, "row seam at column %d", x)
	}
}

func TestBuilderSeamlessChangesInterior(t *testing.T) {
	p := module.NewPerlin()
	p.SetSeed(8)

	plain := NewNoiseMap()
	b := NewBuilder()
	b.SetSourceModule(p)
	b.SetDestNoiseMap(plain)
	b.SetDestSize(8, 8)
	b.SetBounds(0, 2, 0, 2)
	require.NoError(t, b.Build())

	seamless := NewNoiseMap()
	b.SetDestNoiseMap(seamless)
	b.EnableSeamless(true)
	require.NoError(t, b.Build())

	differs := false
	for z := 0; z < 8 && !differs; z++ {
		for x := 0; x < 8; x++ {
			if plain.GetValue(x, z) != seamless.GetValue(x, z) {
				differs = true
				break
			}
		}
	}
	assert.True(t, differs, "seamless blending should alter the raster")
}

func BenchmarkBuilder(b *testing.B) {
	p := module.NewPerlin()
	p.SetSeed(42)

	dst := NewNoiseMap()
	builder := NewBuilder()
	builder.SetSourceModule(p)
	builder.SetDestNoiseMap(dst)
	builder.SetDestSize(256, 256)
	builder.SetBounds(0, 4, 0, 4)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := builder.Build(); err != nil {
			b.Fatal(err)
		}
	}
}

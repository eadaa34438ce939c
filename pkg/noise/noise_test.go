package noise

import (
	"math"
	"math/rand"
	"testing"
)

// TestIntValueNoise2DDeterministic verifies the lattice hash produces
// identical results for the same inputs
func TestIntValueNoise2DDeterministic(t *testing.T) {
	var results [100]int32
	for i := range results {
		results[i] = IntValueNoise2D(10, 20, 42)
	}

	// All results must be identical
	first := results[0]
	for i := 1; i < len(results); i++ {
		if results[i] != first {
			t.Errorf("IntValueNoise2D not deterministic: results[0]=%d, results[%d]=%d", first, i, results[i])
		}
	}
}

// TestIntValueNoise2DDifferentInputs verifies the hash separates axes
// and seeds
func TestIntValueNoise2DDifferentInputs(t *testing.T) {
	seed := int32(42)

	// Different X
	h1 := IntValueNoise2D(1, 0, seed)
	h2 := IntValueNoise2D(2, 0, seed)
	if h1 == h2 {
		t.Errorf("hash should differ for different X: got %d for both", h1)
	}

	// Different Y
	h1 = IntValueNoise2D(0, 1, seed)
	h2 = IntValueNoise2D(0, 2, seed)
	if h1 == h2 {
		t.Errorf("hash should differ for different Y: got %d for both", h1)
	}

	// Different seed
	h1 = IntValueNoise2D(1, 1, 100)
	h2 = IntValueNoise2D(1, 1, 200)
	if h1 == h2 {
		t.Errorf("hash should differ for different seed: got %d for both", h1)
	}

	// Axis swap (ensures axes aren't interchangeable)
	h1 = IntValueNoise2D(1, 3, seed)
	h2 = IntValueNoise2D(3, 1, seed)
	if h1 == h2 {
		t.Errorf("hash should differ for axis swap: got %d for both", h1)
	}
}

// TestIntValueNoise2DRange verifies hashes stay in [0, 2^31)
func TestIntValueNoise2DRange(t *testing.T) {
	rng := rand.New(rand.NewSource(12345)) // deterministic test RNG

	for i := 0; i < 1000; i++ {
		x := rng.Int31() - rng.Int31()
		y := rng.Int31() - rng.Int31()
		seed := rng.Int31()

		h := IntValueNoise2D(x, y, seed)
		if h < 0 {
			t.Errorf("IntValueNoise2D(%d, %d, %d) = %d, expected non-negative", x, y, seed, h)
		}
	}
}

// TestValueNoise2DRange verifies value noise stays in [-1, 1]
func TestValueNoise2DRange(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))

	for i := 0; i < 1000; i++ {
		x := rng.Int31n(20001) - 10000
		y := rng.Int31n(20001) - 10000
		seed := rng.Int31n(1000)

		v := ValueNoise2D(x, y, seed)
		if v < -1.0 || v > 1.0 {
			t.Errorf("ValueNoise2D(%d, %d, %d) = %f, expected in [-1,1]", x, y, seed, v)
		}
	}
}

// TestGradientNoise2DDeterministic verifies gradient noise produces
// identical results for the same inputs
func TestGradientNoise2DDeterministic(t *testing.T) {
	var results [100]float64
	for i := range results {
		results[i] = GradientNoise2D(1.3, 2.6, 1, 2, 42)
	}

	first := results[0]
	for i := 1; i < len(results); i++ {
		if results[i] != first {
			t.Errorf("GradientNoise2D not deterministic: results[0]=%f, results[%d]=%f", first, i, results[i])
		}
	}
}

// TestGradientNoise2DZeroOffset verifies the dot product vanishes when
// sampling exactly at the anchor lattice point
func TestGradientNoise2DZeroOffset(t *testing.T) {
	for seed := int32(0); seed < 10; seed++ {
		if v := GradientNoise2D(4.0, -7.0, 4, -7, seed); v != 0.0 {
			t.Errorf("GradientNoise2D at zero offset = %f, expected 0", v)
		}
	}
}

// TestGradientCoherentNoise2DDeterministic verifies coherent noise
// produces identical results across repeated calls
func TestGradientCoherentNoise2DDeterministic(t *testing.T) {
	qualities := []Quality{QualityFast, QualityStandard, QualityBest}

	for _, q := range qualities {
		var results [100]float64
		for i := range results {
			results[i] = GradientCoherentNoise2D(1.5, 2.7, 42, q)
		}

		first := results[0]
		for i := 1; i < len(results); i++ {
			if results[i] != first {
				t.Errorf("quality %d not deterministic: results[0]=%f, results[%d]=%f", q, first, i, results[i])
			}
		}
	}
}

// TestGradientCoherentNoise2DRange verifies coherent noise stays in
// [-1, 1] for every quality across a spread of seeds
func TestGradientCoherentNoise2DRange(t *testing.T) {
	qualities := []Quality{QualityFast, QualityStandard, QualityBest}
	rng := rand.New(rand.NewSource(12345))

	for _, q := range qualities {
		for seed := int32(0); seed <= 100; seed++ {
			for i := 0; i < 100; i++ {
				x := rng.Float64()*200 - 100 // [-100, 100]
				y := rng.Float64()*200 - 100

				v := GradientCoherentNoise2D(x, y, seed, q)
				if v < -1.0 || v > 1.0 {
					t.Errorf("GradientCoherentNoise2D(%f, %f, %d, %d) = %f, expected in [-1,1]", x, y, seed, q, v)
				}
			}
		}
	}
}

// TestGradientCoherentNoise2DZeroAtLatticePoints verifies the value is
// exactly zero at integer coordinates, where the cell gradient has zero
// offset and full interpolation weight
func TestGradientCoherentNoise2DZeroAtLatticePoints(t *testing.T) {
	qualities := []Quality{QualityFast, QualityStandard, QualityBest}
	points := [][2]float64{{0, 0}, {3, 5}, {-3, -5}, {7, -2}, {-100, 41}}

	for _, q := range qualities {
		for _, p := range points {
			if v := GradientCoherentNoise2D(p[0], p[1], 42, q); v != 0.0 {
				t.Errorf("GradientCoherentNoise2D(%f, %f, 42, %d) = %f, expected exactly 0", p[0], p[1], q, v)
			}
		}
	}
}

// TestGradientCoherentNoise2DContinuity verifies nearby points produce
// nearby values (no jumps across the lattice)
func TestGradientCoherentNoise2DContinuity(t *testing.T) {
	seed := int32(42)

	for _, q := range []Quality{QualityFast, QualityStandard, QualityBest} {
		prev := GradientCoherentNoise2D(0.995, 1.5, seed, q)
		for i := 1; i <= 10; i++ {
			x := 0.995 + float64(i)*0.001 // steps across the x=1 boundary
			v := GradientCoherentNoise2D(x, 1.5, seed, q)
			if diff := math.Abs(v - prev); diff >= 0.1 {
				t.Errorf("quality %d not continuous at x=%f: diff=%f >= 0.1", q, x, diff)
			}
			prev = v
		}
	}
}

// TestMakeInt32RangeIdentity verifies values inside (-2^30, 2^30) pass
// through unchanged
func TestMakeInt32RangeIdentity(t *testing.T) {
	values := []float64{0, 1.5, -1.5, 123456.789, -987654.321, 1073741823.0, -1073741823.0}

	for _, n := range values {
		if got := MakeInt32Range(n); got != n {
			t.Errorf("MakeInt32Range(%f) = %f, expected identity", n, got)
		}
	}
}

// TestMakeInt32RangeFold verifies values at or beyond ±2^30 fold back
// into range
func TestMakeInt32RangeFold(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1073741824.0, -1073741824.0},           // exactly 2^30 wraps to the negative end
		{1073741829.0, 10.0 - 1073741824.0},     // 2^30 + 5
		{-1073741824.0, 1073741824.0},           // exactly -2^30 wraps to the positive end
		{-1073741830.0, -12.0 + 1073741824.0},   // -2^30 - 6
		{3221225480.0, 16.0 - 1073741824.0},     // 3*2^30 + 8
	}

	for _, c := range cases {
		if got := MakeInt32Range(c.in); got != c.want {
			t.Errorf("MakeInt32Range(%f) = %f, expected %f", c.in, got, c.want)
		}
	}

	// Folded values always land within [-2^30, 2^30]
	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 1000; i++ {
		n := (rng.Float64() - 0.5) * 1e12
		got := MakeInt32Range(n)
		if got < -1073741824.0 || got > 1073741824.0 {
			t.Errorf("MakeInt32Range(%f) = %f, outside [-2^30, 2^30]", n, got)
		}
	}
}

func benchmarkCoherent(b *testing.B, q Quality) {
	b.ReportAllocs()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += GradientCoherentNoise2D(float64(i)*0.017, float64(i)*0.013, 42, q)
	}
	_ = sink
}

func BenchmarkGradientCoherentNoise2DFast(b *testing.B)     { benchmarkCoherent(b, QualityFast) }
func BenchmarkGradientCoherentNoise2DStandard(b *testing.B) { benchmarkCoherent(b, QualityStandard) }
func BenchmarkGradientCoherentNoise2DBest(b *testing.B)     { benchmarkCoherent(b, QualityBest) }

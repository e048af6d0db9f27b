package arith

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowInt64(t *testing.T) {
	tests := []struct {
		name     string
		x        int64
		n        int
		expected string
	}{
		{"Cube", 12, 3, "1728"},
		{"Identity", 7, 1, "7"},
		{"One", 1, 11, "1"},
		{"LargeBase", 1000000, 3, "1000000000000000000"},
		// 10^20 overflows int64; exercises the arbitrary-precision path.
		{"BeyondInt64", 10, 20, "100000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PowInt64(tt.x, tt.n).String())
		})
	}
}

func TestSumOfPowers(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int64
		n        int
		expected string
	}{
		{"Cubes", 10, 10, 3, "2000"},
		{"Asymmetric", 10, 12, 3, "2728"},
		{"EleventhPower", 10, 11, 11, "385311670611"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SumOfPowers(tt.x, tt.y, tt.n).String())
		})
	}
}

func TestBracket(t *testing.T) {
	tests := []struct {
		name string
		sum  *big.Int
		n    int
		want int64
	}{
		{"Sum2000", big.NewInt(2000), 3, 12},       // 12^3=1728 < 2000 < 13^3=2197
		{"JustAboveCube", big.NewInt(1729), 3, 12}, // taxicab number
		{"JustBelowCube", big.NewInt(2196), 3, 12},
		{"ExactCube", big.NewInt(1728), 3, 11},      // exact power slides below the root
		{"ExactFifth", big.NewInt(3200000), 5, 19},  // 20^5
		{"Tiny", big.NewInt(2), 3, 1},               // 1 < 2 <= 8
		{"One", big.NewInt(1), 3, 0},                // 0 < 1 <= 1
		{"ExactHighPower", big.NewInt(2048), 11, 1}, // 2^11 exact, slides to 1
		{"AboveHighPower", big.NewInt(2049), 11, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := Bracket(tt.sum, tt.n)
			assert.Equal(t, tt.want, z.Int64())
		})
	}
}

// TestBracketPostCondition verifies z**n < sum <= (z+1)**n across sums large
// enough to stress the float64 estimate, including values beyond float64
// range where the bit-length fallback kicks in.
func TestBracketPostCondition(t *testing.T) {
	sums := []*big.Int{
		SumOfPowers(10, 10, 3),
		SumOfPowers(999983, 999979, 11),
		new(big.Int).Lsh(big.NewInt(1), 1100), // ~1e331, beyond float64
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 1100), big.NewInt(1)),
		PowInt64(7, 900), // enormous exact power
	}

	for _, sum := range sums {
		for _, n := range []int{3, 7, 11} {
			z := Bracket(sum, n)
			lower := Pow(z, n)
			upper := Pow(new(big.Int).Add(z, big.NewInt(1)), n)
			require.Negative(t, lower.Cmp(sum), "z^n must be < sum (n=%d)", n)
			require.GreaterOrEqual(t, upper.Cmp(sum), 0, "(z+1)^n must be >= sum (n=%d)", n)
		}
	}
}

func TestEvaluateMiss(t *testing.T) {
	t.Run("ReferenceScenario", func(t *testing.T) {
		// x=10, y=10, n=3: sum=2000, 12^3=1728 < 2000 < 13^3=2197.
		z := Bracket(SumOfPowers(10, 10, 3), 3)
		require.EqualValues(t, 12, z.Int64())

		m, err := EvaluateMiss(10, 10, z, 3)
		require.NoError(t, err)

		assert.Equal(t, "2000", m.Sum.String())
		assert.Equal(t, "197", m.Absolute.String()) // upper miss 197 beats lower miss 272
		assert.False(t, m.CloserToLower)
		assert.False(t, m.Exact)
		assert.InDelta(t, 0.0985, m.Relative, 1e-12)
	})

	t.Run("CloserToLower", func(t *testing.T) {
		// x=9, y=10, n=3: sum=1729 = 12^3 + 1.
		m, err := EvaluateMiss(9, 10, big.NewInt(12), 3)
		require.NoError(t, err)

		assert.Equal(t, "1", m.Absolute.String())
		assert.True(t, m.CloserToLower)
	})

	t.Run("TieFavorsLower", func(t *testing.T) {
		// A true tie needs 2*sum = z^n + (z+1)^n, and consecutive powers
		// have opposite parity, so their sum is odd: equidistance is
		// unreachable through the API. Pin the inclusive rule at the
		// nearest reachable boundary instead: x=1, y=1, n=2 gives sum=2,
		// z=1, lower=1 <= upper=2.
		m, err := EvaluateMiss(1, 1, big.NewInt(1), 2)
		require.NoError(t, err)
		assert.True(t, m.CloserToLower, "lower wins when lower miss <= upper miss")
		assert.Equal(t, "1", m.Absolute.String())
	})

	t.Run("ExactPower", func(t *testing.T) {
		// Unreachable for x, y >= 10 and n >= 3 (that is the theorem), but
		// the kernel does not assume the envelope: 3^2 + 4^2 = 5^2, and
		// Bracket slides to z=4 below the exact root.
		z := Bracket(SumOfPowers(3, 4, 2), 2)
		require.EqualValues(t, 4, z.Int64())

		m, err := EvaluateMiss(3, 4, z, 2)
		require.NoError(t, err)
		assert.True(t, m.Exact)
		assert.False(t, m.CloserToLower)
		assert.Zero(t, m.Absolute.Sign())
		assert.Zero(t, m.Relative)
	})

	t.Run("InvariantViolation", func(t *testing.T) {
		// z far too large: lower miss is negative.
		_, err := EvaluateMiss(10, 10, big.NewInt(50), 3)
		require.Error(t, err)

		var ie *InvariantError
		require.ErrorAs(t, err, &ie)
		assert.EqualValues(t, 10, ie.X)
		assert.EqualValues(t, 10, ie.Y)
		assert.Negative(t, ie.Lower.Sign())
	})

	t.Run("RelativeInRange", func(t *testing.T) {
		for x := int64(10); x <= 14; x++ {
			for y := int64(10); y <= 14; y++ {
				sum := SumOfPowers(x, y, 5)
				m, err := EvaluateMiss(x, y, Bracket(sum, 5), 5)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, m.Relative, 0.0)
				assert.Less(t, m.Relative, 1.0)
				assert.GreaterOrEqual(t, m.Absolute.Sign(), 0)
			}
		}
	})
}

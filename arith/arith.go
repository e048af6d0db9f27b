// Package arith provides the exact integer arithmetic behind the near-miss
// search: n-th powers, bracketing of a power sum between consecutive n-th
// powers, and miss evaluation. All values are arbitrary-precision
// (math/big), so there is no (n, k) envelope restriction and overflow
// cannot occur.
package arith

import (
	"fmt"
	"math"
	"math/big"
)

var one = big.NewInt(1)

// Pow returns z**n as a new big.Int.
// Assumes n >= 1 (caller's responsibility).
func Pow(z *big.Int, n int) *big.Int {
	return new(big.Int).Exp(z, big.NewInt(int64(n)), nil)
}

// PowInt64 returns x**n as a new big.Int.
// Assumes n >= 1 (caller's responsibility).
func PowInt64(x int64, n int) *big.Int {
	return Pow(big.NewInt(x), n)
}

// SumOfPowers returns x**n + y**n.
func SumOfPowers(x, y int64, n int) *big.Int {
	s := PowInt64(x, n)
	return s.Add(s, PowInt64(y, n))
}

// Bracket returns the integer z bracketing sum between consecutive n-th
// powers. Post-condition: z**n < sum <= (z+1)**n.
//
// The initial estimate is a floating-point n-th root (a float64 seed
// refined with big.Float Newton steps, so it lands within a unit or two of
// the true root at any magnitude), truncated toward zero. A correction
// loop then moves z in whichever direction the estimate was off until the
// invariant holds; a single step suffices almost always, but the loop is
// deliberate.
//
// When sum is itself a perfect n-th power z0**n, the result is z0-1: the
// downward correction slides below an exact root and the upward correction
// deliberately stops short of it. Callers that care about exact matches
// must detect them via the zero upper miss (see EvaluateMiss).
//
// Assumes sum >= 1 and n >= 1 (caller's responsibility).
func Bracket(sum *big.Int, n int) *big.Int {
	z := rootEstimate(sum, n)

	// Correct downward until z**n < sum.
	for Pow(z, n).Cmp(sum) >= 0 {
		z.Sub(z, one)
	}

	// Correct upward if the estimate landed low. The strict comparison
	// never steps past an exact upper root.
	for upper := new(big.Int).Add(z, one); Pow(upper, n).Cmp(sum) < 0; upper.Add(upper, one) {
		z.Add(z, one)
	}

	return z
}

// rootEstimate approximates floor(sum^(1/n)) to within a couple of units.
//
// The float64 seed comes from the mantissa/exponent split of sum, so it
// never overflows regardless of magnitude; Newton iterations at a working
// precision matched to the root's bit length then close the gap a plain
// float64 root would leave at large magnitudes (a relative error of 1e-16
// on a 300-bit root is still astronomically many integers wide).
func rootEstimate(sum *big.Int, n int) *big.Int {
	prec := uint(sum.BitLen()/n) + 64

	s := new(big.Float).SetPrec(prec).SetInt(sum)

	// Seed: sum = mant * 2^exp with mant in [0.5, 1), so
	// log2(root) = (exp + log2(mant)) / n.
	mant := new(big.Float)
	exp := s.MantExp(mant)
	mf, _ := mant.Float64()
	rlog := (float64(exp) + math.Log2(mf)) / float64(n)

	ip, fp := math.Modf(rlog)
	x := new(big.Float).SetPrec(prec)
	x.SetMantExp(new(big.Float).SetPrec(prec).SetFloat64(math.Exp2(fp)), int(ip))

	// Newton on f(x) = x^n - sum: x <- ((n-1)*x + sum/x^(n-1)) / n.
	// The seed is already good to ~13 significant digits and Newton
	// doubles them per step; the iteration cap is far beyond need.
	var (
		nf   = new(big.Float).SetPrec(prec).SetInt64(int64(n))
		nm1f = new(big.Float).SetPrec(prec).SetInt64(int64(n - 1))
		unit = new(big.Float).SetInt64(1)
	)
	for i := 0; i < 64; i++ {
		pw := new(big.Float).SetPrec(prec).SetInt64(1)
		for j := 0; j < n-1; j++ {
			pw.Mul(pw, x)
		}

		next := new(big.Float).SetPrec(prec).Mul(nm1f, x)
		next.Add(next, new(big.Float).SetPrec(prec).Quo(s, pw))
		next.Quo(next, nf)

		diff := new(big.Float).Sub(next, x)
		x = next
		if diff.Abs(diff).Cmp(unit) < 0 {
			break
		}
	}

	z, _ := x.Int(nil)
	return z
}

// Miss describes how far a power sum x**n + y**n lands from the nearest of
// the two bracketing powers z**n and (z+1)**n.
type Miss struct {
	// Sum is the freshly computed x**n + y**n the miss is relative to.
	Sum *big.Int

	// Absolute is min(sum - z**n, (z+1)**n - sum). Never negative.
	Absolute *big.Int

	// Relative is Absolute divided by Sum, in [0, 1).
	Relative float64

	// CloserToLower reports whether z**n (true) or (z+1)**n (false) is the
	// nearer power. Equidistant sums favor the lower power.
	CloserToLower bool

	// Exact reports a zero miss: the sum equals a perfect n-th power.
	// Unreachable for x, y >= 10 and n >= 3, but the kernel does not
	// assume that.
	Exact bool
}

// InvariantError reports a bracketing contract violation observed during
// miss evaluation: one of the candidate misses came out negative, meaning
// z did not satisfy z**n < sum <= (z+1)**n.
type InvariantError struct {
	X, Y  int64
	N     int
	Z     *big.Int
	Lower *big.Int // sum - z**n
	Upper *big.Int // (z+1)**n - sum
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("bracket invariant violated for x=%d y=%d n=%d z=%s: lower miss %s, upper miss %s",
		e.X, e.Y, e.N, e.Z, e.Lower, e.Upper)
}

// EvaluateMiss computes the miss of x**n + y**n against the bracketing
// powers z**n and (z+1)**n. The sum is recomputed from x, y, n rather than
// trusted from the caller; the relative miss is always taken against that
// fresh sum.
//
// Returns an *InvariantError if z does not actually bracket the sum. That
// signals a defect in the caller's bracketing, never a property of the
// inputs themselves, and must not be ignored.
func EvaluateMiss(x, y int64, z *big.Int, n int) (Miss, error) {
	sum := SumOfPowers(x, y, n)

	lower := new(big.Int).Sub(sum, Pow(z, n))
	upper := Pow(new(big.Int).Add(z, one), n)
	upper.Sub(upper, sum)

	if lower.Sign() < 0 || upper.Sign() < 0 {
		return Miss{}, &InvariantError{X: x, Y: y, N: n, Z: new(big.Int).Set(z), Lower: lower, Upper: upper}
	}

	m := Miss{Sum: sum, CloserToLower: lower.Cmp(upper) <= 0}
	if m.CloserToLower {
		m.Absolute = lower
	} else {
		m.Absolute = upper
	}
	m.Exact = m.Absolute.Sign() == 0
	m.Relative = ratio(m.Absolute, sum)

	return m, nil
}

// ratio returns num/den as a float64 via big.Float division, avoiding the
// precision loss of converting the operands individually.
func ratio(num, den *big.Int) float64 {
	q := new(big.Float).Quo(new(big.Float).SetInt(num), new(big.Float).SetInt(den))
	f, _ := q.Float64()
	return f
}

// Package robust implements adaptive-precision geometric predicates:
// orientation-of-three-points and in-circle-of-four-points. Both return a
// signed value whose sign is the true sign of the underlying exact
// determinant, computed via Shewchuk-style floating-point expansions so
// that topologically related tests (the monotone sweep, the flip stack)
// never disagree about collinearity or cocircularity.
package robust

import (
	"math"

	"github.com/cdt2d/cdt2d/geom"
)

// Point is the point type predicates operate on.
type Point = geom.Point

// epsilon is half a ULP for float64 (2^-53), following the convention used
// to derive the error bounds below.
const epsilon = 1.1102230246251565e-16

// errBound3 bounds the relative error of the float64 fast path for a
// three-term determinant (orientation): (3 + 16*eps) * eps.
const errBound3 = (3 + 16*epsilon) * epsilon

// errBound4 bounds the relative error of the float64 fast path for the
// four-point in-circle determinant.
const errBound4 = (10 + 96*epsilon) * epsilon

// splitter is 2^27 + 1, used by twoProduct to split a float64 into a
// high/low pair with no rounding error (Shewchuk's adaptive-precision
// arithmetic building block).
const splitter = 134217729.0 // 2^27 + 1

// Orientation returns the sign of twice the signed area of triangle (a,b,c):
// positive if a,b,c turn counter-clockwise, negative if clockwise, zero if
// collinear.
func Orientation(a, b, c Point) int {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	detSum := math.Abs(detLeft) + math.Abs(detRight)
	if math.Abs(det) >= errBound3*detSum {
		return sign(det)
	}
	return sign(orientationExact(a, b, c))
}

// InCircle returns, assuming a,b,c are in counter-clockwise order, a
// positive value iff d lies strictly inside the circumscribed circle of
// triangle abc, negative if strictly outside, zero if on the circle.
func InCircle(a, b, c, d Point) int {
	adx := a.X - d.X
	ady := a.Y - d.Y
	bdx := b.X - d.X
	bdy := b.Y - d.Y
	cdx := c.X - d.X
	cdy := c.Y - d.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	alift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)

	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift

	if math.Abs(det) >= errBound4*permanent {
		return sign(det)
	}
	return sign(inCircleExact(a, b, c, d))
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// --- exact path: Shewchuk-style floating-point expansions -----------------
//
// An "expansion" is a slice of float64 in increasing order of magnitude,
// pairwise non-overlapping, whose sum equals some exact value with no
// rounding error. twoSum/twoProduct synthesize length-2 expansions for a
// single +/- or *; expansionSum/expansionDiff merge two expansions in
// linear time; the functions below compose these into an exact determinant
// and return its dominant (last, largest-magnitude) component. The sign of
// that component is the true sign of the exact value.

// twoSum returns (x, y) such that x+y == a+b exactly, with |x| the
// round-to-nearest float64 sum and y the round-off error.
func twoSum(a, b float64) (x, y float64) {
	x = a + b
	bVirtual := x - a
	aVirtual := x - bVirtual
	bRoundoff := b - bVirtual
	aRoundoff := a - aVirtual
	y = aRoundoff + bRoundoff
	return x, y
}

// twoDiff returns (x, y) such that x+y == a-b exactly.
func twoDiff(a, b float64) (x, y float64) {
	x = a - b
	bVirtual := a - x
	aVirtual := x + bVirtual
	bRoundoff := bVirtual - b
	aRoundoff := a - aVirtual
	y = aRoundoff + bRoundoff
	return x, y
}

// split decomposes a into a high part and low part such that a = hi+lo and
// neither part's mantissa overflows when multiplied with another split
// value (used by twoProduct).
func split(a float64) (hi, lo float64) {
	c := splitter * a
	aBig := c - a
	hi = c - aBig
	lo = a - hi
	return hi, lo
}

// twoProduct returns (x, y) such that x+y == a*b exactly.
func twoProduct(a, b float64) (x, y float64) {
	x = a * b
	aHi, aLo := split(a)
	bHi, bLo := split(b)
	err1 := x - aHi*bHi
	err2 := err1 - aLo*bHi
	err3 := err2 - aHi*bLo
	y = aLo*bLo - err3
	return x, y
}

// expansionSum merges two non-overlapping increasing expansions into one,
// in time linear in the combined length. The implementation is the
// straightforward (non-"fast") merge: it does not guarantee every term of
// the output is non-overlapping with its immediate neighbor in the strict
// sense Shewchuk's "fast-expansion-sum-zeroelim" does, but it is exact and
// the final component remains the dominant term, which is all the sign
// test requires.
func expansionSum(e, f []float64) []float64 {
	merged := make([]float64, 0, len(e)+len(f))
	i, j := 0, 0
	for i < len(e) || j < len(f) {
		var next float64
		switch {
		case i >= len(e):
			next = f[j]
			j++
		case j >= len(f):
			next = e[i]
			i++
		case math.Abs(e[i]) < math.Abs(f[j]):
			next = e[i]
			i++
		default:
			next = f[j]
			j++
		}
		merged = append(merged, next)
	}
	return zeroElimAccumulate(merged)
}

// expansionDiff subtracts expansion f from expansion e.
func expansionDiff(e, f []float64) []float64 {
	negF := make([]float64, len(f))
	for i, v := range f {
		negF[i] = -v
	}
	return expansionSum(e, negF)
}

// zeroElimAccumulate re-sums a magnitude-sorted list of expansion terms with
// running twoSum carries, dropping exact zeros, so the result is a true
// non-overlapping expansion whose last element has the largest magnitude.
func zeroElimAccumulate(terms []float64) []float64 {
	out := make([]float64, 0, len(terms))
	var carry float64
	have := false
	for _, t := range terms {
		if t == 0 {
			continue
		}
		if !have {
			carry = t
			have = true
			continue
		}
		sum, round := twoSum(carry, t)
		if round != 0 {
			out = append(out, round)
		}
		carry = sum
	}
	if have && carry != 0 {
		out = append(out, carry)
	}
	if len(out) == 0 {
		return []float64{0}
	}
	return out
}

// scaleExpansion multiplies an expansion by a scalar, returning a new
// expansion exactly equal to the product.
func scaleExpansion(e []float64, s float64) []float64 {
	terms := make([]float64, 0, 2*len(e))
	for _, v := range e {
		hi, lo := twoProduct(v, s)
		if lo != 0 {
			terms = append(terms, lo)
		}
		if hi != 0 {
			terms = append(terms, hi)
		}
	}
	if len(terms) == 0 {
		return []float64{0}
	}
	return zeroElimAccumulate(terms)
}

// dominant returns the last (largest-magnitude) component of an expansion,
// which carries the true sign of the exact value the expansion represents.
func dominant(e []float64) float64 {
	return e[len(e)-1]
}

func exactProductExpansion(a, b float64) []float64 {
	hi, lo := twoProduct(a, b)
	if lo == 0 {
		return []float64{hi}
	}
	return []float64{lo, hi}
}

func exactDiffExpansion(a, b float64) []float64 {
	hi, lo := twoDiff(a, b)
	if lo == 0 {
		return []float64{hi}
	}
	return []float64{lo, hi}
}

// orientationExact recomputes orientation(a,b,c) with exact expansions:
// det = (a.x-c.x)*(b.y-c.y) - (a.y-c.y)*(b.x-c.x).
func orientationExact(a, b, c Point) float64 {
	acx := exactDiffExpansion(a.X, c.X)
	bcy := exactDiffExpansion(b.Y, c.Y)
	acy := exactDiffExpansion(a.Y, c.Y)
	bcx := exactDiffExpansion(b.X, c.X)

	left := expansionProduct(acx, bcy)
	right := expansionProduct(acy, bcx)
	det := expansionDiff(left, right)
	return dominant(det)
}

// expansionProduct multiplies two expansions by scaling e by one term of f
// at a time and summing the partial results. It accepts expansions of any
// length; inCircleExact uses it on the longer lift and cross-product
// expansions as well as on the length-1 or -2 differences.
func expansionProduct(e, f []float64) []float64 {
	var acc []float64
	for _, term := range f {
		partial := scaleExpansion(e, term)
		if acc == nil {
			acc = partial
		} else {
			acc = expansionSum(acc, partial)
		}
	}
	if acc == nil {
		return []float64{0}
	}
	return acc
}

// inCircleExact recomputes InCircle(a,b,c,d) with exact expansions:
//
//	det = |ad|^2*(bd x cd) - |bd|^2*(ad x cd) + |cd|^2*(ad x bd)
//
// where each `x` is a 2D cross product and |.|^2 is squared length.
func inCircleExact(a, b, c, d Point) float64 {
	adx := exactDiffExpansion(a.X, d.X)
	ady := exactDiffExpansion(a.Y, d.Y)
	bdx := exactDiffExpansion(b.X, d.X)
	bdy := exactDiffExpansion(b.Y, d.Y)
	cdx := exactDiffExpansion(c.X, d.X)
	cdy := exactDiffExpansion(c.Y, d.Y)

	alift := expansionSum(expansionProduct(adx, adx), expansionProduct(ady, ady))
	blift := expansionSum(expansionProduct(bdx, bdx), expansionProduct(bdy, bdy))
	clift := expansionSum(expansionProduct(cdx, cdx), expansionProduct(cdy, cdy))

	bc := expansionDiff(expansionProduct(bdx, cdy), expansionProduct(cdx, bdy))
	ca := expansionDiff(expansionProduct(cdx, ady), expansionProduct(adx, cdy))
	ab := expansionDiff(expansionProduct(adx, bdy), expansionProduct(bdx, ady))

	term1 := expansionProduct(alift, bc)
	term2 := expansionProduct(blift, ca)
	term3 := expansionProduct(clift, ab)

	det := expansionSum(expansionSum(term1, term2), term3)
	return dominant(det)
}

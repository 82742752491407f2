// Package bsearch implements the binary search family the sweep-line
// triangulator and the triangulation structure use to query sorted arrays
// with a caller-supplied three-way comparator: Lt, Le, Gt, Ge, and Eq.
package bsearch

// NotFound is the sentinel Eq returns when no element compares equal.
const NotFound = -1

// Cmp compares element i of the array (implicit) against a target value v,
// returning <0, 0, or >0 the way sort.Search-style comparators do, except
// the sign carries meaning (not just "is this the boundary"): negative
// means the element is "less than" v, positive means "greater than".
type Cmp func(i int) int

// Lt returns the index of the last element with cmp(i) < 0, or -1 if none.
// Requires cmp to be monotonically non-decreasing over [0, n).
func Lt(n int, cmp Cmp) int {
	lo, hi := 0, n // search over [lo, hi), answer is the count of "< v" elements, minus one
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(mid) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo - 1
}

// Le returns the index of the last element with cmp(i) <= 0, or -1 if none.
func Le(n int, cmp Cmp) int {
	lo, hi := 0, n
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(mid) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo - 1
}

// Gt returns the index of the first element with cmp(i) > 0, or n (past-end)
// if none.
func Gt(n int, cmp Cmp) int {
	lo, hi := 0, n
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(mid) > 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// Ge returns the index of the first element with cmp(i) >= 0, or n
// (past-end) if none.
func Ge(n int, cmp Cmp) int {
	lo, hi := 0, n
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(mid) >= 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// Eq returns the index of any element with cmp(i) == 0, or NotFound if no
// such element exists. Requires cmp to be monotonically non-decreasing
// (i.e. the array is sorted with respect to the comparator).
func Eq(n int, cmp Cmp) int {
	lo, hi := 0, n-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		c := cmp(mid)
		switch {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return NotFound
}

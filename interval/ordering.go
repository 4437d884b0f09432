package interval

// The scalar comparisons below treat x as the set of values it encloses:
// x equals v when it contains v. This equality is not transitive, two
// intervals both equal to v are not equal to each other in general.

// EqualScalar returns true if x contains v.
func (x Interval[T]) EqualScalar(v T) bool {
	return x.Contains(v)
}

// CompareScalar compares x with v.
// It returns +1 if v < start, -1 if v > end and 0 if x contains v.
// The boolean is false, and the comparison meaningless, when v is NaN.
func (x Interval[T]) CompareScalar(v T) (cmp int, ok bool) {
	switch {
	case v < x.start:
		return 1, true
	case v > x.end:
		return -1, true
	case x.Contains(v):
		return 0, true
	default:
		return 0, false
	}
}

// Less returns true if x lies entirely below v.
func (x Interval[T]) Less(v T) bool {
	cmp, ok := x.CompareScalar(v)
	return ok && cmp < 0
}

// LessEqual returns true if x lies below v or contains it.
func (x Interval[T]) LessEqual(v T) bool {
	cmp, ok := x.CompareScalar(v)
	return ok && cmp <= 0
}

// Greater returns true if x lies entirely above v.
func (x Interval[T]) Greater(v T) bool {
	cmp, ok := x.CompareScalar(v)
	return ok && cmp > 0
}

// GreaterEqual returns true if x lies above v or contains it.
func (x Interval[T]) GreaterEqual(v T) bool {
	cmp, ok := x.CompareScalar(v)
	return ok && cmp >= 0
}

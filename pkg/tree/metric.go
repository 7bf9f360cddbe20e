package tree

// Metric extracts a totally ordered scalar measure from a Summary, giving
// callers a unit to navigate the tree in (bytes, lines, code points, ...).
//
// For TreeSlice navigation a metric must be monotone: Measure(a.Add(b)) ==
// Measure(a).Add(b's measure). A metric is "splittable" (required for
// slicing) if, given a leaf and a target offset within [0, Measure(leaf
// summary)], it can locate the byte offset inside that leaf whose prefix
// measures exactly the target; FindBoundary implements that search.
type Metric[L any, S Summary[S]] interface {
	// Zero is the additive identity for the metric's scalar type.
	Zero() int
	// Measure projects a cached Summary onto this metric's scalar.
	Measure(s S) int
	// FindBoundary locates, within a single leaf, the byte offset whose
	// prefix measures exactly target (0 <= target <= Measure(leaf's own
	// summary)). It returns the byte offset into the leaf's slice form.
	FindBoundary(leaf L, target int) int
}

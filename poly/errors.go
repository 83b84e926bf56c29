package poly

import "errors"

// ErrDegenerateEdge is logged (never returned) when IntersectPoint or
// IntersectLine reports Exists=false for a zero-length edge that a
// caller was about to collapse anyway, such as removeLoopbacks' a-c
// check in Tidy.
var ErrDegenerateEdge = errors.New("poly: degenerate (zero-length) edge")

// ErrUnclosedPath is logged (never returned) when Clip's path-stitching
// phase is left with contours it could not close into a loop. It is
// exported so tests and callers instrumenting xlog can match on it.
var ErrUnclosedPath = errors.New("poly: clip left an unclosed path, closed anyway")

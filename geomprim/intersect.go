package geomprim

// SegmentIntersection is the parameterized result of intersecting two line
// segments: the point where they cross, plus the normalized distance along
// each segment ([0,1], 0 at the first endpoint).
type SegmentIntersection struct {
	Point  Point
	T0, T1 float64
}

// LineLineIntersect returns the intersection of the infinite lines through
// (p1,p2) and (q1,q2). ok is false when the lines are parallel (including
// coincident).
func LineLineIntersect(p1, p2, q1, q2 Point) (pt Point, ok bool) {
	dx1 := p2.X - p1.X
	dy1 := p2.Y - p1.Y
	dx2 := q2.X - q1.X
	dy2 := q2.Y - q1.Y

	denom := dx1*dy2 - dy1*dx2
	if denom == 0 {
		return Point{}, false
	}

	t := ((q1.X-p1.X)*dy2 - (q1.Y-p1.Y)*dx2) / denom
	return Point{X: p1.X + t*dx1, Y: p1.Y + t*dy1}, true
}

// SegmentSegmentIntersect returns the intersection of segments (p1,p2) and
// (q1,q2), including the normalized position of the crossing along each
// segment. ok is false when the segments are parallel or do not cross
// within their bounds (endpoints are closed, i.e. touching counts).
func SegmentSegmentIntersect(p1, p2, q1, q2 Point) (res SegmentIntersection, ok bool) {
	dx1 := p2.X - p1.X
	dy1 := p2.Y - p1.Y
	dx2 := q2.X - q1.X
	dy2 := q2.Y - q1.Y

	denom := dx1*dy2 - dy1*dx2
	if denom == 0 {
		return SegmentIntersection{}, false
	}

	t0 := ((q1.X-p1.X)*dy2 - (q1.Y-p1.Y)*dx2) / denom
	t1 := ((q1.X-p1.X)*dy1 - (q1.Y-p1.Y)*dx1) / denom

	const eps = 1e-9
	if t0 < -eps || t0 > 1+eps || t1 < -eps || t1 > 1+eps {
		return SegmentIntersection{}, false
	}

	return SegmentIntersection{
		Point: Point{X: p1.X + t0*dx1, Y: p1.Y + t0*dy1},
		T0:    clamp01(t0),
		T1:    clamp01(t1),
	}, true
}

// SegmentsIntersect reports whether segments (p1,p2) and (q1,q2) cross,
// with closed endpoints (a shared endpoint counts as an intersection).
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	d1 := Orient2D(q1, q2, p1)
	d2 := Orient2D(q1, q2, p2)
	d3 := Orient2D(p1, p2, q1)
	d4 := Orient2D(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	if d1 == 0 && onSegment(q1, q2, p1) {
		return true
	}
	if d2 == 0 && onSegment(q1, q2, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, q2) {
		return true
	}

	return false
}

// onSegment reports whether point r, known to be collinear with a and b,
// lies within the closed bounding box of segment (a,b).
func onSegment(a, b, r Point) bool {
	return min(a.X, b.X) <= r.X && r.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= r.Y && r.Y <= max(a.Y, b.Y)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

package gamemath

// Point is a position in world pixels.
type Point struct {
	X, Y float64
}

// Segment is a straight line between two points.
type Segment struct {
	A, B Point
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps is the half-open AABB test: touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// ContainsStrict reports whether p lies strictly inside r.
func (r Rect) ContainsStrict(p Point) bool {
	return p.X > r.X && p.X < r.X+r.W && p.Y > r.Y && p.Y < r.Y+r.H
}

// Edges returns the top, right, bottom and left boundary segments.
func (r Rect) Edges() [4]Segment {
	tl := Point{r.X, r.Y}
	tr := Point{r.X + r.W, r.Y}
	br := Point{r.X + r.W, r.Y + r.H}
	bl := Point{r.X, r.Y + r.H}
	return [4]Segment{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}}
}

// Bounds returns the smallest rectangle containing the segment.
func (s Segment) Bounds() Rect {
	minX, maxX := s.A.X, s.B.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := s.A.Y, s.B.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Intersect returns the point where segments a and b cross. Parallel and
// collinear segments have a zero denominator and are reported as not
// intersecting.
func Intersect(a, b Segment) (Point, bool) {
	rx, ry := a.B.X-a.A.X, a.B.Y-a.A.Y
	sx, sy := b.B.X-b.A.X, b.B.Y-b.A.Y

	denom := rx*sy - ry*sx
	if denom == 0 {
		return Point{}, false
	}

	qx, qy := b.A.X-a.A.X, b.A.Y-a.A.Y
	t := (qx*sy - qy*sx) / denom
	u := (qx*ry - qy*rx) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}

	return Point{X: a.A.X + t*rx, Y: a.A.Y + t*ry}, true
}

// IntersectsRect reports whether s crosses any of r's four edges.
func IntersectsRect(s Segment, r Rect) bool {
	for _, edge := range r.Edges() {
		if _, ok := Intersect(s, edge); ok {
			return true
		}
	}
	return false
}

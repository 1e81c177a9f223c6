package bezier

import "fmt"

// BoundingBox is an axis-aligned rectangle, given by its opposite corners.
type BoundingBox struct {
	Min Point
	Max Point
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%v, %v]", b.Min, b.Max)
}

// Contains reports whether p lies within b, inclusive of its edges.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Width returns the extent of b along the X axis.
func (b BoundingBox) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the extent of b along the Y axis.
func (b BoundingBox) Height() float64 { return b.Max.Y - b.Min.Y }

func boundingBoxOf(pts PointVector) BoundingBox {
	if len(pts) == 0 {
		return BoundingBox{}
	}
	box := BoundingBox{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		box.Min.X = min(box.Min.X, p.X)
		box.Min.Y = min(box.Min.Y, p.Y)
		box.Max.X = max(box.Max.X, p.X)
		box.Max.Y = max(box.Max.Y, p.Y)
	}
	return box
}

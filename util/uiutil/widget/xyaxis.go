package widget

import "image"

// Allows calculations to be done X oriented, and have it translated to Y axis.
// The X axis is the split axis, the Y axis is the cross axis.
type XYAxis struct {
	YAxis bool
}

func OrientationAxis(o Orientation) XYAxis {
	return XYAxis{YAxis: o == Vertical}
}

func (xy XYAxis) Point(p image.Point) image.Point {
	if xy.YAxis {
		return image.Point{p.Y, p.X}
	}
	return p
}

// Doesn't canonicalize, a well-formed rectangle stays well-formed.
func (xy XYAxis) Rectangle(r image.Rectangle) image.Rectangle {
	if xy.YAxis {
		return image.Rectangle{xy.Point(r.Min), xy.Point(r.Max)}
	}
	return r
}

// Size along the split axis.
func (xy XYAxis) Main(p image.Point) int {
	return xy.Point(p).X
}

// Size along the cross axis.
func (xy XYAxis) Cross(p image.Point) int {
	return xy.Point(p).Y
}

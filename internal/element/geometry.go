package element

// Point is a 2-D anchor position. Y grows upwards.
type Point struct {
	X, Y float64
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Standard spacing for rows and columns, in menu units.
const (
	VSpaceSmall  = 70.0
	VSpaceMedium = 105.0
	VSpaceLarge  = 160.0

	HSpaceSmall  = 250.0
	HSpaceMedium = 333.0
	HSpaceLarge  = 500.0
)

// TopCenterAnchor is the anchor of the top-centre element of a standard screen.
var TopCenterAnchor = Point{X: 0, Y: 330}

package component

// Field describes the playing area. Margin is kept clear on both sides.
type Field struct {
	Width  float64
	Height float64
	Margin float64
}

// LaneBounds returns the range of valid left edges for a box of the given
// width.
func (f Field) LaneBounds(width float64) (minX, maxX float64) {
	return f.Margin, f.Width - width - f.Margin
}

var FieldComponent = NewComponent[Field]()

package math

// Rectangle is an axis-aligned box. Width and Height are not normalized; the
// edge helpers and IsInside assume they are non-negative.
type Rectangle struct {
	X, Y          float32
	Width, Height float32
}

// Left returns the X coordinate of the left edge.
func (r Rectangle) Left() float32 { return r.X }

// Top returns the Y coordinate of the top edge.
func (r Rectangle) Top() float32 { return r.Y }

// Right returns the X coordinate of the right edge.
func (r Rectangle) Right() float32 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rectangle) Bottom() float32 { return r.Y + r.Height }

// Position returns the top-left corner.
func (r Rectangle) Position() Vec2 { return Vec2{r.X, r.Y} }

// Size returns {Width, Height}.
func (r Rectangle) Size() Vec2 { return Vec2{r.Width, r.Height} }

// Move offsets the rectangle by v.
func (r *Rectangle) Move(v Vec2) {
	r.X += v.X
	r.Y += v.Y
}

// SetPosition moves the top-left corner to p.
func (r *Rectangle) SetPosition(p Vec2) {
	r.X = p.X
	r.Y = p.Y
}

// SetSize replaces Width and Height.
func (r *Rectangle) SetSize(s Vec2) {
	r.Width = s.X
	r.Height = s.Y
}

// IsInside reports whether pt lies in the closed box [Left,Right]x[Top,Bottom].
func (r Rectangle) IsInside(pt Vec2) bool {
	return pt.X >= r.Left() && pt.Y >= r.Top() && pt.X <= r.Right() && pt.Y <= r.Bottom()
}

package viewport

// Rect is an axis-aligned box in CSS pixels. X/Y are document coordinates
// unless noted otherwise.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }
func (r Rect) Area() float64   { return r.Width * r.Height }

// CenterY is the vertical midpoint of the box.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Touches reports whether r and o overlap or share an edge. Edge contact
// counts so that a zero-height root band still intersects whatever spans it.
func (r Rect) Touches(o Rect) bool {
	return r.Left() <= o.Right() && r.Right() >= o.Left() &&
		r.Top() <= o.Bottom() && r.Bottom() >= o.Top()
}

// Intersect returns the overlapping box of r and o. The zero Rect is
// returned when they do not touch.
func (r Rect) Intersect(o Rect) Rect {
	if !r.Touches(o) {
		return Rect{}
	}
	x := max(r.Left(), o.Left())
	y := max(r.Top(), o.Top())
	return Rect{
		X:      x,
		Y:      y,
		Width:  min(r.Right(), o.Right()) - x,
		Height: min(r.Bottom(), o.Bottom()) - y,
	}
}

// Margin grows (positive) or shrinks (negative) a root box. Values are
// fractions of the viewport size, so -0.5 on Top and Bottom mirrors the
// CSS root margin "-50% 0px -50% 0px".
type Margin struct {
	Top, Right, Bottom, Left float64
}

// apply returns vis adjusted by m. Width and height never go negative.
func (m Margin) apply(vis Rect) Rect {
	w, h := vis.Width, vis.Height
	out := Rect{
		X:      vis.X - m.Left*w,
		Y:      vis.Y - m.Top*h,
		Width:  vis.Width + (m.Left+m.Right)*w,
		Height: vis.Height + (m.Top+m.Bottom)*h,
	}
	if out.Width < 0 {
		out.X += out.Width / 2
		out.Width = 0
	}
	if out.Height < 0 {
		out.Y += out.Height / 2
		out.Height = 0
	}
	return out
}

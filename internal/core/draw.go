package core

// DrawKind identifies a draw primitive.
type DrawKind int

const (
	DrawFillRect DrawKind = iota
	DrawFillCircle
	DrawText
)

// DrawOp is one declarative rendering instruction in pixel space.
// Which fields are meaningful depends on Kind:
//
//	DrawFillRect   X, Y, W, H, Color
//	DrawFillCircle X, Y (centre), R, Color
//	DrawText       X, Y (top-left), Text, Color, FontSize
type DrawOp struct {
	Kind     DrawKind
	X, Y     float64
	W, H     float64
	R        float64
	Text     string
	FontSize int
	Color    Color
}

// Bounds returns the pixel area covered by a rect or circle op.
// Text ops have no intrinsic size and return an empty rect at their origin.
func (op DrawOp) Bounds() Rect {
	switch op.Kind {
	case DrawFillRect:
		return NewRect(op.X, op.Y, op.W, op.H)
	case DrawFillCircle:
		return NewRect(op.X-op.R, op.Y-op.R, op.R*2, op.R*2)
	default:
		return NewRect(op.X, op.Y, 0, 0)
	}
}

// DrawList is an ordered sequence of draw instructions for one frame.
// Later ops paint over earlier ones.
type DrawList struct {
	ops []DrawOp
}

// NewDrawList creates an empty draw list with room for n ops.
func NewDrawList(n int) *DrawList {
	return &DrawList{ops: make([]DrawOp, 0, n)}
}

// Reset empties the list, keeping its storage.
func (d *DrawList) Reset() {
	d.ops = d.ops[:0]
}

// FillRect appends a filled rectangle.
func (d *DrawList) FillRect(r Rect, c Color) {
	d.ops = append(d.ops, DrawOp{Kind: DrawFillRect, X: r.X, Y: r.Y, W: r.W, H: r.H, Color: c})
}

// FillCircle appends a filled circle centred at (cx, cy).
func (d *DrawList) FillCircle(cx, cy, radius float64, c Color) {
	d.ops = append(d.ops, DrawOp{Kind: DrawFillCircle, X: cx, Y: cy, R: radius, Color: c})
}

// Text appends a text instruction with its top-left corner at (x, y).
func (d *DrawList) Text(x, y float64, text string, c Color, fontSize int) {
	d.ops = append(d.ops, DrawOp{Kind: DrawText, X: x, Y: y, Text: text, Color: c, FontSize: fontSize})
}

// Ops returns the instructions in paint order. The slice must not be modified.
func (d *DrawList) Ops() []DrawOp {
	return d.ops
}

// Len returns the number of instructions.
func (d *DrawList) Len() int {
	return len(d.ops)
}

// Clone returns an independent copy of the list.
func (d *DrawList) Clone() *DrawList {
	c := NewDrawList(len(d.ops))
	c.ops = append(c.ops, d.ops...)
	return c
}

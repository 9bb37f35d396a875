package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jakecoffman/cp"
)

// Debug draw palette.
var (
	colOutline    = cp.FColor{R: 44.0 / 255, G: 62.0 / 255, B: 80.0 / 255, A: 1}
	colConstraint = cp.FColor{R: 142.0 / 255, G: 68.0 / 255, B: 173.0 / 255, A: 1}
	colCollision  = cp.FColor{R: 231.0 / 255, G: 76.0 / 255, B: 60.0 / 255, A: 1}
	colDynamic    = cp.FColor{R: 52.0 / 255, G: 152.0 / 255, B: 219.0 / 255, A: 1}
	colStatic     = cp.FColor{R: 149.0 / 255, G: 165.0 / 255, B: 166.0 / 255, A: 1}
)

// Drawer renders chipmunk debug draw calls with raylib. Physics is y up and
// the screen is y down, so every point is flipped against the window height.
type Drawer struct {
	height float32
}

func NewDrawer(height int) *Drawer {
	return &Drawer{height: float32(height)}
}

func (d *Drawer) toScreen(v cp.Vector) rl.Vector2 {
	return rl.NewVector2(float32(v.X), d.height-float32(v.Y))
}

func toColor(c cp.FColor) rl.Color {
	return rl.NewColor(channel(c.R), channel(c.G), channel(c.B), channel(c.A))
}

func channel(v float32) uint8 {
	return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
}

func (d *Drawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	center := d.toScreen(pos)
	rl.DrawCircleV(center, float32(radius), toColor(fill))
	rl.DrawCircleLines(int32(center.X), int32(center.Y), float32(radius), toColor(outline))
	rl.DrawLineEx(center, d.toScreen(pos.Add(cp.ForAngle(angle).Mult(radius))), 1, toColor(outline))
}

func (d *Drawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	rl.DrawLineEx(d.toScreen(a), d.toScreen(b), 1, toColor(fill))
}

func (d *Drawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	thick := float32(max(2*radius, 1))
	rl.DrawLineEx(d.toScreen(a), d.toScreen(b), thick, toColor(fill))
	if radius > 0 {
		rl.DrawCircleV(d.toScreen(a), float32(radius), toColor(fill))
		rl.DrawCircleV(d.toScreen(b), float32(radius), toColor(fill))
	}
}

// DrawPolygon fills a convex polygon. The y flip mirrors the winding, so
// vertices are fed in reverse to keep raylib's fan counter-clockwise.
func (d *Drawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	points := make([]rl.Vector2, count)
	for i := 0; i < count; i++ {
		points[count-1-i] = d.toScreen(verts[i])
	}
	rl.DrawTriangleFan(points, toColor(fill))
	for i := 0; i < count; i++ {
		rl.DrawLineEx(points[i], points[(i+1)%count], 1, toColor(outline))
	}
}

func (d *Drawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	rl.DrawCircleV(d.toScreen(pos), float32(size/2), toColor(fill))
}

func (d *Drawer) Flags() uint                    { return cp.DRAW_SHAPES | cp.DRAW_CONSTRAINTS }
func (d *Drawer) OutlineColor() cp.FColor        { return colOutline }
func (d *Drawer) ConstraintColor() cp.FColor     { return colConstraint }
func (d *Drawer) CollisionPointColor() cp.FColor { return colCollision }
func (d *Drawer) Data() interface{}              { return nil }

// ShapeColor tells the fixed anchor apart from the swinging bob.
func (d *Drawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape.Body().GetType() == cp.BODY_STATIC {
		return colStatic
	}
	return colDynamic
}

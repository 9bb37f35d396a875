package viz

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Drawer plots chipmunk debug draw output on a braille canvas. World
// coordinates are y up inside a width by height box; the box is scaled
// uniformly to fit the canvas and centred.
type Drawer struct {
	canvas     *Canvas
	scale      float64
	offX, offY float64
	worldH     float64
}

func NewDrawer(c *Canvas, worldW, worldH float64) *Drawer {
	cw, ch := c.Pixels()
	scale := math.Min(float64(cw-1)/worldW, float64(ch-1)/worldH)
	return &Drawer{
		canvas: c,
		scale:  scale,
		offX:   (float64(cw-1) - worldW*scale) / 2,
		offY:   (float64(ch-1) - worldH*scale) / 2,
		worldH: worldH,
	}
}

// Project maps a world point to canvas sub-pixels.
func (d *Drawer) Project(p cp.Vector) (int, int) {
	x := d.offX + p.X*d.scale
	y := d.offY + (d.worldH-p.Y)*d.scale
	return int(math.Round(x)), int(math.Round(y))
}

func (d *Drawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	cx, cy := d.Project(pos)
	d.canvas.DrawCircle(cx, cy, int(math.Round(radius*d.scale)))
	ex, ey := d.Project(pos.Add(cp.ForAngle(angle).Mult(radius)))
	d.canvas.DrawLine(cx, cy, ex, ey)
}

func (d *Drawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	ax, ay := d.Project(a)
	bx, by := d.Project(b)
	d.canvas.DrawLine(ax, ay, bx, by)
}

func (d *Drawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.DrawSegment(a, b, fill, data)
}

func (d *Drawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	for i := 0; i < count; i++ {
		d.DrawSegment(verts[i], verts[(i+1)%count], outline, data)
	}
}

func (d *Drawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.Project(pos)
	d.canvas.Set(x, y)
}

func (d *Drawer) Flags() uint                    { return cp.DRAW_SHAPES | cp.DRAW_CONSTRAINTS }
func (d *Drawer) OutlineColor() cp.FColor        { return cp.FColor{R: 1, G: 1, B: 1, A: 1} }
func (d *Drawer) ConstraintColor() cp.FColor     { return cp.FColor{R: 0, G: 0.75, B: 0, A: 1} }
func (d *Drawer) CollisionPointColor() cp.FColor { return cp.FColor{R: 1, G: 0, B: 0, A: 1} }
func (d *Drawer) Data() interface{}              { return nil }

func (d *Drawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 1}
}

package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

type Params struct {
	Anchor cp.Vector
	Bob    cp.Vector
	Mass   float64
	Radius float64
	Force  float64 // impulse magnitude per push
}

// Pendulum is a static anchor and a circular bob joined by a pin joint.
type Pendulum struct {
	Anchor *cp.Body
	Bob    *cp.Body
	Shape  *cp.Shape
	Joint  *cp.Constraint

	space  *cp.Space
	params Params
	length float64
}

// NewPendulum creates the bodies and the joint and adds them to space.
func NewPendulum(space *cp.Space, params Params) (*Pendulum, error) {
	if space == nil {
		return nil, ErrNilWorld
	}
	if params.Mass <= 0 {
		return nil, fmt.Errorf("%w: mass %g", ErrParameterBounds, params.Mass)
	}
	if params.Radius <= 0 {
		return nil, fmt.Errorf("%w: radius %g", ErrParameterBounds, params.Radius)
	}
	if params.Force < 0 {
		return nil, fmt.Errorf("%w: force %g", ErrParameterBounds, params.Force)
	}
	length := params.Bob.Distance(params.Anchor)
	if length == 0 {
		return nil, fmt.Errorf("%w: bob coincides with anchor", ErrParameterBounds)
	}

	anchor := cp.NewStaticBody()
	anchor.SetPosition(params.Anchor)

	moment := cp.MomentForCircle(params.Mass, 0, params.Radius, cp.Vector{})
	bob := cp.NewBody(params.Mass, moment)
	bob.SetPosition(params.Bob)

	shape := cp.NewCircle(bob, params.Radius, cp.Vector{})
	joint := cp.NewPinJoint(anchor, bob, cp.Vector{}, cp.Vector{})

	p := &Pendulum{
		Anchor: space.AddBody(anchor),
		Bob:    space.AddBody(bob),
		Shape:  space.AddShape(shape),
		Joint:  space.AddConstraint(joint),
		space:  space,
		params: params,
		length: length,
	}
	return p, nil
}

// Angle is the signed angle in degrees between the resting direction and
// the pendulum vector.
func (p *Pendulum) Angle() float64 {
	return AngleBetween(Rest, p.Vector())
}

// Vector points from the anchor to the centre of the bob.
func (p *Pendulum) Vector() cp.Vector {
	return p.Bob.Position().Sub(p.Anchor.Position())
}

// Accelerate applies an impulse of fixed magnitude along direction at the
// bob's centre.
func (p *Pendulum) Accelerate(direction cp.Vector) error {
	if direction.LengthSq() == 0 || !finite(direction) {
		return ErrZeroDirection
	}
	impulse := direction.Normalize().Mult(p.params.Force)
	p.Bob.ApplyImpulseAtWorldPoint(impulse, p.Bob.Position())
	return nil
}

// Length is the rod length fixed when the joint was created.
func (p *Pendulum) Length() float64 {
	return p.length
}

func (p *Pendulum) Params() Params {
	return p.params
}

// Energy returns kinetic plus potential energy, with the potential measured
// from the resting pose so a pendulum at rest has zero energy.
func (p *Pendulum) Energy() float64 {
	v := p.Bob.Velocity()
	w := p.Bob.AngularVelocity()
	ke := 0.5*p.params.Mass*v.LengthSq() + 0.5*p.Bob.Moment()*w*w

	g := p.space.Gravity()
	pe := p.params.Mass * (g.Length()*p.length - g.Dot(p.Vector()))
	return ke + pe
}

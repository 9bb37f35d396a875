// Package input turns held-key state into pendulum pushes.
package input

type Key int

const (
	Left Key = iota
	Right
)

func (k Key) String() string {
	switch k {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// ParseKey maps a key name to a Key. The second result is false for
// unknown names.
func ParseKey(name string) (Key, bool) {
	switch name {
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return 0, false
}

// Poller reports whether a key is held at the moment it is asked.
type Poller interface {
	IsHeld(k Key) bool
}

// Ticker is implemented by pollers whose state advances once per update.
type Ticker interface {
	Tick()
}

type Push int

const (
	PushNone Push = iota
	PushLeft
	PushRight
)

func (p Push) String() string {
	switch p {
	case PushLeft:
		return "left"
	case PushRight:
		return "right"
	}
	return "none"
}

// Rotation is the angle in degrees the pendulum vector is turned by to get
// the push direction: clockwise for left, counter-clockwise for right.
func (p Push) Rotation() float64 {
	switch p {
	case PushLeft:
		return -90
	case PushRight:
		return 90
	}
	return 0
}

// Resolve reads the poller once. Left wins when both keys are held.
func Resolve(p Poller) Push {
	if p == nil {
		return PushNone
	}
	if p.IsHeld(Left) {
		return PushLeft
	}
	if p.IsHeld(Right) {
		return PushRight
	}
	return PushNone
}

package input

// Held is a fixed set of held keys.
type Held map[Key]bool

func (h Held) IsHeld(k Key) bool {
	return h[k]
}

// Latch keeps a key held for a number of ticks after each press. Terminals
// report presses and auto-repeats but never releases, so a press has to
// stand in for a short hold.
type Latch struct {
	hold      int
	remaining map[Key]int
}

func NewLatch(holdTicks int) *Latch {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &Latch{
		hold:      holdTicks,
		remaining: make(map[Key]int, 2),
	}
}

// Press holds k for the latch duration and releases the opposite key.
func (l *Latch) Press(k Key) {
	l.PressFor(k, l.hold)
}

func (l *Latch) PressFor(k Key, ticks int) {
	for other := range l.remaining {
		if other != k {
			delete(l.remaining, other)
		}
	}
	l.remaining[k] = ticks
}

func (l *Latch) Release() {
	for k := range l.remaining {
		delete(l.remaining, k)
	}
}

func (l *Latch) IsHeld(k Key) bool {
	return l.remaining[k] > 0
}

func (l *Latch) Tick() {
	for k, n := range l.remaining {
		if n <= 1 {
			delete(l.remaining, k)
			continue
		}
		l.remaining[k] = n - 1
	}
}

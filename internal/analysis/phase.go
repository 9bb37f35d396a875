package analysis

import (
	"strings"
)

type Point struct {
	X, Y float64
}

// PhasePortrait pairs each angle with its rate of change.
type PhasePortrait struct {
	Points []Point
}

// AngularRate differentiates values over times with central differences,
// one sided at the ends.
func AngularRate(times, values []float64) []float64 {
	n := len(values)
	if len(times) < n {
		n = len(times)
	}
	if n < 2 {
		return make([]float64, n)
	}

	rate := make([]float64, n)
	rate[0] = (values[1] - values[0]) / (times[1] - times[0])
	rate[n-1] = (values[n-1] - values[n-2]) / (times[n-1] - times[n-2])
	for i := 1; i < n-1; i++ {
		rate[i] = (values[i+1] - values[i-1]) / (times[i+1] - times[i-1])
	}
	return rate
}

// NewPhasePortrait builds the angle against angular rate trajectory of a
// recorded swing.
func NewPhasePortrait(times, angles []float64) *PhasePortrait {
	rates := AngularRate(times, angles)
	p := &PhasePortrait{Points: make([]Point, len(rates))}
	for i, r := range rates {
		p.Points[i] = Point{X: angles[i], Y: r}
	}
	return p
}

// ASCII plots the portrait on a width by height grid with axes through the
// origin when it is visible.
func (p *PhasePortrait) ASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}

	// 10% padding
	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX, rangeY = maxX-minX, maxY-minY

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	for _, pt := range p.Points {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((pt.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			grid[row][col] = '•'
		}
	}

	if minX <= 0 && maxX >= 0 {
		col := int(-minX / rangeX * float64(width-1))
		for row := range grid {
			if grid[row][col] == ' ' {
				grid[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int(-minY/rangeY*float64(height-1))
		for col := range grid[row] {
			if grid[row][col] == ' ' {
				grid[row][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

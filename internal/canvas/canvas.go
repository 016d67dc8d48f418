// Package canvas renders sub-cell graphics into terminal cells using
// braille patterns, giving a 2x4 dot resolution per character cell.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a colored braille drawing surface. Coordinates given to the
// drawing methods are dot coordinates: the dot grid is (Width*2) wide by
// (Height*4) tall. Each character cell carries a single foreground color;
// the last dot drawn into a cell wins.
type Canvas struct {
	Width, Height int
	grid          [][]rune
	colors        [][]lipgloss.Color
}

func New(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		grid:   make([][]rune, h),
		colors: make([][]lipgloss.Color, h),
	}
	for i := range c.grid {
		c.grid[i] = make([]rune, w)
		c.colors[i] = make([]lipgloss.Color, w)
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// DotWidth returns the canvas width in dots.
func (c *Canvas) DotWidth() int { return c.Width * 2 }

// DotHeight returns the canvas height in dots.
func (c *Canvas) DotHeight() int { return c.Height * 4 }

// Set turns on the dot at (x, y) with the given color.
func (c *Canvas) Set(x, y int, color lipgloss.Color) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.grid[row][col] |= rune(pixelMap[subY][subX])
	c.colors[row][col] = color
}

// Unset clears the dot at (x, y). The cell keeps its color for any dots
// still lit.
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	mask := ^rune(pixelMap[subY][subX])
	c.grid[row][col] &= mask
	if c.grid[row][col] < 0x2800 {
		c.grid[row][col] = 0x2800
	}
}

// Lit reports whether the dot at (x, y) is on.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

// Clear resets every cell to empty.
func (c *Canvas) Clear() {
	for i := range c.grid {
		for j := range c.grid[i] {
			c.grid[i][j] = 0x2800
			c.colors[i][j] = ""
		}
	}
}

// Line draws a colored line between two dots using Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int, color lipgloss.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle draws a circle outline centered on a dot. The braille dot grid
// is close to square in common terminal fonts, so the radius is the same
// in both axes.
func (c *Canvas) Circle(cx, cy, r int, color lipgloss.Color) {
	if r <= 0 {
		c.Set(cx, cy, color)
		return
	}
	c.ellipse(cx, cy, r, r, color, false)
}

// FillCircle draws a filled circle centered on a dot.
func (c *Canvas) FillCircle(cx, cy, r int, color lipgloss.Color) {
	if r <= 0 {
		c.Set(cx, cy, color)
		return
	}
	c.ellipse(cx, cy, r, r, color, true)
}

func (c *Canvas) ellipse(cx, cy, rx, ry int, color lipgloss.Color, fill bool) {
	rx2 := rx * rx
	ry2 := ry * ry
	for dy := -ry; dy <= ry; dy++ {
		// Horizontal span of the ellipse at this scanline.
		rem := ry2 - dy*dy
		if rem < 0 {
			continue
		}
		span := isqrt(rx2 * rem / ry2)
		if fill {
			for dx := -span; dx <= span; dx++ {
				c.Set(cx+dx, cy+dy, color)
			}
		} else {
			c.Set(cx-span, cy+dy, color)
			c.Set(cx+span, cy+dy, color)
		}
	}
	if !fill {
		// Close the top and bottom of the outline.
		for dx := -rx; dx <= rx; dx++ {
			rem := rx2 - dx*dx
			if rem < 0 {
				continue
			}
			span := isqrt(ry2 * rem / rx2)
			c.Set(cx+dx, cy-span, color)
			c.Set(cx+dx, cy+span, color)
		}
	}
}

// Render returns the canvas as styled terminal rows. Styles are cached
// per color so a frame allocates one style per distinct color, not per
// cell.
func (c *Canvas) Render() string {
	styles := make(map[lipgloss.Color]lipgloss.Style)
	var b strings.Builder
	for i, row := range c.grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		var run strings.Builder
		var runColor lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(run.String())
			} else {
				style, ok := styles[runColor]
				if !ok {
					style = lipgloss.NewStyle().Foreground(runColor)
					styles[runColor] = style
				}
				b.WriteString(style.Render(run.String()))
			}
			run.Reset()
		}
		for j, r := range row {
			color := c.colors[i][j]
			if r == 0x2800 {
				color = ""
			}
			if color != runColor {
				flush()
				runColor = color
			}
			run.WriteRune(r)
		}
		flush()
	}
	return b.String()
}

// String returns the unstyled braille text, one row per line.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

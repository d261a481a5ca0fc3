// Package draw renders the world to an ANSI terminal. A Canvas packs two
// pixel rows into each character row using half-block glyphs, and scales from
// field coordinates to whatever terminal it is given.
package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// circleSegments is the number of edges used to approximate a circle.
const circleSegments = 24

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// It scales from logical (field) coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // subPixelHeight / logicalHeight

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []r2.Point
	intersectionBuf []float64
	polygonBuf      []r2.Point
}

// NewCanvas creates a canvas for a terminal of termWidth x termHeight cells
// showing a logical area of logicalWidth x logicalHeight.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
	}
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at terminal pixel coordinates. Out of range is ignored.
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// pixel reports whether the pixel at terminal pixel coordinates is set.
func (c *Canvas) pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// toPixel scales a logical point to terminal pixel coordinates.
func (c *Canvas) toPixel(p r2.Point) (int, int) {
	return int(math.Round(p.X * c.scaleX)), int(math.Round(p.Y * c.scaleY))
}

// Set sets the pixel under a logical point.
func (c *Canvas) Set(p r2.Point) {
	c.setPixel(c.toPixel(p))
}

// DrawLine draws a line between two logical points using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 r2.Point) {
	x1, y1 := c.toPixel(p1)
	x2, y2 := c.toPixel(p2)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws the outline of a closed polygon, and fills it when filled is set.
func (c *Canvas) DrawPolygon(points []r2.Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	for i := range points {
		c.DrawLine(points[i], points[(i+1)%len(points)])
	}
}

// DrawCircle draws a circle outline of the given logical radius.
func (c *Canvas) DrawCircle(center r2.Point, radius float64) {
	points := c.borrowPoints(circleSegments)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / circleSegments
		sin, cos := math.Sincos(angle)
		points[i] = center.Add(r2.Point{X: cos * radius, Y: sin * radius})
	}
	c.DrawPolygon(points, false)
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []r2.Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]r2.Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = r2.Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		intersections := c.intersectionBuf[:0]
		for i := range scaled {
			p1, p2 := scaled[i], scaled[(i+1)%len(scaled)]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i])); x <= int(math.Floor(intersections[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render writes the set pixels to w as positioned half-block characters.
// Empty cells are skipped; the caller clears the screen beforehand.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			top := c.pixel(col, row*2)
			bottom := c.pixel(col, row*2+1)

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}

			c.renderBuf.WriteString("\033[")
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1), 10))
			c.renderBuf.WriteByte(';')
			c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1), 10))
			c.renderBuf.WriteByte('H')
			c.renderBuf.WriteRune(ch)
		}
	}
	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

// LogicalToTerminal converts logical coordinates to a 1-based terminal position.
func (c *Canvas) LogicalToTerminal(p r2.Point) (col, row int) {
	px, py := c.toPixel(p)
	return px + 1, py/2 + 1
}

// TerminalWidth returns the terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// borrowPoints returns a reusable slice valid until the next call.
func (c *Canvas) borrowPoints(n int) []r2.Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]r2.Point, n)
	}
	return c.polygonBuf[:n]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package editor

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one SVG path command. The set is closed: every consumer
// switches over all four kinds so a new kind cannot be silently ignored.
type Segment interface {
	seg()
}

// MoveTo starts a new subpath at an absolute point.
type MoveTo struct {
	X, Y float64
}

// LineTo draws a straight line to an absolute point.
type LineTo struct {
	X, Y float64
}

// CubicTo draws a cubic Bezier curve with two control points.
type CubicTo struct {
	X1, Y1 float64
	X2, Y2 float64
	X, Y   float64
}

// Close closes the current subpath.
type Close struct{}

func (MoveTo) seg()  {}
func (LineTo) seg()  {}
func (CubicTo) seg() {}
func (Close) seg()   {}

// ParsePath parses SVG path data into segments. Supported commands are
// M/m, L/l, H/h, V/v, C/c, S/s and Z/z, the closed subset this generator
// emits. Relative and shorthand commands are normalized to absolute
// Move/Line/Cubic segments.
func ParsePath(d string) ([]Segment, error) {
	p := &pathScanner{data: d}
	var segs []Segment
	var curX, curY, startX, startY float64
	var prevC2X, prevC2Y float64
	prevCubic := false

	cmd := byte(0)
	for {
		p.skipSeparators()
		if p.done() {
			return segs, nil
		}
		if c := p.peek(); isCommand(c) {
			cmd = c
			p.pos++
			if cmd == 'Z' || cmd == 'z' {
				segs = append(segs, Close{})
				curX, curY = startX, startY
				prevCubic = false
				cmd = 0
			}
			continue
		}
		if cmd == 0 {
			return nil, fmt.Errorf("path data starts without a command at %q", p.rest())
		}

		switch cmd {
		case 'M', 'm':
			x, y, err := p.readPair()
			if err != nil {
				return nil, err
			}
			if cmd == 'm' {
				x += curX
				y += curY
			}
			segs = append(segs, MoveTo{X: x, Y: y})
			curX, curY = x, y
			startX, startY = x, y
			prevCubic = false
			// Further pairs after a moveto are implicit linetos.
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'L', 'l':
			x, y, err := p.readPair()
			if err != nil {
				return nil, err
			}
			if cmd == 'l' {
				x += curX
				y += curY
			}
			segs = append(segs, LineTo{X: x, Y: y})
			curX, curY = x, y
			prevCubic = false
		case 'H', 'h':
			x, err := p.readNumber()
			if err != nil {
				return nil, err
			}
			if cmd == 'h' {
				x += curX
			}
			segs = append(segs, LineTo{X: x, Y: curY})
			curX = x
			prevCubic = false
		case 'V', 'v':
			y, err := p.readNumber()
			if err != nil {
				return nil, err
			}
			if cmd == 'v' {
				y += curY
			}
			segs = append(segs, LineTo{X: curX, Y: y})
			curY = y
			prevCubic = false
		case 'C', 'c':
			x1, y1, err := p.readPair()
			if err != nil {
				return nil, err
			}
			x2, y2, err := p.readPair()
			if err != nil {
				return nil, err
			}
			x, y, err := p.readPair()
			if err != nil {
				return nil, err
			}
			if cmd == 'c' {
				x1 += curX
				y1 += curY
				x2 += curX
				y2 += curY
				x += curX
				y += curY
			}
			segs = append(segs, CubicTo{X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y})
			curX, curY = x, y
			prevC2X, prevC2Y = x2, y2
			prevCubic = true
		case 'S', 's':
			x2, y2, err := p.readPair()
			if err != nil {
				return nil, err
			}
			x, y, err := p.readPair()
			if err != nil {
				return nil, err
			}
			if cmd == 's' {
				x2 += curX
				y2 += curY
				x += curX
				y += curY
			}
			// First control point reflects the previous cubic's second
			// control point, or collapses onto the current point.
			x1, y1 := curX, curY
			if prevCubic {
				x1 = 2*curX - prevC2X
				y1 = 2*curY - prevC2Y
			}
			segs = append(segs, CubicTo{X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y})
			curX, curY = x, y
			prevC2X, prevC2Y = x2, y2
			prevCubic = true
		default:
			return nil, fmt.Errorf("unsupported path command %q", string(cmd))
		}
	}
}

// FormatPath serializes segments back to absolute path data.
func FormatPath(segs []Segment) string {
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		switch t := s.(type) {
		case MoveTo:
			parts = append(parts, "M"+num(t.X)+","+num(t.Y))
		case LineTo:
			parts = append(parts, "L"+num(t.X)+","+num(t.Y))
		case CubicTo:
			parts = append(parts, "C"+num(t.X1)+","+num(t.Y1)+" "+num(t.X2)+","+num(t.Y2)+" "+num(t.X)+","+num(t.Y))
		case Close:
			parts = append(parts, "Z")
		}
	}
	return strings.Join(parts, " ")
}

// Translate shifts every coordinate of every segment by (dx, dy).
func Translate(segs []Segment, dx, dy float64) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		switch t := s.(type) {
		case MoveTo:
			out[i] = MoveTo{X: t.X + dx, Y: t.Y + dy}
		case LineTo:
			out[i] = LineTo{X: t.X + dx, Y: t.Y + dy}
		case CubicTo:
			out[i] = CubicTo{
				X1: t.X1 + dx, Y1: t.Y1 + dy,
				X2: t.X2 + dx, Y2: t.Y2 + dy,
				X: t.X + dx, Y: t.Y + dy,
			}
		case Close:
			out[i] = t
		}
	}
	return out
}

// PathPoints returns the endpoint and control points of every segment, in
// order, for building a polygon out of a shape outline.
func PathPoints(segs []Segment) [][2]float64 {
	var pts [][2]float64
	for _, s := range segs {
		switch t := s.(type) {
		case MoveTo:
			pts = append(pts, [2]float64{t.X, t.Y})
		case LineTo:
			pts = append(pts, [2]float64{t.X, t.Y})
		case CubicTo:
			pts = append(pts, [2]float64{t.X1, t.Y1}, [2]float64{t.X2, t.Y2}, [2]float64{t.X, t.Y})
		case Close:
		}
	}
	return pts
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type pathScanner struct {
	data string
	pos  int
}

func (p *pathScanner) done() bool  { return p.pos >= len(p.data) }
func (p *pathScanner) peek() byte  { return p.data[p.pos] }
func (p *pathScanner) rest() string {
	if p.pos >= len(p.data) {
		return ""
	}
	return p.data[p.pos:]
}

func (p *pathScanner) skipSeparators() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r', ',':
			p.pos++
		default:
			return
		}
	}
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Z', 'z':
		return true
	}
	return false
}

// readNumber scans one float. A sign or a second decimal point terminates
// the previous number ("0.1-0.2" and "1.2.3" are two numbers each).
func (p *pathScanner) readNumber() (float64, error) {
	p.skipSeparators()
	start := p.pos
	seenDot := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch {
		case c == '+' || c == '-':
			if p.pos != start {
				goto scanned
			}
		case c == '.':
			if seenDot {
				goto scanned
			}
			seenDot = true
		case c < '0' || c > '9':
			goto scanned
		}
		p.pos++
	}
scanned:
	if p.pos == start {
		return 0, fmt.Errorf("expected number at %q", p.rest())
	}
	v, err := strconv.ParseFloat(p.data[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q: %w", p.data[start:p.pos], err)
	}
	return v, nil
}

func (p *pathScanner) readPair() (float64, float64, error) {
	x, err := p.readNumber()
	if err != nil {
		return 0, 0, err
	}
	y, err := p.readNumber()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

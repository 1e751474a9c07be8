package pathbool

import (
	"fmt"
	"strconv"
	"strings"

	tdstrconv "github.com/tdewolff/strconv"
)

// skipSVGSeparators advances past whitespace and commas, the same
// delimiter set SVG path data allows between numbers.
func skipSVGSeparators(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseSVGNum(path []byte) (float64, int) {
	i := skipSVGSeparators(path)
	f, n := tdstrconv.ParseFloat(path[i:])
	return f, i + n
}

// ParseSVGPath parses an SVG path-data string into a CompoundPath, one
// child Path per M...Z subpath. Arcs (A/a) are not supported, since
// every curve this package works with must already be a cubic Bézier
// (spec §1's non-goal); quadratics (Q/q, T/t) are promoted to cubics on
// the way in.
func ParseSVGPath(d string) (*CompoundPath, error) {
	data := []byte(d)
	cp := &CompoundPath{Rule: NonZero}
	var cur *Path
	var prevCmd byte
	var cpx, cpy float64 // last control point, for S/T shorthand reflection
	var startX, startY float64
	reopened := false // cur holds only the implicit move back to the start after a Z

	pos := func() (float64, float64) {
		if cur == nil || len(cur.Segments) == 0 {
			return 0, 0
		}
		a := cur.Segments[len(cur.Segments)-1].Anchor
		return a.X, a.Y
	}

	i := 0
	for i < len(data) {
		i += skipSVGSeparators(data[i:])
		if i >= len(data) {
			break
		}
		cmd := prevCmd
		if data[i] >= 'A' && data[i] != ',' {
			cmd = data[i]
			i++
		} else if prevCmd == 0 {
			return nil, fmt.Errorf("pathbool: invalid SVG path data at byte %d", i)
		}
		x, y := pos()

		readN := func(n int) ([]float64, error) {
			vals := make([]float64, n)
			for k := 0; k < n; k++ {
				v, adv := parseSVGNum(data[i:])
				if adv == 0 {
					return nil, fmt.Errorf("pathbool: expected number at byte %d", i)
				}
				vals[k] = v
				i += adv
			}
			return vals, nil
		}

		switch cmd {
		case 'M', 'm':
			v, err := readN(2)
			if err != nil {
				return nil, err
			}
			a, b := v[0], v[1]
			if cmd == 'm' {
				a += x
				b += y
			}
			if cur != nil && len(cur.Segments) > 0 && !(reopened && len(cur.Segments) == 1) {
				cp.Children = append(cp.Children, cur)
			}
			cur = NewPath()
			cur.MoveTo(a, b)
			startX, startY = a, b
			reopened = false
		case 'Z', 'z':
			if cur != nil {
				cur.Close()
				cp.Children = append(cp.Children, cur)
				cur = NewPath()
				cur.MoveTo(startX, startY)
				reopened = true
			}
		case 'L', 'l':
			v, err := readN(2)
			if err != nil {
				return nil, err
			}
			a, b := v[0], v[1]
			if cmd == 'l' {
				a += x
				b += y
			}
			cur.LineTo(a, b)
		case 'H', 'h':
			v, err := readN(1)
			if err != nil {
				return nil, err
			}
			a := v[0]
			if cmd == 'h' {
				a += x
			}
			cur.LineTo(a, y)
		case 'V', 'v':
			v, err := readN(1)
			if err != nil {
				return nil, err
			}
			b := v[0]
			if cmd == 'v' {
				b += y
			}
			cur.LineTo(x, b)
		case 'C', 'c':
			v, err := readN(6)
			if err != nil {
				return nil, err
			}
			a, b, c, d, e, f := v[0], v[1], v[2], v[3], v[4], v[5]
			if cmd == 'c' {
				a, b, c, d, e, f = a+x, b+y, c+x, d+y, e+x, f+y
			}
			cur.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'S', 's':
			v, err := readN(4)
			if err != nil {
				return nil, err
			}
			c, d, e, f := v[0], v[1], v[2], v[3]
			if cmd == 's' {
				c, d, e, f = c+x, d+y, e+x, f+y
			}
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2*x-cpx, 2*y-cpy
			}
			cur.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'Q', 'q':
			v, err := readN(4)
			if err != nil {
				return nil, err
			}
			a, b, c, d := v[0], v[1], v[2], v[3]
			if cmd == 'q' {
				a, b, c, d = a+x, b+y, c+x, d+y
			}
			c1x, c1y, c2x, c2y := quadToCubicControls(x, y, a, b, c, d)
			cur.CubeTo(c1x, c1y, c2x, c2y, c, d)
			cpx, cpy = a, b
		case 'T', 't':
			v, err := readN(2)
			if err != nil {
				return nil, err
			}
			c, d := v[0], v[1]
			if cmd == 't' {
				c, d = c+x, d+y
			}
			a, b := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2*x-cpx, 2*y-cpy
			}
			c1x, c1y, c2x, c2y := quadToCubicControls(x, y, a, b, c, d)
			cur.CubeTo(c1x, c1y, c2x, c2y, c, d)
			cpx, cpy = a, b
		default:
			return nil, fmt.Errorf("pathbool: unsupported SVG path command %q", string(cmd))
		}
		prevCmd = cmd
	}
	if cur != nil && len(cur.Segments) > 0 && !(reopened && len(cur.Segments) == 1) {
		cp.Children = append(cp.Children, cur)
	}
	return cp, nil
}

// quadToCubicControls returns the two cubic control points that exactly
// represent the quadratic Bézier from (x0,y0) through control (qx,qy) to (x1,y1).
func quadToCubicControls(x0, y0, qx, qy, x1, y1 float64) (c1x, c1y, c2x, c2y float64) {
	c1x = x0 + 2.0/3.0*(qx-x0)
	c1y = y0 + 2.0/3.0*(qy-y0)
	c2x = x1 + 2.0/3.0*(qx-x1)
	c2y = y1 + 2.0/3.0*(qy-y1)
	return
}

// ToSVGPath serializes item to SVG path data, one M...(Z) per subpath.
func ToSVGPath(item PathItem) string {
	var b strings.Builder
	for _, p := range item.Paths() {
		writeSVGSubpath(&b, p)
	}
	return b.String()
}

func writeSVGSubpath(b *strings.Builder, p *Path) {
	if len(p.Segments) == 0 {
		return
	}
	writeSVGPoint(b, 'M', p.Segments[0].Anchor)
	n := len(p.Segments)
	last := n - 1
	if p.Closed {
		last = n
	}
	for i := 0; i < last; i++ {
		s0 := p.Segments[i]
		s1 := p.Segments[(i+1)%n]
		if s0.HandleOut.IsZero() && s1.HandleIn.IsZero() {
			writeSVGPoint(b, 'L', s1.Anchor)
			continue
		}
		cp1 := s0.Anchor.Add(s0.HandleOut)
		cp2 := s1.Anchor.Add(s1.HandleIn)
		fmt.Fprintf(b, "C%s,%s,%s,%s,%s,%s",
			formatSVGNum(cp1.X), formatSVGNum(cp1.Y),
			formatSVGNum(cp2.X), formatSVGNum(cp2.Y),
			formatSVGNum(s1.Anchor.X), formatSVGNum(s1.Anchor.Y))
	}
	if p.Closed {
		b.WriteByte('Z')
	}
}

func writeSVGPoint(b *strings.Builder, cmd byte, v Vector) {
	b.WriteByte(cmd)
	b.WriteString(formatSVGNum(v.X))
	b.WriteByte(',')
	b.WriteString(formatSVGNum(v.Y))
}

func formatSVGNum(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

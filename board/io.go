package board

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// dirFromLetter maps a pzprv3 direction letter (uppercase) to a Direction.
func dirFromLetter(c byte) Direction {
	switch c {
	case 'U':
		return Up
	case 'D':
		return Down
	case 'L':
		return Left
	case 'R':
		return Right
	default:
		return NoDirection
	}
}

// letterFromDir is dirFromLetter's inverse, used when dumping. NoDirection
// maps to 'X', which dirFromLetter reads back as NoDirection.
func letterFromDir(d Direction) byte {
	switch d {
	case Up:
		return 'U'
	case Down:
		return 'D'
	case Left:
		return 'L'
	case Right:
		return 'R'
	default:
		return 'X'
	}
}

// ParsePZPRv3 reads a pzprv3/nagare puzzle file: a "pzprv3" magic line, a
// "nagare" puzzle-name line, an H line, a W line, then H lines of W
// space-separated single-character cells. Lowercase letters are White
// cells, uppercase are Black cells, '.' is an empty cell; the letter
// (case-folded to uppercase) names the cell's arrow direction. The result
// is properized before being returned.
func ParsePZPRv3(r io.Reader) (*Board, error) {
	sc := bufio.NewScanner(r)

	readLine := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", ErrMalformedFile
		}
		return sc.Text(), nil
	}

	magic, err := readLine()
	if err != nil {
		return nil, err
	}
	if magic != "pzprv3" {
		return nil, ErrMalformedFile
	}

	name, err := readLine()
	if err != nil {
		return nil, err
	}
	if name != "nagare" {
		return nil, ErrMalformedFile
	}

	hLine, err := readLine()
	if err != nil {
		return nil, err
	}
	h, err := strconv.Atoi(strings.TrimSpace(hLine))
	if err != nil {
		return nil, ErrMalformedFile
	}

	wLine, err := readLine()
	if err != nil {
		return nil, err
	}
	w, err := strconv.Atoi(strings.TrimSpace(wLine))
	if err != nil {
		return nil, ErrMalformedFile
	}

	b, err := New(w, h)
	if err != nil {
		return nil, err
	}

	for y := 1; y <= h; y++ {
		line, err := readLine()
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(line)
		if len(fields) != w {
			return nil, ErrMalformedFile
		}
		for x := 1; x <= w; x++ {
			tok := fields[x-1]
			if tok == "." || tok == "" {
				continue
			}
			c := tok[0]
			if c >= 'a' && c <= 'z' {
				if err := b.SetCell(x, y, White, dirFromLetter(c-32)); err != nil {
					return nil, err
				}
			} else {
				if err := b.SetCell(x, y, Black, dirFromLetter(c)); err != nil {
					return nil, err
				}
			}
		}
	}

	b.Properize()

	return b, nil
}

// WritePZPRv3 writes b in pzprv3/nagare format: the two magic lines, H,
// W, then H lines of W space-separated cell tokens. White cells are
// lowercased, Black cells uppercased, empty cells rendered ".".
func (b *Board) WritePZPRv3(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "pzprv3")
	fmt.Fprintln(bw, "nagare")
	fmt.Fprintln(bw, b.h)
	fmt.Fprintln(bw, b.w)

	for y := 1; y <= b.h; y++ {
		for x := 1; x <= b.w; x++ {
			var tok string
			switch b.ColorXY(x, y) {
			case White:
				tok = string(letterFromDir(b.DirectionsXY(x, y)[0]) + 32)
			case Black:
				tok = string(letterFromDir(b.DirectionsXY(x, y)[0]))
			default:
				tok = "."
			}
			if x > 1 {
				fmt.Fprint(bw, " ")
			}
			fmt.Fprint(bw, tok)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// WriteGraph writes the current edge list, one "v1 v2" pair per line, in
// the same row-major construction order Edges returns.
func (b *Board) WriteGraph(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range b.edges {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.V1, e.V2); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteDOT renders b as a Graphviz graph: one square node per cell,
// colored by Color, labeled with its arrows; one edge per orthogonally
// adjacent cell pair, dotted where IsValidEdge is false; solution, if
// non-nil, highlights the edges at the given Edges() indices in red.
// Cells in the same row are grouped into a same-rank cluster so dot
// lays the board out as a grid rather than a force-directed blob.
func (b *Board) WriteDOT(w io.Writer, solution []int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "graph {")

	n := b.w * b.h
	for i := 0; i < n; i++ {
		b.writeDOTNode(bw, i)
	}

	for i := 0; i < n; i++ {
		if (i+1)%b.w != 0 {
			b.writeDOTEdge(bw, i, i+1)
		}
		if i+b.w < n {
			b.writeDOTEdge(bw, i, i+b.w)
		}
	}

	for _, k := range solution {
		if k < 0 || k >= len(b.edges) {
			continue
		}
		e := b.edges[k]
		fmt.Fprintf(bw, "%d--%d [color=red, style=bold];\n", e.V1, e.V2)
	}

	for i := 0; i < n; i++ {
		if (i+1)%b.w == 1 {
			fmt.Fprint(bw, "{rank = same")
		}
		fmt.Fprintf(bw, ";%d", i)
		if (i+1)%b.w == 0 {
			fmt.Fprintln(bw, "};")
		}
	}

	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func (b *Board) writeDOTNode(w *bufio.Writer, i int) {
	fmt.Fprintf(w, "%d [shape=square,style=filled,", i)

	switch b.color[i] {
	case White:
		fmt.Fprint(w, "fillcolor=white,fontcolor=black,")
	case Black:
		fmt.Fprint(w, "fillcolor=black,fontcolor=white,")
	case Gray:
		fmt.Fprint(w, "fillcolor=gray,fontcolor=white,")
	default:
		fmt.Fprint(w, "fillcolor=lightblue,")
	}

	var label strings.Builder
	for _, d := range b.dirs[i] {
		label.WriteString(d.Arrow())
	}

	fmt.Fprintf(w, "label=\"%d:%s\"];\n", i, label.String())
}

func (b *Board) writeDOTEdge(w *bufio.Writer, i, j int) {
	fmt.Fprintf(w, "%d--%d [", i, j)
	if i+1 == j {
		fmt.Fprint(w, "headport=w,tailport=e")
	} else {
		fmt.Fprint(w, "headport=n,tailport=s")
	}
	if !b.IsValidEdge(i, j) {
		fmt.Fprint(w, ",style=dotted")
	}
	fmt.Fprintln(w, "];")
}

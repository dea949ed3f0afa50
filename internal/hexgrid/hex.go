// Package hexgrid provides the hexagonal board geometry for hexsnake:
// axial coordinates, the six movement headings, and the two-faced wrap
// topology. It contains no external dependencies so the game logic
// stays pure and testable.
package hexgrid

// Cell is a position on the hex board in axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
type Cell struct {
	Q, R int
}

// S returns the implicit third cube coordinate.
func (c Cell) S() int {
	return -c.Q - c.R
}

// Add returns the cell offset by o.
func (c Cell) Add(o Cell) Cell {
	return Cell{Q: c.Q + o.Q, R: c.R + o.R}
}

// Heading is one of the six movement directions, cyclically ordered.
// Rotating by +1 turns one hex side clockwise.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDownRight
	HeadingDownLeft
	HeadingLeft
	HeadingUpLeft
	HeadingUpRight
)

// NumHeadings is the number of discrete headings.
const NumHeadings = 6

// headingVectors maps each heading to its axial unit offset.
// The ordering matches the reflection tables in wrap.go.
var headingVectors = [NumHeadings]Cell{
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
	{Q: 0, R: -1},
	{Q: 1, R: -1},
}

// Vector returns the axial unit offset for this heading.
func (h Heading) Vector() Cell {
	return headingVectors[h]
}

// Rotate turns the heading by delta steps (callers only ever pass ±1).
func (h Heading) Rotate(delta int) Heading {
	return Heading((int(h) + delta + NumHeadings) % NumHeadings)
}

// Invert returns the heading turned 180 degrees.
func (h Heading) Invert() Heading {
	return (h + 3) % NumHeadings
}

func (h Heading) String() string {
	switch h {
	case HeadingRight:
		return "right"
	case HeadingDownRight:
		return "down-right"
	case HeadingDownLeft:
		return "down-left"
	case HeadingLeft:
		return "left"
	case HeadingUpLeft:
		return "up-left"
	case HeadingUpRight:
		return "up-right"
	default:
		return "unknown"
	}
}

// Board is a hexagonal region of fixed radius centered on the origin.
type Board struct {
	Radius int
}

// NewBoard creates a board with the given radius.
func NewBoard(radius int) Board {
	return Board{Radius: radius}
}

// Contains reports whether the cell lies on the board:
// |q| <= R, |r| <= R and |q+r| <= R.
func (b Board) Contains(c Cell) bool {
	r := b.Radius
	return abs(c.Q) <= r && abs(c.R) <= r && abs(c.Q+c.R) <= r
}

// Cells enumerates every on-board cell.
func (b Board) Cells() []Cell {
	r := b.Radius
	cells := make([]Cell, 0, 3*r*r+3*r+1)
	for q := -r; q <= r; q++ {
		for rr := max(-r, -q-r); rr <= min(r, -q+r); rr++ {
			cells = append(cells, Cell{Q: q, R: rr})
		}
	}
	return cells
}

// CellCount returns the number of on-board cells: 3R² + 3R + 1.
func (b Board) CellCount() int {
	return 3*b.Radius*b.Radius + 3*b.Radius + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

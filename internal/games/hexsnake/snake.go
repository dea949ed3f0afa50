package hexsnake

import "github.com/vovakirdan/hexsnake/internal/hexgrid"

// Face identifies one of the two linked copies of the board.
const (
	FaceA = 0
	FaceB = 1
)

// otherFace returns the face on the opposite side of a wrap.
func otherFace(face int) int {
	return 1 - face
}

// Segment is one cell of the snake's body on a specific face.
type Segment struct {
	Cell hexgrid.Cell
	Face int
}

// Snake is the ordered body of the snake, head at index 0.
// No two segments share the same (cell, face) pair.
type Snake []Segment

// Head returns the head segment. The snake is never empty while a
// session exists.
func (s Snake) Head() Segment {
	return s[0]
}

// Occupies reports whether any segment sits on the given cell and face.
func (s Snake) Occupies(c hexgrid.Cell, face int) bool {
	for _, seg := range s {
		if seg.Cell == c && seg.Face == face {
			return true
		}
	}
	return false
}

// grown returns a new snake with head prepended, keeping the tail.
func (s Snake) grown(head Segment) Snake {
	body := make(Snake, 0, len(s)+1)
	body = append(body, head)
	return append(body, s...)
}

// moved returns a new snake with head prepended and the tail dropped.
func (s Snake) moved(head Segment) Snake {
	body := make(Snake, 0, len(s))
	body = append(body, head)
	return append(body, s[:len(s)-1]...)
}

// startingSnake returns the canonical three-segment snake on face A,
// lying along the first direction vector with the head leading.
func startingSnake() Snake {
	return Snake{
		{Cell: hexgrid.Cell{Q: 0, R: 0}, Face: FaceA},
		{Cell: hexgrid.Cell{Q: -1, R: 0}, Face: FaceA},
		{Cell: hexgrid.Cell{Q: -2, R: 0}, Face: FaceA},
	}
}

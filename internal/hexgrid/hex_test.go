package hexgrid

import "testing"

func TestBoardContains(t *testing.T) {
	b := NewBoard(3)

	tests := []struct {
		name string
		cell Cell
		want bool
	}{
		{"origin", Cell{0, 0}, true},
		{"east corner", Cell{3, 0}, true},
		{"west corner", Cell{-3, 0}, true},
		{"south edge", Cell{0, 3}, true},
		{"mixed interior", Cell{-2, 3}, true},
		{"q too large", Cell{4, 0}, false},
		{"r too large", Cell{0, -4}, false},
		{"sum violation only", Cell{2, 2}, false},
		{"sum violation negative", Cell{-3, -1}, false},
		{"edge plus one", Cell{3, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.cell); got != tt.want {
				t.Errorf("Contains(%v) = %v, expected %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestBoardCellCount(t *testing.T) {
	for _, radius := range []int{1, 2, 3, 7, 15} {
		b := NewBoard(radius)
		want := 3*radius*radius + 3*radius + 1
		if got := b.CellCount(); got != want {
			t.Errorf("CellCount(radius=%d) = %d, expected %d", radius, got, want)
		}
	}
}

func TestBoardCellsEnumeration(t *testing.T) {
	b := NewBoard(4)
	cells := b.Cells()

	if len(cells) != b.CellCount() {
		t.Fatalf("Cells() returned %d cells, expected %d", len(cells), b.CellCount())
	}

	seen := make(map[Cell]bool, len(cells))
	for _, c := range cells {
		if !b.Contains(c) {
			t.Errorf("Cells() returned off-board cell %v", c)
		}
		if seen[c] {
			t.Errorf("Cells() returned duplicate cell %v", c)
		}
		seen[c] = true
	}
}

func TestCellCubeInvariant(t *testing.T) {
	b := NewBoard(3)
	for _, c := range b.Cells() {
		if c.Q+c.R+c.S() != 0 {
			t.Errorf("cell %v violates q+r+s=0 (s=%d)", c, c.S())
		}
	}
}

func TestHeadingVectorsAreUnitNeighbors(t *testing.T) {
	// Every heading vector must be one of the six hex neighbors:
	// cube distance exactly 1 from the origin.
	seen := make(map[Cell]bool)
	for h := Heading(0); h < NumHeadings; h++ {
		v := h.Vector()
		dist := (abs(v.Q) + abs(v.R) + abs(v.Q+v.R)) / 2
		if dist != 1 {
			t.Errorf("heading %v vector %v has hex distance %d, expected 1", h, v, dist)
		}
		if seen[v] {
			t.Errorf("heading %v vector %v duplicates another heading", h, v)
		}
		seen[v] = true
	}
}

func TestHeadingRotate(t *testing.T) {
	// Six clockwise steps return to the start.
	for h := Heading(0); h < NumHeadings; h++ {
		got := h
		for i := 0; i < NumHeadings; i++ {
			got = got.Rotate(1)
		}
		if got != h {
			t.Errorf("six Rotate(+1) from %v ended at %v", h, got)
		}
	}

	// Rotate(-1) undoes Rotate(+1).
	for h := Heading(0); h < NumHeadings; h++ {
		if got := h.Rotate(1).Rotate(-1); got != h {
			t.Errorf("Rotate(+1) then Rotate(-1) from %v ended at %v", h, got)
		}
	}

	// Adjacent headings have adjacent vectors (rotating by one step
	// never jumps across the ring).
	if HeadingRight.Rotate(1) != HeadingDownRight {
		t.Errorf("Rotate(+1) from right = %v, expected down-right", HeadingRight.Rotate(1))
	}
	if HeadingRight.Rotate(-1) != HeadingUpRight {
		t.Errorf("Rotate(-1) from right = %v, expected up-right", HeadingRight.Rotate(-1))
	}
}

func TestHeadingInvert(t *testing.T) {
	for h := Heading(0); h < NumHeadings; h++ {
		inv := h.Invert()
		if inv == h {
			t.Errorf("Invert(%v) returned the same heading", h)
		}
		if got := inv.Invert(); got != h {
			t.Errorf("double Invert(%v) = %v", h, got)
		}

		// Opposite headings have opposite vectors.
		v, w := h.Vector(), inv.Vector()
		if v.Q+w.Q != 0 || v.R+w.R != 0 {
			t.Errorf("vectors of %v and %v are not opposite: %v, %v", h, inv, v, w)
		}
	}
}

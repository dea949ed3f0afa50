package hexsnake

import (
	"math/rand"

	"github.com/vovakirdan/hexsnake/internal/hexgrid"
)

// Food is the single piece of food on the board.
type Food struct {
	Cell hexgrid.Cell
	Face int
}

// FaceAny asks the spawner to consider both faces.
const FaceAny = -1

// spawnFood places food on a uniformly random unoccupied (cell, face)
// pair. Pass FaceAny to consider both faces, or a specific face to
// restrict placement (used after a wrap when the mirrored food cell
// falls off-board).
//
// If every candidate is occupied the board is saturated: the spawner
// returns a degenerate fallback at the origin on face A and reports
// saturated=true. Callers treat that as an anomaly, not a normal
// outcome; minimum board sizes make it unreachable in real play.
func spawnFood(rng *rand.Rand, board hexgrid.Board, snake Snake, face int) (food Food, saturated bool) {
	faces := []int{FaceA, FaceB}
	if face != FaceAny {
		faces = []int{face}
	}

	var candidates []Food
	for _, c := range board.Cells() {
		for _, f := range faces {
			if !snake.Occupies(c, f) {
				candidates = append(candidates, Food{Cell: c, Face: f})
			}
		}
	}

	if len(candidates) == 0 {
		return Food{Cell: hexgrid.Cell{}, Face: FaceA}, true
	}
	return candidates[rng.Intn(len(candidates))], false
}

package hexsnake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/hexsnake/internal/hexgrid"
)

func TestSpawnFoodAvoidsSnake(t *testing.T) {
	board := hexgrid.NewBoard(2)
	snake := Snake{
		{Cell: hexgrid.Cell{Q: 0, R: 0}, Face: FaceA},
		{Cell: hexgrid.Cell{Q: -1, R: 0}, Face: FaceA},
		{Cell: hexgrid.Cell{Q: -2, R: 0}, Face: FaceA},
		{Cell: hexgrid.Cell{Q: 0, R: 0}, Face: FaceB},
	}

	for seed := int64(0); seed < 50; seed++ {
		food, saturated := spawnFood(rand.New(rand.NewSource(seed)), board, snake, FaceAny)
		if saturated {
			t.Fatalf("seed %d: spurious saturation on a mostly empty board", seed)
		}
		if !board.Contains(food.Cell) {
			t.Errorf("seed %d: food at off-board cell %v", seed, food.Cell)
		}
		if snake.Occupies(food.Cell, food.Face) {
			t.Errorf("seed %d: food at %v overlaps snake", seed, food)
		}
	}
}

func TestSpawnFoodRestrictedFace(t *testing.T) {
	board := hexgrid.NewBoard(3)
	snake := startingSnake()

	for seed := int64(0); seed < 50; seed++ {
		food, saturated := spawnFood(rand.New(rand.NewSource(seed)), board, snake, FaceB)
		if saturated {
			t.Fatalf("seed %d: spurious saturation", seed)
		}
		if food.Face != FaceB {
			t.Errorf("seed %d: food on face %d despite face restriction", seed, food.Face)
		}
	}
}

func TestSpawnFoodSaturatedFallback(t *testing.T) {
	// Radius 0 board has a single cell; occupying it on both faces
	// leaves no candidates.
	board := hexgrid.NewBoard(0)
	snake := Snake{
		{Cell: hexgrid.Cell{Q: 0, R: 0}, Face: FaceA},
		{Cell: hexgrid.Cell{Q: 0, R: 0}, Face: FaceB},
	}

	food, saturated := spawnFood(rand.New(rand.NewSource(1)), board, snake, FaceAny)

	if !saturated {
		t.Fatal("expected saturation on a fully occupied board")
	}
	if food.Cell != (hexgrid.Cell{}) || food.Face != FaceA {
		t.Errorf("degenerate fallback = %v, expected origin on face A", food)
	}
}

func TestSpawnFoodSaturatedOnRestrictedFace(t *testing.T) {
	// The other face is free, but the restriction makes it invisible.
	board := hexgrid.NewBoard(0)
	snake := Snake{
		{Cell: hexgrid.Cell{Q: 0, R: 0}, Face: FaceB},
	}

	_, saturated := spawnFood(rand.New(rand.NewSource(1)), board, snake, FaceB)
	if !saturated {
		t.Fatal("expected saturation when the restricted face is full")
	}
}

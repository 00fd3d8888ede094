package runner

import (
	"math"
	"testing"
)

func TestScrollTilesStayAdjacent(t *testing.T) {
	const (
		width    = 400.0
		viewport = 350.0
	)

	var tiles [2]BackgroundTile
	sc := NewScrollController(&tiles, width)

	for tick := 1; tick <= 10000; tick++ {
		sc.Advance(0.5)

		a, b := tiles[0], tiles[1]
		adjacent := math.Abs(a.Right()-b.X) < 1e-9 || math.Abs(b.Right()-a.X) < 1e-9
		if !adjacent {
			t.Fatalf("tick %d: tiles not adjacent: %+v %+v", tick, a, b)
		}

		left := math.Min(a.X, b.X)
		right := math.Max(a.Right(), b.Right())
		if left > 0 || right < viewport {
			t.Fatalf("tick %d: tiles cover [%v, %v), viewport is [0, %v)", tick, left, right, viewport)
		}
	}
}

func TestScrollReanchorsBehindOtherTile(t *testing.T) {
	var tiles [2]BackgroundTile
	sc := NewScrollController(&tiles, 10)

	// 20 ticks of 0.5 moves the first tile fully out of view
	for i := 0; i < 20; i++ {
		sc.Advance(0.5)
	}

	if tiles[0].X != 10 {
		t.Errorf("first tile X = %v, expected 10 (right of the second tile)", tiles[0].X)
	}
	if tiles[1].X != 0 {
		t.Errorf("second tile X = %v, expected 0", tiles[1].X)
	}
}

func TestScrollSuspend(t *testing.T) {
	var tiles [2]BackgroundTile
	sc := NewScrollController(&tiles, 400)
	sc.Advance(0.5)
	sc.Suspend()

	before := tiles
	for i := 0; i < 100; i++ {
		sc.Advance(0.5)
	}

	if tiles != before {
		t.Errorf("suspended scroll moved tiles: %+v -> %+v", before, tiles)
	}
	if !sc.Suspended() {
		t.Error("Suspended() should be true")
	}
}

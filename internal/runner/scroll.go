package runner

// ScrollController moves the two background tiles left each tick and
// re-anchors a tile behind the other once it leaves the view, forming a
// two-tile ring that never runs out.
type ScrollController struct {
	tiles     *[2]BackgroundTile
	suspended bool
}

// NewScrollController places the first tile at the origin and the second
// immediately to its right.
func NewScrollController(tiles *[2]BackgroundTile, width float64) ScrollController {
	tiles[0] = BackgroundTile{X: 0, Width: width}
	tiles[1] = BackgroundTile{X: width, Width: width}
	return ScrollController{tiles: tiles}
}

// Advance applies one tick of scrolling. Each tile is tested independently;
// the second test sees the first tile's new position.
func (sc *ScrollController) Advance(delta float64) {
	if sc.suspended {
		return
	}

	t := sc.tiles
	t[0].X -= delta
	t[1].X -= delta

	if t[0].X <= -t[0].Width {
		t[0].X = t[1].X + t[1].Width
	}
	if t[1].X <= -t[1].Width {
		t[1].X = t[0].X + t[0].Width
	}
}

// Suspend stops all further scrolling.
func (sc *ScrollController) Suspend() {
	sc.suspended = true
}

// Suspended reports whether scrolling has stopped.
func (sc *ScrollController) Suspended() bool {
	return sc.suspended
}

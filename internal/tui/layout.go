package tui

import "github.com/alexisbeaulieu97/imagepick/internal/snapshot"

// Rect is a screen region. W and H are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is the screen area of one rendered image.
type Region struct {
	Rect
	Pointer snapshot.Pointer
}

// Layout records where the last render placed each image.
type Layout struct {
	Regions []Region
	// Rows lists the rendered pointers per grid row, in display order.
	Rows   [][]snapshot.Pointer
	Width  int
	Height int
}

// Hit returns the image under (x, y). Later regions win on overlap.
func (l Layout) Hit(x, y int) (snapshot.Pointer, bool) {
	for i := len(l.Regions) - 1; i >= 0; i-- {
		if l.Regions[i].Contains(x, y) {
			return l.Regions[i].Pointer, true
		}
	}
	return snapshot.Pointer{}, false
}

// Contains reports whether p was rendered.
func (l Layout) Contains(p snapshot.Pointer) bool {
	_, _, ok := l.position(p)
	return ok
}

// First returns the first rendered pointer.
func (l Layout) First() (snapshot.Pointer, bool) {
	for _, row := range l.Rows {
		if len(row) > 0 {
			return row[0], true
		}
	}
	return snapshot.Pointer{}, false
}

func (l Layout) position(p snapshot.Pointer) (int, int, bool) {
	for r, row := range l.Rows {
		for c, q := range row {
			if q == p {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Move returns the pointer reached from p by dx columns or dy rows. Rows
// without images are skipped and the column is clamped to the target row.
func (l Layout) Move(p snapshot.Pointer, dx, dy int) snapshot.Pointer {
	r, c, ok := l.position(p)
	if !ok {
		if first, found := l.First(); found {
			return first
		}
		return p
	}

	if dx != 0 {
		c += dx
		if c < 0 {
			c = 0
		}
		if c >= len(l.Rows[r]) {
			c = len(l.Rows[r]) - 1
		}
		return l.Rows[r][c]
	}

	for next := r + dy; dy != 0 && next >= 0 && next < len(l.Rows); next += dy {
		if len(l.Rows[next]) == 0 {
			continue
		}
		if c >= len(l.Rows[next]) {
			c = len(l.Rows[next]) - 1
		}
		return l.Rows[next][c]
	}
	return p
}

// Package core holds the types shared by game logic and the terminal
// platform: the screen buffer, layout rectangles, input frames and the
// per-tick state report. It imports nothing outside the standard library.
package core

// Rect is a screen area in cells. X and Y name the top-left cell; the
// right and bottom edges are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.Right() && r.Y <= y && y < r.Bottom()
}

// Center returns the middle cell, rounding toward the top-left.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Centered returns a w×h rectangle centered inside r.
// The result may start at a negative offset when it does not fit.
func (r Rect) Centered(w, h int) Rect {
	return Rect{X: r.X + (r.W-w)/2, Y: r.Y + (r.H-h)/2, W: w, H: h}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

package ui

// Dims is a dimensions closure; it is evaluated on every draw so that panes
// follow terminal resizes.
type Dims = func() (x, y, w, h int)

// Top returns the topmost n rows of the parent.
func Top(parent Dims, n int) Dims {
	return func() (int, int, int, int) {
		x, y, w, h := parent()
		return x, y, w, min(n, h)
	}
}

// Bottom returns the bottommost n rows of the parent.
func Bottom(parent Dims, n int) Dims {
	return func() (int, int, int, int) {
		x, y, w, h := parent()
		n := min(n, h)
		return x, y + h - n, w, n
	}
}

// Between returns the parent without its top and bottom rows.
func Between(parent Dims, top, bottom int) Dims {
	return func() (int, int, int, int) {
		x, y, w, h := parent()
		return x, y + top, w, max(h-top-bottom, 0)
	}
}

// GridCell returns the cell at col, row of an evenly split cols by rows grid
// over the parent.
// The last column and row take up the remainder of uneven splits.
func GridCell(parent Dims, cols, rows, col, row int) Dims {
	return func() (int, int, int, int) {
		x, y, w, h := parent()
		cw, ch := w/cols, h/rows
		cx, cy := x+col*cw, y+row*ch
		if col == cols-1 {
			cw = w - col*cw
		}
		if row == rows-1 {
			ch = h - row*ch
		}
		return cx, cy, cw, ch
	}
}

// Centered returns an area of at most w by h centered in the parent, keeping
// the given margin to the parent's edges.
func Centered(parent Dims, w, h, margin int) Dims {
	return func() (int, int, int, int) {
		px, py, pw, ph := parent()
		cw := max(min(w, pw-2*margin), 0)
		ch := max(min(h, ph-2*margin), 0)
		return px + (pw-cw)/2, py + (ph-ch)/2, cw, ch
	}
}

package state

// Next moves cursor forward one step, wrapping past the end to 0.
func Next(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	return (ClampCursor(cursor, size) + 1) % size
}

// Prev moves cursor back one step, wrapping before 0 to size-1.
func Prev(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	return (ClampCursor(cursor, size) - 1 + size) % size
}

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// CenteredWindow returns the [start, end) rows to show so that cursor sits
// near the middle of a viewport of the given height.
func CenteredWindow(totalRows, cursor, height int) (int, int) {
	if totalRows <= 0 {
		return 0, 0
	}
	if height <= 0 || totalRows <= height {
		return 0, totalRows
	}
	cursor = ClampCursor(cursor, totalRows)
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	maxStart := totalRows - height
	if start > maxStart {
		start = maxStart
	}
	return start, start + height
}

package entity

// Direction is a horizontal sense along the board's column axis.
type Direction int

const (
	Left Direction = iota
	Right
)

// IndexRange is a cursor over one axis of the board. On a cyclic axis the
// last position is adjacent to the first, so moves may wrap around; on a
// plain axis a move past either end is blocked. The type has value
// semantics: Step returns a new cursor and never mutates the receiver.
type IndexRange struct {
	size     int
	isCyclic bool
	cursor   int
}

func NewIndexRange(size int, isCyclic bool, cursor int) IndexRange {
	return IndexRange{
		size:     size,
		isCyclic: isCyclic,
		cursor:   cursor,
	}
}

// Step advances the cursor by distance positions in the given direction.
// Distance is reduced modulo the axis size first, so a zero step (or a full
// loop on a cyclic axis) always succeeds. When the move would cross the axis
// boundary, Step wraps on a cyclic axis and reports blocked otherwise.
func (that IndexRange) Step(distance int, dir Direction) (IndexRange, bool) {
	distance %= that.size

	var room int
	switch dir {
	case Left:
		room = that.cursor
	case Right:
		room = that.size - 1 - that.cursor
	}

	if distance > room {
		if !that.isCyclic {
			return that, false
		}

		if dir == Left {
			that.cursor = that.cursor + that.size - distance
		} else {
			that.cursor = that.cursor - that.size + distance
		}
		return that, true
	}

	if dir == Left {
		that.cursor -= distance
	} else {
		that.cursor += distance
	}
	return that, true
}

// Index returns the current position for indexing into the board.
func (that IndexRange) Index() int {
	return that.cursor
}

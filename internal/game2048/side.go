package game2048

// Side is one of the four directions a board can be tilted toward.
//
// Each side defines a pure coordinate transform from motion-relative
// ("local") coordinates to board coordinates. In local coordinates the
// tilt always pushes tiles along increasing local column, so local
// column size-1 is the leading edge (the wall tiles pile up against)
// and the local row picks the lane being processed. The tilt algorithm
// is written once in local coordinates and reused for all four
// directions.
type Side int

const (
	SideUp Side = iota
	SideDown
	SideLeft
	SideRight
)

// Col converts the local position (localCol, localRow) on a board of
// the given size to a board column.
func (s Side) Col(localCol, localRow, size int) int {
	switch s {
	case SideUp, SideDown:
		return localRow
	case SideRight:
		return localCol
	case SideLeft:
		return size - 1 - localCol
	default:
		panic("game2048: invalid side")
	}
}

// Row converts the local position (localCol, localRow) on a board of
// the given size to a board row. Row 0 is the bottom of the board.
func (s Side) Row(localCol, localRow, size int) int {
	switch s {
	case SideUp:
		return localCol
	case SideDown:
		return size - 1 - localCol
	case SideLeft, SideRight:
		return localRow
	default:
		panic("game2048: invalid side")
	}
}

// String returns the side's name.
func (s Side) String() string {
	switch s {
	case SideUp:
		return "up"
	case SideDown:
		return "down"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

package paginator

// SightSize is the number of entries shown on one page (rows * cols)
type SightSize int

// FlyLeaves is the number of blank slots placed before the first real entry
type FlyLeaves int

// PseudoLen is the length of the padded sequence (entries + fly leaves)
type PseudoLen int

// Index is a zero-based position in the real collection
type Index int

// Position is a zero-based position in the padded sequence
type Position int

// Level is a zero-based page number
type Level int

// Position returns the padded position of an index
func (i Index) Position(fly FlyLeaves) Position {
	return Position(int(i) + int(fly))
}

// Index returns the real index at a padded position.
// The second value is false when the slot is a fly leaf.
func (p Position) Index(fly FlyLeaves) (Index, bool) {
	if int(p) < int(fly) {
		return 0, false
	}
	return Index(int(p) - int(fly)), true
}

// Level returns the page containing the position
func (p Position) Level(sight SightSize) Level {
	return Level(int(p) / int(sight))
}

// Position returns the padded position of the first cell of the page
func (l Level) Position(sight SightSize) Position {
	return Position(int(l) * int(sight))
}

// Condition is pushed whenever the collection length or the grid geometry changes
type Condition struct {
	Length    int
	SightSize SightSize
}

// Paging carries the parameters of one navigation command.
// Count is 1-origin and must be >= 1.
type Paging struct {
	Count       int
	Wrap        bool
	IgnoreSight bool
}

// cursor is either unpositioned or positioned on a level
type cursor struct {
	level      Level
	positioned bool
}

func unpositioned() cursor {
	return cursor{}
}

func positionedAt(level Level) cursor {
	return cursor{level: level, positioned: true}
}

func (c cursor) get() (Level, bool) {
	return c.level, c.positioned
}

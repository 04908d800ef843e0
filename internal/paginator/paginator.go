// Package paginator holds the cursor that turns navigation commands into
// the page of a rows x cols grid currently on screen.
//
// The cursor is expressed as a page number (Level) over a padded sequence:
// FlyLeaves blank slots followed by the real entries. Moving the fly leaves
// lets any entry land in any cell of the grid. A Paginator does no I/O and
// is not safe for concurrent use; its owner must apply calls in event order.
package paginator

import "fmt"

// Paginator tracks the current page of a grid over a flat collection
type Paginator struct {
	length    int
	sightSize SightSize
	flyLeaves FlyLeaves
	cursor    cursor
}

// New creates an empty, unpositioned paginator
func New() *Paginator {
	return &Paginator{sightSize: 1}
}

// UpdateCondition records a new collection length and sight size.
// Fly leaves are clipped to fit the new sight; the level is left alone so
// callers that want to follow an entry across a resize must seek again.
// An empty collection drops the cursor.
func (p *Paginator) UpdateCondition(c Condition) {
	sight := c.SightSize
	if sight < 1 {
		sight = 1
	}
	length := c.Length
	if length < 0 {
		length = 0
	}

	p.length = length
	p.sightSize = sight
	if p.flyLeaves > FlyLeaves(sight-1) {
		p.flyLeaves = FlyLeaves(sight - 1)
	}
	if length == 0 {
		p.cursor = unpositioned()
	}
}

// Reset clears the alignment and unpositions the cursor
func (p *Paginator) Reset() {
	p.flyLeaves = 0
	p.cursor = unpositioned()
}

// Length returns the size of the real collection
func (p *Paginator) Length() int {
	return p.length
}

// SightSize returns the number of cells per page
func (p *Paginator) SightSize() SightSize {
	return p.sightSize
}

// FlyLeaves returns how many leading cells of the first page are blank
func (p *Paginator) FlyLeaves() FlyLeaves {
	return p.flyLeaves
}

// PseudoLen returns the length of the padded sequence
func (p *Paginator) PseudoLen() PseudoLen {
	return PseudoLen(p.length + int(p.flyLeaves))
}

// Levels returns the number of pages
func (p *Paginator) Levels() int {
	return p.levelsWith(p.flyLeaves)
}

// Level returns the current page, false while unpositioned
func (p *Paginator) Level() (Level, bool) {
	return p.cursor.get()
}

// Position returns the padded position of the first visible cell
func (p *Paginator) Position() (Position, bool) {
	level, ok := p.cursor.get()
	if !ok {
		return 0, false
	}
	return level.Position(p.sightSize), true
}

// CurrentIndex returns the entry shown in the first cell
func (p *Paginator) CurrentIndex() (Index, bool) {
	return p.CurrentIndexWith(0)
}

// CurrentIndexWith returns the entry shown delta cells after the first one.
// The second value is false for fly leaves and cells past the end.
func (p *Paginator) CurrentIndexWith(delta int) (Index, bool) {
	position, ok := p.Position()
	if !ok {
		return 0, false
	}
	index, ok := (position + Position(delta)).Index(p.flyLeaves)
	if !ok || int(index) >= p.length {
		return 0, false
	}
	return index, true
}

// AtFirst reports whether the first page is shown
func (p *Paginator) AtFirst() bool {
	level, ok := p.cursor.get()
	return ok && level == 0
}

// AtLast reports whether the last page is shown
func (p *Paginator) AtLast() bool {
	level, ok := p.cursor.get()
	return ok && int(level) == p.Levels()-1
}

// Show moves to the page holding entry Count-1 within the current alignment
func (p *Paginator) Show(paging Paging) bool {
	if p.length == 0 {
		return false
	}
	index := Index(max(paging.Count-1, 0))
	level := index.Position(p.flyLeaves).Level(p.sightSize)
	return p.set(p.clamp(level, p.Levels()), p.flyLeaves)
}

// SetFlyLeaves changes the alignment to n mod sight size. The fly leaves
// walk the shorter way round to the target; wrapping past a page boundary
// moves the level by one page so the shown entries shift as little as
// possible.
func (p *Paginator) SetFlyLeaves(n int) bool {
	if p.length == 0 {
		return false
	}

	sight := int(p.sightSize)
	target := FlyLeaves(modulo(n, sight))
	level := p.currentLevel()
	fly := p.flyLeaves

	if target != fly {
		increase := modulo(int(target)-int(fly), sight)
		decrease := sight - increase

		var carry int
		if increase <= decrease {
			fly, carry = shiftBackward(fly, p.sightSize, increase)
		} else {
			fly, carry = shiftForward(fly, p.sightSize, decrease)
		}
		level += Level(carry)
	}

	return p.set(p.clamp(level, p.levelsWith(fly)), fly)
}

// First seeks the Count-th page from the start. With IgnoreSight the
// Count-th entry is moved to the first cell of its page instead.
func (p *Paginator) First(paging Paging) bool {
	if p.length == 0 {
		return false
	}
	if paging.IgnoreSight {
		return p.align(Index(min(paging.Count, p.length) - 1))
	}

	levels := p.Levels()
	var level int
	switch {
	case paging.Count <= levels:
		level = paging.Count - 1
	case paging.Wrap:
		level = (paging.Count - 1) % levels
	default:
		level = levels - 1
	}
	return p.set(p.clamp(Level(level), levels), p.flyLeaves)
}

// Last seeks the Count-th page from the end. With IgnoreSight the
// Count-th entry from the end is moved to the first cell of its page.
func (p *Paginator) Last(paging Paging) bool {
	if p.length == 0 {
		return false
	}
	if paging.IgnoreSight {
		return p.align(Index(p.length - min(paging.Count, p.length)))
	}

	levels := p.Levels()
	var level int
	switch {
	case paging.Count <= levels:
		level = levels - paging.Count
	case paging.Wrap:
		level = levels - (paging.Count-1)%levels - 1
	default:
		level = 0
	}
	return p.set(p.clamp(Level(level), levels), p.flyLeaves)
}

// Next moves Count pages forward, or Count entries with IgnoreSight
func (p *Paginator) Next(paging Paging) bool {
	if p.length == 0 {
		return false
	}
	level := p.currentLevel()
	if !paging.IgnoreSight {
		return p.set(p.relative(int(level)+paging.Count, paging.Wrap), p.flyLeaves)
	}

	backs := int(p.PseudoLen()) - int(level.Position(p.sightSize)) - 1
	delta := max(min(paging.Count, backs), 0)
	sight := int(p.sightSize)

	level += Level(delta / sight)
	fly, carry := shiftForward(p.flyLeaves, p.sightSize, delta%sight)
	level += Level(carry)

	return p.set(p.clamp(level, p.levelsWith(fly)), fly)
}

// Previous moves Count pages backward, or Count entries with IgnoreSight
func (p *Paginator) Previous(paging Paging) bool {
	if p.length == 0 {
		return false
	}
	level := p.currentLevel()
	if !paging.IgnoreSight {
		return p.set(p.relative(int(level)-paging.Count, paging.Wrap), p.flyLeaves)
	}

	backs := int(level.Position(p.sightSize))
	delta := max(min(paging.Count, backs), 0)
	sight := int(p.sightSize)

	level -= Level(delta / sight)
	fly, carry := shiftBackward(p.flyLeaves, p.sightSize, delta%sight)
	level += Level(carry)

	return p.set(p.clamp(level, p.levelsWith(fly)), fly)
}

// String formats the cursor for logs
func (p *Paginator) String() string {
	level := "none"
	if l, ok := p.cursor.get(); ok {
		level = fmt.Sprint(int(l))
	}
	return fmt.Sprintf("{fly_leaves:%d length:%d level:%s sight_size:%d}",
		p.flyLeaves, p.length, level, p.sightSize)
}

func (p *Paginator) levelsWith(fly FlyLeaves) int {
	if p.length == 0 {
		return 0
	}
	sight := int(p.sightSize)
	return (p.length + int(fly) + sight - 1) / sight
}

// currentLevel is the level navigation starts from; a stale level left
// behind by a shrinking collection counts as the last page.
func (p *Paginator) currentLevel() Level {
	level, ok := p.cursor.get()
	if !ok {
		return 0
	}
	return p.clamp(level, p.Levels())
}

// relative resolves a page target that may lie outside [0, levels)
func (p *Paginator) relative(target int, wrap bool) Level {
	levels := p.Levels()
	switch {
	case target >= 0 && target < levels:
		return Level(target)
	case wrap:
		return Level(modulo(target, levels))
	case target < 0:
		return 0
	default:
		return Level(levels - 1)
	}
}

// align puts index on the first cell of its page
func (p *Paginator) align(index Index) bool {
	sight := int(p.sightSize)
	fly := FlyLeaves((sight - int(index)%sight) % sight)
	level := index.Position(fly).Level(p.sightSize)
	return p.set(p.clamp(level, p.levelsWith(fly)), fly)
}

func (p *Paginator) clamp(level Level, levels int) Level {
	if int(level) >= levels {
		level = Level(levels - 1)
	}
	if level < 0 {
		level = 0
	}
	return level
}

// set stores the new cursor and reports whether anything visible changed
func (p *Paginator) set(level Level, fly FlyLeaves) bool {
	old, ok := p.cursor.get()
	changed := !ok || old != level || p.flyLeaves != fly
	p.cursor = positionedAt(level)
	p.flyLeaves = fly
	return changed
}

func modulo(a, b int) int {
	return ((a % b) + b) % b
}

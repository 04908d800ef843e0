package navigation

import (
	"fmt"

	"gridgazer/internal/domain"
	"gridgazer/internal/paginator"
)

// Service owns the paginator for the grid and announces page changes.
// Like the paginator it is not safe for concurrent use; the UI update
// loop is its only caller.
type Service struct {
	pager *paginator.Paginator
	bus   Publisher
	rows  int
	cols  int
	wrap  bool
}

// NewService creates a navigation service for a rows x cols grid
func NewService(bus Publisher, rows, cols int, wrap bool) *Service {
	s := &Service{
		pager: paginator.New(),
		bus:   bus,
		rows:  max(rows, 1),
		cols:  max(cols, 1),
		wrap:  wrap,
	}
	s.pager.UpdateCondition(paginator.Condition{SightSize: s.SightSize()})
	return s
}

// Paginator exposes the cursor for read-only helpers (prefetch, session)
func (s *Service) Paginator() *paginator.Paginator {
	return s.pager
}

// SightSize returns rows * cols
func (s *Service) SightSize() paginator.SightSize {
	return paginator.SightSize(s.rows * s.cols)
}

// Rows returns the grid height in cells
func (s *Service) Rows() int { return s.rows }

// Cols returns the grid width in cells
func (s *Service) Cols() int { return s.cols }

// Wrap returns the default wrap setting
func (s *Service) Wrap() bool { return s.wrap }

// SetWrap changes the default wrap setting
func (s *Service) SetWrap(wrap bool) { s.wrap = wrap }

// ToggleWrap flips the wrap setting and returns the new value
func (s *Service) ToggleWrap() bool {
	s.wrap = !s.wrap
	return s.wrap
}

// Positioned reports whether the cursor points at a page
func (s *Service) Positioned() bool {
	_, ok := s.pager.Level()
	return ok
}

// Apply runs a command and publishes PageChanged when the visible page moved
func (s *Service) Apply(cmd Command) (bool, error) {
	var changed bool

	switch cmd.Op {
	case OpFirst:
		changed = s.pager.First(cmd.Paging)
	case OpLast:
		changed = s.pager.Last(cmd.Paging)
	case OpNext:
		changed = s.pager.Next(cmd.Paging)
	case OpPrevious:
		changed = s.pager.Previous(cmd.Paging)
	case OpShow:
		changed = s.pager.Show(cmd.Paging)
	case OpSetFlyLeaves:
		changed = s.pager.SetFlyLeaves(cmd.N)
	default:
		return false, fmt.Errorf("unknown navigation op %q", cmd.Op)
	}

	if changed {
		s.publish()
	}
	return changed, nil
}

// SetLength records a new collection size. The cursor is not moved; an
// empty collection leaves it unpositioned.
func (s *Service) SetLength(n int) {
	s.pager.UpdateCondition(paginator.Condition{Length: n, SightSize: s.SightSize()})
}

// Resize changes the grid geometry and seeks back to the page holding the
// entry that was first on screen
func (s *Service) Resize(rows, cols int) bool {
	rows, cols = max(rows, 1), max(cols, 1)
	if rows == s.rows && cols == s.cols {
		return false
	}

	anchor, anchored := s.firstVisible()
	s.rows, s.cols = rows, cols
	s.pager.UpdateCondition(paginator.Condition{Length: s.pager.Length(), SightSize: s.SightSize()})

	if anchored {
		s.pager.Show(paginator.Paging{Count: int(anchor) + 1})
	}
	s.publish()
	return true
}

// Reset forgets the position and the alignment
func (s *Service) Reset() {
	s.pager.Reset()
}

// Status returns a snapshot for views
func (s *Service) Status() domain.PageStatus {
	st := domain.PageStatus{
		Levels:     s.pager.Levels(),
		FirstIndex: -1,
		LastIndex:  -1,
		FlyLeaves:  int(s.pager.FlyLeaves()),
		Length:     s.pager.Length(),
		Rows:       s.rows,
		Cols:       s.cols,
		Wrap:       s.wrap,
	}

	level, ok := s.pager.Level()
	if !ok {
		return st
	}
	st.Positioned = true
	st.Level = int(level)

	for delta := 0; delta < int(s.SightSize()); delta++ {
		if index, ok := s.pager.CurrentIndexWith(delta); ok {
			if st.FirstIndex < 0 {
				st.FirstIndex = int(index)
			}
			st.LastIndex = int(index)
		}
	}
	return st
}

// CellIndex returns the entry shown in a grid cell, row-major
func (s *Service) CellIndex(row, col int) (int, bool) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return 0, false
	}
	index, ok := s.pager.CurrentIndexWith(row*s.cols + col)
	return int(index), ok
}

func (s *Service) firstVisible() (paginator.Index, bool) {
	for delta := 0; delta < int(s.SightSize()); delta++ {
		if index, ok := s.pager.CurrentIndexWith(delta); ok {
			return index, true
		}
	}
	return 0, false
}

func (s *Service) publish() {
	if s.bus == nil {
		return
	}
	st := s.Status()
	s.bus.Publish(domain.PageChangedEvent{
		Level:     st.Level,
		Levels:    st.Levels,
		Index:     st.FirstIndex,
		FlyLeaves: st.FlyLeaves,
	})
}

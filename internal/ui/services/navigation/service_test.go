package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridgazer/internal/domain"
	"gridgazer/internal/paginator"
)

type recordingBus struct {
	events []domain.PageChangedEvent
}

func (b *recordingBus) Publish(e domain.DomainEvent) {
	if pc, ok := e.(domain.PageChangedEvent); ok {
		b.events = append(b.events, pc)
	}
}

func newTestService(length, rows, cols int) (*Service, *recordingBus) {
	bus := &recordingBus{}
	s := NewService(bus, rows, cols, false)
	s.SetLength(length)
	return s, bus
}

func TestApplyPublishesOnlyOnChange(t *testing.T) {
	s, bus := newTestService(10, 2, 2)

	changed, err := s.Apply(Command{Op: OpFirst, Paging: paginator.Paging{Count: 1}})
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = s.Apply(Command{Op: OpFirst, Paging: paginator.Paging{Count: 1}})
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = s.Apply(Command{Op: OpNext, Paging: paginator.Paging{Count: 1}})
	require.NoError(t, err)
	assert.True(t, changed)

	require.Len(t, bus.events, 2)
	assert.Equal(t, domain.PageChangedEvent{Level: 1, Levels: 3, Index: 4, FlyLeaves: 0}, bus.events[1])
}

func TestApplyEveryOp(t *testing.T) {
	tests := []struct {
		name      string
		cmd       Command
		wantLevel int
		wantFly   int
	}{
		{name: "first", cmd: Command{Op: OpFirst, Paging: paginator.Paging{Count: 2}}, wantLevel: 1},
		{name: "last", cmd: Command{Op: OpLast, Paging: paginator.Paging{Count: 1}}, wantLevel: 2},
		{name: "next", cmd: Command{Op: OpNext, Paging: paginator.Paging{Count: 1, IgnoreSight: true}}, wantLevel: 1, wantFly: 3},
		{name: "previous wraps", cmd: Command{Op: OpPrevious, Paging: paginator.Paging{Count: 1, Wrap: true}}, wantLevel: 2},
		{name: "show", cmd: Command{Op: OpShow, Paging: paginator.Paging{Count: 9}}, wantLevel: 2},
		{name: "fly leaves", cmd: Command{Op: OpSetFlyLeaves, N: 1}, wantLevel: 0, wantFly: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestService(10, 2, 2)
			_, err := s.Apply(Command{Op: OpFirst, Paging: paginator.Paging{Count: 1}})
			require.NoError(t, err)

			_, err = s.Apply(tt.cmd)
			require.NoError(t, err)

			st := s.Status()
			assert.Equal(t, tt.wantLevel, st.Level)
			assert.Equal(t, tt.wantFly, st.FlyLeaves)
		})
	}
}

func TestApplyUnknownOp(t *testing.T) {
	s, _ := newTestService(10, 2, 2)
	_, err := s.Apply(Command{Op: "sideways"})
	assert.ErrorContains(t, err, "sideways")
}

func TestStatus(t *testing.T) {
	s, _ := newTestService(10, 2, 3)
	assert.False(t, s.Status().Positioned)
	assert.Equal(t, -1, s.Status().FirstIndex)

	_, err := s.Apply(Command{Op: OpSetFlyLeaves, N: 2})
	require.NoError(t, err)

	st := s.Status()
	assert.Equal(t, domain.PageStatus{
		Positioned: true,
		Level:      0,
		Levels:     2,
		FirstIndex: 0,
		LastIndex:  3,
		FlyLeaves:  2,
		Length:     10,
		Rows:       2,
		Cols:       3,
	}, st)

	_, ok := s.CellIndex(0, 1)
	assert.False(t, ok, "fly leaf")
	index, ok := s.CellIndex(1, 0)
	require.True(t, ok)
	assert.Equal(t, 1, index)
	_, ok = s.CellIndex(2, 0)
	assert.False(t, ok, "outside the grid")
}

func TestResizeKeepsFirstVisibleEntry(t *testing.T) {
	s, bus := newTestService(30, 2, 2)
	_, err := s.Apply(Command{Op: OpFirst, Paging: paginator.Paging{Count: 11, IgnoreSight: true}})
	require.NoError(t, err)
	require.Equal(t, 10, s.Status().FirstIndex)

	assert.True(t, s.Resize(3, 3))
	st := s.Status()
	assert.LessOrEqual(t, st.FirstIndex, 10)
	assert.GreaterOrEqual(t, st.LastIndex, 10)
	assert.Equal(t, paginator.SightSize(9), s.SightSize())
	assert.Less(t, st.FlyLeaves, 9)

	assert.False(t, s.Resize(3, 3))
	assert.Len(t, bus.events, 2)
}

func TestResizeFloorsToOneCell(t *testing.T) {
	s, _ := newTestService(3, 2, 2)
	s.Resize(0, -4)
	assert.Equal(t, 1, s.Rows())
	assert.Equal(t, 1, s.Cols())
}

func TestEmptyCollection(t *testing.T) {
	s, bus := newTestService(0, 2, 2)

	changed, err := s.Apply(Command{Op: OpNext, Paging: paginator.Paging{Count: 1}})
	require.NoError(t, err)
	assert.False(t, changed)
	assert.False(t, s.Positioned())
	assert.Empty(t, bus.events)
}

func TestWrapSetting(t *testing.T) {
	s := NewService(nil, 1, 1, true)
	assert.True(t, s.Wrap())
	assert.False(t, s.ToggleWrap())
	s.SetWrap(true)
	assert.True(t, s.Wrap())
}

func TestResetUnpositions(t *testing.T) {
	s, _ := newTestService(5, 1, 2)
	_, err := s.Apply(Command{Op: OpSetFlyLeaves, N: 1})
	require.NoError(t, err)

	s.Reset()
	assert.False(t, s.Positioned())
	assert.Zero(t, s.Status().FlyLeaves)
}

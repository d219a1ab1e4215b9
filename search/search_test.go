package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

//----------------------------------------------------------------------------//
// Frontier ordering
//----------------------------------------------------------------------------//

func TestKey_Less(t *testing.T) {
	assert.True(t, search.Key{Cost: 1, Seq: 9}.Less(search.Key{Cost: 2, Seq: 0}))
	assert.True(t, search.Key{Cost: 3, Seq: 1}.Less(search.Key{Cost: 3, Seq: 2}))
	assert.False(t, search.Key{Cost: 3, Seq: 2}.Less(search.Key{Cost: 3, Seq: 2}))
}

// TestFrontier_TieBreakByInsertion pushes equal costs and expects FIFO order
// among them, with lower costs first.
func TestFrontier_TieBreakByInsertion(t *testing.T) {
	g, _ := grid.New(3)
	f := search.NewFrontier()
	f.Push(g.At(0, 0), 5)
	f.Push(g.At(0, 1), 2)
	f.Push(g.At(0, 2), 5)
	f.Push(g.At(1, 0), 2)
	f.Push(g.At(1, 1), 7)
	require.Equal(t, 5, f.Len())

	want := []grid.Position{
		{Row: 0, Col: 1}, {Row: 1, Col: 0},
		{Row: 0, Col: 0}, {Row: 0, Col: 2},
		{Row: 1, Col: 1},
	}
	for i, w := range want {
		e, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, w, e.Cell.Position(), "pop %d", i)
	}
	_, ok := f.Pop()
	assert.False(t, ok)
}

func TestCosts_DefaultInfinity(t *testing.T) {
	g, _ := grid.New(2)
	cs := search.NewCosts(g.At(0, 0), 0)
	assert.Equal(t, 0, cs.Get(g.At(0, 0)))
	assert.Equal(t, search.Infinity, cs.Get(g.At(1, 1)))
}

//----------------------------------------------------------------------------//
// Path reconstruction
//----------------------------------------------------------------------------//

func TestReconstructPath(t *testing.T) {
	g, _ := grid.New(3)
	a, b, c, d := g.At(0, 0), g.At(0, 1), g.At(1, 1), g.At(2, 1)
	cameFrom := map[*grid.Cell]*grid.Cell{b: a, c: b, d: c}

	var steps []grid.Position
	path := search.ReconstructPath(cameFrom, d, a, func(cell *grid.Cell) {
		steps = append(steps, cell.Position())
	})

	assert.Equal(t, []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}}, path)
	assert.Equal(t, []grid.Position{{Row: 1, Col: 1}, {Row: 0, Col: 1}, {Row: 0, Col: 0}}, steps)
	assert.True(t, b.IsPath())
	assert.True(t, c.IsPath())
	assert.False(t, d.IsPath(), "goal keeps its own mark")
}

func TestReconstructPath_GoalIsStart(t *testing.T) {
	g, _ := grid.New(1)
	s := g.At(0, 0)
	path := search.ReconstructPath(map[*grid.Cell]*grid.Cell{}, s, s, nil)
	assert.Equal(t, []grid.Position{{Row: 0, Col: 0}}, path)
}

func TestReconstructPath_CyclePanics(t *testing.T) {
	g, _ := grid.New(2)
	a, b := g.At(0, 0), g.At(0, 1)
	cameFrom := map[*grid.Cell]*grid.Cell{a: b, b: a}
	assert.Panics(t, func() { search.ReconstructPath(cameFrom, a, g.At(1, 1), nil) })
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestValidate(t *testing.T) {
	g, _ := grid.ParseString("S.\n#E")
	other, _ := grid.New(2)
	s, e, err := g.Endpoints()
	require.NoError(t, err)

	cases := []struct {
		name       string
		g          *grid.Grid
		start, end *grid.Cell
		err        error
	}{
		{"NilGrid", nil, s, e, search.ErrNilGrid},
		{"NilStart", g, nil, e, search.ErrNilEndpoint},
		{"Foreign", g, other.At(0, 0), e, search.ErrEndpointNotInGrid},
		{"Barrier", g, g.At(1, 0), e, search.ErrEndpointIsBarrier},
		{"Same", g, s, s, search.ErrSameEndpoints},
		{"Valid", g, s, e, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := search.Validate(tc.g, tc.start, tc.end)
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Session
//----------------------------------------------------------------------------//

type SessionSuite struct {
	suite.Suite
	g          *grid.Grid
	start, end *grid.Cell
}

func (s *SessionSuite) SetupTest() {
	g, err := grid.ParseString("S..\n...\n..E")
	s.Require().NoError(err)
	s.g = g
	s.start, s.end, err = g.Endpoints()
	s.Require().NoError(err)
}

func (s *SessionSuite) TestBeginRejectsNegativeStepLimit() {
	_, err := search.Begin("test", s.g, s.start, s.end, search.WithStepLimit(-1))
	s.Require().ErrorIs(err, search.ErrOptionViolation)
}

func (s *SessionSuite) TestBeginClearsMarks() {
	s.g.At(1, 1).MarkClosed()
	_, err := search.Begin("test", s.g, s.start, s.end)
	s.Require().NoError(err)
	s.Equal(grid.MarkNone, s.g.At(1, 1).Mark())
}

func (s *SessionSuite) TestWithoutMarksKeepsGridUntouched() {
	s.g.At(1, 1).MarkClosed()
	sess, err := search.Begin("test", s.g, s.start, s.end, search.WithoutMarks())
	s.Require().NoError(err)
	s.Equal(grid.MarkClosed, s.g.At(1, 1).Mark())

	sess.Open(s.g.At(0, 1))
	s.Equal(grid.MarkNone, s.g.At(0, 1).Mark())
}

func (s *SessionSuite) TestHaltedOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	sess, err := search.Begin("test", s.g, s.start, s.end, search.WithContext(ctx))
	s.Require().NoError(err)
	s.False(sess.Halted())

	cancel()
	s.True(sess.Halted())
	res := sess.Abort()
	s.Equal(search.StatusAborted, res.Status)
	s.ErrorIs(res.Err, context.Canceled)
	s.False(res.Found())
	s.Empty(res.Path)
}

func (s *SessionSuite) TestHaltedOnStepLimit() {
	sess, err := search.Begin("test", s.g, s.start, s.end, search.WithStepLimit(2))
	s.Require().NoError(err)
	sess.Visit(s.start)
	s.False(sess.Halted())
	sess.Visit(s.g.At(0, 1))
	s.True(sess.Halted())
	s.ErrorIs(sess.Abort().Err, search.ErrStepLimit)
}

func (s *SessionSuite) TestObserverAndMarks() {
	var opened, expanded, traced int
	obs := search.ObserverFuncs{
		Open:     func(*grid.Cell) { opened++ },
		Expand:   func(*grid.Cell) { expanded++ },
		PathStep: func(*grid.Cell) { traced++ },
	}
	sess, err := search.Begin("test", s.g, s.start, s.end, search.WithObserver(obs))
	s.Require().NoError(err)

	mid := s.g.At(0, 1)
	sess.Open(mid)
	sess.Open(s.end)
	s.True(mid.IsOpen())
	s.Equal(grid.MarkNone, s.end.Mark(), "end keeps no frontier mark")

	sess.Expanded(s.start)
	sess.Expanded(mid)
	s.Equal(grid.MarkNone, s.start.Mark(), "start is never closed")
	s.True(mid.IsClosed())

	sess.Link(mid, s.start)
	sess.Link(s.end, mid)
	res := sess.Succeed()
	s.True(res.Found())
	s.Equal([]grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 2, Col: 2}}, res.Path)
	s.Equal(2, opened)
	s.Equal(3, expanded, "end is reported before the path is traced")
	s.Equal(2, traced)
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "found", search.StatusFound.String())
	assert.Equal(t, "no_path", search.StatusNoPath.String())
	assert.Equal(t, "aborted", search.StatusAborted.String())
}

func TestStatus_UnmarshalText(t *testing.T) {
	var st search.Status
	require.NoError(t, st.UnmarshalText([]byte("aborted")))
	assert.Equal(t, search.StatusAborted, st)
	assert.Error(t, st.UnmarshalText([]byte("lost")))
}

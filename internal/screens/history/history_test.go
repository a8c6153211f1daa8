package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/numberrush/internal/store"
)

type fakeGames struct {
	recs  []store.GameRecord
	err   error
	limit int
}

func (f *fakeGames) AppendGame(_ context.Context, rec store.GameRecord) error {
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeGames) RecentGames(_ context.Context, limit int) ([]store.GameRecord, error) {
	f.limit = limit
	return f.recs, f.err
}

func (f *fakeGames) Clear(context.Context) error {
	f.recs = nil
	return nil
}

func intPtr(v int) *int { return &v }

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func TestHistory_Loading(t *testing.T) {
	s := New(&fakeGames{})
	assert.Contains(t, s.View(80, 20), "Loading")
}

func TestHistory_Empty(t *testing.T) {
	games := &fakeGames{}
	s := New(games)
	load(t, s)
	assert.Contains(t, s.View(80, 20), "No games yet")
	assert.Equal(t, recentLimit, games.limit)
}

func TestHistory_Error(t *testing.T) {
	s := New(&fakeGames{err: errors.New("disk gone")})
	load(t, s)
	assert.Contains(t, s.View(80, 20), "disk gone")
}

func TestHistory_RowsAndDetails(t *testing.T) {
	now := time.Now()
	games := &fakeGames{recs: []store.GameRecord{
		{SessionID: "a", EndedAt: now, Difficulty: "double", Operation: "multiplication",
			Operands: []int{12, 3}, CorrectAnswer: 36, SelectedAnswer: intPtr(36), Correct: true,
			Score: 1230, Reward: 123, TimeTaken: 4.2},
		{SessionID: "b", EndedAt: now, Difficulty: "single", Operation: "addition",
			Operands: []int{1, 2}, CorrectAnswer: 3, TimeTaken: 60},
	}}
	s := New(games)
	load(t, s)

	view := s.View(100, 30)
	assert.Contains(t, view, "Medium")
	assert.Contains(t, view, "1,230")
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "⏱")
	assert.NotContains(t, view, "12 × 3 = 36")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(100, 30), "12 × 3 = 36")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(100, 30), "no answer")
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "✓", Outcome(store.GameRecord{Correct: true, SelectedAnswer: intPtr(1)}))
	assert.Equal(t, "✗", Outcome(store.GameRecord{SelectedAnswer: intPtr(2)}))
	assert.Equal(t, "⏱", Outcome(store.GameRecord{}))
}

package play

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
	"github.com/abhisek/numberrush/internal/session"
	"github.com/abhisek/numberrush/internal/stats"
	"github.com/abhisek/numberrush/internal/store"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestEngine(t *testing.T) (*session.Engine, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	e := session.NewEngine(context.Background(), session.Options{
		Generator: problemgen.New(7),
		Stats:     stats.NewRepo(store.NewMemoryKV()),
		Clock:     clock,
	})
	return e, clock
}

func manual() problemgen.Settings {
	s := problemgen.DefaultSettings()
	s.IsAutomatic = false
	s.NumberCount = 2
	return s
}

// replaced runs cmd and returns the screen of the resulting ReplaceScreenMsg.
func replaced(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	return msg.Screen
}

func startManualGame(t *testing.T) (*session.Engine, *fakeClock, *GameScreen) {
	t.Helper()
	e, clock := newTestEngine(t)
	setup := NewSetup(e, manual())
	_, cmd := setup.Update(specialKey(tea.KeyEnter))
	game, ok := replaced(t, cmd).(*GameScreen)
	require.True(t, ok)
	return e, clock, game
}

func TestSetup_ChangesFields(t *testing.T) {
	e, _ := newTestEngine(t)
	s := NewSetup(e, problemgen.DefaultSettings())

	s.Update(specialKey(tea.KeyRight)) // difficulty
	assert.Equal(t, problemgen.DifficultyDouble, s.Settings().Difficulty)
	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, problemgen.DifficultyTriple, s.Settings().Difficulty)

	s.Update(specialKey(tea.KeyDown)) // operation
	s.Update(specialKey(tea.KeyRight))
	assert.Equal(t, problemgen.OpSubtraction, s.Settings().Operation)

	s.Update(specialKey(tea.KeyDown)) // count
	for i := 0; i < 10; i++ {
		s.Update(specialKey(tea.KeyRight))
	}
	assert.Equal(t, problemgen.MaxNumberCount, s.Settings().NumberCount)

	s.Update(specialKey(tea.KeyDown)) // mode
	s.Update(specialKey(tea.KeyRight))
	assert.False(t, s.Settings().IsAutomatic)

	// Interval is skipped in manual mode.
	s.Update(specialKey(tea.KeyDown))
	assert.Equal(t, fieldStart, s.focus)

	assert.Equal(t, session.StatusSetup, e.State().Status)
}

func TestSetup_IntervalClamped(t *testing.T) {
	e, _ := newTestEngine(t)
	s := NewSetup(e, problemgen.DefaultSettings())
	s.focus = fieldInterval

	for i := 0; i < 40; i++ {
		s.Update(specialKey(tea.KeyLeft))
	}
	assert.Equal(t, problemgen.MinTimeInterval, s.Settings().TimeInterval)
}

func TestSetup_StartBeginsGame(t *testing.T) {
	e, _, game := startManualGame(t)

	st := e.State()
	assert.Equal(t, session.StatusPlaying, st.Status)
	assert.Equal(t, st.SessionID, game.state.SessionID)
	assert.NotEmpty(t, game.View(100, 30))
}

func TestGame_ManualRevealAndAnswer(t *testing.T) {
	e, clock, game := startManualGame(t)

	// Answers are locked until every operand is shown.
	game.Update(keyPress('1'))
	assert.Equal(t, session.StatusPlaying, e.State().Status)

	game.Update(keyPress(' '))
	game.Update(keyPress(' '))
	require.True(t, game.state.CanAnswer())

	clock.now = clock.now.Add(5 * time.Second)
	correct := e.State().CorrectAnswer
	idx := -1
	for i, opt := range game.state.Options {
		if opt == correct {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0)

	_, cmd := game.Update(keyPress(rune('1' + idx)))
	results, ok := replaced(t, cmd).(*ResultsScreen)
	require.True(t, ok)

	st := e.State()
	assert.Equal(t, session.StatusResults, st.Status)
	assert.True(t, st.Correct())
	assert.Equal(t, 140, st.Score)
	assert.Equal(t, st, results.state)
	assert.Contains(t, results.View(100, 30), "Correct")
}

func TestGame_ExtraRevealKeyDoesNotAnswer(t *testing.T) {
	e, _, game := startManualGame(t)

	game.Update(keyPress(' '))
	game.Update(keyPress(' '))
	require.True(t, game.state.CanAnswer())

	_, cmd := game.Update(keyPress(' '))
	assert.Nil(t, cmd)
	assert.Equal(t, session.StatusPlaying, e.State().Status)
	assert.Nil(t, e.State().SelectedAnswer)
}

func TestGame_TickFromOtherSessionIgnored(t *testing.T) {
	e, clock, game := startManualGame(t)
	clock.now = clock.now.Add(time.Second)

	_, cmd := game.Update(tickMsg{session: "stale", at: clock.now})
	assert.Nil(t, cmd)
	assert.Equal(t, -1, e.State().RevealedIndex)
}

func TestGame_TickDrivesEngine(t *testing.T) {
	e, clock, game := startManualGame(t)
	clock.now = clock.now.Add(time.Second)

	_, cmd := game.Update(tickMsg{session: game.state.SessionID, at: clock.now})
	assert.NotNil(t, cmd)
	assert.Equal(t, 0, e.State().RevealedIndex)
	assert.Equal(t, 0, game.state.RevealedIndex)
}

func TestGame_TimeoutHandsOverToResults(t *testing.T) {
	e, clock, game := startManualGame(t)
	clock.now = clock.now.Add(session.SessionLimit)

	_, cmd := game.Update(tickMsg{session: game.state.SessionID, at: clock.now})
	results, ok := replaced(t, cmd).(*ResultsScreen)
	require.True(t, ok)
	assert.Nil(t, results.state.SelectedAnswer)
	assert.Contains(t, results.View(100, 30), "Time's up")
	assert.Equal(t, 1, e.State().Stats.TotalGamesPlayed)
}

func TestGame_DisposeAbandonsSession(t *testing.T) {
	e, _, game := startManualGame(t)

	game.Dispose()

	assert.Equal(t, session.StatusSetup, e.State().Status)
	assert.Equal(t, 0, e.State().Stats.TotalGamesPlayed)
}

func TestResults_PlayAgain(t *testing.T) {
	e, clock, game := startManualGame(t)
	clock.now = clock.now.Add(session.SessionLimit)
	_, cmd := game.Update(tickMsg{session: game.state.SessionID, at: clock.now})
	results := replaced(t, cmd).(*ResultsScreen)

	_, cmd = results.Update(specialKey(tea.KeyEnter))
	setup, ok := replaced(t, cmd).(*SetupScreen)
	require.True(t, ok)
	assert.Equal(t, manual(), setup.Settings())

	results.Dispose()
	assert.Equal(t, session.StatusSetup, e.State().Status)
	assert.Equal(t, 1, e.State().Stats.TotalGamesPlayed)
}

func TestResults_Home(t *testing.T) {
	e, clock, game := startManualGame(t)
	clock.now = clock.now.Add(session.SessionLimit)
	_, cmd := game.Update(tickMsg{session: game.state.SessionID, at: clock.now})
	results := replaced(t, cmd).(*ResultsScreen)

	results.Update(specialKey(tea.KeyDown))
	_, cmd = results.Update(specialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
	assert.Equal(t, session.StatusResults, e.State().Status)
}

func TestExpression(t *testing.T) {
	assert.Equal(t, "10 - 3 - 2 = 5", Expression([]int{10, 3, 2}, problemgen.OpSubtraction, 5))
	assert.Equal(t, "4 × 5 = 20", Expression([]int{4, 5}, problemgen.OpMultiplication, 20))
}

func TestKeyHints(t *testing.T) {
	_, _, game := startManualGame(t)
	assert.NotEmpty(t, game.KeyHints())
	assert.Equal(t, "Space", game.KeyHints()[0].Key)
}

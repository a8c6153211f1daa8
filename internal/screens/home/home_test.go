package home

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screens/history"
	"github.com/abhisek/numberrush/internal/screens/play"
	statsscreen "github.com/abhisek/numberrush/internal/screens/stats"
	"github.com/abhisek/numberrush/internal/session"
	"github.com/abhisek/numberrush/internal/stats"
	"github.com/abhisek/numberrush/internal/store"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

type memGames struct{}

func (memGames) AppendGame(context.Context, store.GameRecord) error { return nil }
func (memGames) RecentGames(context.Context, int) ([]store.GameRecord, error) {
	return nil, nil
}
func (memGames) Clear(context.Context) error { return nil }

func newHome(games store.GameRepo) *HomeScreen {
	e := session.NewEngine(context.Background(), session.Options{
		Stats: stats.NewRepo(store.NewMemoryKV()),
	})
	return New(e, games, problemgen.DefaultSettings())
}

func pushed(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	return msg.Screen
}

func TestHome_Play(t *testing.T) {
	h := newHome(memGames{})
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	_, ok := pushed(t, cmd).(*play.SetupScreen)
	assert.True(t, ok)
}

func TestHome_Statistics(t *testing.T) {
	h := newHome(memGames{})
	h.Update(specialKey(tea.KeyDown))
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	_, ok := pushed(t, cmd).(*statsscreen.StatsScreen)
	assert.True(t, ok)
}

func TestHome_RecentGames(t *testing.T) {
	h := newHome(memGames{})
	h.Update(specialKey(tea.KeyDown))
	h.Update(specialKey(tea.KeyDown))
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	_, ok := pushed(t, cmd).(*history.HistoryScreen)
	assert.True(t, ok)
}

func TestHome_RecentGamesDisabledWithoutRepo(t *testing.T) {
	h := newHome(nil)
	h.Update(specialKey(tea.KeyDown))
	h.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, h.menu.Selected, "disabled entry is skipped")
}

func TestHome_View(t *testing.T) {
	h := newHome(memGames{})
	assert.Contains(t, h.View(120, 40), "PLAY")
	assert.Contains(t, h.View(80, 20), "NUMBER RUSH")
}

func TestMascotFor(t *testing.T) {
	assert.Equal(t, MascotIdle, mascotFor(stats.AggregateStats{}))
	assert.Equal(t, MascotCelebrating, mascotFor(stats.AggregateStats{TotalGamesPlayed: 5, CorrectAnswers: 5}))
	assert.Equal(t, MascotAlert, mascotFor(stats.AggregateStats{TotalGamesPlayed: 10, CorrectAnswers: 2}))
}

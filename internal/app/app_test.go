package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screens/home"
	"github.com/abhisek/numberrush/internal/screens/play"
	"github.com/abhisek/numberrush/internal/screens/welcome"
	"github.com/abhisek/numberrush/internal/session"
	"github.com/abhisek/numberrush/internal/stats"
	"github.com/abhisek/numberrush/internal/store"
)

func testOptions() Options {
	engine := session.NewEngine(context.Background(), session.Options{
		Generator: problemgen.New(1),
		Stats:     stats.NewRepo(store.NewMemoryKV()),
	})
	return Options{Engine: engine, Defaults: problemgen.DefaultSettings()}
}

func TestNewAppModel_StartsOnSplash(t *testing.T) {
	m := newAppModel(testOptions())
	_, ok := m.router.Active().(*welcome.WelcomeScreen)
	assert.True(t, ok)
	assert.NotNil(t, m.Init())
}

func TestNewAppModel_SkipSplash(t *testing.T) {
	opts := testOptions()
	opts.SkipSplash = true
	m := newAppModel(opts)
	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)
	assert.Equal(t, 1, m.router.Depth())
}

func TestNewAppModel_StartPlaying(t *testing.T) {
	opts := testOptions()
	opts.StartPlaying = true
	m := newAppModel(opts)
	_, ok := m.router.Active().(*play.SetupScreen)
	assert.True(t, ok)
	assert.Equal(t, 2, m.router.Depth())
}

func TestEscPopsOnlyAboveRoot(t *testing.T) {
	opts := testOptions()
	opts.SkipSplash = true
	m := newAppModel(opts)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)

	opts.StartPlaying = true
	m = newAppModel(opts)
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestViewShowsCoins(t *testing.T) {
	opts := testOptions()
	opts.SkipSplash = true
	m := newAppModel(opts)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	out := updated.(AppModel).render()
	assert.Contains(t, out, "0 coins")
	assert.Contains(t, out, "Ctrl+C")
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(testOptions())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	out := updated.(AppModel).render()
	assert.Contains(t, out, "too small")
}

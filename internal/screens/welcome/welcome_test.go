package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numberrush/internal/router"
	"github.com/abhisek/numberrush/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	factory := func() screen.Screen {
		calls++
		return &stubScreen{}
	}
	return New(factory), &calls
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestPhases(t *testing.T) {
	w, _ := newTestWelcome()
	if strings.Contains(w.View(80, 30), Tagline) {
		t.Error("tagline shown before the digit rain")
	}

	sendTicks(w, 8)
	if w.elapsed != digitsEnd {
		t.Errorf("elapsed = %v, want %v", w.elapsed, digitsEnd)
	}
	v := w.View(80, 30)
	if !strings.Contains(v, rain) {
		t.Error("expected digit rain after 8 ticks")
	}
	if strings.Contains(v, Tagline) {
		t.Error("tagline shown during the digit rain")
	}

	sendTicks(w, 4)
	if !strings.Contains(w.View(80, 30), Tagline) {
		t.Error("expected tagline after 12 ticks")
	}
}

func TestElapsedCapped(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 60)
	if w.elapsed != totalDur {
		t.Errorf("elapsed = %v, want capped at %v", w.elapsed, totalDur)
	}
	if *calls != 0 {
		t.Errorf("factory called %d times without a key", *calls)
	}
}

func TestKeypressMidAnimationTransitions(t *testing.T) {
	w, calls := newTestWelcome()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected a command on keypress")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("expected a home screen in ReplaceScreenMsg")
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, calls := newTestWelcome()
	w.Update(tea.KeyPressMsg{Code: 'a'})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("expected no command after hand-over")
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}

	// Ticks stop once handed over.
	_, cmd = w.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Error("expected ticks to stop after hand-over")
	}
}

func TestBannerWidth(t *testing.T) {
	if !strings.Contains(RenderBanner(40), "N U M B E R") {
		t.Error("narrow banner should use the spaced fallback")
	}
	if !strings.Contains(RenderBanner(100), "███") {
		t.Error("wide banner should use block letters")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	if w.Title() != "" {
		t.Errorf("Title() = %q, want empty", w.Title())
	}
}

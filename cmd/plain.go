package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/session"
)

// playPlain runs one game as line-based text. In manual mode an empty line
// reveals the next number; once every number is shown, 1-4 picks an option.
func playPlain(ctx context.Context, e *session.Engine, s problemgen.Settings, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changed := make(chan struct{}, 1)
	unsubscribe := e.Subscribe(func(session.GameState) {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- strings.TrimSpace(sc.Text()):
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() { _ = session.NewRunner(e).Run(ctx) }()

	fmt.Fprintf(out, "%s · %s · %d numbers\n",
		s.Difficulty.DisplayName(), s.Operation.DisplayName(), problemgen.AdjustCount(s.Difficulty, s.NumberCount))
	if s.IsAutomatic {
		fmt.Fprintf(out, "Numbers appear every %s. Watch closely!\n", msToSeconds(s.TimeInterval))
	} else {
		fmt.Fprintln(out, "Press Enter for each number.")
	}

	e.StartGame(s)
	p := &plainPrinter{out: out, shown: -1}

	for {
		select {
		case <-ctx.Done():
			e.ResetGame()
			return ctx.Err()

		case <-changed:
			if p.render(e.State()) {
				return nil
			}

		case line, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}
			st := e.State()
			switch {
			case st.Status != session.StatusPlaying:
			case !st.CanAnswer():
				if !st.Settings.IsAutomatic {
					e.RevealNext()
				}
			default:
				n, err := strconv.Atoi(line)
				if err != nil || n < 1 || n > len(st.Options) {
					fmt.Fprintf(out, "Pick 1-%d\n", len(st.Options))
					continue
				}
				e.SelectAnswer(st.Options[n-1])
			}
		}
	}
}

// plainPrinter writes each state change once.
type plainPrinter struct {
	out         io.Writer
	shown       int
	optionsDone bool
}

// render prints what is new in st and reports whether the game is over.
func (p *plainPrinter) render(st session.GameState) bool {
	if st.Status == session.StatusSetup {
		return false
	}
	for p.shown < st.RevealedIndex {
		p.shown++
		if p.shown == 0 {
			fmt.Fprintf(p.out, "  %d\n", st.Operands[p.shown])
		} else {
			fmt.Fprintf(p.out, "%s %d\n", st.Settings.Operation.Symbol(), st.Operands[p.shown])
		}
	}
	if st.AllRevealed() && !p.optionsDone {
		p.optionsDone = true
		fmt.Fprintln(p.out, "What's the answer?")
		for i, opt := range st.Options {
			fmt.Fprintf(p.out, "  %d) %d\n", i+1, opt)
		}
	}
	if st.Status != session.StatusResults {
		return false
	}

	switch {
	case st.Correct():
		fmt.Fprintln(p.out, "Correct!")
	case st.SelectedAnswer == nil:
		fmt.Fprintln(p.out, "Time's up!")
	default:
		fmt.Fprintf(p.out, "Not quite. The answer was %d.\n", st.CorrectAnswer)
	}
	fmt.Fprintf(p.out, "Score %s · +%d coins · %.1fs · %s coins total\n",
		humanize.Comma(int64(st.Score)), st.Reward, st.TimeTaken,
		humanize.Comma(int64(st.Stats.TotalCoins)))
	return true
}

func msToSeconds(ms int) string {
	return strconv.FormatFloat(float64(ms)/1000, 'f', -1, 64) + "s"
}

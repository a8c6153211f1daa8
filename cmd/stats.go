package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abhisek/numberrush/internal/problemgen"
	"github.com/abhisek/numberrush/internal/stats"
	"github.com/abhisek/numberrush/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		agg, err := d.stats.Load(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printStats(out, agg)

		recent, _ := cmd.Flags().GetInt("recent")
		if recent <= 0 {
			return nil
		}
		games, err := d.store.Games().RecentGames(cmd.Context(), recent)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		printRecent(out, games)
		return nil
	},
}

var statsExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write statistics as JSON to a file or stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		raw, err := d.stats.Export(cmd.Context())
		if err != nil {
			return err
		}
		if len(args) == 0 {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return err
		}
		if err := os.WriteFile(args[0], raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported statistics to %s\n", args[0])
		return nil
	},
}

var statsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace statistics with a previously exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		agg, err := d.stats.Import(cmd.Context(), raw)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %s games\n", humanize.Comma(int64(agg.TotalGamesPlayed)))
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("recent", 0, "Also list the N most recent games")
	statsCmd.AddCommand(statsExportCmd)
	statsCmd.AddCommand(statsImportCmd)
}

func printStats(out io.Writer, a stats.AggregateStats) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Games played\t%s\n", humanize.Comma(int64(a.TotalGamesPlayed)))
	fmt.Fprintf(w, "Accuracy\t%d%%\n", a.Accuracy())
	fmt.Fprintf(w, "Average time\t%ds\n", a.AverageTime())
	fmt.Fprintf(w, "Total coins\t%s\n", humanize.Comma(int64(a.TotalCoins)))
	fmt.Fprintln(w, "\t")
	for _, d := range problemgen.AllDifficulties() {
		fmt.Fprintf(w, "%s\t%d\n", d.DisplayName(), a.GamesPerDifficulty.Get(d))
	}
	fmt.Fprintln(w, "\t")
	for _, op := range problemgen.AllOperations() {
		fmt.Fprintf(w, "%s\t%d\n", op.DisplayName(), a.GamesPerOperation.Get(op))
	}
	w.Flush()
}

func printRecent(out io.Writer, games []store.GameRecord) {
	if len(games) == 0 {
		fmt.Fprintln(out, "No games yet.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tLEVEL\tOP\tRESULT\tSCORE\tCOINS")
	for _, g := range games {
		result := "wrong"
		switch {
		case g.Correct:
			result = "correct"
		case g.SelectedAnswer == nil:
			result = "timeout"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t+%d\n",
			humanize.Time(g.EndedAt),
			problemgen.Difficulty(g.Difficulty).Label(),
			problemgen.Operation(g.Operation).Symbol(),
			result,
			humanize.Comma(int64(g.Score)),
			g.Reward)
	}
	w.Flush()
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/numberrush/internal/problemgen"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: "Start a game straight away. Flags override the config file, which overrides the " +
		"built-in defaults. With --plain the game runs as line-based text on stdin/stdout.",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		settings, err := applySettingsFlags(cmd, d.defaults)
		if err != nil {
			return err
		}

		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			return playPlain(cmd.Context(), d.engine(cmd.Context()), settings,
				cmd.InOrStdin(), cmd.OutOrStdout())
		}
		return launch(cmd, d, settings, true)
	},
}

func init() {
	addSettingsFlags(playCmd)
	playCmd.Flags().Bool("plain", false, "Play in plain text mode without the full-screen UI")
}

// addSettingsFlags registers the game settings flags on cmd.
func addSettingsFlags(cmd *cobra.Command) {
	d := problemgen.DefaultSettings()
	cmd.Flags().StringP("difficulty", "d", string(d.Difficulty), "Operand size: single, double or triple")
	cmd.Flags().StringP("operation", "o", string(d.Operation), "Operation: addition, subtraction or multiplication")
	cmd.Flags().IntP("count", "n", d.NumberCount,
		fmt.Sprintf("Base operand count (%d-%d)", problemgen.MinNumberCount, problemgen.MaxNumberCount))
	cmd.Flags().Bool("auto", d.IsAutomatic, "Reveal operands automatically")
	cmd.Flags().IntP("interval", "i", d.TimeInterval,
		fmt.Sprintf("Milliseconds between automatic reveals (%d-%d)", problemgen.MinTimeInterval, problemgen.MaxTimeInterval))
}

// applySettingsFlags overlays every flag the user set explicitly onto base.
func applySettingsFlags(cmd *cobra.Command, base problemgen.Settings) (problemgen.Settings, error) {
	s := base
	flags := cmd.Flags()

	if flags.Changed("difficulty") {
		v, _ := flags.GetString("difficulty")
		d, err := problemgen.ParseDifficulty(v)
		if err != nil {
			return base, fmt.Errorf("--difficulty: %w", err)
		}
		s.Difficulty = d
	}
	if flags.Changed("operation") {
		v, _ := flags.GetString("operation")
		op, err := problemgen.ParseOperation(v)
		if err != nil {
			return base, fmt.Errorf("--operation: %w", err)
		}
		s.Operation = op
	}
	if flags.Changed("count") {
		s.NumberCount, _ = flags.GetInt("count")
	}
	if flags.Changed("auto") {
		s.IsAutomatic, _ = flags.GetBool("auto")
	}
	if flags.Changed("interval") {
		s.TimeInterval, _ = flags.GetInt("interval")
	}

	if err := s.Validate(); err != nil {
		return base, err
	}
	return s, nil
}

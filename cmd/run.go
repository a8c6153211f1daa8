package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/numberrush/internal/app"
	"github.com/abhisek/numberrush/internal/problemgen"
)

// runApp opens the store, builds the engine, and launches the TUI with the
// configured defaults.
func runApp(cmd *cobra.Command, startPlaying bool) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()
	return launch(cmd, d, d.defaults, startPlaying)
}

func launch(cmd *cobra.Command, d *deps, settings problemgen.Settings, startPlaying bool) error {
	return app.Run(app.Options{
		Engine:       d.engine(cmd.Context()),
		Games:        d.store.Games(),
		Defaults:     settings,
		SkipSplash:   startPlaying,
		StartPlaying: startPlaying,
	})
}

package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/app"
)

// runApp opens the roster and launches the TUI. The roster is saved when
// the program exits, whichever way it exits.
func runApp(cmd *cobra.Command) error {
	return withSession(cmd, func(s *session) error {
		noSplash, _ := cmd.Flags().GetBool("no-splash")
		return app.Run(cmd.Context(), app.Options{
			Roster:     s.roster,
			Logger:     s.logger,
			ReadmePath: findReadme(s.cfg.DataDir),
			SkipSplash: noSplash,
		})
	})
}

// findReadme returns README.md from the data directory, else from the
// working directory, else "" for the built-in introduction.
func findReadme(dataDir string) string {
	candidates := []string{filepath.Join(dataDir, "README.md")}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, "README.md"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

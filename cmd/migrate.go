package cmd

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/config"
	"github.com/abhisek/gradebook/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy the roster into another storage backend",
	Long: "Load the roster from the current backend (--store) and write it to the\n" +
		"backend named by --to in the same data directory.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetString("to")

		return withSession(cmd, func(s *session) error {
			if to == s.cfg.Backend {
				return fmt.Errorf("roster is already stored as %s", to)
			}

			target := s.cfg
			target.Backend = to
			if err := target.Validate(); err != nil {
				return err
			}

			dst, err := store.Open(target)
			if err != nil {
				return fmt.Errorf("open %s store: %w", to, err)
			}
			defer dst.Close()

			snap := s.roster.Snapshot()
			if err := dst.Save(cmd.Context(), snap); err != nil {
				return fmt.Errorf("write %s store: %w", to, err)
			}
			level.Info(s.logger).Log("msg", "migrated", "from", s.cfg.Backend, "to", to,
				"students", len(snap.Students), "courses", len(snap.Courses))

			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d students and %d courses from %s to %s\n",
				len(snap.Students), len(snap.Courses), s.cfg.Backend, to)
			return nil
		})
	},
}

func init() {
	migrateCmd.Flags().String("to", config.BackendSQLite, "Target backend: json or sqlite")
}

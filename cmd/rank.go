package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/ui/tables"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank students by GPA, highest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		bars, _ := cmd.Flags().GetBool("bars")
		return withSession(cmd, func(s *session) error {
			ranked := s.roster.RankByGPA()
			if len(ranked) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No students yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), tables.Ranking(ranked, bars))
			return nil
		})
	},
}

func init() {
	rankCmd.Flags().Bool("bars", false, "Draw a GPA bar on each row")
}

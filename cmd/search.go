package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/gradebook"
	"github.com/abhisek/gradebook/internal/ui/tables"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find students whose GPA lies in a range",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lo, _ := cmd.Flags().GetFloat64("min")
		hi, _ := cmd.Flags().GetFloat64("max")
		return withSession(cmd, func(s *session) error {
			matched, err := s.roster.SearchByGPA(lo, hi)
			if err != nil {
				return describe(cmd, err)
			}
			if len(matched) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No students with GPA between %s and %s.\n",
					tables.FormatGPA(lo), tables.FormatGPA(hi))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), tables.Students(matched))
			return nil
		})
	},
}

func init() {
	searchCmd.Flags().Float64("min", gradebook.MinGrade, "Lowest GPA to include")
	searchCmd.Flags().Float64("max", gradebook.MaxGrade, "Highest GPA to include")
}

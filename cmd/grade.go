package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/ui/tables"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <email> <course> <grade> <credits-earned>",
	Short: "Record a grade for a student",
	Long: "Record a grade (1-5) for a student in a course. Credits earned must be 0\n" +
		"for a failed course or the course's full credits for a pass.",
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("grade must be a number: %q", args[2])
		}
		credits, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("credits earned must be a number: %q", args[3])
		}

		return withSession(cmd, func(s *session) error {
			st, err := s.roster.RecordGrade(cmd.Context(), args[0], args[1], grade, credits)
			if err != nil {
				return describe(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for %s, GPA %s\n",
				args[1], st.ID, tables.FormatGPA(st.GPA))
			return nil
		})
	},
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/ui/tables"
)

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Manage courses",
}

var courseAddCmd = &cobra.Command{
	Use:   "add <name> <term>",
	Short: "Create a course",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		credits, _ := cmd.Flags().GetFloat64("credits")
		return withSession(cmd, func(s *session) error {
			c, err := s.roster.AddCourse(cmd.Context(), args[0], strings.Join(args[1:], " "), credits)
			if err != nil {
				return describe(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s, %s credits)\n",
				c.ID, c.Term, strconv.FormatFloat(c.Credits, 'f', -1, 64))
			return nil
		})
	},
}

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List courses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(s *session) error {
			courses := s.roster.Courses()
			if len(courses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No courses yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), tables.Courses(courses))
			return nil
		})
	},
}

func init() {
	courseAddCmd.Flags().Float64("credits", 0, "Credits for a pass (default: GRADEBOOK_FULL_CREDITS or 25)")

	courseCmd.AddCommand(courseAddCmd)
	courseCmd.AddCommand(courseListCmd)
}

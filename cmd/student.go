package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/ui/tables"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage students",
}

var studentAddCmd = &cobra.Command{
	Use:   "add <email> <name>",
	Short: "Create a student",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(s *session) error {
			st, err := s.roster.AddStudent(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return describe(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", st.ID, st.Name)
			return nil
		})
	},
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List students with their GPA",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(s *session) error {
			students := s.roster.Students()
			if len(students) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No students yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), tables.Students(students))
			return nil
		})
	},
}

var studentEditCmd = &cobra.Command{
	Use:   "edit <email> <new name>",
	Short: "Change a student's name",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(s *session) error {
			name := strings.Join(args[1:], " ")
			if err := s.roster.EditStudentName(cmd.Context(), args[0], name); err != nil {
				return describe(cmd, err)
			}
			if strings.TrimSpace(name) == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Name of %s unchanged\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s\n", args[0], name)
			return nil
		})
	},
}

func init() {
	studentCmd.AddCommand(studentAddCmd)
	studentCmd.AddCommand(studentListCmd)
	studentCmd.AddCommand(studentEditCmd)
}

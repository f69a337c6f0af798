package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/ui/tables"
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript [email]",
	Short: "Print a student's transcript, or every transcript",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if all && len(args) > 0 {
			return fmt.Errorf("use an email or --all, not both")
		}

		return withSession(cmd, func(s *session) error {
			if len(args) == 0 {
				ts := s.roster.AllTranscripts()
				if len(ts) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No students yet.")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), tables.Transcripts(ts))
				return nil
			}

			t, err := s.roster.GenerateTranscript(args[0])
			if err != nil {
				return describe(cmd, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), t.String())
			return nil
		})
	},
}

func init() {
	transcriptCmd.Flags().Bool("all", false, "Print every student's transcript")
}

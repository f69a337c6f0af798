package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/config"
	"github.com/abhisek/gradebook/internal/gradebook"
	"github.com/abhisek/gradebook/internal/logging"
	"github.com/abhisek/gradebook/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "gradebook",
	Short: "Student records and GPA tracking",
	Long: "Gradebook keeps students, courses and grades, computes credit-weighted GPA,\n" +
		"and saves everything after each change. Run without a subcommand for the menu.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Data directory (overrides GRADEBOOK_DATA env var)")
	rootCmd.PersistentFlags().String("store", "", "Storage backend: json or sqlite (overrides GRADEBOOK_STORE env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides GRADEBOOK_LOG_LEVEL env var)")
	rootCmd.Flags().Bool("no-splash", false, "Start directly on the menu")

	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(transcriptCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig layers flags over environment variables over defaults and
// creates the data directory.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.FromEnv()

	if d, _ := cmd.Flags().GetString("data"); d != "" {
		cfg.DataDir = d
	}
	if s, _ := cmd.Flags().GetString("store"); s != "" {
		cfg.Backend = s
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if err := cfg.ResolveDataDir(); err != nil {
		return cfg, fmt.Errorf("resolve data dir: %w", err)
	}
	return cfg, nil
}

// session is an opened roster with its log file.
type session struct {
	cfg     config.Config
	roster  *gradebook.Roster
	logger  log.Logger
	logFile io.Closer
}

// openSession resolves configuration, opens the log file and loads the
// roster from the configured backend.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, logFile, err := logging.NewFile(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger = log.With(logger, "run", uuid.NewString())
	level.Info(logger).Log("msg", "starting", "command", cmd.CommandPath(),
		"data", cfg.DataDir, "store", cfg.Backend)

	p, err := store.Open(cfg)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	roster, err := gradebook.Open(cmd.Context(), gradebook.Options{
		Persister:   p,
		Logger:      logger,
		FullCredits: cfg.FullCredits,
	})
	if err != nil {
		level.Error(logger).Log("msg", "load failed", "err", err)
		p.Close()
		logFile.Close()
		return nil, err
	}

	return &session{cfg: cfg, roster: roster, logger: logger, logFile: logFile}, nil
}

// Close saves the roster and closes the store and the log file.
func (s *session) Close(ctx context.Context) error {
	err := s.roster.Close(ctx)
	if err != nil {
		level.Error(s.logger).Log("msg", "close failed", "err", err)
	} else {
		level.Info(s.logger).Log("msg", "closed")
	}
	s.logFile.Close()
	return err
}

// withSession runs fn against an open session and closes it afterwards,
// reporting the close error if fn succeeded.
func withSession(cmd *cobra.Command, fn func(*session) error) (err error) {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(cmd.Context()); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(s)
}

// describe converts roster errors into readable command errors. Rejected
// input also points at the command's help.
func describe(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	msg := gradebook.Describe(err)
	if gradebook.IsValidation(err) {
		msg += fmt.Sprintf("\nRun '%s --help' for usage.", cmd.CommandPath())
	}
	return errors.New(msg)
}

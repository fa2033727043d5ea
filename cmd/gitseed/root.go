package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mkarren/gitseed/internal/config"
	"github.com/mkarren/gitseed/internal/constants"
)

// NewRootCmd constructs the gitseed root command. The root command itself
// runs the seeder; verify and version are subcommands.
func NewRootCmd(versionInfo config.VersionInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gitseed",
		Short: "Seed a git repository with synthetic commit history",
		Long: `gitseed fabricates randomly dated commits in an existing git repository.
Each commit records one weighted-random file operation (create, modify or
delete) with its author and committer dates overridden to a random instant
inside the trailing window, producing a populated history for demo and
test repositories.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env is the normal case, not an error
			if _, err := os.Stat(".env"); err == nil {
				_ = godotenv.Load(".env")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, versionInfo)
			if err != nil {
				return err
			}

			return NewDefaultApp(cfg).Run(cmd.Context())
		},
	}

	cmd.Flags().String("config", "", "config file (default "+config.DefaultConfigFile+" in the current directory)")
	cmd.Flags().String("repo", "", "repository to seed (default: current directory)")
	cmd.Flags().IntP("count", "n", constants.DefaultCommitCount, "number of commits to create")
	cmd.Flags().Int("days", constants.DefaultWindowDays, "size of the trailing date window in days")
	cmd.Flags().Int64("seed", 0, "random seed for reproducible runs (0 uses the clock)")
	cmd.Flags().String("author-name", "", "author name recorded on generated commits")
	cmd.Flags().String("author-email", "", "author email recorded on generated commits")
	cmd.Flags().BoolP("yes", "y", false, "seed without asking for confirmation")
	cmd.Flags().BoolP("quiet", "q", false, "suppress the banner")
	cmd.Flags().Bool("debug", false, "enable debug logging to the log file")
	cmd.Flags().String("log-file", "", "debug log destination (default: XDG data directory)")

	cmd.AddCommand(newVerifyCmd())
	cmd.AddCommand(newVersionCmd(versionInfo))

	return cmd
}

// loadConfig layers the effective configuration: defaults, then the config
// file, then GITSEED_* environment variables, then any flag explicitly set
// on the command line.
func loadConfig(cmd *cobra.Command, versionInfo config.VersionInfo) (*config.Config, error) {
	flags := cmd.Flags()

	configFile, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	cfg.VersionInfo = versionInfo

	if flags.Changed("repo") {
		cfg.RepoPath, _ = flags.GetString("repo")
	}
	if flags.Changed("count") {
		cfg.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("days") {
		cfg.WindowDays, _ = flags.GetInt("days")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("author-name") {
		cfg.Author.Name, _ = flags.GetString("author-name")
	}
	if flags.Changed("author-email") {
		cfg.Author.Email, _ = flags.GetString("author-email")
	}
	if flags.Changed("yes") {
		cfg.AssumeYes, _ = flags.GetBool("yes")
	}
	if flags.Changed("quiet") {
		cfg.Quiet, _ = flags.GetBool("quiet")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}

	return cfg, nil
}

// newVersionCmd prints the build metadata injected by the release pipeline
func newVersionCmd(versionInfo config.VersionInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "gitseed %s (%s) built on %s\n",
				versionInfo.Version, versionInfo.Commit, versionInfo.Date)
		},
	}
}

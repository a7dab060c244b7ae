package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/courtside/jobchat/internal"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	baseURL   string
	timeout   time.Duration
	sessionDB string
	version   string = "dev"
	commit    string = "unknown"
	date      string = "unknown"
)

// cfg is loaded for every command run; flags override the environment
var cfg *internal.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jobchat",
	Short: "Chat with the tennis jobs assistant from your terminal",
	Long: `A terminal chat widget for the tennis job listings assistant.

The widget keeps one bounded conversation per launch, persists it to a
local session database while you chat, and talks to the site backend
for replies, listings and stats.

Quick Start:
  jobchat chat                    # Open the chat widget
  jobchat jobs --location FL      # Browse listings
  jobchat show                    # Print the last persisted transcript
  jobchat export --format md      # Export it as Markdown

Configuration comes from .env / environment (JOBCHAT_BASE_URL,
JOBCHAT_TIMEOUT, JOBCHAT_SESSION_DB) and can be overridden by flags.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)

		cfg = internal.LoadConfig()
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		if cmd.Flags().Changed("timeout") {
			cfg.RequestTimeout = timeout
		}
		if sessionDB != "" {
			cfg.SessionDBPath = sessionDB
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Backend base URL (overrides JOBCHAT_BASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Request timeout; 0 waits indefinitely (overrides JOBCHAT_TIMEOUT)")
	rootCmd.PersistentFlags().StringVar(&sessionDB, "session-db", "", "Session database path (overrides JOBCHAT_SESSION_DB)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// newClient builds a backend client from the effective configuration
func newClient() *internal.Client {
	return internal.NewClient(cfg.BaseURL, cfg.RequestTimeout)
}

// openStore opens the session database and wraps it in a store. A nil
// SessionDB is returned alongside a memory-only store when the database
// cannot be opened: persistence is best-effort, never fatal.
func openStore() (*internal.SessionStore, *internal.SessionDB) {
	db, err := internal.OpenSessionDB(cfg.SessionDBPath)
	if err != nil {
		internal.LogWarn("session database unavailable, continuing without persistence: %v", err)
		return internal.NewSessionStore(nil), nil
	}
	return internal.NewSessionStore(db), db
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/courtside/jobchat/internal"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check session storage and backend reachability",
	Long: `Check the health of jobchat by verifying:
  • Session database accessibility
  • Backend reachability (stats endpoint)
  • Persisted transcript presence

This command is useful for debugging configuration issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("🔍 Jobchat Health Check"))
		fmt.Println()

		failed := false

		// Step 1: session database
		fmt.Println(infoStyle.Render("Step 1: Opening session database..."))
		db, err := internal.OpenSessionDB(cfg.SessionDBPath)
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Session database unavailable:"), err)
			fmt.Println(warningStyle.Render("   The widget still works, but transcripts won't persist."))
			failed = true
		} else {
			fmt.Println(successStyle.Render("✅ Session database OK:"), cfg.SessionDBPath)

			store := internal.NewSessionStore(db)
			if n := store.Restore(); n > 0 {
				fmt.Println(successStyle.Render(fmt.Sprintf("✅ Persisted transcript found (%d turn(s))", n)))
			} else {
				fmt.Println(infoStyle.Render("ℹ️  No persisted transcript (fresh session)"))
			}
			db.Close()
		}
		fmt.Println()

		// Step 2: backend. A bounded timeout here even when the chat
		// dispatcher runs unbounded: a health check must terminate.
		fmt.Println(infoStyle.Render("Step 2: Checking backend..."))
		probeTimeout := cfg.RequestTimeout
		if probeTimeout == 0 {
			probeTimeout = 10 * time.Second
		}
		client := internal.NewClient(cfg.BaseURL, probeTimeout)
		stats, err := client.Stats(context.Background())
		if err != nil {
			fmt.Println(errorStyle.Render("❌ Backend unreachable:"), err)
			failed = true
		} else {
			fmt.Println(successStyle.Render("✅ Backend OK:"), cfg.BaseURL)
			fmt.Println(infoStyle.Render(fmt.Sprintf("   %d listing(s), latest %s", stats.Total, stats.LatestDate)))
		}
		fmt.Println()

		if failed {
			fmt.Println(errorStyle.Render("Health check failed"))
			os.Exit(1)
		}
		fmt.Println(successStyle.Render("All checks passed"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}

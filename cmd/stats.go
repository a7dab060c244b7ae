package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	statsLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	statsValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show listing statistics",
	Long:  `Fetch and display the site-wide job listing summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := newClient().Stats(context.Background())
		if err != nil {
			return fmt.Errorf("failed to fetch stats: %w", err)
		}

		rows := []struct{ label, value string }{
			{"Listings", fmt.Sprintf("%d", stats.Total)},
			{"Average score", stats.AvgScore},
			{"Top state", stats.TopState},
			{"Latest posting", stats.LatestDate},
		}
		for _, row := range rows {
			fmt.Printf("%s %s\n", statsLabelStyle.Render(fmt.Sprintf("%-16s", row.label)), statsValueStyle.Render(row.value))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

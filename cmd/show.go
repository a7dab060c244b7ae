package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/courtside/jobchat/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles for show command
	transcriptHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	transcriptMetaStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")).
				MarginBottom(1)

	userTurnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1)

	assistantTurnStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135")).
				Bold(true).
				Padding(0, 1)

	turnContentStyle = lipgloss.NewStyle().
				Padding(0, 2).
				MarginBottom(1)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the persisted transcript",
	Long: `Display the transcript persisted by the most recent chat session.

A fresh 'jobchat chat' launch discards the previous transcript, so run
show (or export) before starting a new conversation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, db := openStore()
		if db != nil {
			defer db.Close()
		}

		if store.Restore() == 0 {
			fmt.Println("No persisted transcript. Start one with 'jobchat chat'.")
			return nil
		}

		fmt.Println(transcriptHeaderStyle.Render("💬 Chat transcript"))
		if info, ok := store.Session(); ok {
			fmt.Println(transcriptMetaStyle.Render(fmt.Sprintf("Session %s · started %s", info.ID, info.StartedAt)))
		}

		for _, turn := range store.Turns() {
			header := assistantTurnStyle.Render("Assistant")
			if turn.Role == internal.RoleUser {
				header = userTurnStyle.Render("You")
			}
			fmt.Println(header)
			fmt.Println(turnContentStyle.Render(turn.Content))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/courtside/jobchat/internal"
	"github.com/courtside/jobchat/internal/widget"
)

var chatResume bool

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the chat widget",
	Long: `Open the terminal chat widget and talk to the job assistant.

Every launch starts a fresh, empty conversation; the previous one is
discarded. Pass --resume to reattach to the transcript persisted by the
last session instead.

Keys:
  ctrl+o      open/close the panel
  enter       send the message
  alt+enter   insert a newline
  ctrl+l      clear the chat
  ctrl+c      quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, db := openStore()
		if db != nil {
			defer db.Close()
		}

		restored := store.Restore()
		if chatResume && restored > 0 {
			internal.LogInfo("resumed transcript with %d turn(s)", restored)
		} else {
			info := store.Reset()
			internal.LogDebug("started session %s", info.ID)
		}

		m := widget.New(store, newClient(), widget.Options{
			Welcome:        cfg.WelcomeText,
			MaxInputHeight: cfg.MaxInputHeight,
		})

		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("widget exited with error: %w", err)
		}
		return nil
	},
}

func init() {
	chatCmd.Flags().BoolVar(&chatResume, "resume", false, "Reattach to the previously persisted transcript")
	rootCmd.AddCommand(chatCmd)
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// draftCmd represents the draft command
var draftCmd = &cobra.Command{
	Use:   "draft <source-url>",
	Short: "Draft an application email for a listing",
	Long: `Ask the backend to draft an application email for the job listing
identified by its source URL (as shown on the site and in 'jobchat jobs').`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := newClient().EmailDraft(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to draft email: %w", err)
		}

		fmt.Printf("To: %s\n", draft.To)
		fmt.Printf("Subject: %s\n\n", draft.Subject)
		fmt.Println(draft.Body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(draftCmd)
}

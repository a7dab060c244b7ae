package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the persisted transcript",
	Long:  `Empty the persisted transcript without opening the widget.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, db := openStore()
		if db != nil {
			defer db.Close()
		}

		store.Clear()
		fmt.Println("Transcript cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

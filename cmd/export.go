package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/courtside/jobchat/internal"
	"github.com/courtside/jobchat/internal/export"
	"github.com/spf13/cobra"
)

var (
	format    string
	outputDir string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the persisted transcript to a file",
	Long: `Export the transcript persisted by the most recent chat session in
various formats (jsonl, md, yaml, json).

Without --output the transcript is written to stdout; with --output it
is written into the given directory as transcript-<session-id>.<ext>.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		store, db := openStore()
		if db != nil {
			defer db.Close()
		}

		if store.Restore() == 0 {
			return fmt.Errorf("no persisted transcript to export")
		}

		transcript := &export.Transcript{Turns: store.Turns()}
		if info, ok := store.Session(); ok {
			transcript.SessionID = info.ID
			transcript.StartedAt = info.StartedAt
		}

		if outputDir == "" {
			if err := exporter.Export(transcript, os.Stdout); err != nil {
				return &internal.ExportError{Format: format, Path: "stdout", Err: err}
			}
			return nil
		}

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		name := "transcript"
		if transcript.SessionID != "" {
			name = "transcript-" + transcript.SessionID
		}
		path := filepath.Join(outputDir, name+"."+exporter.Extension())

		f, err := os.Create(path)
		if err != nil {
			return &internal.ExportError{Format: format, Path: path, Err: err}
		}
		defer f.Close()

		if err := exporter.Export(transcript, f); err != nil {
			return &internal.ExportError{Format: format, Path: path, Err: err}
		}

		internal.LogInfo("exported %d turn(s) to %s", len(transcript.Turns), path)
		fmt.Printf("Exported transcript to %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&format, "format", "f", "jsonl", "Export format: jsonl, md, yaml, json")
	exportCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}

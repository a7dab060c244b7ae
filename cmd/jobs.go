package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/courtside/jobchat/internal"
	"github.com/spf13/cobra"
)

var (
	jobsQuery      string
	jobsLocation   string
	jobsPostedFrom string
	jobsPostedTo   string
	jobsMinScore   int
	jobsOffset     int
	jobsLimit      int
)

var (
	// Styles
	jobsHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	jobsTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	jobsCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	jobsMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// jobsCmd represents the jobs command
var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse job listings",
	Long: `List job listings from the backend, with the same filters the site
search offers (free text, location, posted date range, minimum score).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()

		page, err := client.Jobs(context.Background(), internal.JobsQuery{
			Query:      jobsQuery,
			Location:   jobsLocation,
			PostedFrom: jobsPostedFrom,
			PostedTo:   jobsPostedTo,
			MinScore:   jobsMinScore,
			Offset:     jobsOffset,
			Limit:      jobsLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch jobs: %w", err)
		}

		if page.Total == 0 {
			fmt.Println("No listings match the given filters.")
			return nil
		}

		fmt.Println(jobsHeaderStyle.Render("🎾 Tennis job listings"))
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TITLE\tLOCATION\tPOSTED\tSCORE\tCONTACT")
		for _, job := range page.Jobs {
			score := "-"
			if job.SuitabilityScore != nil {
				score = fmt.Sprintf("%d/10", *job.SuitabilityScore)
			}
			location := job.Location.City + ", " + job.Location.State
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				jobsTitleStyle.Render(job.Title), location, job.PostedDate, score, job.ContactName)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Println()
		shown := len(page.Jobs)
		fmt.Println(jobsMetaStyle.Render(fmt.Sprintf("Showing %d-%d of", page.Offset+1, page.Offset+shown)) +
			jobsCountStyle.Render(fmt.Sprintf("%d", page.Total)) +
			jobsMetaStyle.Render(" listing(s)"))
		return nil
	},
}

func init() {
	jobsCmd.Flags().StringVarP(&jobsQuery, "query", "q", "", "Free-text filter (title, summary, location)")
	jobsCmd.Flags().StringVar(&jobsLocation, "location", "", "Location filter (city or state)")
	jobsCmd.Flags().StringVar(&jobsPostedFrom, "posted-from", "", "Only listings posted on or after this date (YYYY-MM-DD)")
	jobsCmd.Flags().StringVar(&jobsPostedTo, "posted-to", "", "Only listings posted on or before this date (YYYY-MM-DD)")
	jobsCmd.Flags().IntVar(&jobsMinScore, "min-score", 0, "Minimum suitability score (1-10)")
	jobsCmd.Flags().IntVar(&jobsOffset, "offset", 0, "Pagination offset")
	jobsCmd.Flags().IntVar(&jobsLimit, "limit", 6, "Page size")
	rootCmd.AddCommand(jobsCmd)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/aidi-lab/pubnet/internal/metrics"
)

var authorsTop int

func init() {
	authorsCmd.Flags().IntVar(&authorsTop, "top", 0,
		"Number of authors to return (default from config)")
	rootCmd.AddCommand(authorsCmd)
}

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "Home-institution author metrics",
	Long: `Rank home-institution authors by citations and by paper count, and
show the distribution of authorship positions.`,
	RunE: runAuthors,
}

// AuthorsResult is the response for the authors command.
type AuthorsResult struct {
	ByCitations []metrics.AuthorMetrics `json:"by_citations"`
	ByPapers    []metrics.AuthorMetrics `json:"by_papers"`
	Positions   []metrics.PositionCount `json:"positions"`
}

func runAuthors(cmd *cobra.Command, args []string) error {
	repo := openRepo()
	defer repo.Close()

	top := authorsTop
	if top <= 0 {
		top = repo.Config.TopAuthors
	}

	snap := repo.Snapshot()
	result := AuthorsResult{
		ByCitations: metrics.TopAuthorsByCitations(snap.HomeAuthors, top),
		ByPapers:    metrics.TopAuthorsByPapers(snap.HomeAuthors, top),
		Positions:   metrics.PositionDistribution(snap.HomeAuthors),
	}

	if humanOutput {
		outputHuman("Top authors by citations:\n")
		for i, a := range result.ByCitations {
			outputHuman("%2d. %s: %d citations over %d papers (%.2f/paper)\n",
				i+1, a.Name, a.Citations, a.Papers, a.CitationsPerPaper)
		}
		outputHuman("\nPositions:\n")
		for _, p := range result.Positions {
			outputHuman("  %-8s %d\n", p.Position, p.Count)
		}
		return nil
	}

	return outputJSON(result)
}

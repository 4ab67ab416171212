package main

import (
	"github.com/spf13/cobra"

	"github.com/aidi-lab/pubnet/internal/metrics"
)

var overviewTypes []string

func init() {
	overviewCmd.Flags().StringSliceVar(&overviewTypes, "type", nil,
		"Restrict to publication types (repeatable)")
	rootCmd.AddCommand(overviewCmd)
}

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Corpus-wide bibliometric summary",
	Long: `Summarize the publication corpus: totals, yearly trends, quartile
and publication-type distributions, and the impact-factor histogram.`,
	RunE: runOverview,
}

// OverviewResult is the response for the overview command.
type OverviewResult struct {
	Summary       metrics.Summary           `json:"summary"`
	ByYear        []metrics.YearMetrics     `json:"by_year"`
	Quartiles     []metrics.CategoryCount   `json:"quartiles"`
	QuartileYears metrics.Crosstab          `json:"quartiles_by_year"`
	Types         []metrics.CategoryCount   `json:"types"`
	TypeYears     metrics.Crosstab          `json:"types_by_year"`
	ImpactFactors []metrics.HistogramBucket `json:"impact_factor_histogram"`
}

func runOverview(cmd *cobra.Command, args []string) error {
	repo := openRepo()
	defer repo.Close()

	snap := repo.Snapshot().FilterTypes(overviewTypes)

	result := OverviewResult{
		Summary:       metrics.Summarize(snap),
		ByYear:        metrics.ByYear(snap),
		Quartiles:     metrics.QuartileDistribution(snap),
		QuartileYears: metrics.QuartileByYear(snap),
		Types:         metrics.TypeDistribution(snap),
		TypeYears:     metrics.TypeByYear(snap),
		ImpactFactors: metrics.ImpactFactorHistogram(snap),
	}

	if humanOutput {
		s := result.Summary
		outputHuman("Publications: %d\n", s.Publications)
		outputHuman("Citations:    %d (%.2f per paper)\n", s.Citations, s.MeanCitations)
		outputHuman("Open access:  %d (%.0f%%)\n", s.OpenAccess, s.OpenAccessShare*100)
		outputHuman("\nBy year:\n")
		for _, y := range result.ByYear {
			outputHuman("  %d: %d papers, %d citations\n", y.Year, y.Publications, y.Citations)
		}
		outputHuman("\nQuartiles:\n")
		for _, q := range result.Quartiles {
			outputHuman("  %-8s %d\n", q.Category, q.Count)
		}
		return nil
	}

	return outputJSON(result)
}

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidi-lab/pubnet/internal/pubrecord"
	"github.com/aidi-lab/pubnet/internal/storage"
)

var (
	searchAuthor   string
	searchTitle    string
	searchJournal  string
	searchYearFrom int
	searchYearTo   int
	searchType     string
	searchQuartile string
	searchLimit    int
)

func init() {
	searchCmd.Flags().StringVar(&searchAuthor, "author", "", "Author name (prefix matching)")
	searchCmd.Flags().StringVar(&searchTitle, "title", "", "Search in title only")
	searchCmd.Flags().StringVar(&searchJournal, "journal", "", "Filter by journal substring")
	searchCmd.Flags().IntVar(&searchYearFrom, "year-from", 0, "Minimum publication year")
	searchCmd.Flags().IntVar(&searchYearTo, "year-to", 0, "Maximum publication year")
	searchCmd.Flags().StringVar(&searchType, "type", "", "Exact publication type")
	searchCmd.Flags().StringVar(&searchQuartile, "quartile", "", "Exact quartile (Q1-Q4)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum results")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [keywords...]",
	Short: "Search publications",
	Long: `Full-text search across titles, abstracts, journals and author
names, combinable with year, type and quartile filters.`,
	RunE: runSearch,
}

// SearchResult is the response for the search command.
type SearchResult struct {
	Count        int                     `json:"count"`
	Publications []pubrecord.Publication `json:"publications"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	repo := openRepo()
	defer repo.Close()

	filters := storage.SearchFilters{
		Keyword:  strings.Join(args, " "),
		Author:   searchAuthor,
		Title:    searchTitle,
		Journal:  searchJournal,
		YearFrom: searchYearFrom,
		YearTo:   searchYearTo,
		Type:     searchType,
		Quartile: searchQuartile,
	}

	pubs, err := repo.DB.SearchWithFilters(filters, searchLimit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	if humanOutput {
		for _, p := range pubs {
			outputHuman("%d  %-8s %s\n",
				p.Year, p.Quartile, truncateString(p.Title, ListTitleMaxLen))
		}
		return nil
	}

	return outputJSON(SearchResult{Count: len(pubs), Publications: pubs})
}

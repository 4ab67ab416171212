package main

import (
	"github.com/spf13/cobra"

	"github.com/aidi-lab/pubnet/internal/pubrecord"
)

var listLimit int

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", DefaultSearchLimit, "Maximum publications to list")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List publications, newest first",
	RunE:  runList,
}

// ListResult is the response for the list command.
type ListResult struct {
	Count        int                     `json:"count"`
	Publications []pubrecord.Publication `json:"publications"`
}

func runList(cmd *cobra.Command, args []string) error {
	repo := openRepo()
	defer repo.Close()

	pubs, err := repo.DB.ListAll(listLimit)
	if err != nil {
		exitWithError(ExitError, "listing publications: %v", err)
	}

	if humanOutput {
		for _, p := range pubs {
			outputHuman("%d-%02d  %-8s %s\n",
				p.Year, p.Month, p.Quartile, truncateString(p.Title, ListTitleMaxLen))
		}
		return nil
	}

	return outputJSON(ListResult{Count: len(pubs), Publications: pubs})
}

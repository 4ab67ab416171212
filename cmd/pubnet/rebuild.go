package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aidi-lab/pubnet/internal/config"
	"github.com/aidi-lab/pubnet/internal/storage"
)

func init() {
	rootCmd.AddCommand(rebuildCmd)
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the query layer from source data",
	Long: `Rebuild the SQLite query database from the JSONL source file.

Re-derives the home_authors table and the full-text search index. Use this
after pulling new data or if the database becomes corrupted.`,
	RunE: runRebuild,
}

// RebuildResult is the response for the rebuild command.
type RebuildResult struct {
	Status       string `json:"status"`
	Publications int    `json:"publications"`
	HomeAuthors  int    `json:"home_authors"`
}

func runRebuild(cmd *cobra.Command, args []string) error {
	root, exitCode := getRepoRoot()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	repoRoot, err := config.FindRepository(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	cfg, err := config.Load(repoRoot)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	if err := cfg.Validate(); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if err := os.MkdirAll(config.CachePath(repoRoot), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	db, err := storage.OpenDB(config.DBPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	defer db.Close()

	home := affiliationHome(cfg)
	count, err := db.RebuildFromJSONL(config.PubsPath(repoRoot), home)
	if err != nil {
		exitWithError(ExitDataError, "rebuilding database: %v", err)
	}

	authors, err := db.CountHomeAuthors()
	if err != nil {
		exitWithError(ExitError, "counting home authors: %v", err)
	}

	if humanOutput {
		outputHuman("Rebuilt query database with %d publications and %d home authorship rows\n",
			count, authors)
	} else {
		outputJSON(RebuildResult{
			Status:       "rebuilt",
			Publications: count,
			HomeAuthors:  authors,
		})
	}

	return nil
}

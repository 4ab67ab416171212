package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/aidi-lab/pubnet/internal/config"
	"github.com/aidi-lab/pubnet/internal/storage"
)

func init() {
	rootCmd.AddCommand(pullCmd)
}

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Pull the publication corpus from the cloud store",
	Long: `Pull the full publication corpus from the configured MongoDB source
into the local JSONL file, then rebuild the query database.

Credentials come from the environment (or a .env file): either
PUBNET_MONGO_URI, or PUBNET_MONGO_USER, PUBNET_MONGO_PASSWORD and
PUBNET_MONGO_HOST together.`,
	RunE: runPull,
}

// PullResult is the response for the pull command.
type PullResult struct {
	Status       string `json:"status"`
	Publications int    `json:"publications"`
}

func runPull(cmd *cobra.Command, args []string) error {
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
	if cfg.MongoDatabase == "" || cfg.MongoCollection == "" {
		exitWithError(ExitConfigError, "mongo_database and mongo_collection must be set in config.yml")
	}

	uri, err := config.MongoURI()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	ctx := context.Background()
	source, err := storage.ConnectMongo(ctx, uri, cfg.MongoDatabase, cfg.MongoCollection)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	defer source.Close(ctx)

	pubs, err := source.LoadPublications(ctx)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if err := storage.WriteAll(config.PubsPath(repoRoot), pubs); err != nil {
		exitWithError(ExitError, "writing publications: %v", err)
	}

	// Rebuild the query layer so analysis commands see the new corpus.
	if err := os.MkdirAll(config.CachePath(repoRoot), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}
	db, err := storage.OpenDB(config.DBPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	defer db.Close()

	if _, err := db.RebuildFromJSONL(config.PubsPath(repoRoot), affiliationHome(cfg)); err != nil {
		exitWithError(ExitDataError, "rebuilding database: %v", err)
	}

	if humanOutput {
		outputHuman("Pulled %d publications\n", len(pubs))
	} else {
		outputJSON(PullResult{Status: "pulled", Publications: len(pubs)})
	}

	return nil
}

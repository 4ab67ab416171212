package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aidi-lab/pubnet/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new pubnet repository",
	Long: `Initialize a new pubnet repository in the current directory.

Creates:
  .pubnet/
  ├── publications.jsonl   # Empty file
  ├── config.yml           # Default config
  └── cache/               # Empty directory (gitignored)`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, exitCode := getRepoRoot()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	if config.IsRepository(root) {
		exitWithError(ExitError, "directory already contains a pubnet repository")
	}

	if err := os.MkdirAll(config.PubnetPath(root), 0755); err != nil {
		exitWithError(ExitError, "creating .pubnet directory: %v", err)
	}
	if err := os.MkdirAll(config.CachePath(root), 0755); err != nil {
		exitWithError(ExitError, "creating cache directory: %v", err)
	}

	pubsFile, err := os.Create(config.PubsPath(root))
	if err != nil {
		exitWithError(ExitError, "creating publications.jsonl: %v", err)
	}
	pubsFile.Close()

	if err := config.Default().Save(root); err != nil {
		exitWithError(ExitError, "writing default config: %v", err)
	}

	if humanOutput {
		outputHuman("Initialized pubnet repository in %s\n", config.PubnetPath(root))
		outputHuman("Set home_institution_id in %s before rebuilding.\n", config.ConfigPath(root))
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: config.PubnetPath(root)})
	}

	return nil
}

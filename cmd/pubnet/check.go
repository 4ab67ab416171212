package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aidi-lab/pubnet/internal/affiliation"
	"github.com/aidi-lab/pubnet/internal/config"
	"github.com/aidi-lab/pubnet/internal/storage"
	"github.com/aidi-lab/pubnet/internal/topics"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify repository integrity",
	Long: `Verify repository integrity: duplicate paper IDs, malformed nested
JSON payloads and query-database staleness.`,
	RunE: runCheck,
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Status       string       `json:"status"`
	Publications int          `json:"publications"`
	Issues       []CheckIssue `json:"issues"`
}

// CheckIssue represents a single issue found during check.
type CheckIssue struct {
	Type     string   `json:"type"`
	ID       string   `json:"id,omitempty"`
	IDs      []string `json:"ids,omitempty"`
	Detail   string   `json:"detail,omitempty"`
	Expected int      `json:"expected,omitempty"`
	Actual   int      `json:"actual,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	// JSONL is the source of truth.
	pubs, err := storage.ReadAll(config.PubsPath(repoRoot))
	if err != nil {
		exitWithError(ExitDataError, "reading publications: %v", err)
	}

	var issues []CheckIssue

	if err := cfg.Validate(); err != nil {
		issues = append(issues, CheckIssue{Type: "config", Detail: err.Error()})
	}

	// Duplicate paper IDs.
	idMap := make(map[string][]string)
	for _, p := range pubs {
		idMap[p.ID] = append(idMap[p.ID], p.ID)
	}
	for id, ids := range idMap {
		if len(ids) > 1 {
			issues = append(issues, CheckIssue{Type: "duplicate_id", ID: id})
		}
	}

	// Malformed nested JSON poisons one analysis dimension per paper.
	for _, p := range pubs {
		if _, err := affiliation.Parse(p.AuthorshipsJSON); err != nil {
			issues = append(issues, CheckIssue{
				Type: "malformed_authorships", ID: p.ID, Detail: err.Error(),
			})
		}
		if _, err := topics.ParseConcepts(p.ConceptsJSON); err != nil {
			issues = append(issues, CheckIssue{
				Type: "malformed_concepts", ID: p.ID, Detail: err.Error(),
			})
		}
	}

	// Query database staleness.
	if _, err := os.Stat(config.DBPath(repoRoot)); err == nil {
		db, err := storage.OpenDB(config.DBPath(repoRoot))
		if err == nil {
			count, err := db.Count()
			if err == nil && count != len(pubs) {
				issues = append(issues, CheckIssue{
					Type:     "stale_database",
					Detail:   "run 'pubnet rebuild'",
					Expected: len(pubs),
					Actual:   count,
				})
			}
			db.Close()
		}
	}

	status := "ok"
	if len(issues) > 0 {
		status = "issues"
	}
	if issues == nil {
		issues = []CheckIssue{}
	}

	if humanOutput {
		if len(issues) == 0 {
			outputHuman("Repository check: OK\n\n%d publications checked\n", len(pubs))
		} else {
			outputHuman("Repository check: %d issues found\n\n", len(issues))
			for _, issue := range issues {
				outputHuman("  [WARN] %s %s %s\n", issue.Type, issue.ID, issue.Detail)
			}
			outputHuman("\n%d publications checked\n", len(pubs))
		}
		if status != "ok" {
			os.Exit(ExitDataError)
		}
		return nil
	}

	outputJSON(CheckResult{Status: status, Publications: len(pubs), Issues: issues})
	if status != "ok" {
		os.Exit(ExitDataError)
	}
	return nil
}

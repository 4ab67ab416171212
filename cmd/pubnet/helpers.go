package main

import (
	"github.com/aidi-lab/pubnet/internal/affiliation"
	"github.com/aidi-lab/pubnet/internal/config"
	"github.com/aidi-lab/pubnet/internal/pubrecord"
	"github.com/aidi-lab/pubnet/internal/storage"
)

// repoContext bundles everything an analysis command needs.
type repoContext struct {
	Root   string
	Config *config.Config
	DB     *storage.DB
}

// openRepo locates the repository, loads its configuration and opens the
// query database. Exits with the appropriate code on failure.
func openRepo() *repoContext {
	root, exitCode := getRepoRoot()
	if exitCode != 0 {
		exitWithError(exitCode, "resolving working directory")
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

	db, err := storage.OpenDB(config.DBPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}

	return &repoContext{Root: repoRoot, Config: cfg, DB: db}
}

// Close releases the database handle.
func (r *repoContext) Close() {
	if r.DB != nil {
		r.DB.Close()
	}
}

// Home returns the configured home institution.
func (r *repoContext) Home() affiliation.Home {
	return affiliation.Home{
		ID:   r.Config.HomeInstitutionID,
		Name: r.Config.HomeInstitutionName,
	}
}

// Snapshot loads the full working set. Load failures degrade to an empty
// snapshot rather than aborting the command.
func (r *repoContext) Snapshot() *pubrecord.Snapshot {
	return storage.LoadSnapshot(r.DB)
}

// affiliationHome builds the home institution from a loaded config.
func affiliationHome(cfg *config.Config) affiliation.Home {
	return affiliation.Home{
		ID:   cfg.HomeInstitutionID,
		Name: cfg.HomeInstitutionName,
	}
}

// HomeLabel returns the display label for the home institution.
func (r *repoContext) HomeLabel() string {
	if r.Config.HomeInstitutionName != "" {
		return r.Config.HomeInstitutionName
	}
	return r.Config.HomeInstitutionID
}

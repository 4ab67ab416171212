// Package config handles repository configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents repository configuration stored in .pubnet/config.yml.
type Config struct {
	// HomeInstitutionID is the stable institution identifier used to
	// classify authorships (full OpenAlex URL format).
	HomeInstitutionID string `yaml:"home_institution_id"`
	// HomeInstitutionName is the display name, used only for affiliation
	// entries that carry no identifier and for chart labels.
	HomeInstitutionName string `yaml:"home_institution_name"`

	// Aggregation cutoffs.
	TopAuthors          int `yaml:"top_authors"`
	TopCollaborators    int `yaml:"top_collaborators"`
	TopDepartments      int `yaml:"top_departments"`
	MinTopicPapers      int `yaml:"min_topic_papers"`
	MinTopicConnections int `yaml:"min_topic_connections"`

	// Mongo source for the pull command. The password comes from the
	// environment, never from this file.
	MongoDatabase   string `yaml:"mongo_database,omitempty"`
	MongoCollection string `yaml:"mongo_collection,omitempty"`
}

const (
	PubnetDir  = ".pubnet"
	ConfigFile = "config.yml"
	PubsFile   = "publications.jsonl"
	CacheDir   = "cache"
	DBFile     = "pubs.db"
)

// Default returns a configuration with the standard cutoffs and no home
// institution set.
func Default() *Config {
	return &Config{
		TopAuthors:          10,
		TopCollaborators:    20,
		TopDepartments:      15,
		MinTopicPapers:      3,
		MinTopicConnections: 2,
	}
}

// PubnetPath returns the path to the .pubnet directory from a root path.
func PubnetPath(root string) string {
	return filepath.Join(root, PubnetDir)
}

// ConfigPath returns the path to config.yml from a root path.
func ConfigPath(root string) string {
	return filepath.Join(root, PubnetDir, ConfigFile)
}

// PubsPath returns the path to publications.jsonl from a root path.
func PubsPath(root string) string {
	return filepath.Join(root, PubnetDir, PubsFile)
}

// CachePath returns the path to the cache directory from a root path.
func CachePath(root string) string {
	return filepath.Join(root, PubnetDir, CacheDir)
}

// DBPath returns the path to pubs.db from a root path.
func DBPath(root string) string {
	return filepath.Join(root, PubnetDir, CacheDir, DBFile)
}

// IsRepository checks if the given path contains a pubnet repository.
func IsRepository(root string) bool {
	info, err := os.Stat(PubnetPath(root))
	return err == nil && info.IsDir()
}

// FindRepository walks up from the given path to find a pubnet repository.
// Returns the repository root path or an error if not found.
func FindRepository(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsRepository(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a pubnet repository (no .pubnet directory found)")
		}
		abs = parent
	}
}

// Load reads configuration from the repository at the given root. Cutoffs
// left at zero in the file fall back to their defaults.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(ConfigPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Save writes configuration to the repository at the given root.
func (c *Config) Save(root string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate checks that the fields required for classification are present.
func (c *Config) Validate() error {
	if c.HomeInstitutionID == "" && c.HomeInstitutionName == "" {
		return fmt.Errorf("home_institution_id or home_institution_name must be set")
	}
	return nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.TopAuthors == 0 {
		c.TopAuthors = def.TopAuthors
	}
	if c.TopCollaborators == 0 {
		c.TopCollaborators = def.TopCollaborators
	}
	if c.TopDepartments == 0 {
		c.TopDepartments = def.TopDepartments
	}
	if c.MinTopicPapers == 0 {
		c.MinTopicPapers = def.MinTopicPapers
	}
	if c.MinTopicConnections == 0 {
		c.MinTopicConnections = def.MinTopicConnections
	}
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}

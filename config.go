package publisher

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Supported search backends.
const (
	BackendAlgolia       = "algolia"
	BackendElasticsearch = "elasticsearch"
)

// Config is read once at startup and never modified afterwards.
// Variable names follow the GitHub Actions input convention.
type Config struct {
	AppID     string   `env:"INPUT_APP_ID"`
	AdminKey  string   `env:"INPUT_ADMIN_KEY"`
	IndexName string   `env:"INPUT_INDEX_NAME"`
	Separator string   `env:"INPUT_INDEX_NAME_SEPARATOR"`
	Directory string   `env:"INPUT_INDEX_FILE_DIRECTORY"`
	FileName  string   `env:"INPUT_INDEX_FILE_NAME"`
	Languages []string `env:"INPUT_INDEX_LANGUAGES" envSeparator:","`
	Workspace string   `env:"GITHUB_WORKSPACE"`

	Backend           string   `env:"INPUT_BACKEND" envDefault:"algolia"`
	ElasticsearchURLs []string `env:"INPUT_ELASTICSEARCH_URLS" envSeparator:"," envDefault:"http://localhost:9200"`
	LogLevel          string   `env:"INPUT_LOG_LEVEL" envDefault:"info"`
	DryRun            bool     `env:"INPUT_DRY_RUN" envDefault:"false"`
}

// LoadConfig reads the configuration from the process environment and
// validates it.
func LoadConfig() (Config, error) {
	return loadConfig(env.Options{})
}

func loadConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Languages = cleanLanguages(cfg.Languages)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	// A Config built in code may carry no languages; the environment must name at least one.
	if len(cfg.Languages) == 0 {
		return Config{}, fmt.Errorf("%w: INPUT_INDEX_LANGUAGES", ErrConfigurationMissing)
	}

	return cfg, nil
}

// Validate reports every required setting that is empty.
func (c Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"INPUT_APP_ID", c.AppID},
		{"INPUT_ADMIN_KEY", c.AdminKey},
		{"INPUT_INDEX_NAME", c.IndexName},
		{"INPUT_INDEX_NAME_SEPARATOR", c.Separator},
		{"INPUT_INDEX_FILE_DIRECTORY", c.Directory},
		{"INPUT_INDEX_FILE_NAME", c.FileName},
		{"GITHUB_WORKSPACE", c.Workspace},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrConfigurationMissing, strings.Join(missing, ", "))
	}

	switch c.Backend {
	case "", BackendAlgolia, BackendElasticsearch:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}

	return nil
}

// cleanLanguages trims each code and drops empty entries, keeping order.
func cleanLanguages(langs []string) []string {
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

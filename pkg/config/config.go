package config

import (
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// Config is the decoded configuration file
type Config struct {
	Dotfiles  Dotfiles          `koanf:"dotfiles" toml:"dotfiles"`
	Env       []string          `koanf:"env" toml:"env"`
	EnvBase64 []string          `koanf:"env_base64" toml:"env_base64"`
	Clone     map[string]Repo   `koanf:"clone" toml:"clone"`
	Links     map[string]string `koanf:"links" toml:"links"`
	Templates map[string]string `koanf:"templates" toml:"templates"`

	// order holds the key order of the mapping sections as written in the file.
	// Keys missing from it (set through the environment, or in a Config built
	// in code) sort after it by name.
	order keyOrder
}

// Dotfiles locates the content tree and the generated tree
type Dotfiles struct {
	Content   string `koanf:"content" toml:"content"`
	Generated string `koanf:"generated" toml:"generated"`
}

// Repo is one entry of the clone table
type Repo struct {
	URL  string `koanf:"url" toml:"url"`
	Path string `koanf:"path" toml:"path"`
}

// Validate checks the fields every run needs
func (c *Config) Validate() error {
	if c.Dotfiles.Content == "" {
		return errors.New(errors.ErrConfigValid, "dotfiles.content is required")
	}
	if c.Dotfiles.Generated == "" {
		return errors.New(errors.ErrConfigValid, "dotfiles.generated is required")
	}
	for name, repo := range c.Clone {
		if repo.URL == "" {
			return errors.Newf(errors.ErrConfigValid, "clone.%s.url is required", name)
		}
		if repo.Path == "" {
			return errors.Newf(errors.ErrConfigValid, "clone.%s.path is required", name)
		}
	}
	return nil
}

// ContentRoot is the absolute, home-expanded content directory
func (c *Config) ContentRoot() (string, error) {
	return paths.Resolve(c.Dotfiles.Content)
}

// GeneratedRoot is the absolute, home-expanded generated directory
func (c *Config) GeneratedRoot() (string, error) {
	return paths.Resolve(c.Dotfiles.Generated)
}

// LinkMapping returns the static links in configuration order
func (c *Config) LinkMapping() types.Mapping {
	return types.NewOrderedMapping(c.Links, c.order[sectionLinks])
}

// TemplateMapping returns the templates in configuration order
func (c *Config) TemplateMapping() types.Mapping {
	return types.NewOrderedMapping(c.Templates, c.order[sectionTemplates])
}

// Repositories returns the clone entries in configuration order
func (c *Config) Repositories() []types.Repository {
	names := types.OrderKeys(c.Clone, c.order[sectionClone])

	repos := make([]types.Repository, 0, len(names))
	for _, name := range names {
		repo := c.Clone[name]
		repos = append(repos, types.Repository{Name: name, URL: repo.URL, Path: repo.Path})
	}
	return repos
}

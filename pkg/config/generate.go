package config

import (
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Sample returns a starter configuration for new users
func Sample() *Config {
	return &Config{
		Dotfiles: Dotfiles{
			Content:   "~/dotfiles/content",
			Generated: "~/dotfiles/generated",
		},
		Env:       []string{"USER_NAME", "USER_EMAIL"},
		EnvBase64: []string{},
		Clone: map[string]Repo{
			"tpm": {
				URL:  "https://github.com/tmux-plugins/tpm",
				Path: "~/.tmux/plugins/tpm",
			},
		},
		Links: map[string]string{
			"vim/vimrc":      "~/.vimrc",
			"tmux/tmux.conf": "~/.tmux.conf",
		},
		Templates: map[string]string{
			"git/gitconfig": "~/.gitconfig",
		},
	}
}

// MarshalTOML renders cfg as a TOML document
func MarshalTOML(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to render config as TOML")
	}
	return data, nil
}

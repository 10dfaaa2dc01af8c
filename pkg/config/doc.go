// Package config loads the dotlink configuration file.
//
// Loading happens in three layers, each overriding the previous one:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user's configuration file, parsed by extension:
//     .toml, .yaml/.yml, or JSON for anything else
//  3. environment overrides with the DOTLINK_ prefix, where a double
//     underscore separates nesting levels:
//     DOTLINK_DOTFILES__GENERATED=/tmp/gen sets dotfiles.generated
//
// A configuration looks like this (TOML form):
//
//	env = ["USER_NAME"]
//	env_base64 = ["SSH_CONFIG_EXTRA"]
//
//	[dotfiles]
//	content = "~/dotfiles/content"
//	generated = "~/dotfiles/generated"
//
//	[clone.tpm]
//	url = "https://github.com/tmux-plugins/tpm"
//	path = "~/.tmux/plugins/tpm"
//
//	[links]
//	"vim/vimrc" = "~/.vimrc"
//
//	[templates]
//	"git/gitconfig" = "~/.gitconfig"
//
// Keys under links and templates are paths and routinely contain dots, so
// the koanf key delimiter is "::" rather than ".".
package config

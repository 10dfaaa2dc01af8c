package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks environment variables that override configuration keys
	EnvPrefix = "DOTLINK_"

	keyDelim = "::"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Load reads the configuration at path and validates it
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	path = paths.ExpandHome(path)
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", path)
	}

	k := koanf.New(keyDelim)

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config %s", path)
	}

	if err := k.Load(&rawBytesProvider{bytes: data}, parserFor(path)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config %s", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, keyDelim, envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to decode config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Decoded maps lose the file's key order, so recover it from the source
	order, err := keyOrderFor(path, data)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("cannot read key order, mapping entries sorted by name")
	}
	cfg.order = order

	logger.Debug().
		Str("path", path).
		Str("content", cfg.Dotfiles.Content).
		Str("generated", cfg.Dotfiles.Generated).
		Int("links", len(cfg.Links)).
		Int("templates", len(cfg.Templates)).
		Int("clone", len(cfg.Clone)).
		Msg("configuration loaded")

	return &cfg, nil
}

// parserFor picks a koanf parser from the file extension
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser()
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return newJSONCParser()
	}
}

// envKey maps DOTLINK_DOTFILES__CONTENT to dotfiles::content
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", keyDelim)
}

package environment

import (
	"encoding/base64"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/logging"
)

// Encoding describes how a variable's raw value is turned into text
type Encoding string

const (
	EncodingPlain  Encoding = "plain"
	EncodingBase64 Encoding = "base64"
)

// LookupFunc reads one variable, reporting whether it is set
type LookupFunc func(name string) (string, bool)

// Resolved maps variable names to their decoded values
type Resolved map[string]string

// Names returns the resolved variable names in sorted order
func (r Resolved) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve reads the plain and base64 variables from the process environment.
func Resolve(plain, encoded []string) (Resolved, error) {
	return ResolveWith(plain, encoded, os.LookupEnv)
}

// ResolveWith is Resolve with an explicit lookup function.
// Plain names are processed first, then base64 names, each in list order.
func ResolveWith(plain, encoded []string, lookup LookupFunc) (Resolved, error) {
	logger := logging.GetLogger("environment")
	resolved := make(Resolved, len(plain)+len(encoded))

	for _, name := range plain {
		value, err := read(resolved, name, lookup)
		if err != nil {
			return nil, err
		}
		resolved[name] = value
	}

	for _, name := range encoded {
		raw, err := read(resolved, name, lookup)
		if err != nil {
			return nil, err
		}
		value, err := decode(name, raw)
		if err != nil {
			return nil, err
		}
		resolved[name] = value
	}

	logger.Debug().
		Int("plain", len(plain)).
		Int("base64", len(encoded)).
		Strs("names", resolved.Names()).
		Msg("resolved environment")

	return resolved, nil
}

func read(resolved Resolved, name string, lookup LookupFunc) (string, error) {
	if _, exists := resolved[name]; exists {
		return "", errors.Newf(errors.ErrDuplicateVariable,
			"env var %s is already defined, please fix the config", name).
			WithDetail("name", name)
	}
	value, ok := lookup(name)
	if !ok {
		return "", errors.Newf(errors.ErrMissingVariable, "missing env var %s", name).
			WithDetail("name", name)
	}
	return value, nil
}

func decode(name, raw string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDecode, "env var %s is not valid base64", name).
			WithDetail("name", name)
	}
	if !utf8.Valid(data) {
		return "", errors.Newf(errors.ErrDecode, "env var %s does not decode to UTF-8 text", name).
			WithDetail("name", name)
	}
	return string(data), nil
}

package template

import (
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/environment"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/filesystem"
	"github.com/arthur-debert/dotlink/pkg/paths"
)

// Placeholder returns the literal text that stands for name in a template
func Placeholder(name string) string {
	return "{{ " + name + " }}"
}

// Substitute replaces the placeholder of every resolved variable with its
// value. Variables are applied one at a time in name order, each in a
// single pass over the text; values are not rescanned for placeholders of
// the same variable.
func Substitute(text string, env environment.Resolved) string {
	for _, name := range env.Names() {
		text = strings.ReplaceAll(text, Placeholder(name), env[name])
	}
	return text
}

// Load reads the template source from the content root
func Load(fsys filesystem.FS, contentRoot, source string) (string, error) {
	path := paths.SourcePath(contentRoot, source)
	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", errors.Wrapf(err, errors.ErrTemplateNotFound, "template %s not found", path).
				WithDetail("source", source)
		}
		return "", errors.Wrapf(err, errors.ErrFileRead, "failed to read template %s", path).
			WithDetail("source", source)
	}
	return string(data), nil
}

// RenderSource loads a template and substitutes env into it
func RenderSource(fsys filesystem.FS, contentRoot, source string, env environment.Resolved) (string, error) {
	text, err := Load(fsys, contentRoot, source)
	if err != nil {
		return "", err
	}
	return Substitute(text, env), nil
}

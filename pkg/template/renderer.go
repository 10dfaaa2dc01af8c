package template

import (
	"github.com/arthur-debert/dotlink/pkg/environment"
	"github.com/arthur-debert/dotlink/pkg/errors"
	"github.com/arthur-debert/dotlink/pkg/linker"
	"github.com/arthur-debert/dotlink/pkg/logging"
	"github.com/arthur-debert/dotlink/pkg/output"
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
	"github.com/rs/zerolog"
)

// FilePerm is the mode of generated files
const FilePerm = 0644

// Renderer generates templates and links the results into place
type Renderer struct {
	placer        *linker.Placer
	contentRoot   string
	generatedRoot string
	env           environment.Resolved
	logger        zerolog.Logger
}

// NewRenderer creates a Renderer. The placer's filesystem, reporter and
// dry-run mode apply to generation as well as linking.
func NewRenderer(placer *linker.Placer, contentRoot, generatedRoot string, env environment.Resolved) *Renderer {
	return &Renderer{
		placer:        placer,
		contentRoot:   contentRoot,
		generatedRoot: generatedRoot,
		env:           env,
		logger:        logging.GetLogger("template.renderer"),
	}
}

// Render processes every template entry in order, stopping at the first error
func (r *Renderer) Render(templates types.Mapping) error {
	for _, entry := range templates {
		if err := r.renderOne(entry); err != nil {
			return err
		}
	}
	r.logger.Info().
		Int("count", len(templates)).
		Bool("dryRun", r.placer.DryRun()).
		Msg("generated templates")
	return nil
}

func (r *Renderer) renderOne(entry types.Entry) error {
	fsys := r.placer.FS()
	source := paths.SourcePath(r.contentRoot, entry.Source)
	generated := paths.GeneratedPath(r.generatedRoot, entry.Source)

	content, err := RenderSource(fsys, r.contentRoot, entry.Source, r.env)
	if err != nil {
		return err
	}

	if err := r.placer.EnsureDir(generated, true); err != nil {
		return err
	}

	if !r.placer.DryRun() {
		if err := fsys.WriteFile(generated, []byte(content), FilePerm); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", generated).
				WithDetail("source", entry.Source)
		}
	}
	r.placer.Reporter().Report(output.Action{
		Kind:        output.KindGenerate,
		Source:      source,
		Destination: generated,
		DryRun:      r.placer.DryRun(),
	})

	r.logger.Debug().
		Str("source", source).
		Str("generated", generated).
		Str("destination", entry.Destination).
		Msg("rendered template")

	return r.placer.Place(generated, entry.Destination)
}

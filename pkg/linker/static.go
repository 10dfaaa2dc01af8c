package linker

import (
	"github.com/arthur-debert/dotlink/pkg/paths"
	"github.com/arthur-debert/dotlink/pkg/types"
)

// LinkStatic links every entry of links from contentRoot into place, in
// mapping order. It stops at the first failure.
func LinkStatic(p *Placer, contentRoot string, links types.Mapping) error {
	for _, entry := range links {
		if err := p.Place(paths.SourcePath(contentRoot, entry.Source), entry.Destination); err != nil {
			return err
		}
	}
	p.logger.Info().Int("count", len(links)).Bool("dryRun", p.dryRun).Msg("linked static files")
	return nil
}

package template

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotlink/pkg/output"
	"gopkg.in/yaml.v3"
)

// WriteReport renders drift results in the given format.
// FormatAuto is treated as plain text.
func WriteReport(w io.Writer, results []DriftResult, format output.Format) error {
	switch format {
	case output.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case output.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, results, output.NewStyles(w, format == output.FormatTerminal))
	}
}

func writeText(w io.Writer, results []DriftResult, styles output.Styles) error {
	for _, r := range results {
		var err error
		switch r.Status {
		case StatusMatch:
			_, err = fmt.Fprintln(w, styles.Paint(styles.Success, "No differences found for "+r.GeneratedPath))
		case StatusDiffers:
			_, err = fmt.Fprintf(w, "%s\n%s\n",
				styles.Paint(styles.Warning, "Differences found for "+r.GeneratedPath+":"),
				strings.TrimRight(r.Diff, "\n"))
		case StatusMissing:
			_, err = fmt.Fprintln(w, styles.Paint(styles.Error, "Generated file "+r.GeneratedPath+" does not exist."))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

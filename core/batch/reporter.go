package batch

import (
	"fmt"
	"io"

	"github.com/tristendillon/pagemigrate/core/models"
)

const completionLine = "All files updated successfully!"

// Reporter writes the human-readable per-file lines. It has no
// machine-readable mode. Files no rule changed count as updated unless
// Strict is set.
type Reporter struct {
	out    io.Writer
	Strict bool
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) File(res models.FileResult) {
	switch res.Status {
	case models.StatusUpdated:
		fmt.Fprintf(r.out, "Updated: %s\n", res.Name)
	case models.StatusNotFound:
		fmt.Fprintf(r.out, "File not found: %s\n", res.Path)
	case models.StatusUnchanged:
		if !r.Strict {
			fmt.Fprintf(r.out, "Updated: %s\n", res.Name)
			return
		}
		fmt.Fprintf(r.out, "No legacy patterns matched: %s\n", res.Name)
	case models.StatusWouldUpdate:
		fmt.Fprintf(r.out, "Would update: %s\n", res.Name)
		if res.Diff != "" {
			fmt.Fprint(r.out, res.Diff)
		}
	}
}

func (r *Reporter) Done(summary *models.Summary, dryRun bool) {
	if dryRun {
		fmt.Fprintf(r.out, "Dry run complete: %s\n", summary)
		return
	}
	fmt.Fprintln(r.out, completionLine)
}

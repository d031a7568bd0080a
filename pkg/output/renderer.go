// Package output renders treegen results and plans as terminal-friendly
// tree listings. Styling degrades to plain text when stdout is not a
// terminal or NO_COLOR is set.
package output

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/arthur-debert/treegen/pkg/core"
	"github.com/arthur-debert/treegen/pkg/materialize"
)

// Renderer writes result and plan listings to a writer.
type Renderer struct {
	writer  io.Writer
	colored bool
}

// NewRenderer creates a renderer for w. When noColor is true all styling is
// suppressed; otherwise terminal capabilities decide.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	return &Renderer{
		writer:  w,
		colored: !noColor && colorsEnabled(),
	}
}

// RenderResult writes a listing of what the run materialized, or of the
// resolved plan for dry runs.
func (r *Renderer) RenderResult(result *core.Result) error {
	if result.DryRun {
		return r.renderPlan(result)
	}

	header := fmt.Sprintf("Created %d directories, %d files",
		len(result.Dirs), len(result.Files))
	r.println("%s", r.styled(headerStyle.Render, header))

	dirStatus := make(map[string]string, len(result.Dirs))
	for _, d := range result.Dirs {
		if d.Existed {
			dirStatus[d.Path] = "exists"
		} else {
			dirStatus[d.Path] = "created"
		}
	}

	fileOutcomes := make(map[string]materialize.FileOutcome, len(result.Files))
	for _, f := range result.Files {
		fileOutcomes[f.Path] = f
	}

	for _, dir := range result.Tree.Paths() {
		r.println("%s  %s",
			r.styled(dirStyle.Render, dir),
			r.status(dirStatus[dir]))

		for _, entry := range result.Tree.FilesFor(dir) {
			dest := filepath.Join(dir, filepath.Base(entry))
			outcome, ok := fileOutcomes[dest]
			if !ok {
				continue
			}
			r.println("  %s  %s%s",
				r.styled(fileStyle.Render, filepath.Base(entry)),
				r.fileStatus(outcome),
				r.fileSource(outcome))
		}
	}

	return nil
}

func (r *Renderer) renderPlan(result *core.Result) error {
	files := 0
	for _, dir := range result.Tree.Paths() {
		files += len(result.Tree.FilesFor(dir))
	}

	header := fmt.Sprintf("Resolved tree: %d directories, %d files (dry run)",
		result.Tree.Len(), files)
	r.println("%s", r.styled(headerStyle.Render, header))

	for _, dir := range result.Tree.Paths() {
		r.println("%s  %s", r.styled(dirStyle.Render, dir), r.status("planned"))
		for _, entry := range result.Tree.FilesFor(dir) {
			r.println("  %s", r.styled(fileStyle.Render, filepath.Base(entry)))
		}
	}

	return nil
}

func (r *Renderer) fileStatus(outcome materialize.FileOutcome) string {
	status := "created"
	if outcome.Source != "" {
		status = "copied"
	}
	if outcome.Overwrote {
		status = "overwrote"
	}
	return r.status(status)
}

func (r *Renderer) fileSource(outcome materialize.FileOutcome) string {
	if outcome.Source == "" {
		return ""
	}
	return " " + r.styled(sourceStyle.Render, "from "+outcome.Source)
}

func (r *Renderer) status(status string) string {
	if status == "" {
		return ""
	}
	if !r.colored {
		return "[" + status + "]"
	}
	return statusStyle(status).Sprint(status)
}

func (r *Renderer) styled(render func(...string) string, s string) string {
	if !r.colored {
		return s
	}
	return render(s)
}

func (r *Renderer) println(format string, args ...interface{}) {
	fmt.Fprintf(r.writer, format+"\n", args...)
}

// Package render produces Markdown output from a report.
package render

import (
	"fmt"
	"strings"

	"github.com/dshills/winequality/internal/features"
	"github.com/dshills/winequality/internal/report"
)

// Markdown renders a report as a Markdown document.
func Markdown(r *report.Report) string {
	var b strings.Builder

	// Summary
	b.WriteString("# Wine Quality Estimate\n\n")
	fmt.Fprintf(&b, "**Quality:** %.1f / 8\n", r.Prediction.Quality)
	fmt.Fprintf(&b, "**Confidence:** %.0f%%\n", r.Prediction.Confidence*100)
	fmt.Fprintf(&b, "**Category:** %s\n\n", r.Prediction.Category)

	// Insights
	b.WriteString("## Insights\n\n")
	for _, s := range r.Prediction.Insights {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	b.WriteString("\n")

	// Inputs
	b.WriteString("## Inputs\n\n")
	b.WriteString("| Feature | Value | Unit |\n|---|---|---|\n")
	v := r.Features.Vector()
	for i, s := range features.Catalog() {
		fmt.Fprintf(&b, "| %s | %g | %s |\n", s.Name, v[i], s.Unit)
	}
	b.WriteString("\n")

	if len(r.Input.Defaulted) > 0 {
		fmt.Fprintf(&b, "Defaults used for: %s\n\n", strings.Join(r.Input.Defaulted, ", "))
	}

	if len(r.Warnings) > 0 {
		b.WriteString("## Range Warnings\n\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	if r.Explanation != nil {
		renderExplanation(&b, r.Explanation)
	}

	if r.Input.SampleFile != "" {
		b.WriteString("## Sample\n\n")
		fmt.Fprintf(&b, "- %s (%s)\n\n", r.Input.SampleFile, r.Input.SampleHash)
	}

	return b.String()
}

// Catalog renders the feature metadata table.
func Catalog(specs []features.Spec) string {
	var b strings.Builder
	b.WriteString("| Key | Name | Min | Max | Default | Unit | Description |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, s := range specs {
		fmt.Fprintf(&b, "| %s | %s | %g | %g | %g | %s | %s |\n",
			s.Key, s.Name, s.Min, s.Max, s.Default, s.Unit, s.Description)
	}
	return b.String()
}

func renderExplanation(b *strings.Builder, e *report.Explanation) {
	b.WriteString("## Explanation\n\n")
	fmt.Fprintf(b, "**Linear score:** %.3f\n", e.LinearScore)
	fmt.Fprintf(b, "**Neighbor average:** %.2f (variance %.2f)\n\n", e.KNNAverage, e.KNNVariance)
	b.WriteString("| Rank | Reference | Distance | Quality |\n|---|---|---|---|\n")
	for i, n := range e.Neighbors {
		fmt.Fprintf(b, "| %d | #%d | %.3f | %d |\n", i+1, n.Index, n.Distance, n.Quality)
	}
	b.WriteString("\n")
}

// Package schema validates estimator output against the prediction contract.
package schema

import (
	"fmt"
	"math"

	"github.com/dshills/winequality/internal/model"
)

const tolerance = 1e-9

// ValidationError describes a single contract violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a prediction for range, rounding and consistency.
func Validate(p *model.Prediction) []ValidationError {
	var errs []ValidationError

	switch {
	case math.IsNaN(p.Quality):
		errs = append(errs, ValidationError{"quality", "not a number"})
	case p.Quality < 3 || p.Quality > 8:
		errs = append(errs, ValidationError{"quality", fmt.Sprintf("%v outside [3, 8]", p.Quality)})
	case !onGrid(p.Quality, 10):
		errs = append(errs, ValidationError{"quality", fmt.Sprintf("%v is not rounded to 0.1", p.Quality)})
	}

	switch {
	case math.IsNaN(p.Confidence):
		errs = append(errs, ValidationError{"confidence", "not a number"})
	case p.Confidence < 0.5 || p.Confidence > 0.95:
		errs = append(errs, ValidationError{"confidence", fmt.Sprintf("%v outside [0.5, 0.95]", p.Confidence)})
	case !onGrid(p.Confidence, 100):
		errs = append(errs, ValidationError{"confidence", fmt.Sprintf("%v is not rounded to 0.01", p.Confidence)})
	}

	if !p.Category.Valid() {
		errs = append(errs, ValidationError{"category", fmt.Sprintf("invalid: %q", p.Category)})
	} else if want := model.CategoryFor(p.Quality); p.Category != want {
		errs = append(errs, ValidationError{"category", fmt.Sprintf("%s does not match quality %v (expected %s)", p.Category, p.Quality, want)})
	}

	if len(p.Insights) == 0 {
		errs = append(errs, ValidationError{"insights", "at least one insight required"})
	}
	if len(p.Insights) > model.MaxInsights {
		errs = append(errs, ValidationError{"insights", fmt.Sprintf("%d insights exceeds limit %d", len(p.Insights), model.MaxInsights)})
	}
	for i, s := range p.Insights {
		if s == "" {
			errs = append(errs, ValidationError{fmt.Sprintf("insights[%d]", i), "empty"})
		}
		if s == model.FallbackInsight && len(p.Insights) > 1 {
			errs = append(errs, ValidationError{fmt.Sprintf("insights[%d]", i), "fallback mixed with rule insights"})
		}
	}

	return errs
}

func onGrid(v, scale float64) bool {
	n := v * scale
	return math.Abs(n-math.Round(n)) < tolerance*scale*10
}

package schema

import (
	"strings"
	"testing"

	"github.com/dshills/winequality/internal/model"
)

func validPrediction() *model.Prediction {
	return &model.Prediction{
		Quality:    5.6,
		Confidence: 0.63,
		Category:   model.CategoryGood,
		Insights:   []string{model.FallbackInsight},
	}
}

func TestValidateValid(t *testing.T) {
	if errs := Validate(validPrediction()); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateEstimatorOutput(t *testing.T) {
	for _, s := range model.ReferenceSet() {
		p := model.Estimate(model.FromVector(s.Vector))
		if errs := Validate(&p); len(errs) != 0 {
			t.Errorf("estimate for %v failed validation: %v", s.Vector, errs)
		}
	}
}

func TestValidateViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Prediction)
		path   string
	}{
		{"quality high", func(p *model.Prediction) { p.Quality = 8.5; p.Category = model.CategoryExcellent }, "quality"},
		{"quality low", func(p *model.Prediction) { p.Quality = 2.0; p.Category = model.CategoryPoor }, "quality"},
		{"quality unrounded", func(p *model.Prediction) { p.Quality = 5.63 }, "quality"},
		{"confidence high", func(p *model.Prediction) { p.Confidence = 0.99 }, "confidence"},
		{"confidence unrounded", func(p *model.Prediction) { p.Confidence = 0.634 }, "confidence"},
		{"category invalid", func(p *model.Prediction) { p.Category = "Superb" }, "category"},
		{"category mismatch", func(p *model.Prediction) { p.Category = model.CategoryAverage }, "category"},
		{"no insights", func(p *model.Prediction) { p.Insights = nil }, "insights"},
		{"too many insights", func(p *model.Prediction) { p.Insights = []string{"a", "b", "c", "d", "e", "f"} }, "insights"},
		{"empty insight", func(p *model.Prediction) { p.Insights = []string{""} }, "insights[0]"},
		{"fallback mixed", func(p *model.Prediction) {
			p.Insights = []string{"Low pH provides good acidity balance", model.FallbackInsight}
		}, "insights[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPrediction()
			tt.mutate(p)
			errs := Validate(p)
			found := false
			for _, e := range errs {
				if e.Path == tt.path {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error at %s, got %v", tt.path, errs)
			}
		})
	}
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{"quality", "bad"}
	if !strings.Contains(e.Error(), "quality: bad") {
		t.Errorf("unexpected error string %q", e.Error())
	}
}

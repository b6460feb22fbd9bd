package report

import (
	"testing"

	"github.com/dshills/winequality/internal/features"
	"github.com/dshills/winequality/internal/model"
)

func TestBuildDefaults(t *testing.T) {
	r := Build(features.Defaults(), Options{Version: "1.0"})

	if r.Tool != Tool || r.Version != "1.0" {
		t.Errorf("metadata = %s/%s", r.Tool, r.Version)
	}
	if r.Prediction.Category != model.CategoryGood {
		t.Errorf("category = %s, want Good", r.Prediction.Category)
	}
	if r.Explanation != nil {
		t.Error("explanation should be omitted unless requested")
	}
	if len(r.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", r.Warnings)
	}
}

func TestBuildExplain(t *testing.T) {
	r := Build(features.Defaults(), Options{Explain: true, Input: Input{Overrides: []string{"pH", "alcohol"}}})
	if r.Explanation == nil {
		t.Fatal("expected explanation")
	}
	if len(r.Explanation.Neighbors) != model.K {
		t.Errorf("expected %d neighbors, got %d", model.K, len(r.Explanation.Neighbors))
	}
	if r.Input.Overrides[0] != "alcohol" {
		t.Errorf("overrides not sorted: %v", r.Input.Overrides)
	}
}

func TestBuildWarnings(t *testing.T) {
	f := features.Defaults()
	f.Density = 1.2
	r := Build(f, Options{})
	if len(r.Warnings) != 1 || r.Warnings[0].Key != "density" {
		t.Errorf("warnings = %v", r.Warnings)
	}
}

func TestBelowThreshold(t *testing.T) {
	r := &Report{Prediction: model.Prediction{Category: model.CategoryAverage}}
	tests := []struct {
		min  model.Category
		want bool
	}{
		{model.CategoryPoor, false},
		{model.CategoryAverage, false},
		{model.CategoryGood, true},
		{model.CategoryExcellent, true},
	}
	for _, tt := range tests {
		if got := BelowThreshold(r, tt.min); got != tt.want {
			t.Errorf("BelowThreshold(Average, %s) = %v, want %v", tt.min, got, tt.want)
		}
	}
}

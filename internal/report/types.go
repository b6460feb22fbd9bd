// Package report defines the top-level output object produced by the CLI.
package report

import (
	"github.com/dshills/winequality/internal/features"
	"github.com/dshills/winequality/internal/model"
)

// Report is the top-level output object.
type Report struct {
	Tool        string                  `json:"tool"`
	Version     string                  `json:"version"`
	Input       Input                   `json:"input"`
	Features    model.Features          `json:"features"`
	Prediction  model.Prediction        `json:"prediction"`
	Explanation *Explanation            `json:"explanation,omitempty"`
	Warnings    []features.RangeWarning `json:"warnings,omitempty"`
}

// Input describes where the feature values came from.
type Input struct {
	SampleFile string   `json:"sample_file,omitempty"`
	SampleHash string   `json:"sample_hash,omitempty"`
	Overrides  []string `json:"overrides,omitempty"`
	Defaulted  []string `json:"defaulted,omitempty"`
}

// Explanation exposes the intermediate estimator values.
type Explanation struct {
	LinearScore float64          `json:"linear_score"`
	KNNAverage  float64          `json:"knn_average"`
	KNNVariance float64          `json:"knn_variance"`
	Neighbors   []model.Neighbor `json:"neighbors"`
}

package report

import (
	"sort"

	"github.com/dshills/winequality/internal/features"
	"github.com/dshills/winequality/internal/model"
)

const Tool = "winequality"

// Options controls what Build includes.
type Options struct {
	Version string
	Input   Input
	Explain bool
}

// Build runs the estimator on f and assembles a report.
func Build(f model.Features, opts Options) *Report {
	e := model.Explain(f)

	r := &Report{
		Tool:       Tool,
		Version:    opts.Version,
		Input:      opts.Input,
		Features:   f,
		Prediction: e.Prediction,
		Warnings:   features.Check(f),
	}
	sort.Strings(r.Input.Overrides)

	if opts.Explain {
		r.Explanation = &Explanation{
			LinearScore: e.LinearScore,
			KNNAverage:  e.KNNAverage,
			KNNVariance: e.KNNVariance,
			Neighbors:   e.Neighbors,
		}
	}
	return r
}

// BelowThreshold reports whether the predicted category ranks below threshold.
func BelowThreshold(r *Report, threshold model.Category) bool {
	return r.Prediction.Category.Rank() < threshold.Rank()
}

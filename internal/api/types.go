package api

import (
	"github.com/dshills/winequality/internal/features"
	"github.com/dshills/winequality/internal/model"
)

// PredictResponse is the body of every /api/predict response.
type PredictResponse struct {
	Success    bool                    `json:"success"`
	Prediction *model.Prediction       `json:"prediction,omitempty"`
	Input      *model.Features         `json:"input,omitempty"`
	Warnings   []features.RangeWarning `json:"warnings,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// FeaturesResponse lists the feature catalog.
type FeaturesResponse struct {
	Features []features.Spec `json:"features"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

const (
	errPredictFailed = "Failed to process prediction"
	errRateLimited   = "rate limit exceeded"
	errInternal      = "internal server error"
)

func failure(msg string) PredictResponse {
	return PredictResponse{Success: false, Error: msg}
}

package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dshills/winequality/internal/features"
	"github.com/dshills/winequality/internal/model"
)

// handlePredict resolves the request fields, runs the estimator and
// returns the prediction together with the resolved input.
func (s *Server) handlePredict(c *gin.Context) {
	raw, err := decodeBody(http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Server.MaxBodyBytes))
	if err != nil {
		s.logger.Warn("rejecting predict request",
			zap.String("request_id", GetRequestID(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, failure(errPredictFailed))
		return
	}

	input, defaulted := features.Resolve(raw)
	prediction := model.Estimate(input)
	warnings := features.Check(input)

	s.metrics.observePrediction(prediction, len(defaulted), len(warnings))
	s.logger.Debug("prediction served",
		zap.String("request_id", GetRequestID(c)),
		zap.Float64("quality", prediction.Quality),
		zap.Float64("confidence", prediction.Confidence),
		zap.String("category", string(prediction.Category)),
		zap.Strings("defaulted", defaulted),
	)

	c.JSON(http.StatusOK, PredictResponse{
		Success:    true,
		Prediction: &prediction,
		Input:      &input,
		Warnings:   warnings,
	})
}

func (s *Server) handleFeatures(c *gin.Context) {
	c.JSON(http.StatusOK, FeaturesResponse{Features: features.Catalog()})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: s.version})
}

// decodeBody parses a single JSON object. Numbers are kept as json.Number so
// the catalog decides how to read them.
func decodeBody(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if raw == nil {
		return nil, errors.New("decode body: expected a JSON object")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode body: trailing data after object")
	}
	return raw, nil
}

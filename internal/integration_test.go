package internal

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/winequality/internal/api"
	"github.com/dshills/winequality/internal/config"
	"github.com/dshills/winequality/internal/features"
	"github.com/dshills/winequality/internal/model"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Mode = gin.TestMode
	cfg.RateLimit.RPS = 0
	srv := httptest.NewServer(api.New(api.Options{Config: cfg, Version: "integration"}).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postPredict(t *testing.T, url string, body []byte) api.PredictResponse {
	t.Helper()
	resp, err := http.Post(url+"/api/predict", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out api.PredictResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.True(t, out.Success)
	return out
}

// TestIntegrationGoldenOverHTTP posts every sample file to a live server and
// compares the response with the golden prediction.
func TestIntegrationGoldenOverHTTP(t *testing.T) {
	srv := newAPIServer(t)

	for _, name := range sampleNames(t) {
		t.Run(name, func(t *testing.T) {
			body, err := os.ReadFile(filepath.Join(projectRoot(), "testdata", "samples", name+".json"))
			require.NoError(t, err)
			want := loadGolden(t, name)

			got := postPredict(t, srv.URL, body)
			require.NotNil(t, got.Prediction)
			require.NotNil(t, got.Input)
			assert.Equal(t, want.Prediction, *got.Prediction)
			assert.Equal(t, want.Input, *got.Input)
		})
	}
}

// TestIntegrationReferenceSet checks that the HTTP path and the direct
// estimator agree on every reference record.
func TestIntegrationReferenceSet(t *testing.T) {
	srv := newAPIServer(t)

	for i, s := range model.ReferenceSet() {
		f := model.FromVector(s.Vector)
		body, err := json.Marshal(f)
		require.NoError(t, err)

		got := postPredict(t, srv.URL, body)
		want := model.Estimate(f)
		if !reflect.DeepEqual(*got.Prediction, want) {
			t.Errorf("record %d: HTTP %+v, direct %+v", i, *got.Prediction, want)
		}
	}
}

func TestIntegrationFeaturesMatchDefaults(t *testing.T) {
	srv := newAPIServer(t)

	resp, err := http.Get(srv.URL + "/api/features")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out api.FeaturesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	got := postPredict(t, srv.URL, []byte(`{}`))
	v := got.Input.Vector()
	for i, s := range out.Features {
		assert.Equal(t, s.Default, v[i], s.Key)
	}
	assert.Equal(t, features.Defaults(), *got.Input)
}

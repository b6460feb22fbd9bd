package features

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dshills/winequality/internal/model"
)

// Resolve builds a feature vector from decoded request fields. Numbers are
// used as given, numeric strings are parsed, and anything absent,
// unparseable or non-finite falls back to the documented default. The keys
// that were defaulted are returned in vector order.
func Resolve(raw map[string]any) (model.Features, []string) {
	var v [model.NumFeatures]float64
	var defaulted []string
	for i, s := range Catalog() {
		x, ok := toFloat(raw[s.Key])
		if !ok {
			x = s.Default
			defaulted = append(defaulted, s.Key)
		}
		v[i] = x
	}
	return model.FromVector(v), defaulted
}

// Override replaces fields of base with the given values, keyed by JSON key.
// Unknown keys and non-finite values are reported as an error.
func Override(base model.Features, values map[string]float64) (model.Features, error) {
	v := base.Vector()
	for key, x := range values {
		idx := indexOf(key)
		if idx < 0 {
			return base, fmt.Errorf("features.Override: unknown feature %q", key)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return base, fmt.Errorf("features.Override: %s: value %v is not finite", key, x)
		}
		v[idx] = x
	}
	return model.FromVector(v), nil
}

func indexOf(key string) int {
	for i, k := range Keys {
		if k == key {
			return i
		}
	}
	return -1
}

func toFloat(v any) (float64, bool) {
	var x float64
	switch t := v.(type) {
	case float64:
		x = t
	case float32:
		x = float64(t)
	case int:
		x = float64(t)
	case int64:
		x = float64(t)
	case uint64:
		x = float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		x = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		x = f
	default:
		return 0, false
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}

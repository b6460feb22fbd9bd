package features

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/dshills/winequality/internal/model"
)

func TestCatalog(t *testing.T) {
	specs := Catalog()
	if len(specs) != model.NumFeatures {
		t.Fatalf("expected %d specs, got %d", model.NumFeatures, len(specs))
	}
	for i, s := range specs {
		if s.Key != Keys[i] {
			t.Errorf("position %d: got %q, want %q", i, s.Key, Keys[i])
		}
		if s.Name == "" || s.Description == "" {
			t.Errorf("%s: missing name or description", s.Key)
		}
		if s.Default < s.Min || s.Default > s.Max {
			t.Errorf("%s: default %v outside [%v, %v]", s.Key, s.Default, s.Min, s.Max)
		}
	}
}

func TestDefaults(t *testing.T) {
	want := model.Features{
		FixedAcidity: 8.0, VolatileAcidity: 0.5, CitricAcid: 0.25, ResidualSugar: 2.5,
		Chlorides: 0.08, FreeSulfurDioxide: 15.0, TotalSulfurDioxide: 45.0,
		Density: 0.997, PH: 3.3, Sulphates: 0.65, Alcohol: 10.5,
	}
	if got := Defaults(); got != want {
		t.Errorf("Defaults() = %+v, want %+v", got, want)
	}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("pH")
	if !ok {
		t.Fatal("expected pH to be found")
	}
	if s.Min != 2.7 || s.Max != 4.1 {
		t.Errorf("pH range = [%v, %v]", s.Min, s.Max)
	}
	if _, ok := Lookup("tannin"); ok {
		t.Error("expected unknown key to be missing")
	}
}

func TestParseRejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "features: [", "features.Parse"},
		{"too few", "features:\n  - key: fixedAcidity\n", "expected 11 features"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	raw := map[string]any{
		"fixedAcidity":    7.4,
		"volatileAcidity": "0.7",
		"citricAcid":      0.0,
		"residualSugar":   " 1.9 ",
		"chlorides":       "abc",
		"density":         nil,
		"pH":              true,
		"sulphates":       "Inf",
		"alcohol":         json.Number("9.4"),
	}
	f, defaulted := Resolve(raw)

	if f.FixedAcidity != 7.4 || f.VolatileAcidity != 0.7 || f.ResidualSugar != 1.9 || f.Alcohol != 9.4 {
		t.Errorf("parsed values wrong: %+v", f)
	}
	if f.CitricAcid != 0 {
		t.Errorf("explicit zero should be kept, got %v", f.CitricAcid)
	}
	if f.Chlorides != 0.08 || f.Density != 0.997 || f.PH != 3.3 || f.Sulphates != 0.65 {
		t.Errorf("defaults not applied: %+v", f)
	}

	want := []string{"chlorides", "freeSulfurDioxide", "totalSulfurDioxide", "density", "pH", "sulphates"}
	if strings.Join(defaulted, ",") != strings.Join(want, ",") {
		t.Errorf("defaulted = %v, want %v", defaulted, want)
	}
}

func TestResolveMissingAlcohol(t *testing.T) {
	f, _ := Resolve(map[string]any{"fixedAcidity": 9.0})
	if f.Alcohol != 10.5 {
		t.Errorf("missing alcohol resolved to %v, want 10.5", f.Alcohol)
	}
}

func TestResolveEmpty(t *testing.T) {
	f, defaulted := Resolve(nil)
	if f != Defaults() {
		t.Errorf("Resolve(nil) = %+v, want defaults", f)
	}
	if len(defaulted) != model.NumFeatures {
		t.Errorf("expected all %d keys defaulted, got %d", model.NumFeatures, len(defaulted))
	}
}

func TestToFloatRejectsNonFinite(t *testing.T) {
	for _, v := range []any{math.NaN(), math.Inf(1), "NaN", "-Infinity"} {
		if _, ok := toFloat(v); ok {
			t.Errorf("toFloat(%v) should be rejected", v)
		}
	}
}

func TestOverride(t *testing.T) {
	f, err := Override(Defaults(), map[string]float64{"alcohol": 12.5, "pH": 3.0})
	if err != nil {
		t.Fatal(err)
	}
	if f.Alcohol != 12.5 || f.PH != 3.0 || f.Density != 0.997 {
		t.Errorf("Override() = %+v", f)
	}
	if _, err := Override(Defaults(), map[string]float64{"tannin": 1}); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestOverrideRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := Defaults()
			f, err := Override(base, map[string]float64{"alcohol": tt.value})
			if err == nil || !strings.Contains(err.Error(), "not finite") {
				t.Errorf("Override(alcohol=%v) error = %v, want not finite", tt.value, err)
			}
			if f != base {
				t.Errorf("base should be returned unchanged, got %+v", f)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	if w := Check(Defaults()); len(w) != 0 {
		t.Errorf("defaults should be in range, got %v", w)
	}

	f := Defaults()
	f.Density = -1
	f.Alcohol = 20
	w := Check(f)
	if len(w) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(w))
	}
	if w[0].Key != "density" || w[1].Key != "alcohol" {
		t.Errorf("warnings out of order: %v", w)
	}
	if !strings.Contains(w[1].String(), "alcohol=20") {
		t.Errorf("unexpected warning text %q", w[1].String())
	}
}

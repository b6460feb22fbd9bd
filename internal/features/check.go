package features

import (
	"fmt"

	"github.com/dshills/winequality/internal/model"
)

// RangeWarning reports a value outside its declared range.
type RangeWarning struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

func (w RangeWarning) String() string {
	return fmt.Sprintf("%s=%v outside declared range [%v, %v]", w.Key, w.Value, w.Min, w.Max)
}

// Check lists the features of f that fall outside their declared ranges.
// Values are never altered.
func Check(f model.Features) []RangeWarning {
	var out []RangeWarning
	v := f.Vector()
	for i, s := range Catalog() {
		if v[i] < s.Min || v[i] > s.Max {
			out = append(out, RangeWarning{Key: s.Key, Value: v[i], Min: s.Min, Max: s.Max})
		}
	}
	return out
}

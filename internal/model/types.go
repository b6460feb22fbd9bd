// Package model implements the wine quality estimator: a weighted linear score
// blended with a k-nearest-neighbor lookup against a fixed reference set.
package model

// NumFeatures is the length of every feature vector.
const NumFeatures = 11

// Features holds the eleven physicochemical measurements of a wine sample.
type Features struct {
	FixedAcidity       float64 `json:"fixedAcidity" yaml:"fixedAcidity"`
	VolatileAcidity    float64 `json:"volatileAcidity" yaml:"volatileAcidity"`
	CitricAcid         float64 `json:"citricAcid" yaml:"citricAcid"`
	ResidualSugar      float64 `json:"residualSugar" yaml:"residualSugar"`
	Chlorides          float64 `json:"chlorides" yaml:"chlorides"`
	FreeSulfurDioxide  float64 `json:"freeSulfurDioxide" yaml:"freeSulfurDioxide"`
	TotalSulfurDioxide float64 `json:"totalSulfurDioxide" yaml:"totalSulfurDioxide"`
	Density            float64 `json:"density" yaml:"density"`
	PH                 float64 `json:"pH" yaml:"pH"`
	Sulphates          float64 `json:"sulphates" yaml:"sulphates"`
	Alcohol            float64 `json:"alcohol" yaml:"alcohol"`
}

// Vector returns the features in canonical order.
func (f Features) Vector() [NumFeatures]float64 {
	return [NumFeatures]float64{
		f.FixedAcidity,
		f.VolatileAcidity,
		f.CitricAcid,
		f.ResidualSugar,
		f.Chlorides,
		f.FreeSulfurDioxide,
		f.TotalSulfurDioxide,
		f.Density,
		f.PH,
		f.Sulphates,
		f.Alcohol,
	}
}

// FromVector builds Features from a vector in canonical order.
func FromVector(v [NumFeatures]float64) Features {
	return Features{
		FixedAcidity:       v[0],
		VolatileAcidity:    v[1],
		CitricAcid:         v[2],
		ResidualSugar:      v[3],
		Chlorides:          v[4],
		FreeSulfurDioxide:  v[5],
		TotalSulfurDioxide: v[6],
		Density:            v[7],
		PH:                 v[8],
		Sulphates:          v[9],
		Alcohol:            v[10],
	}
}

// Prediction is the estimator output.
type Prediction struct {
	Quality    float64  `json:"quality"`
	Confidence float64  `json:"confidence"`
	Category   Category `json:"category"`
	Insights   []string `json:"insights"`
}

// Neighbor is one reference record selected by the k-NN lookup.
type Neighbor struct {
	Index    int     `json:"index"`
	Distance float64 `json:"distance"`
	Quality  int     `json:"quality"`
}

// Explanation carries a prediction together with the intermediate values
// that produced it.
type Explanation struct {
	Prediction  Prediction `json:"prediction"`
	LinearScore float64    `json:"linear_score"`
	KNNAverage  float64    `json:"knn_average"`
	KNNVariance float64    `json:"knn_variance"`
	Neighbors   []Neighbor `json:"neighbors"`
}

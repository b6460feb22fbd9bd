package model

import "math"

const (
	// K is the number of neighbors averaged by the k-NN lookup.
	K = 5

	baseline      = 5.5
	damping       = 0.8
	linearShare   = 0.6
	knnShare      = 0.4
	minQuality    = 3.0
	maxQuality    = 8.0
	baseConf      = 0.85
	varianceScale = 0.1
	minConfidence = 0.5
	maxConfidence = 0.95
)

// Estimate computes the quality prediction for f. It never fails; inputs are
// not range checked.
func Estimate(f Features) Prediction {
	return Explain(f).Prediction
}

// Explain computes the prediction for f and returns the intermediate values.
func Explain(f Features) Explanation {
	x := f.Vector()
	z := normalize(x)

	score := linearScore(z)
	neighbors := nearest(z, K)

	var sum float64
	for _, n := range neighbors {
		sum += float64(n.Quality)
	}
	avg := sum / float64(len(neighbors))

	var variance float64
	for _, n := range neighbors {
		d := float64(n.Quality) - avg
		variance += d * d
	}
	variance /= float64(len(neighbors))

	quality := roundTo(clamp(score*linearShare+avg*knnShare, minQuality, maxQuality), 10)
	confidence := roundTo(clamp(baseConf-variance*varianceScale, minConfidence, maxConfidence), 100)

	return Explanation{
		Prediction: Prediction{
			Quality:    quality,
			Confidence: confidence,
			Category:   CategoryFor(quality),
			Insights:   Insights(f),
		},
		LinearScore: score,
		KNNAverage:  avg,
		KNNVariance: variance,
		Neighbors:   neighbors,
	}
}

func normalize(x [NumFeatures]float64) [NumFeatures]float64 {
	var z [NumFeatures]float64
	for i := range x {
		z[i] = (x[i] - featureMeans[i]) / featureStds[i]
	}
	return z
}

func linearScore(z [NumFeatures]float64) float64 {
	score := baseline
	for i := range z {
		score += z[i] * featureWeights[i] * damping
	}
	return score
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// roundTo rounds half-up to 1/scale.
func roundTo(v, scale float64) float64 {
	return math.Floor(v*scale+0.5) / scale
}

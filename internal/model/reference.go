package model

// Sample is a labelled reference record.
type Sample struct {
	Vector  [NumFeatures]float64
	Quality int
}

// referenceSet is the k-NN lookup table. Read-only.
var referenceSet = [...]Sample{
	{[NumFeatures]float64{7.4, 0.7, 0.0, 1.9, 0.076, 11.0, 34.0, 0.9978, 3.51, 0.56, 9.4}, 5},
	{[NumFeatures]float64{7.8, 0.88, 0.0, 2.6, 0.098, 25.0, 67.0, 0.9968, 3.2, 0.68, 9.8}, 5},
	{[NumFeatures]float64{11.2, 0.28, 0.56, 1.9, 0.075, 17.0, 60.0, 0.998, 3.16, 0.58, 9.8}, 6},
	{[NumFeatures]float64{7.3, 0.65, 0.0, 1.2, 0.065, 15.0, 21.0, 0.9946, 3.39, 0.47, 10.0}, 7},
	{[NumFeatures]float64{7.8, 0.58, 0.02, 2.0, 0.073, 9.0, 18.0, 0.9968, 3.36, 0.57, 9.5}, 7},
	{[NumFeatures]float64{8.5, 0.28, 0.56, 1.8, 0.092, 35.0, 103.0, 0.9969, 3.3, 0.75, 10.5}, 7},
	{[NumFeatures]float64{8.1, 0.38, 0.28, 2.1, 0.066, 13.0, 30.0, 0.9968, 3.23, 0.73, 9.7}, 7},
	{[NumFeatures]float64{7.5, 0.52, 0.16, 1.9, 0.085, 12.0, 35.0, 0.9968, 3.38, 0.62, 9.5}, 7},
	{[NumFeatures]float64{4.7, 0.6, 0.17, 2.3, 0.058, 17.0, 106.0, 0.9932, 3.85, 0.6, 12.9}, 6},
	{[NumFeatures]float64{6.3, 0.3, 0.48, 1.8, 0.069, 18.0, 61.0, 0.9959, 3.44, 0.78, 10.3}, 6},
	{[NumFeatures]float64{8.9, 0.22, 0.48, 1.8, 0.077, 29.0, 60.0, 0.9968, 3.39, 0.53, 9.4}, 6},
	{[NumFeatures]float64{7.9, 0.32, 0.51, 1.8, 0.341, 17.0, 56.0, 0.9969, 3.04, 1.08, 9.2}, 6},
	{[NumFeatures]float64{5.7, 1.13, 0.09, 1.5, 0.172, 7.0, 19.0, 0.994, 3.5, 0.48, 9.8}, 4},
	{[NumFeatures]float64{7.4, 0.59, 0.08, 4.4, 0.086, 6.0, 29.0, 0.9974, 3.38, 0.5, 9.0}, 4},
	{[NumFeatures]float64{8.3, 0.675, 0.26, 2.1, 0.084, 11.0, 43.0, 0.9976, 3.31, 0.53, 9.2}, 4},
	{[NumFeatures]float64{4.6, 0.52, 0.15, 2.1, 0.054, 8.0, 65.0, 0.9934, 3.9, 0.56, 13.1}, 4},
	{[NumFeatures]float64{5.0, 1.02, 0.04, 1.4, 0.045, 41.0, 85.0, 0.9938, 3.75, 0.48, 10.5}, 4},
	{[NumFeatures]float64{8.8, 0.61, 0.3, 2.8, 0.088, 17.0, 46.0, 0.9976, 3.26, 0.51, 9.3}, 4},
}

var (
	featureMeans = [NumFeatures]float64{8.32, 0.53, 0.27, 2.54, 0.087, 15.87, 46.47, 0.9967, 3.31, 0.66, 10.42}
	featureStds  = [NumFeatures]float64{1.74, 0.18, 0.19, 1.41, 0.047, 10.46, 32.89, 0.0019, 0.15, 0.17, 1.07}

	// Signed: volatile acidity, chlorides, total SO2 and density pull quality down.
	featureWeights = [NumFeatures]float64{0.08, -0.18, 0.06, 0.02, -0.12, 0.04, -0.08, -0.10, 0.03, 0.15, 0.25}
)

// normalizedReference holds every reference vector z-scored with the global
// mean/std. Computed once at package load.
var normalizedReference = func() [len(referenceSet)][NumFeatures]float64 {
	var out [len(referenceSet)][NumFeatures]float64
	for i, s := range referenceSet {
		out[i] = normalize(s.Vector)
	}
	return out
}()

// ReferenceSet returns a copy of the reference records.
func ReferenceSet() []Sample {
	out := make([]Sample, len(referenceSet))
	copy(out, referenceSet[:])
	return out
}

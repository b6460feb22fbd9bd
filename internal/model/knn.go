package model

import (
	"math"
	"sort"
)

// nearest returns the k reference records closest to the normalized query,
// ordered by ascending distance. Equal distances keep reference order.
func nearest(z [NumFeatures]float64, k int) []Neighbor {
	all := make([]Neighbor, len(normalizedReference))
	for i, ref := range normalizedReference {
		all[i] = Neighbor{
			Index:    i,
			Distance: euclidean(z, ref),
			Quality:  referenceSet[i].Quality,
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Distance < all[j].Distance
	})

	if k > len(all) {
		k = len(all)
	}
	return all[:k]
}

func euclidean(a, b [NumFeatures]float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

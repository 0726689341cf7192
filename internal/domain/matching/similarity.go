package matching

// Similarity is the Jaccard index of the two skill collections, compared as
// exact strings. Duplicates inside a collection count once. Two empty
// collections score 0.
func Similarity(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)

	union := len(setA)
	inter := 0
	for s := range setB {
		if _, ok := setA[s]; ok {
			inter++
			continue
		}
		union++
	}
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func toSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		out[it] = struct{}{}
	}
	return out
}

package search

import (
	"math"

	"golang.org/x/text/cases"
)

// Ratio scores the similarity of two strings on a 0..100 scale, ignoring
// case: 100 * (2*M / T), where M is the length of the longest common
// subsequence and T the combined length of both strings. The ratio is taken
// before scaling, so 46/80 lands just under 57.5. Halves round to even.
func Ratio(a, b string) int {
	fold := cases.Fold()
	ra := []rune(fold.String(a))
	rb := []rune(fold.String(b))

	if string(ra) == string(rb) {
		return 100
	}
	total := len(ra) + len(rb)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	m := lcsLength(ra, rb)
	return int(math.RoundToEven(100 * (float64(2*m) / float64(total))))
}

func lcsLength(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}

	// Single-row DP over the shorter string.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

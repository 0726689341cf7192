package search

import (
	"strings"
	"testing"
)

func TestRatio(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"pytho", "Python", 91},
		{"Python", "PYTHON", 100},
		{"", "", 100},
		{"", "abc", 0},
		{"abc", "", 0},
		{"ab", "ac", 50},
		{"abc", "abd", 67},
		{"react", "Reactor", 83},
		{"java", "lava", 75},
		{"java", "JavaScript", 57},
		// 12.5 rounds half to even
		{"a", "abbbbbbbbbbbbbb", 12},
		{"über", "ÜBER", 100},
		// 46/80 is 0.57499... in binary, so it scales to just under 57.5
		{strings.Repeat("a", 23) + strings.Repeat("b", 17), strings.Repeat("a", 23) + strings.Repeat("c", 17), 57},
	}

	for _, tc := range cases {
		if got := Ratio(tc.a, tc.b); got != tc.want {
			t.Fatalf("Ratio(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
		if got := Ratio(tc.b, tc.a); got != tc.want {
			t.Fatalf("Ratio(%q, %q) = %d, want %d (reversed)", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestRatio_IdentityIsPerfect(t *testing.T) {
	for _, s := range []string{"Go", "Machine Learning", "UI/UX", "C++", "Node.js"} {
		if got := Ratio(s, s); got != 100 {
			t.Fatalf("Ratio(%q, %q) = %d, want 100", s, s, got)
		}
	}
}

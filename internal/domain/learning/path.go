package learning

import (
	"fmt"

	"skill-swap/internal/domain/user"
)

const (
	MaxRecommendations = 5
	maxMarketGaps      = 3

	ReasonMarketDemand = "High market demand"
)

type Recommendation struct {
	Skill        string
	Prerequisite string
	Difficulty   Difficulty
	Reason       string
}

// SkillGaps returns the market skills the user lacks, in market order.
// A nil market list selects DefaultMarketSkills.
func SkillGaps(userSkills, marketSkills []string) []string {
	if marketSkills == nil {
		marketSkills = marketDemand
	}

	have := toSet(userSkills)
	out := make([]string, 0, len(marketSkills))
	seen := make(map[string]struct{}, len(marketSkills))
	for _, s := range marketSkills {
		if _, ok := have[s]; ok {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// RecommendPath lists what to learn next: progressions from the user's skills
// come first, then up to three in-demand gaps, at most MaxRecommendations in
// total.
func RecommendPath(userSkills []string) ([]Recommendation, error) {
	if err := user.ValidateSkills("skills", userSkills); err != nil {
		return nil, err
	}

	have := toSet(userSkills)
	out := make([]Recommendation, 0, MaxRecommendations)

	for _, skill := range userSkills {
		for _, next := range progression[skill] {
			if _, ok := have[next]; ok {
				continue
			}
			out = append(out, Recommendation{
				Skill:        next,
				Prerequisite: skill,
				Difficulty:   DifficultyIntermediate,
				Reason:       fmt.Sprintf("Natural progression from %s", skill),
			})
		}
	}

	gaps := SkillGaps(userSkills, nil)
	if len(gaps) > maxMarketGaps {
		gaps = gaps[:maxMarketGaps]
	}
	for _, g := range gaps {
		out = append(out, Recommendation{
			Skill:      g,
			Difficulty: DifficultyBeginner,
			Reason:     ReasonMarketDemand,
		})
	}

	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out, nil
}

// SwapSuccessProbability estimates how much a swap benefits both sides: the
// wanted skills each side would receive, over twice the wanted skills of the
// pair combined.
func SwapSuccessProbability(a, b user.Profile) float64 {
	aOffered := toSet(a.SkillsOffered)
	aWanted := toSet(a.SkillsWanted)
	bOffered := toSet(b.SkillsOffered)
	bWanted := toSet(b.SkillsWanted)

	aGets := intersectionSize(aWanted, bOffered)
	bGets := intersectionSize(bWanted, aOffered)

	total := len(aWanted)
	for s := range bWanted {
		if _, ok := aWanted[s]; !ok {
			total++
		}
	}
	if total == 0 {
		return 0
	}

	score := float64(aGets+bGets) / float64(2*total)
	if score > 1 {
		return 1
	}
	return score
}

func toSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		out[it] = struct{}{}
	}
	return out
}

func intersectionSize(a, b map[string]struct{}) int {
	n := 0
	for s := range a {
		if _, ok := b[s]; ok {
			n++
		}
	}
	return n
}

package matching

import (
	"sort"

	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
)

const (
	DefaultTopN         = 10
	LocationUnspecified = "Not specified"
)

type RecommendationEntry struct {
	UserID          uuid.UUID
	Name            string
	SimilarityScore float64
	Skills          []string
	Location        string
}

type SkillDemand struct {
	Skill string
	Count int
}

// Recommend ranks every other user by how well the target's offered skills
// cover that user's wanted skills. An unknown target yields an empty result.
func Recommend(targetID uuid.UUID, users []user.Profile, topN int) ([]RecommendationEntry, error) {
	if topN < 0 {
		return nil, user.NewInvalidInputError("top_n", "must not be negative")
	}
	if err := user.ValidateProfiles(users); err != nil {
		return nil, err
	}

	target, ok := findProfile(targetID, users)
	if !ok {
		return []RecommendationEntry{}, nil
	}

	out := make([]RecommendationEntry, 0, len(users))
	for _, u := range users {
		if u.ID == targetID {
			continue
		}

		loc := u.Location
		if loc == "" {
			loc = LocationUnspecified
		}

		skills := make([]string, len(u.SkillsOffered))
		copy(skills, u.SkillsOffered)

		out = append(out, RecommendationEntry{
			UserID:          u.ID,
			Name:            u.Name,
			SimilarityScore: Similarity(target.SkillsOffered, u.SkillsWanted),
			Skills:          skills,
			Location:        loc,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SimilarityScore > out[j].SimilarityScore
	})

	if len(out) > topN {
		out = out[:topN]
	}
	return out, nil
}

// Demand counts how many users want each skill, most wanted first. Ties keep
// the order in which skills were first seen.
func Demand(users []user.Profile) ([]SkillDemand, error) {
	if err := user.ValidateProfiles(users); err != nil {
		return nil, err
	}

	idx := make(map[string]int)
	out := make([]SkillDemand, 0)
	for _, u := range users {
		for _, s := range u.SkillsWanted {
			if i, ok := idx[s]; ok {
				out[i].Count++
				continue
			}
			idx[s] = len(out)
			out = append(out, SkillDemand{Skill: s, Count: 1})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out, nil
}

func findProfile(id uuid.UUID, users []user.Profile) (user.Profile, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return user.Profile{}, false
}

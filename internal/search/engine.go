package search

import (
	"sort"
	"strings"

	"skill-swap/internal/domain/user"

	"golang.org/x/text/cases"
)

const (
	DefaultThreshold        = 70
	DefaultSuggestThreshold = 60
	DefaultSuggestLimit     = 5
)

type MatchType string

const (
	MatchTypeExactPrefix MatchType = "exact_prefix"
	MatchTypeFuzzy       MatchType = "fuzzy"
)

type Match struct {
	Skill      string
	Confidence int
	Category   Category
}

type Suggestion struct {
	Skill     string
	MatchType MatchType
	Category  Category
}

type UserMatch struct {
	User         user.Profile
	MatchedSkill string
	Confidence   int
}

// FuzzySearch returns catalog entries whose ratio against query is strictly
// above threshold, best first. Equal confidences keep catalog order.
func FuzzySearch(query string, catalog []string, threshold int) ([]Match, error) {
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}

	out := make([]Match, 0)
	for _, skill := range catalog {
		r := Ratio(query, skill)
		if r <= threshold {
			continue
		}
		out = append(out, Match{Skill: skill, Confidence: r, Category: Categorize(skill)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out, nil
}

// Suggest autocompletes query: case-insensitive prefix matches in catalog
// order first, then fuzzy matches above DefaultSuggestThreshold, capped at
// limit.
func Suggest(query string, catalog []string, limit int) ([]Suggestion, error) {
	if limit < 0 {
		return nil, user.NewInvalidInputError("limit", "must not be negative")
	}

	fold := cases.Fold()
	prefix := fold.String(query)

	out := make([]Suggestion, 0, limit)
	seen := make(map[string]struct{})
	for _, skill := range catalog {
		if !strings.HasPrefix(fold.String(skill), prefix) {
			continue
		}
		out = append(out, Suggestion{Skill: skill, MatchType: MatchTypeExactPrefix, Category: Categorize(skill)})
		seen[skill] = struct{}{}
	}

	if len(out) < limit {
		matches, err := FuzzySearch(query, catalog, DefaultSuggestThreshold)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if _, ok := seen[m.Skill]; ok {
				continue
			}
			out = append(out, Suggestion{Skill: m.Skill, MatchType: MatchTypeFuzzy, Category: m.Category})
			seen[m.Skill] = struct{}{}
		}
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// UsersBySkill finds users holding a skill close to query. Each user's offered
// then wanted skills are scanned in order and the first one above threshold is
// reported, even when a later skill would score higher.
func UsersBySkill(query string, users []user.Profile, threshold int) ([]UserMatch, error) {
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}
	if err := user.ValidateProfiles(users); err != nil {
		return nil, err
	}

	out := make([]UserMatch, 0)
	for _, u := range users {
		for _, skill := range u.Skills() {
			r := Ratio(query, skill)
			if r > threshold {
				out = append(out, UserMatch{User: u, MatchedSkill: skill, Confidence: r})
				break
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Confidence > out[j].Confidence
	})
	return out, nil
}

func validateThreshold(threshold int) error {
	if threshold < 0 || threshold > 100 {
		return user.NewInvalidInputError("threshold", "must be within 0..100")
	}
	return nil
}

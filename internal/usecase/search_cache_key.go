package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"golang.org/x/text/cases"
)

const (
	CatalogCacheKey    = "skills:catalog"
	SearchCachePattern = "search:*"
)

type searchCacheKeyInput struct {
	Query     string `json:"query"`
	Threshold int    `json:"threshold,omitempty"`
	Limit     int    `json:"limit,omitempty"`
}

// normalizeSearchValue folds case only; inner whitespace takes part in the
// fuzzy ratio and is kept.
func normalizeSearchValue(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func hashSearchKey(in searchCacheKeyInput) string {
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func SuggestCacheKey(query string, limit int) string {
	return "search:suggest:" + hashSearchKey(searchCacheKeyInput{Query: normalizeSearchValue(query), Limit: limit})
}

func FuzzySearchCacheKey(query string, threshold int) string {
	return "search:fuzzy:" + hashSearchKey(searchCacheKeyInput{Query: normalizeSearchValue(query), Threshold: threshold})
}

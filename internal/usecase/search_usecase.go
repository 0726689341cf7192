package usecase

import (
	"context"
	"strings"

	"skill-swap/internal/config"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/search"
)

type CatalogSource interface {
	CatalogNames(ctx context.Context) ([]string, error)
}

type SearchUsecase interface {
	SearchSkills(ctx context.Context, query string, threshold *int) ([]search.Match, error)
	Suggest(ctx context.Context, query string, limit *int) ([]search.Suggestion, error)
	UsersBySkill(ctx context.Context, query string) ([]search.UserMatch, error)
}

type Search struct {
	catalog  CatalogSource
	profiles user.ProfileRepository
	cache    SearchCache
	cfg      config.MatchingConfig
}

func NewSearchUsecase(catalog CatalogSource, profiles user.ProfileRepository, cache SearchCache, cfg config.MatchingConfig) *Search {
	return &Search{catalog: catalog, profiles: profiles, cache: cache, cfg: cfg}
}

// SearchSkills fuzzy-matches query against the catalog. A nil threshold
// selects the configured default.
func (u *Search) SearchSkills(ctx context.Context, query string, threshold *int) ([]search.Match, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidInput
	}
	th := u.searchThreshold(threshold)

	key := FuzzySearchCacheKey(query, th)
	var cached []search.Match
	if cacheGet(ctx, u.cache, key, &cached) {
		return cached, nil
	}

	names, err := u.catalog.CatalogNames(ctx)
	if err != nil {
		return nil, err
	}
	out, err := search.FuzzySearch(query, names, th)
	if err != nil {
		return nil, mapCoreError(err)
	}
	cacheSet(ctx, u.cache, key, out)
	return out, nil
}

// Suggest autocompletes query. An empty query lists the head of the catalog.
func (u *Search) Suggest(ctx context.Context, query string, limit *int) ([]search.Suggestion, error) {
	query = strings.TrimSpace(query)
	n := u.cfg.SuggestLimit
	if limit != nil {
		n = *limit
	}
	if n < 0 {
		return nil, ErrInvalidInput
	}

	key := SuggestCacheKey(query, n)
	var cached []search.Suggestion
	if cacheGet(ctx, u.cache, key, &cached) {
		return cached, nil
	}

	names, err := u.catalog.CatalogNames(ctx)
	if err != nil {
		return nil, err
	}
	out, err := search.Suggest(query, names, n)
	if err != nil {
		return nil, mapCoreError(err)
	}
	cacheSet(ctx, u.cache, key, out)
	return out, nil
}

func (u *Search) UsersBySkill(ctx context.Context, query string) ([]search.UserMatch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidInput
	}

	profiles, err := u.profiles.ListProfiles(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out, err := search.UsersBySkill(query, profiles, u.cfg.UserSearchCutoff)
	if err != nil {
		return nil, mapCoreError(err)
	}
	return out, nil
}

func (u *Search) searchThreshold(threshold *int) int {
	if threshold != nil {
		return *threshold
	}
	return u.cfg.SearchThreshold
}

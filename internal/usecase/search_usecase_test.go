package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-swap/internal/config"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/search"

	"github.com/google/uuid"
)

type staticCatalog struct {
	names []string
	calls int
}

func (c *staticCatalog) CatalogNames(context.Context) ([]string, error) {
	c.calls++
	return c.names, nil
}

func testMatchingConfig() config.MatchingConfig {
	return config.MatchingConfig{DefaultTopN: 10, SearchThreshold: 70, SuggestLimit: 5, UserSearchCutoff: 70}
}

func TestSearchSkillsUsesCache(t *testing.T) {
	catalog := &staticCatalog{names: []string{"Python", "JavaScript", "Pytorch"}}
	uc := NewSearchUsecase(catalog, &fakeProfiles{}, newFakeCache(), testMatchingConfig())
	ctx := context.Background()

	first, err := uc.SearchSkills(ctx, "pythn", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first) == 0 || first[0].Skill != "Python" {
		t.Fatalf("expected Python first, got %+v", first)
	}
	second, err := uc.SearchSkills(ctx, "PYTHN", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("expected cached result, got %+v", second)
	}
	if catalog.calls != 1 {
		t.Fatalf("expected catalog to be read once, got %d", catalog.calls)
	}
}

func TestSearchSkillsRejectsBadInput(t *testing.T) {
	uc := NewSearchUsecase(&staticCatalog{}, &fakeProfiles{}, nil, testMatchingConfig())
	ctx := context.Background()

	if _, err := uc.SearchSkills(ctx, "  ", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	bad := 101
	_, err := uc.SearchSkills(ctx, "go", &bad)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var inputErr *user.InvalidInputError
	if !errors.As(err, &inputErr) || inputErr.Field != "threshold" {
		t.Fatalf("expected threshold field error, got %v", err)
	}
}

func TestSuggestDefaultsAndLimit(t *testing.T) {
	catalog := &staticCatalog{names: []string{"Python", "PHP", "Go", "Pandas"}}
	uc := NewSearchUsecase(catalog, &fakeProfiles{}, nil, testMatchingConfig())
	ctx := context.Background()

	got, err := uc.Suggest(ctx, "p", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"Python", "PHP", "Pandas"}
	if len(got) != len(want) {
		t.Fatalf("unexpected suggestions: %+v", got)
	}
	for i, w := range want {
		if got[i].Skill != w || got[i].MatchType != search.MatchTypeExactPrefix {
			t.Fatalf("idx=%d expected %s exact_prefix, got %+v", i, w, got[i])
		}
	}

	one := 1
	got, err = uc.Suggest(ctx, "", &one)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Skill != "Python" {
		t.Fatalf("unexpected suggestions: %+v", got)
	}

	neg := -1
	if _, err := uc.Suggest(ctx, "p", &neg); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUsersBySkill(t *testing.T) {
	a := user.Profile{ID: uuid.New(), Name: "Ana", SkillsOffered: []string{"Python"}}
	b := user.Profile{ID: uuid.New(), Name: "Ben", SkillsWanted: []string{"Go"}}
	uc := NewSearchUsecase(&staticCatalog{}, &fakeProfiles{profiles: []user.Profile{a, b}}, nil, testMatchingConfig())

	got, err := uc.UsersBySkill(context.Background(), "python")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].User.ID != a.ID || got[0].Confidence != 100 {
		t.Fatalf("unexpected matches: %+v", got)
	}
}

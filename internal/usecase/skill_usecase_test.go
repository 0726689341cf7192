package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"skill-swap/internal/domain/skill"

	"github.com/google/uuid"
)

func TestSkillUsecaseCachesCatalog(t *testing.T) {
	repo := &fakeSkillRepo{skills: []skill.Skill{{ID: uuid.New(), Name: "Go"}, {ID: uuid.New(), Name: "Python"}}}
	cache := newFakeCache()
	uc := NewSkillUsecase(repo, cache, log.New(io.Discard, "", 0))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		names, err := uc.CatalogNames(ctx)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(names) != 2 || names[0] != "Go" || names[1] != "Python" {
			t.Fatalf("unexpected names: %v", names)
		}
	}
	if repo.calls != 1 {
		t.Fatalf("expected repo to be hit once, got %d", repo.calls)
	}

	cache.data[SuggestCacheKey("py", 5)] = []byte(`[]`)
	if _, err := uc.AddSkill(ctx, "  Rust "); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := cache.data[CatalogCacheKey]; ok {
		t.Fatalf("expected catalog cache to be invalidated")
	}
	if _, ok := cache.data[SuggestCacheKey("py", 5)]; ok {
		t.Fatalf("expected suggest cache to be invalidated")
	}

	names, err := uc.CatalogNames(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(names) != 3 || names[2] != "Rust" {
		t.Fatalf("expected Rust in catalog, got %v", names)
	}
}

func TestSkillUsecaseRejectsBlankName(t *testing.T) {
	uc := NewSkillUsecase(&fakeSkillRepo{}, nil, log.New(io.Discard, "", 0))
	if _, err := uc.AddSkill(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSearchCacheKeys(t *testing.T) {
	if SuggestCacheKey("Py", 5) != SuggestCacheKey(" py ", 5) {
		t.Fatalf("expected case and outer space to be ignored")
	}
	if SuggestCacheKey("py", 5) == SuggestCacheKey("py", 3) {
		t.Fatalf("expected limit to be part of the key")
	}
	if SuggestCacheKey("react js", 5) == SuggestCacheKey("react  js", 5) {
		t.Fatalf("expected inner whitespace to be kept")
	}
	if FuzzySearchCacheKey("py", 70) == SuggestCacheKey("py", 70) {
		t.Fatalf("expected distinct namespaces")
	}
}

package usecase

import (
	"context"
	"log"
	"strings"

	"skill-swap/internal/domain/skill"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

type SkillItem struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	DifficultyLevel string    `json:"difficulty_level"`
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
	CatalogNames(ctx context.Context) ([]string, error)
	AddSkill(ctx context.Context, name string) (SkillItem, error)
}

type Skill struct {
	repo   repository.SkillRepository
	cache  SearchCache
	logger *log.Logger
}

func NewSkillUsecase(repo repository.SkillRepository, cache SearchCache, logger *log.Logger) *Skill {
	if logger == nil {
		logger = log.Default()
	}
	return &Skill{repo: repo, cache: cache, logger: logger}
}

// ListSkills returns the catalog ordered by name, served from cache when
// possible.
func (u *Skill) ListSkills(ctx context.Context) ([]SkillItem, error) {
	var cached []SkillItem
	if cacheGet(ctx, u.cache, CatalogCacheKey, &cached) {
		return cached, nil
	}

	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		u.logger.Printf("Skill catalog load failed | error=%v", err)
		return nil, ErrInternal
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, toSkillItem(it))
	}
	cacheSet(ctx, u.cache, CatalogCacheKey, out)
	return out, nil
}

func (u *Skill) CatalogNames(ctx context.Context) ([]string, error) {
	items, err := u.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out, nil
}

func (u *Skill) AddSkill(ctx context.Context, name string) (SkillItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SkillItem{}, ErrInvalidInput
	}

	created, err := u.repo.CreateSkill(ctx, name)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return SkillItem{}, ErrSkillAlreadyExists
		}
		return SkillItem{}, ErrInternal
	}

	u.Invalidate(ctx)
	u.logger.Printf("Skill created | name=%q category=%s", created.Name, created.Category)
	return toSkillItem(created), nil
}

// Invalidate drops the cached catalog and every cached search result.
func (u *Skill) Invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, CatalogCacheKey); err != nil {
		u.logger.Printf("Cache invalidate failed | key=%s error=%v", CatalogCacheKey, err)
	}
	if err := u.cache.DeleteByPattern(ctx, SearchCachePattern); err != nil {
		u.logger.Printf("Cache invalidate failed | pattern=%s error=%v", SearchCachePattern, err)
	}
}

func toSkillItem(s skill.Skill) SkillItem {
	return SkillItem{ID: s.ID, Name: s.Name, Category: s.Category, DifficultyLevel: s.DifficultyLevel}
}

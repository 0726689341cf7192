package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-swap/internal/domain/skill"
	"skill-swap/internal/repository"

	"github.com/google/uuid"
)

const defaultProficiency = 3

type AddUserSkillInput struct {
	SkillName        string
	SkillType        skill.Type
	ProficiencyLevel int
}

type UserSkillItem struct {
	ID               uuid.UUID
	SkillID          uuid.UUID
	SkillName        string
	SkillType        skill.Type
	ProficiencyLevel int
}

type CatalogInvalidator interface {
	Invalidate(ctx context.Context)
}

type UserSkillUsecase interface {
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error)
	AddUserSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (UserSkillItem, error)
	DeleteUserSkill(ctx context.Context, userID uuid.UUID, userSkillID uuid.UUID) error
}

type UserSkill struct {
	repo    repository.UserSkillRepository
	skills  repository.SkillRepository
	catalog CatalogInvalidator
}

func NewUserSkillUsecase(repo repository.UserSkillRepository, skills repository.SkillRepository, catalog CatalogInvalidator) *UserSkill {
	return &UserSkill{repo: repo, skills: skills, catalog: catalog}
}

func (u *UserSkill) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error) {
	items, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]UserSkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, toUserSkillItem(it))
	}
	return out, nil
}

// AddUserSkill attaches a skill to the user's offered or wanted list, adding
// the name to the catalog first when it is new.
func (u *UserSkill) AddUserSkill(ctx context.Context, userID uuid.UUID, in AddUserSkillInput) (UserSkillItem, error) {
	name := strings.TrimSpace(in.SkillName)
	if name == "" || !in.SkillType.Valid() {
		return UserSkillItem{}, ErrInvalidInput
	}
	if in.ProficiencyLevel == 0 {
		in.ProficiencyLevel = defaultProficiency
	}
	if !isValidProficiency(in.ProficiencyLevel) {
		return UserSkillItem{}, ErrInvalidProficiencyLevel
	}

	_, lookupErr := u.skills.FindByName(ctx, name)
	s, err := u.skills.EnsureSkill(ctx, name)
	if err != nil {
		return UserSkillItem{}, ErrInternal
	}
	if errors.Is(lookupErr, skill.ErrNotFound) && u.catalog != nil {
		u.catalog.Invalidate(ctx)
	}

	owned, err := u.repo.HasSkill(ctx, userID, s.ID, in.SkillType)
	if err != nil {
		return UserSkillItem{}, ErrInternal
	}
	if owned {
		return UserSkillItem{}, ErrSkillAlreadyExists
	}

	created, err := u.repo.Create(ctx, skill.UserSkill{
		ID:               uuid.New(),
		UserID:           userID,
		SkillID:          s.ID,
		SkillType:        in.SkillType,
		ProficiencyLevel: in.ProficiencyLevel,
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return UserSkillItem{}, ErrSkillAlreadyExists
		}
		if repository.IsForeignKeyViolation(err) {
			return UserSkillItem{}, ErrSkillNotFound
		}
		return UserSkillItem{}, ErrInternal
	}
	return toUserSkillItem(created), nil
}

func (u *UserSkill) DeleteUserSkill(ctx context.Context, userID uuid.UUID, userSkillID uuid.UUID) error {
	if userSkillID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, userSkillID, userID); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserSkillNotFound):
			return ErrSkillNotFound
		case errors.Is(err, repository.ErrUserSkillForbidden):
			return ErrForbidden
		default:
			return ErrInternal
		}
	}
	return nil
}

func isValidProficiency(v int) bool {
	return v >= 1 && v <= 5
}

func toUserSkillItem(us skill.UserSkill) UserSkillItem {
	return UserSkillItem{
		ID:               us.ID,
		SkillID:          us.SkillID,
		SkillName:        us.SkillName,
		SkillType:        us.SkillType,
		ProficiencyLevel: us.ProficiencyLevel,
	}
}

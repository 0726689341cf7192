package usecase

import (
	"context"
	"errors"

	"skill-swap/internal/domain/learning"
	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
)

type LearningUsecase interface {
	Path(ctx context.Context, userID uuid.UUID) ([]learning.Recommendation, error)
	Gaps(ctx context.Context, userID uuid.UUID) ([]string, error)
	SwapSuccess(ctx context.Context, userID uuid.UUID, otherID uuid.UUID) (float64, error)
}

type Learning struct {
	profiles user.ProfileRepository
}

func NewLearningUsecase(profiles user.ProfileRepository) *Learning {
	return &Learning{profiles: profiles}
}

// Path recommends what the user should learn next, based on the skills they
// already offer.
func (u *Learning) Path(ctx context.Context, userID uuid.UUID) ([]learning.Recommendation, error) {
	p, err := u.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	out, err := learning.RecommendPath(p.SkillsOffered)
	if err != nil {
		return nil, mapCoreError(err)
	}
	return out, nil
}

func (u *Learning) Gaps(ctx context.Context, userID uuid.UUID) ([]string, error) {
	p, err := u.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.ValidateSkills("skills_offered", p.SkillsOffered); err != nil {
		return nil, mapCoreError(err)
	}
	return learning.SkillGaps(p.SkillsOffered, nil), nil
}

func (u *Learning) SwapSuccess(ctx context.Context, userID uuid.UUID, otherID uuid.UUID) (float64, error) {
	if userID == otherID {
		return 0, ErrInvalidInput
	}
	a, err := u.profile(ctx, userID)
	if err != nil {
		return 0, err
	}
	b, err := u.profile(ctx, otherID)
	if err != nil {
		return 0, err
	}
	return learning.SwapSuccessProbability(a, b), nil
}

func (u *Learning) profile(ctx context.Context, id uuid.UUID) (user.Profile, error) {
	p, err := u.profiles.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Profile{}, ErrUserNotFound
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

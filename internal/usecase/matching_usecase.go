package usecase

import (
	"context"

	"skill-swap/internal/config"
	"skill-swap/internal/domain/matching"
	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
)

type MatchingUsecase interface {
	Recommendations(ctx context.Context, userID uuid.UUID, topN *int) ([]matching.RecommendationEntry, error)
	Demand(ctx context.Context) ([]matching.SkillDemand, error)
}

type Matching struct {
	profiles user.ProfileRepository
	cfg      config.MatchingConfig
}

func NewMatchingUsecase(profiles user.ProfileRepository, cfg config.MatchingConfig) *Matching {
	return &Matching{profiles: profiles, cfg: cfg}
}

// Recommendations ranks every other user as an exchange partner for userID.
// A nil topN selects the configured default.
func (u *Matching) Recommendations(ctx context.Context, userID uuid.UUID, topN *int) ([]matching.RecommendationEntry, error) {
	n := u.cfg.DefaultTopN
	if topN != nil {
		n = *topN
	}

	profiles, err := u.profiles.ListProfiles(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out, err := matching.Recommend(userID, profiles, n)
	if err != nil {
		return nil, mapCoreError(err)
	}
	return out, nil
}

func (u *Matching) Demand(ctx context.Context) ([]matching.SkillDemand, error) {
	profiles, err := u.profiles.ListProfiles(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out, err := matching.Demand(profiles)
	if err != nil {
		return nil, mapCoreError(err)
	}
	return out, nil
}

package usecase

import (
	"context"
	"errors"

	"skill-swap/internal/domain/user"
	ucuser "skill-swap/internal/usecase/user"

	"github.com/google/uuid"
)

// ProfileView is an account together with its skill lists.
type ProfileView struct {
	User          user.User
	SkillsOffered []string
	SkillsWanted  []string
}

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (ProfileView, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, in ucuser.UpdateMeInput) (ProfileView, error)
	GetUser(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	ListUsers(ctx context.Context) ([]user.Profile, error)
}

type User struct {
	svc      *ucuser.Service
	profiles user.ProfileRepository
}

func NewUserUsecase(users user.Repository, profiles user.ProfileRepository) *User {
	return &User{svc: ucuser.NewService(users), profiles: profiles}
}

func (u *User) GetMe(ctx context.Context, userID uuid.UUID) (ProfileView, error) {
	usr, err := u.svc.GetMe(ctx, userID)
	if err != nil {
		return ProfileView{}, mapUserError(err)
	}
	return u.view(ctx, usr)
}

func (u *User) UpdateMe(ctx context.Context, userID uuid.UUID, in ucuser.UpdateMeInput) (ProfileView, error) {
	usr, err := u.svc.UpdateMe(ctx, userID, in)
	if err != nil {
		return ProfileView{}, mapUserError(err)
	}
	return u.view(ctx, usr)
}

func (u *User) GetUser(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	p, err := u.profiles.GetProfile(ctx, userID)
	if err != nil {
		return user.Profile{}, mapUserError(err)
	}
	return p, nil
}

func (u *User) ListUsers(ctx context.Context) ([]user.Profile, error) {
	out, err := u.profiles.ListProfiles(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *User) view(ctx context.Context, usr user.User) (ProfileView, error) {
	p, err := u.profiles.GetProfile(ctx, usr.ID)
	if err != nil {
		return ProfileView{}, mapUserError(err)
	}
	return ProfileView{User: usr, SkillsOffered: p.SkillsOffered, SkillsWanted: p.SkillsWanted}, nil
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, ucuser.ErrInvalidInput):
		return ErrInvalidInput
	default:
		return ErrInternal
	}
}

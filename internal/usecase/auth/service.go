package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"skill-swap/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Location string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, error)
	Login(ctx context.Context, in LoginInput) (user.User, error)
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// Register validates the input, hashes the password and stores the user.
// Validation failures wrap ErrInvalidInput around a *user.InvalidInputError
// naming the offending field.
func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	email, err := validateRegister(in)
	if err != nil {
		return user.User{}, err
	}
	name := strings.TrimSpace(in.Name)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, ErrInternal
	}
	if exists {
		return user.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Location:     strings.TrimSpace(in.Location),
	}

	if err := s.users.CreateUser(ctx, u); err != nil {
		exists, exErr := s.users.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return user.User{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, ErrInternal
	}

	created, err := s.users.GetUserByID(ctx, u.ID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(created), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return user.User{}, ErrInvalidCredentials
	}
	if in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

const (
	minPasswordLength = 8
	// bcrypt ignores nothing past 72 bytes; x/crypto rejects longer input.
	maxPasswordBytes = 72
	maxNameLength    = 100
)

func validateRegister(in RegisterInput) (string, error) {
	invalid := func(field, reason string) error {
		return fmt.Errorf("%w: %w", ErrInvalidInput, user.NewInvalidInputError(field, reason))
	}

	email := normalizeEmail(in.Email)
	if email == "" {
		return "", invalid("email", "is required")
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return "", invalid("email", "must be a valid address")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Password)) < minPasswordLength {
		return "", invalid("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	if len(in.Password) > maxPasswordBytes {
		return "", invalid("password", fmt.Sprintf("must be at most %d bytes", maxPasswordBytes))
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", invalid("name", "is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", invalid("name", fmt.Sprintf("must be at most %d characters", maxNameLength))
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Location)) > maxNameLength {
		return "", invalid("location", fmt.Sprintf("must be at most %d characters", maxNameLength))
	}
	return email, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}

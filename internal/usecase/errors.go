package usecase

import (
	"errors"
	"fmt"

	"skill-swap/internal/domain/user"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
	ErrInvalidInput        = errors.New("invalid input")
	ErrForbidden           = errors.New("forbidden")
	ErrUserNotFound        = errors.New("user not found")

	ErrSkillAlreadyExists      = errors.New("skill already exists")
	ErrSkillNotFound           = errors.New("skill not found")
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")

	ErrSwapNotFound      = errors.New("swap request not found")
	ErrSwapNotPending    = errors.New("swap request is no longer pending")
	ErrSwapSkillNotOwned = errors.New("swap skill not offered")
)

// mapCoreError keeps the core's field-level detail while classifying the
// failure for the transport layer.
func mapCoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, user.ErrInvalidInput) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

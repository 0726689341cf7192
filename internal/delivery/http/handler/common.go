package handler

import (
	"errors"
	"strconv"
	"strings"

	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/domain/user"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func currentUserID(c fiber.Ctx) (uuid.UUID, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return userID, nil
}

func paramUUID(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]string{"field": name}, err)
	}
	return id, nil
}

// queryInt returns nil when the parameter is absent.
func queryInt(c fiber.Ctx, name string) (*int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]string{"field": name}, err)
	}
	return &v, nil
}

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		var inputErr *user.InvalidInputError
		if errors.As(err, &inputErr) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", map[string]string{
				"field":  inputErr.Field,
				"reason": inputErr.Reason,
			}, err)
		}
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrInvalidProficiencyLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid proficiency level", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	case errors.Is(err, usecase.ErrSwapNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Swap request not found", nil, err)
	case errors.Is(err, usecase.ErrSkillAlreadyExists):
		return middleware.NewAppError(fiber.StatusConflict, "Skill already exists", nil, err)
	case errors.Is(err, usecase.ErrSwapNotPending):
		return middleware.NewAppError(fiber.StatusConflict, "Swap request is no longer pending", nil, err)
	case errors.Is(err, usecase.ErrSwapSkillNotOwned):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Skill is not offered by that user", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

package handler

import (
	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/domain/skill"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserSkillHandler struct {
	uc usecase.UserSkillUsecase
}

type addUserSkillRequest struct {
	SkillName        string `json:"skill_name"`
	SkillType        string `json:"skill_type"`
	ProficiencyLevel int    `json:"proficiency_level"`
}

func NewUserSkillHandler(uc usecase.UserSkillUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

func (h *UserSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Delete("/:id", h.Delete)
}

func (h *UserSkillHandler) List(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListUserSkills(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.UserSkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toUserSkillResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *UserSkillHandler) Add(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req addUserSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddUserSkill(c.Context(), userID, usecase.AddUserSkillInput{
		SkillName:        req.SkillName,
		SkillType:        skill.Type(req.SkillType),
		ProficiencyLevel: req.ProficiencyLevel,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toUserSkillResponse(created))
}

func (h *UserSkillHandler) Delete(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUserSkill(c.Context(), userID, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func toUserSkillResponse(it usecase.UserSkillItem) dto.UserSkillResponse {
	return dto.UserSkillResponse{
		ID:               it.ID,
		SkillID:          it.SkillID,
		SkillName:        it.SkillName,
		SkillType:        string(it.SkillType),
		ProficiencyLevel: it.ProficiencyLevel,
	}
}

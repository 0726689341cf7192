package handler

import (
	"skill-swap/internal/delivery/http/dto"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/pkg/response"
	"skill-swap/internal/usecase"
	useruc "skill-swap/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc     usecase.UserUsecase
	search usecase.SearchUsecase
}

type updateProfileRequest struct {
	Name         *string `json:"name"`
	Location     *string `json:"location"`
	Availability *string `json:"availability"`
	Email        *string `json:"email"`
	Password     *string `json:"password"`
}

func NewUserHandler(uc usecase.UserUsecase, search usecase.SearchUsecase) *UserHandler {
	return &UserHandler{uc: uc, search: search}
}

// RegisterRoutes mounts the user routes. Fixed paths come before /:id.
func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/me", h.GetMe)
	r.Put("/me", h.UpdateMe)
	r.Get("/search", h.SearchBySkill)
	r.Get("/:id", h.Get)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	prof, err := h.uc.GetMe(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(prof.User, prof.SkillsOffered, prof.SkillsWanted))
}

func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	in := useruc.UpdateMeInput{
		Name:         req.Name,
		Location:     req.Location,
		Availability: req.Availability,
		Email:        req.Email,
		Password:     req.Password,
	}
	if in.Empty() {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, nil)
	}

	prof, err := h.uc.UpdateMe(c.Context(), userID, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(prof.User, prof.SkillsOffered, prof.SkillsWanted))
}

func (h *UserHandler) Get(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.GetUser(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewProfileResponse(p))
}

func (h *UserHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	res := make([]dto.ProfileResponse, 0, len(items))
	for _, p := range items {
		res = append(res, dto.NewProfileResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *UserHandler) SearchBySkill(c fiber.Ctx) error {
	matches, err := h.search.UsersBySkill(c.Context(), c.Query("skill"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserMatchResponses(matches))
}

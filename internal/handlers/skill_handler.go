package handlers

import (
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SkillHandler handles HTTP requests for skills.
type SkillHandler struct {
	service *services.SkillService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(service *services.SkillService) *SkillHandler {
	return &SkillHandler{service: service}
}

// RegisterRoutes registers the skill routes.
func (h *SkillHandler) RegisterRoutes(router fiber.Router, gate fiber.Handler) {
	skillRoutes := router.Group("/skills")
	skillRoutes.Get("/", h.HandleGetSkills)
	skillRoutes.Get("/:id", h.HandleGetSkillByID)
	skillRoutes.Post("/", gate, h.HandleCreateSkill)
	skillRoutes.Put("/:id", gate, h.HandleUpdateSkill)
	skillRoutes.Delete("/:id", gate, h.HandleDeleteSkill)
}

func (h *SkillHandler) HandleGetSkills(c *fiber.Ctx) error {
	skills, err := h.service.GetAllSkills(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(skills)
}

func (h *SkillHandler) HandleGetSkillByID(c *fiber.Ctx) error {
	skill, err := h.service.GetSkillByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(skill)
}

func (h *SkillHandler) HandleCreateSkill(c *fiber.Ctx) error {
	var in services.SkillInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	skill, err := h.service.CreateSkill(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}

func (h *SkillHandler) HandleUpdateSkill(c *fiber.Ctx) error {
	var patch services.SkillPatch
	if err := parseBody(c, &patch); err != nil {
		return err
	}
	skill, err := h.service.UpdateSkill(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(skill)
}

func (h *SkillHandler) HandleDeleteSkill(c *fiber.Ctx) error {
	skill, err := h.service.DeleteSkill(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(skill)
}

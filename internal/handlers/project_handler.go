package handlers

import (
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProjectHandler handles HTTP requests for projects.
type ProjectHandler struct {
	service *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// RegisterRoutes registers the project routes. Reads are public; writes
// pass through gate first.
func (h *ProjectHandler) RegisterRoutes(router fiber.Router, gate fiber.Handler) {
	projectRoutes := router.Group("/projects")
	projectRoutes.Get("/", h.HandleGetProjects)
	projectRoutes.Get("/:id", h.HandleGetProjectByID)
	projectRoutes.Post("/", gate, h.HandleCreateProject)
	projectRoutes.Put("/:id", gate, h.HandleUpdateProject)
	projectRoutes.Delete("/:id", gate, h.HandleDeleteProject)
}

// HandleGetProjects retrieves all projects.
func (h *ProjectHandler) HandleGetProjects(c *fiber.Ctx) error {
	projects, err := h.service.GetAllProjects(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(projects)
}

// HandleGetProjectByID retrieves a single project by its ID.
func (h *ProjectHandler) HandleGetProjectByID(c *fiber.Ctx) error {
	project, err := h.service.GetProjectByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(project)
}

// HandleCreateProject creates a new project.
func (h *ProjectHandler) HandleCreateProject(c *fiber.Ctx) error {
	var in services.ProjectInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	project, err := h.service.CreateProject(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// HandleUpdateProject updates the fields present in the body.
func (h *ProjectHandler) HandleUpdateProject(c *fiber.Ctx) error {
	var patch services.ProjectPatch
	if err := parseBody(c, &patch); err != nil {
		return err
	}
	project, err := h.service.UpdateProject(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(project)
}

// HandleDeleteProject deletes a project and returns it.
func (h *ProjectHandler) HandleDeleteProject(c *fiber.Ctx) error {
	project, err := h.service.DeleteProject(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(project)
}

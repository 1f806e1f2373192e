package handlers

import (
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CertificateHandler handles HTTP requests for certificates.
type CertificateHandler struct {
	service *services.CertificateService
}

// NewCertificateHandler creates a new CertificateHandler.
func NewCertificateHandler(service *services.CertificateService) *CertificateHandler {
	return &CertificateHandler{service: service}
}

// RegisterRoutes registers the certificate routes. Each method/path pair is
// registered exactly once.
func (h *CertificateHandler) RegisterRoutes(router fiber.Router, gate fiber.Handler) {
	certificateRoutes := router.Group("/certificates")
	certificateRoutes.Get("/", h.HandleGetCertificates)
	certificateRoutes.Get("/:id", h.HandleGetCertificateByID)
	certificateRoutes.Post("/", gate, h.HandleCreateCertificate)
	certificateRoutes.Put("/:id", gate, h.HandleUpdateCertificate)
	certificateRoutes.Delete("/:id", gate, h.HandleDeleteCertificate)
}

// HandleGetCertificates retrieves all certificates.
func (h *CertificateHandler) HandleGetCertificates(c *fiber.Ctx) error {
	certificates, err := h.service.GetAllCertificates(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(certificates)
}

// HandleGetCertificateByID retrieves a single certificate by its ID.
func (h *CertificateHandler) HandleGetCertificateByID(c *fiber.Ctx) error {
	certificate, err := h.service.GetCertificateByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(certificate)
}

// HandleCreateCertificate creates a new certificate.
func (h *CertificateHandler) HandleCreateCertificate(c *fiber.Ctx) error {
	var in services.CertificateInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	certificate, err := h.service.CreateCertificate(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(certificate)
}

// HandleUpdateCertificate updates the fields present in the body.
func (h *CertificateHandler) HandleUpdateCertificate(c *fiber.Ctx) error {
	var patch services.CertificatePatch
	if err := parseBody(c, &patch); err != nil {
		return err
	}
	certificate, err := h.service.UpdateCertificate(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(certificate)
}

// HandleDeleteCertificate deletes a certificate and returns it.
func (h *CertificateHandler) HandleDeleteCertificate(c *fiber.Ctx) error {
	certificate, err := h.service.DeleteCertificate(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(certificate)
}

package handlers

import (
	"portfolio/internal/services"

	"github.com/gofiber/fiber/v2"
)

// MessageHandler handles HTTP requests for contact messages.
type MessageHandler struct {
	service *services.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// RegisterRoutes registers the message routes. Only the contact form
// (POST) is public.
func (h *MessageHandler) RegisterRoutes(router fiber.Router, gate fiber.Handler) {
	messageRoutes := router.Group("/messages")
	messageRoutes.Post("/", h.HandleCreateMessage)
	messageRoutes.Get("/", gate, h.HandleGetMessages)
	messageRoutes.Get("/:id", gate, h.HandleGetMessageByID)
	messageRoutes.Put("/:id", gate, h.HandleUpdateMessage)
	messageRoutes.Delete("/:id", gate, h.HandleDeleteMessage)
}

// HandleGetMessages retrieves all messages.
func (h *MessageHandler) HandleGetMessages(c *fiber.Ctx) error {
	messages, err := h.service.GetAllMessages(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(messages)
}

// HandleGetMessageByID retrieves a single message by its ID.
func (h *MessageHandler) HandleGetMessageByID(c *fiber.Ctx) error {
	message, err := h.service.GetMessageByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(message)
}

// HandleCreateMessage accepts a contact-form submission.
func (h *MessageHandler) HandleCreateMessage(c *fiber.Ctx) error {
	var in services.MessageInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	message, err := h.service.CreateMessage(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// HandleUpdateMessage toggles the read flag; other fields in the body are ignored.
func (h *MessageHandler) HandleUpdateMessage(c *fiber.Ctx) error {
	var patch services.MessagePatch
	if err := parseBody(c, &patch); err != nil {
		return err
	}
	message, err := h.service.UpdateMessage(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(message)
}

// HandleDeleteMessage deletes a message and returns it.
func (h *MessageHandler) HandleDeleteMessage(c *fiber.Ctx) error {
	message, err := h.service.DeleteMessage(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(message)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunlundesign/aiuxtester/internal/models"
	"github.com/kunlundesign/aiuxtester/internal/services"
)

type PersonaHandler struct {
	personas services.PersonaService
}

func NewPersonaHandler(personas services.PersonaService) *PersonaHandler {
	return &PersonaHandler{
		personas: personas,
	}
}

// HandleList handles GET /personas
func (h *PersonaHandler) HandleList(c *fiber.Ctx) error {
	return c.JSON(models.PersonaListResponse{
		Personas: h.personas.Builtins(),
	})
}

// HandleImport handles POST /personas/import
func (h *PersonaHandler) HandleImport(c *fiber.Ctx) error {
	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid persona payload",
		})
	}

	persona, err := h.personas.ImportCustom(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "Failed to import persona",
			Details: err.Error(),
		})
	}

	return c.JSON(persona)
}

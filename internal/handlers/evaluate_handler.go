package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kunlundesign/aiuxtester/internal/config"
	"github.com/kunlundesign/aiuxtester/internal/models"
	"github.com/kunlundesign/aiuxtester/internal/services"
)

const maxSideBySideImages = 3

type EvaluationHandler struct {
	cfg      *config.Config
	personas services.PersonaService
}

func NewEvaluationHandler(cfg *config.Config, personas services.PersonaService) *EvaluationHandler {
	return &EvaluationHandler{
		cfg:      cfg,
		personas: personas,
	}
}

// HandleEvaluate handles POST /evaluate
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	if !req.Model.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "model must be one of: openai, gemini, zhipu",
		})
	}

	if len(req.Images) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "images is required and must not be empty",
		})
	}

	for _, image := range req.Images {
		if !strings.HasPrefix(image, "data:") {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Error: "images must be data URIs",
			})
		}
	}

	// Absent analysisType is inferred; a present-but-unknown value is a
	// caller error, not something to guess around.
	if req.AnalysisType != "" && !req.AnalysisType.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "analysisType must be one of: single, flow, side-by-side",
		})
	}
	analysisType := req.AnalysisType
	if analysisType == "" {
		analysisType = models.InferAnalysisType(len(req.Images))
	}

	if analysisType == models.AnalysisSideBySide && len(req.Images) > maxSideBySideImages {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "side-by-side comparison supports at most 3 images",
		})
	}

	persona, err := h.personas.Resolve(req.PersonaID, req.CustomPersona)
	if err != nil {
		if errors.Is(err, services.ErrPersonaNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
				Error: "Unknown persona: " + req.PersonaID,
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid persona",
		})
	}

	adapter, err := services.NewAdapter(req.Model, h.cfg)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Unsupported model provider: " + string(req.Model),
		})
	}

	log.Printf("🔍 Evaluating %d image(s) as %s via %s (%s)", len(req.Images), persona.Name, req.Model, analysisType)

	result, err := adapter.Evaluate(c.Context(), req.Images, persona, req.DesignBackground, analysisType)
	if err != nil {
		log.Printf("❌ Evaluation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error:   "Evaluation failed",
			Details: err.Error(),
		})
	}

	return c.JSON(result)
}

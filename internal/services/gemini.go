package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"github.com/kunlundesign/aiuxtester/internal/config"
	"github.com/kunlundesign/aiuxtester/internal/models"
)

type geminiAdapter struct {
	cfg config.GeminiConfig
}

// NewGeminiAdapter wraps the Gemini API. This adapter degrades gracefully:
// provider failures are caught and replaced with a mock result instead of
// propagating, so a Gemini outage never fails the request.
func NewGeminiAdapter(cfg config.GeminiConfig) AIAdapter {
	return &geminiAdapter{cfg: cfg}
}

// Evaluate implements AIAdapter.
func (a *geminiAdapter) Evaluate(ctx context.Context, images []string, persona *models.Persona, designBackground string, analysisType models.AnalysisType) (*models.EvalResult, error) {
	// Key shape heuristic only; real validation happens upstream.
	if len(a.cfg.APIKey) <= 10 {
		log.Println("🟢 Gemini adapter using mock response - no API key configured")
		return MockResult(models.ProviderGemini, persona.ID, len(images), analysisType), nil
	}

	text, err := a.generate(ctx, images, persona, designBackground, analysisType)
	if err != nil {
		log.Printf("⚠️  Gemini call failed, substituting mock result: %v", err)
		return MockResult(models.ProviderGemini, persona.ID, len(images), analysisType), nil
	}

	return Normalize(text, models.ProviderGemini, persona.ID, len(images), analysisType), nil
}

func (a *geminiAdapter) generate(ctx context.Context, images []string, persona *models.Persona, designBackground string, analysisType models.AnalysisType) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  a.cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	prompt := NewPromptBuilder().Build(len(images), persona, designBackground, analysisType)

	parts := make([]*genai.Part, 0, len(images)+1)
	parts = append(parts, genai.NewPartFromText(SystemPrompt+"\n"+prompt))
	for _, image := range images {
		data, mimeType, err := decodeDataURI(image)
		if err != nil {
			return "", fmt.Errorf("invalid image payload: %w", err)
		}
		parts = append(parts, genai.NewPartFromBytes(data, mimeType))
	}

	temperature := float32(0.7)
	resp, err := client.Models.GenerateContent(ctx, a.cfg.Model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			Temperature:     &temperature,
			MaxOutputTokens: 4096,
		})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil || resp.Text() == "" {
		return "", fmt.Errorf("gemini: %w", ErrEmptyProviderResponse)
	}
	return resp.Text(), nil
}

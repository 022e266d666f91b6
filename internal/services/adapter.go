package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/kunlundesign/aiuxtester/internal/config"
	"github.com/kunlundesign/aiuxtester/internal/models"
)

// AIAdapter is the uniform contract every backend implements. Any of the
// three implementations is substitutable behind this single interface.
// An adapter performs at most one outbound call per invocation, with no
// retries; without usable credentials it returns a mock result instead.
type AIAdapter interface {
	Evaluate(ctx context.Context, images []string, persona *models.Persona, designBackground string, analysisType models.AnalysisType) (*models.EvalResult, error)
}

// NewAdapter selects the adapter for the requested provider.
func NewAdapter(provider models.ModelProvider, cfg *config.Config) (AIAdapter, error) {
	switch provider {
	case models.ProviderOpenAI:
		return NewOpenAIAdapter(cfg.OpenAI, cfg.AzureOpenAI), nil
	case models.ProviderGemini:
		return NewGeminiAdapter(cfg.Gemini), nil
	case models.ProviderZhipu:
		return NewZhipuAdapter(cfg.Zhipu), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}
}

// decodeDataURI splits a data-URI base64 image into raw bytes and mime
// type. Inputs without a recognizable header default to image/jpeg, which
// matches how the upstream providers sniff unlabeled payloads.
func decodeDataURI(image string) ([]byte, string, error) {
	mimeType := "image/jpeg"
	payload := image

	if strings.HasPrefix(image, "data:") {
		comma := strings.IndexByte(image, ',')
		if comma < 0 {
			return nil, "", fmt.Errorf("malformed data URI: missing payload separator")
		}
		header := image[:comma]
		payload = image[comma+1:]
		if mt, ok := strings.CutSuffix(strings.TrimPrefix(header, "data:"), ";base64"); ok && mt != "" {
			mimeType = mt
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image payload: %w", err)
	}
	return data, mimeType, nil
}

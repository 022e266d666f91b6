package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/kunlundesign/aiuxtester/internal/config"
	"github.com/kunlundesign/aiuxtester/internal/models"
)

type openAIAdapter struct {
	cfg      config.OpenAIConfig
	azureCfg config.AzureOpenAIConfig
}

// NewOpenAIAdapter wraps both the public OpenAI API and Azure OpenAI
// deployments. Azure is preferred when fully configured.
func NewOpenAIAdapter(cfg config.OpenAIConfig, azureCfg config.AzureOpenAIConfig) AIAdapter {
	return &openAIAdapter{cfg: cfg, azureCfg: azureCfg}
}

// Evaluate implements AIAdapter. Provider errors propagate to the caller;
// the endpoint layer maps them to an internal error.
func (a *openAIAdapter) Evaluate(ctx context.Context, images []string, persona *models.Persona, designBackground string, analysisType models.AnalysisType) (*models.EvalResult, error) {
	client, model, ok := a.client()
	if !ok {
		log.Println("🔵 OpenAI adapter using mock response - no usable credentials configured")
		return MockResult(models.ProviderOpenAI, persona.ID, len(images), analysisType), nil
	}

	prompt := NewPromptBuilder().Build(len(images), persona, designBackground, analysisType)

	userParts := make([]openai.ChatMessagePart, 0, len(images)+1)
	userParts = append(userParts, openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeText,
		Text: prompt,
	})
	for _, image := range images {
		userParts = append(userParts, openai.ChatMessagePart{
			Type:     openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{URL: image},
		})
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, MultiContent: userParts},
		},
		MaxTokens:   4000,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("openai: %w", ErrEmptyProviderResponse)
	}

	return Normalize(resp.Choices[0].Message.Content, models.ProviderOpenAI, persona.ID, len(images), analysisType), nil
}

// client picks Azure when fully configured, then the public API when the
// key looks plausible. The checks are shape heuristics, not validation.
func (a *openAIAdapter) client() (*openai.Client, string, bool) {
	if a.azureCfg.APIKey != "" && a.azureCfg.Endpoint != "" && a.azureCfg.Deployment != "" {
		log.Println("🔵 Using Azure OpenAI for evaluation")
		cfg := openai.DefaultAzureConfig(a.azureCfg.APIKey, a.azureCfg.Endpoint)
		cfg.APIVersion = a.azureCfg.APIVersion
		deployment := a.azureCfg.Deployment
		cfg.AzureModelMapperFunc = func(string) string { return deployment }
		return openai.NewClientWithConfig(cfg), deployment, true
	}
	if strings.HasPrefix(a.cfg.APIKey, "sk-") {
		log.Println("🔵 Using OpenAI for evaluation")
		return openai.NewClient(a.cfg.APIKey), a.cfg.Model, true
	}
	return nil, "", false
}

package services

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"

	"github.com/kunlundesign/aiuxtester/internal/config"
	"github.com/kunlundesign/aiuxtester/internal/models"
)

type zhipuAdapter struct {
	cfg config.ZhipuConfig
}

// NewZhipuAdapter wraps Zhipu's GLM vision API. The endpoint speaks the
// OpenAI chat-completions wire format, so the same client library is used
// with Zhipu's base URL.
func NewZhipuAdapter(cfg config.ZhipuConfig) AIAdapter {
	return &zhipuAdapter{cfg: cfg}
}

// Evaluate implements AIAdapter. Provider errors propagate to the caller.
func (a *zhipuAdapter) Evaluate(ctx context.Context, images []string, persona *models.Persona, designBackground string, analysisType models.AnalysisType) (*models.EvalResult, error) {
	if len(a.cfg.APIKey) <= 10 {
		log.Println("🟣 Zhipu adapter using mock response - no API key configured")
		return MockResult(models.ProviderZhipu, persona.ID, len(images), analysisType), nil
	}

	clientCfg := openai.DefaultConfig(a.cfg.APIKey)
	clientCfg.BaseURL = a.cfg.BaseURL
	client := openai.NewClientWithConfig(clientCfg)

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
		Model: a.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, MultiContent: userParts},
		},
		MaxTokens:   4000,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("zhipu completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("zhipu: %w", ErrEmptyProviderResponse)
	}

	return Normalize(resp.Choices[0].Message.Content, models.ProviderZhipu, persona.ID, len(images), analysisType), nil
}

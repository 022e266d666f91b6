package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunlundesign/aiuxtester/internal/config"
	"github.com/kunlundesign/aiuxtester/internal/models"
)

func emptyConfig() *config.Config {
	return &config.Config{}
}

func TestNewAdapterFactory(t *testing.T) {
	cfg := emptyConfig()

	for _, provider := range []models.ModelProvider{models.ProviderOpenAI, models.ProviderGemini, models.ProviderZhipu} {
		adapter, err := NewAdapter(provider, cfg)
		require.NoError(t, err, "provider %s", provider)
		assert.NotNil(t, adapter)
	}
}

func TestNewAdapterUnknownProvider(t *testing.T) {
	_, err := NewAdapter("claude", emptyConfig())
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}

// Without usable credentials every adapter degrades to the mock generator
// instead of making a network call, so these run offline.
func TestAdaptersMockModeWithoutCredentials(t *testing.T) {
	cfg := emptyConfig()
	persona := &models.Persona{ID: "efficiency-seeker", Name: "The Efficiency Seeker"}
	images := []string{"data:image/png;base64,aGVsbG8=", "data:image/png;base64,d29ybGQ="}

	for _, provider := range []models.ModelProvider{models.ProviderOpenAI, models.ProviderGemini, models.ProviderZhipu} {
		adapter, err := NewAdapter(provider, cfg)
		require.NoError(t, err)

		result, err := adapter.Evaluate(context.Background(), images, persona, "", models.AnalysisFlow)
		require.NoError(t, err, "provider %s", provider)
		require.NotNil(t, result)

		assert.Equal(t, provider, result.Model)
		assert.Equal(t, "efficiency-seeker", result.PersonaID)
		assert.Len(t, result.Items, len(images))
	}
}

func TestOpenAIAdapterIgnoresMalformedKey(t *testing.T) {
	// A key without the sk- prefix and no Azure settings means mock mode.
	cfg := emptyConfig()
	cfg.OpenAI.APIKey = "not-a-real-key"

	adapter := NewOpenAIAdapter(cfg.OpenAI, cfg.AzureOpenAI)
	result, err := adapter.Evaluate(context.Background(), []string{"data:image/png;base64,aGVsbG8="}, &models.Persona{ID: "casual-explorer"}, "", models.AnalysisSingle)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}

func TestGeminiAdapterShortKeyMeansMockMode(t *testing.T) {
	cfg := emptyConfig()
	cfg.Gemini.APIKey = "short"

	adapter := NewGeminiAdapter(cfg.Gemini)
	result, err := adapter.Evaluate(context.Background(), []string{"data:image/png;base64,aGVsbG8="}, &models.Persona{ID: "casual-explorer"}, "", models.AnalysisSingle)
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}

func TestDecodeDataURI(t *testing.T) {
	data, mime, err := decodeDataURI("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, []byte("hello"), data)
}

func TestDecodeDataURIDefaultsMime(t *testing.T) {
	data, mime, err := decodeDataURI("aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mime)
	assert.Equal(t, []byte("hello"), data)
}

func TestDecodeDataURIRejectsBadPayload(t *testing.T) {
	_, _, err := decodeDataURI("data:image/png")
	assert.Error(t, err)

	_, _, err = decodeDataURI("data:image/png;base64,%%%%")
	assert.Error(t, err)
}

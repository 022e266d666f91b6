package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunlundesign/aiuxtester/internal/models"
)

const wellFormedResponse = `{
	"model": "gemini",
	"personaId": "wrong-persona",
	"items": [
		{
			"imageId": "image-0",
			"personaId": "",
			"scores": {"usability": 82, "accessibility": 75, "visual": 88, "overall": 81},
			"highlights": ["Clear CTA placement", "Readable typography", "Strong grid"],
			"issues": [
				{
					"stepHint": "Checkout button",
					"issue": "Button label is ambiguous.",
					"severity": "high",
					"dimension": "USABILITY",
					"principles": ["Clarity"],
					"suggestion": "Rename the button to state the action."
				}
			],
			"narrative": "Solid layout overall.",
			"verbatim": ["Where does this button take me?"]
		}
	]
}`

func TestNormalizeWellFormed(t *testing.T) {
	result := Normalize(wellFormedResponse, models.ProviderGemini, "efficiency-seeker", 1, models.AnalysisSingle)

	require.Len(t, result.Items, 1)
	// Envelope fields come from the call context, not the model output.
	assert.Equal(t, models.ProviderGemini, result.Model)
	assert.Equal(t, "efficiency-seeker", result.PersonaID)
	assert.Equal(t, "efficiency-seeker", result.Items[0].PersonaID)

	assert.Equal(t, 81, result.Items[0].Scores.Overall)
	require.Len(t, result.Items[0].Issues, 1)
	assert.Equal(t, models.SeverityHigh, result.Items[0].Issues[0].Severity)
	assert.Equal(t, models.DimensionUsability, result.Items[0].Issues[0].Dimension)
}

func TestNormalizeFencedResponse(t *testing.T) {
	fenced := "```json\n" + wellFormedResponse + "\n```"
	result := Normalize(fenced, models.ProviderOpenAI, "casual-explorer", 1, models.AnalysisSingle)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "Solid layout overall.", result.Items[0].Narrative)
}

func TestNormalizeProseWrappedResponse(t *testing.T) {
	wrapped := "Here is my evaluation of the design:\n\n" + wellFormedResponse + "\n\nLet me know if you need more detail."
	result := Normalize(wrapped, models.ProviderZhipu, "casual-explorer", 1, models.AnalysisSingle)

	require.Len(t, result.Items, 1)
	assert.Equal(t, 82, result.Items[0].Scores.Usability)
}

func TestNormalizeRepairsNearJSON(t *testing.T) {
	// Trailing comma plus single-quoted key, the kind of almost-JSON vision
	// models emit under token pressure.
	nearJSON := `{"items": [{"imageId": "image-0", "scores": {"usability": 70, "accessibility": 70, "visual": 70, "overall": 70,}, "highlights": ["ok"], "issues": [], "narrative": "fine"}]}`
	result := Normalize(nearJSON, models.ProviderGemini, "habitual-loyalist", 1, models.AnalysisSingle)

	require.Len(t, result.Items, 1)
	assert.Equal(t, 70, result.Items[0].Scores.Overall)
}

func TestNormalizeGarbageFallsBack(t *testing.T) {
	for _, raw := range []string{
		"",
		"I could not analyze the images, sorry.",
		"{\"items\": ",
		"null",
	} {
		result := Normalize(raw, models.ProviderGemini, "efficiency-seeker", 2, models.AnalysisFlow)
		require.NotNil(t, result, "raw=%q", raw)
		assert.Len(t, result.Items, 2, "fallback must match image count for raw=%q", raw)
		assert.Equal(t, "efficiency-seeker", result.PersonaID)
	}
}

func TestNormalizeEmptyItemsFallsBack(t *testing.T) {
	result := Normalize(`{"items": []}`, models.ProviderOpenAI, "casual-explorer", 3, models.AnalysisFlow)

	assert.Len(t, result.Items, 3)
	assert.Equal(t, models.ProviderOpenAI, result.Model)
}

func TestNormalizeTrustsModelItemCount(t *testing.T) {
	// Two items back for three images: passed through as-is, the session
	// layer decides whether to re-synthesize.
	two := `{"items": [
		{"imageId": "image-0", "scores": {"usability": 80, "accessibility": 80, "visual": 80, "overall": 80}, "highlights": ["a"], "issues": [], "narrative": "x"},
		{"imageId": "image-1", "scores": {"usability": 81, "accessibility": 81, "visual": 81, "overall": 81}, "highlights": ["b"], "issues": [], "narrative": "y"}
	]}`
	result := Normalize(two, models.ProviderGemini, "efficiency-seeker", 3, models.AnalysisFlow)

	assert.Len(t, result.Items, 2)
}

func TestNormalizeMockRoundTrip(t *testing.T) {
	// A mock result serialized and fed back through the normalizer must
	// survive unchanged in structure.
	mock := MockResult(models.ProviderGemini, "skeptical-power-user", 2, models.AnalysisFlow)
	raw, err := json.Marshal(mock)
	require.NoError(t, err)

	result := Normalize(string(raw), models.ProviderGemini, "skeptical-power-user", 2, models.AnalysisFlow)

	require.Len(t, result.Items, 2)
	for i := range result.Items {
		assert.Equal(t, mock.Items[i].Scores, result.Items[i].Scores)
		assert.Equal(t, mock.Items[i].Highlights, result.Items[i].Highlights)
		assert.Equal(t, len(mock.Items[i].Issues), len(result.Items[i].Issues))
	}
}

func TestStripFences(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}\n```":     `{"a":1}`,
		"{\"a\":1}":               `{"a":1}`,
		"  {\"a\":1}  ":           `{"a":1}`,
	}
	for input, want := range cases {
		assert.Equal(t, want, stripFences(input))
	}
}

func TestExtractCandidate(t *testing.T) {
	t.Run("braces inside strings", func(t *testing.T) {
		input := `note {"msg": "a } inside", "n": {"x": 1}} trailing`
		assert.Equal(t, `{"msg": "a } inside", "n": {"x": 1}}`, extractCandidate(input))
	})

	t.Run("unbalanced returns tail", func(t *testing.T) {
		input := `prefix {"truncated": [1, 2`
		assert.Equal(t, `{"truncated": [1, 2`, extractCandidate(input))
	})

	t.Run("no object returns input", func(t *testing.T) {
		assert.Equal(t, "plain text", extractCandidate("plain text"))
	})
}

func TestCanonicalEnums(t *testing.T) {
	assert.Equal(t, models.SeverityLow, canonicalSeverity("LOW"))
	assert.Equal(t, models.SeverityHigh, canonicalSeverity("high"))
	assert.Equal(t, models.SeverityMedium, canonicalSeverity("critical"))

	assert.Equal(t, models.DimensionAccessibility, canonicalDimension("accessibility"))
	assert.Equal(t, models.DimensionVisual, canonicalDimension("Visual"))
	assert.Equal(t, models.DimensionUsability, canonicalDimension("layout"))
}

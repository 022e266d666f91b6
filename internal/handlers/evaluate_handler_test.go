package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunlundesign/aiuxtester/internal/config"
	"github.com/kunlundesign/aiuxtester/internal/models"
	"github.com/kunlundesign/aiuxtester/internal/services"
)

const testImage = "data:image/png;base64,aGVsbG8="

func newTestApp() *fiber.App {
	// Empty credentials force every adapter into mock mode, so requests
	// never leave the process.
	cfg := &config.Config{}
	personaService := services.NewPersonaService()

	app := fiber.New()
	api := app.Group("/api/v1")

	evaluateHandler := NewEvaluationHandler(cfg, personaService)
	personaHandler := NewPersonaHandler(personaService)

	api.Post("/evaluate", evaluateHandler.HandleEvaluate)
	api.Get("/personas", personaHandler.HandleList)
	api.Post("/personas/import", personaHandler.HandleImport)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeResult(t *testing.T, resp *http.Response) *models.EvalResult {
	t.Helper()
	defer resp.Body.Close()
	var result models.EvalResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return &result
}

func TestEvaluateSingleImage(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/evaluate", models.EvaluateRequest{
		Model:     models.ProviderGemini,
		PersonaID: "efficiency-seeker",
		Images:    []string{testImage},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeResult(t, resp)
	assert.Equal(t, models.ProviderGemini, result.Model)
	assert.Equal(t, "efficiency-seeker", result.PersonaID)
	require.Len(t, result.Items, 1)
	assert.GreaterOrEqual(t, result.Items[0].Scores.Overall, 78)
	assert.LessOrEqual(t, result.Items[0].Scores.Overall, 93)
}

func TestEvaluateSideBySide(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/evaluate", models.EvaluateRequest{
		Model:        models.ProviderGemini,
		PersonaID:    "skeptical-power-user",
		Images:       []string{testImage, testImage, testImage},
		AnalysisType: models.AnalysisSideBySide,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeResult(t, resp)
	assert.Len(t, result.Items, 3)
}

func TestEvaluateSideBySideTooManyImages(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/evaluate", models.EvaluateRequest{
		Model:        models.ProviderGemini,
		PersonaID:    "efficiency-seeker",
		Images:       []string{testImage, testImage, testImage, testImage},
		AnalysisType: models.AnalysisSideBySide,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEvaluateRejectsUnknownAnalysisType(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/evaluate", map[string]interface{}{
		"model":        "gemini",
		"personaId":    "efficiency-seeker",
		"images":       []string{testImage},
		"analysisType": "diagonal",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEvaluateInfersAnalysisTypeWhenAbsent(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/evaluate", map[string]interface{}{
		"model":     "gemini",
		"personaId": "efficiency-seeker",
		"images":    []string{testImage, testImage},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeResult(t, resp)
	assert.Len(t, result.Items, 2)
}

func TestEvaluateRejectsUnknownModel(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/evaluate", map[string]interface{}{
		"model":     "claude",
		"personaId": "efficiency-seeker",
		"images":    []string{testImage},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEvaluateRejectsEmptyImages(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/evaluate", models.EvaluateRequest{
		Model:     models.ProviderGemini,
		PersonaID: "efficiency-seeker",
		Images:    []string{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEvaluateRejectsNonDataURI(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/evaluate", models.EvaluateRequest{
		Model:     models.ProviderGemini,
		PersonaID: "efficiency-seeker",
		Images:    []string{"https://example.com/a.png"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEvaluateRejectsUnknownPersona(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/evaluate", models.EvaluateRequest{
		Model:     models.ProviderGemini,
		PersonaID: "does-not-exist",
		Images:    []string{testImage},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "does-not-exist")
}

func TestEvaluateAcceptsInlineCustomPersona(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/evaluate", models.EvaluateRequest{
		Model:     models.ProviderZhipu,
		PersonaID: "custom-jane-doe-1234",
		Images:    []string{testImage},
		CustomPersona: &models.Persona{
			ID:   "custom-jane-doe-1234",
			Name: "Jane Doe",
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decodeResult(t, resp)
	assert.Equal(t, "custom-jane-doe-1234", result.PersonaID)
}

func TestListPersonas(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/personas", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	var list models.PersonaListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list.Personas, 5)
}

func TestImportPersona(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/personas/import", map[string]interface{}{
		"Core Identity": map[string]interface{}{
			"full_name":  "Jane Doe",
			"occupation": "Designer",
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	var persona models.Persona
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&persona))
	assert.Equal(t, "Jane Doe", persona.Name)
	assert.Contains(t, persona.ID, "custom-jane-doe-")
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kunlundesign/aiuxtester/internal/models"
)

// Evaluator is the endpoint contract the session drives. It is satisfied
// both by the HTTP client below and, in tests, by in-process fakes.
type Evaluator interface {
	Evaluate(ctx context.Context, req *models.EvaluateRequest) (*models.EvalResult, error)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(ctx context.Context, req *models.EvaluateRequest) (*models.EvalResult, error)

func (f EvaluatorFunc) Evaluate(ctx context.Context, req *models.EvaluateRequest) (*models.EvalResult, error) {
	return f(ctx, req)
}

// PersonaRun is the outcome of one persona's evaluation within a batch.
type PersonaRun struct {
	Persona      models.Persona
	Result       *models.EvalResult
	UsedFallback bool
}

// Session orchestrates evaluations across one or many personas and keeps
// an in-memory history of completed runs. A session is single-caller and
// session-scoped; nothing here survives the process.
type Session struct {
	evaluator Evaluator
	history   []models.HistoryEntry
}

func NewSession(evaluator Evaluator) *Session {
	return &Session{evaluator: evaluator}
}

// Run evaluates the images once per persona, sequentially. A failing
// persona is logged and skipped so the rest of the batch still completes.
// Results whose item count does not match the submitted image count are
// replaced by a locally synthesized fallback rather than rendered short.
func (s *Session) Run(ctx context.Context, model models.ModelProvider, images []string, designBackground string, analysisType models.AnalysisType, personaList []models.Persona) []PersonaRun {
	if !analysisType.Valid() {
		analysisType = models.InferAnalysisType(len(images))
	}

	runs := make([]PersonaRun, 0, len(personaList))
	for _, persona := range personaList {
		req := &models.EvaluateRequest{
			Model:            model,
			PersonaID:        persona.ID,
			Images:           images,
			DesignBackground: designBackground,
			AnalysisType:     analysisType,
		}
		if isCustomPersona(persona.ID) {
			p := persona
			req.CustomPersona = &p
		}

		result, err := s.evaluator.Evaluate(ctx, req)
		if err != nil {
			log.Printf("❌ Evaluation failed for %s: %v", persona.Name, err)
			continue
		}

		usedFallback := false
		if result == nil || len(result.Items) != len(images) {
			log.Printf("⚠️  Used local fallback for %s (endpoint returned %d items for %d images)", persona.Name, resultItemCount(result), len(images))
			result = MockResult(model, persona.ID, len(images), analysisType)
			usedFallback = true
		}

		runs = append(runs, PersonaRun{Persona: persona, Result: result, UsedFallback: usedFallback})
		s.history = append(s.history, models.HistoryEntry{
			ID:         fmt.Sprintf("%s-%s", uuid.New().String(), persona.ID),
			Timestamp:  time.Now(),
			Result:     result,
			Persona:    persona.Name,
			Model:      model,
			ImageCount: len(images),
		})
	}
	return runs
}

// History returns the runs completed so far, oldest first.
func (s *Session) History() []models.HistoryEntry {
	out := make([]models.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Winner picks the side-by-side winner: the item with the highest overall
// score, first one winning ties. It reports false when the result has
// fewer than two items to compare.
func Winner(result *models.EvalResult) (int, bool) {
	if result == nil || len(result.Items) < 2 {
		return 0, false
	}
	winner := 0
	for i, item := range result.Items {
		if item.Scores.Overall > result.Items[winner].Scores.Overall {
			winner = i
		}
	}
	return winner, true
}

func isCustomPersona(personaID string) bool {
	return strings.HasPrefix(personaID, "custom-")
}

func resultItemCount(result *models.EvalResult) int {
	if result == nil {
		return 0
	}
	return len(result.Items)
}

// HTTPEvaluator calls a running evaluation server over HTTP. It is the
// client half of the endpoint contract, used by the CLI driver.
type HTTPEvaluator struct {
	baseURL string
	client  *http.Client
}

func NewHTTPEvaluator(baseURL string) *HTTPEvaluator {
	return &HTTPEvaluator{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

// Evaluate implements Evaluator.
func (e *HTTPEvaluator) Evaluate(ctx context.Context, evalReq *models.EvaluateRequest) (*models.EvalResult, error) {
	body, err := json.Marshal(evalReq)
	if err != nil {
		return nil, fmt.Errorf("marshaling evaluate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/api/v1/evaluate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating evaluate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("evaluate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("evaluate returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result models.EvalResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding evaluate response: %w", err)
	}
	return &result, nil
}

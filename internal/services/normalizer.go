package services

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/kunlundesign/aiuxtester/internal/models"
)

// Normalize coerces raw model output into a valid EvalResult. It never
// fails: unparseable, item-less, or empty output is replaced by a mock
// result sized to the original request, so the caller always receives a
// structurally valid payload. Model and persona id come from the call
// context, never from the model's own output.
//
// The pipeline is three pure stages: strip code fences, extract the first
// balanced JSON object, then parse (with a repair retry for near-JSON).
func Normalize(raw string, model models.ModelProvider, personaID string, imageCount int, analysisType models.AnalysisType) *models.EvalResult {
	payload, err := parseEvalPayload(extractCandidate(stripFences(raw)))
	if err != nil {
		log.Printf("⚠️  Failed to parse %s response, using fallback: %v", model, err)
		return MockResult(model, personaID, imageCount, analysisType)
	}
	if len(payload.Items) == 0 {
		log.Printf("⚠️  %s response parsed but contained no items, using fallback", model)
		return MockResult(model, personaID, imageCount, analysisType)
	}

	items := make([]models.ImageEval, len(payload.Items))
	for i, item := range payload.Items {
		items[i] = sanitizeItem(item, personaID)
	}

	// The model's item count is trusted even when it differs from
	// imageCount; the session layer decides whether to re-synthesize.
	return &models.EvalResult{
		Model:     model,
		PersonaID: personaID,
		Items:     items,
	}
}

// stripFences removes leading/trailing markdown code-fence markers, with
// or without a language tag, plus surrounding whitespace.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = text[3:]
		if idx := strings.IndexByte(text, '\n'); idx >= 0 && !strings.ContainsAny(text[:idx], "{}") {
			text = text[idx+1:]
		}
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// extractCandidate returns the first balanced {...} span, tracking string
// literals so braces inside values do not break the balance count. When no
// balanced object exists, the input is returned untouched and left for the
// parse stage to reject.
func extractCandidate(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return text
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return text[start:]
}

// evalPayload is the untrusted shape parsed from model output. Only items
// are taken from it; the envelope fields are ignored.
type evalPayload struct {
	Items []models.ImageEval `json:"items"`
}

// parseEvalPayload parses the candidate JSON, retrying once through
// jsonrepair for the near-JSON that vision models routinely emit.
func parseEvalPayload(candidate string) (*evalPayload, error) {
	var payload evalPayload
	if err := json.Unmarshal([]byte(candidate), &payload); err == nil {
		return &payload, nil
	}

	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// sanitizeItem stamps the request's persona id where the model omitted it
// and canonicalizes the severity/dimension enums, which models frequently
// return in the wrong case.
func sanitizeItem(item models.ImageEval, personaID string) models.ImageEval {
	if item.PersonaID == "" {
		item.PersonaID = personaID
	}
	for i := range item.Issues {
		item.Issues[i].Severity = canonicalSeverity(item.Issues[i].Severity)
		item.Issues[i].Dimension = canonicalDimension(item.Issues[i].Dimension)
	}
	return item
}

func canonicalSeverity(s models.Severity) models.Severity {
	switch strings.ToLower(string(s)) {
	case "low":
		return models.SeverityLow
	case "high":
		return models.SeverityHigh
	default:
		return models.SeverityMedium
	}
}

func canonicalDimension(d models.Dimension) models.Dimension {
	switch strings.ToLower(string(d)) {
	case "accessibility":
		return models.DimensionAccessibility
	case "visual":
		return models.DimensionVisual
	default:
		return models.DimensionUsability
	}
}

package models

// ModelProvider identifies a supported AI backend.
type ModelProvider string

const (
	ProviderOpenAI ModelProvider = "openai"
	ProviderGemini ModelProvider = "gemini"
	ProviderZhipu  ModelProvider = "zhipu"
)

// Valid reports whether p names a known provider.
func (p ModelProvider) Valid() bool {
	switch p {
	case ProviderOpenAI, ProviderGemini, ProviderZhipu:
		return true
	}
	return false
}

// AnalysisType selects the evaluation mode.
type AnalysisType string

const (
	AnalysisSingle     AnalysisType = "single"
	AnalysisFlow       AnalysisType = "flow"
	AnalysisSideBySide AnalysisType = "side-by-side"
)

// Valid reports whether t names a known analysis type.
func (t AnalysisType) Valid() bool {
	switch t {
	case AnalysisSingle, AnalysisFlow, AnalysisSideBySide:
		return true
	}
	return false
}

// InferAnalysisType picks the mode when the caller did not specify one:
// more than one image implies a flow, otherwise a single screen.
func InferAnalysisType(imageCount int) AnalysisType {
	if imageCount > 1 {
		return AnalysisFlow
	}
	return AnalysisSingle
}

type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

type Dimension string

const (
	DimensionUsability     Dimension = "Usability"
	DimensionAccessibility Dimension = "Accessibility"
	DimensionVisual        Dimension = "Visual"
)

// Position places an issue on the source image. Values are percentages
// of the image dimensions in [0,100].
type Position struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Issue is a single problem found during evaluation.
type Issue struct {
	StepHint   string    `json:"stepHint"`
	Issue      string    `json:"issue"`
	Severity   Severity  `json:"severity"`
	Dimension  Dimension `json:"dimension"`
	Principles []string  `json:"principles"`
	Suggestion string    `json:"suggestion"`
	Position   *Position `json:"position,omitempty"`
}

// Scores holds the four evaluation scores, each in [0,100]. Overall is
// taken as reported by the model (or independently randomized by the mock
// generator); callers must not assume it is an exact weighted combination
// of the other three.
type Scores struct {
	Usability     int `json:"usability"`
	Accessibility int `json:"accessibility"`
	Visual        int `json:"visual"`
	Overall       int `json:"overall"`
}

// ImageEval is the evaluation of one submitted image.
type ImageEval struct {
	ImageID    string   `json:"imageId"`
	PersonaID  string   `json:"personaId"`
	Scores     Scores   `json:"scores"`
	Highlights []string `json:"highlights"`
	Issues     []Issue  `json:"issues"`
	Narrative  string   `json:"narrative"`
	Verbatim   []string `json:"verbatim,omitempty"`
}

// EvalResult is the canonical output schema returned by every provider
// adapter and by the mock generator. Items are index-aligned with the
// submitted image list; a shorter list signals that fallback synthesis is
// needed downstream.
type EvalResult struct {
	Model     ModelProvider `json:"model"`
	PersonaID string        `json:"personaId"`
	Items     []ImageEval   `json:"items"`
}

package models

import "time"

// EvaluateRequest is the body of POST /api/v1/evaluate. Images are
// data-URI base64 strings in submission order.
type EvaluateRequest struct {
	Model            ModelProvider `json:"model"`
	PersonaID        string        `json:"personaId"`
	Images           []string      `json:"images"`
	DesignBackground string        `json:"designBackground,omitempty"`
	AnalysisType     AnalysisType  `json:"analysisType,omitempty"`
	CustomPersona    *Persona      `json:"customPersona,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// PersonaListResponse is the body of GET /api/v1/personas.
type PersonaListResponse struct {
	Personas []Persona `json:"personas"`
}

// HistoryEntry is one completed run in a session's in-memory history.
// History is session-scoped and never persisted.
type HistoryEntry struct {
	ID         string        `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	Result     *EvalResult   `json:"result"`
	Persona    string        `json:"persona"`
	Model      ModelProvider `json:"model"`
	ImageCount int           `json:"imageCount"`
}

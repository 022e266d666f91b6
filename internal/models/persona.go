package models

// Persona is a named bundle of user-type traits, motivations and pain points
// used to bias evaluation tone and focus. Built-in personas are immutable;
// custom personas are derived at request time from an uploaded profile.
type Persona struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Traits             []string           `json:"traits"`
	Motivations        []string           `json:"motivations"`
	PainPoints         []string           `json:"painPoints"`
	DesignImplications []string           `json:"designImplications"`
	WhenToApply        string             `json:"whenToApply,omitempty"`
	Weighting          map[string]float64 `json:"weighting,omitempty"`
}

// PersonaFramework enriches a built-in persona with an evaluation lens,
// language patterns and context-specific guidance. Not every persona has
// one; the prompt builder falls back to a generic persona block otherwise.
type PersonaFramework struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	EvaluationLens         EvaluationLens         `json:"evaluationLens"`
	CommunicationStyle     CommunicationStyle     `json:"communicationStyle"`
	TypicalConcerns        TypicalConcerns        `json:"typicalConcerns"`
	SatisfactionIndicators SatisfactionIndicators `json:"satisfactionIndicators"`
	ContextualFrameworks   ContextualFrameworks   `json:"contextualFrameworks"`
}

type EvaluationLens struct {
	PrimaryFocus       []string `json:"primaryFocus"`
	UniquePerspectives []string `json:"uniquePerspectives"`
	CriticalQuestions  []string `json:"criticalQuestions"`
}

type CommunicationStyle struct {
	Tone             string   `json:"tone"`
	Vocabulary       []string `json:"vocabulary"`
	FeedbackPatterns []string `json:"feedbackPatterns"`
}

type TypicalConcerns struct {
	Usability     []string `json:"usability"`
	Accessibility []string `json:"accessibility"`
	Visual        []string `json:"visual"`
}

type SatisfactionIndicators struct {
	Positive []string `json:"positive"`
	Negative []string `json:"negative"`
}

type ContextualFrameworks struct {
	Mobile  []string `json:"mobile"`
	Desktop []string `json:"desktop"`
	Flow    []string `json:"flow"`
}

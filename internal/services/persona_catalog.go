package services

import "github.com/kunlundesign/aiuxtester/internal/models"

// builtinPersonas is the fixed catalog loaded at process start. Order is
// stable and part of the API (GET /personas returns it verbatim).
var builtinPersonas = []models.Persona{
	{
		ID:   "efficiency-seeker",
		Name: "Efficiency Seeker",
		Traits: []string{
			"Time-pressed",
			"Goal-driven",
			"Low tolerance for friction",
			"Prefers minimal UI and clear hierarchy",
		},
		Motivations: []string{
			"Complete tasks quickly",
			"Trust reliable, actionable answers",
			"Reduce cognitive load",
		},
		PainPoints: []string{
			"Cluttered layouts and distractions",
			"Slow responses or blocked interactions",
			"Hidden actions and unnecessary steps",
		},
		DesignImplications: []string{
			"Streamline key flows",
			"Prioritize latency and responsiveness",
			"Make primary actions obvious and predictable",
		},
		WhenToApply: "Use for high-intent, time-sensitive scenarios (search to task, quick actions, at-a-glance reading).",
		Weighting:   map[string]float64{"usability": 0.5, "accessibility": 0.3, "visual": 0.2},
	},
	{
		ID:   "casual-explorer",
		Name: "Casual Explorer",
		Traits: []string{
			"Curious and playful",
			"Low-commitment engagement",
			"Enjoys discovery and visuals",
		},
		Motivations: []string{
			"Entertain and learn casually",
			"Try AI with minimal setup",
			"Effortless browsing and bite-sized content",
		},
		PainPoints: []string{
			"Heavy onboarding or dense forms",
			"Rigid flows that punish detours",
			"Boring or repetitive outputs",
		},
		DesignImplications: []string{
			"Lower barriers to entry",
			"Offer gentle guidance and suggestions",
			"Use microinteractions and visual variety",
		},
		WhenToApply: "Use for light engagement and discovery (quizzes, conversational exploration, brainstorming).",
		Weighting:   map[string]float64{"usability": 0.4, "accessibility": 0.3, "visual": 0.3},
	},
	{
		ID:   "trend-seeking-genz",
		Name: "Trend-Seeking Gen Z",
		Traits: []string{
			"Mobile-first",
			"Socially engaged",
			"Aesthetic- and novelty-driven",
		},
		Motivations: []string{
			"Discover trends",
			"Self-expression and shareability",
			"Fast creation of eye-catching content",
		},
		PainPoints: []string{
			"Slow loads and jank",
			"Generic outputs and dated visuals",
			"Awkward sharing/export",
		},
		DesignImplications: []string{
			"Optimize for speed on mobile",
			"Offer customization and modern visuals",
			"Make sharing/export effortless",
		},
		WhenToApply: "Use for youth/trend-driven content (creative helpers, AI chat as next-gen search, snackable modules).",
		Weighting:   map[string]float64{"usability": 0.3, "accessibility": 0.2, "visual": 0.5},
	},
	{
		ID:   "skeptical-power-user",
		Name: "Skeptical Power User",
		Traits: []string{
			"Tech-savvy and detail-oriented",
			"Control-seeking",
			"Expects transparency and provenance",
		},
		Motivations: []string{
			"Accuracy and repeatability",
			"Source control and verifiable citations",
			"Efficient handling of complex tasks",
		},
		PainPoints: []string{
			"AI hallucinations and vague reasoning",
			"Limited export/control",
			"Opaque errors and hidden assumptions",
		},
		DesignImplications: []string{
			"Show citations and reasoning",
			"Expose advanced controls and settings",
			"Provide precise errors and logs",
		},
		WhenToApply: "Use for complex/high-stakes tasks (data analysis, fact-check with citations, finance).",
		Weighting:   map[string]float64{"usability": 0.45, "accessibility": 0.25, "visual": 0.3},
	},
	{
		ID:   "habitual-loyalist",
		Name: "Habitual Loyalist",
		Traits: []string{
			"Routine-based",
			"Stability- and trust-focused",
			"Risk-averse",
		},
		Motivations: []string{
			"Predictable layouts and consistent navigation",
			"Minimal relearning",
			"Clear mapping from old to new ways",
		},
		PainPoints: []string{
			"Frequent UI changes and surprise defaults",
			"Relocated/hidden features",
			"Loss of prior settings/history",
		},
		DesignImplications: []string{
			"Preserve continuity and affordances",
			"Offer reversible, gradual onboarding",
			"Communicate changes and provide fallbacks",
		},
		WhenToApply: "Use for change management and continuity (embedded office flows, default surfaces, homepage redesigns).",
		Weighting:   map[string]float64{"usability": 0.45, "accessibility": 0.35, "visual": 0.2},
	},
}

package services

import "github.com/kunlundesign/aiuxtester/internal/models"

// LookupFramework returns the feedback framework for a persona id. The
// comma-ok result is the whole contract: custom personas (and any builtin
// without enrichment data) simply have none, and the prompt builder then
// renders a generic persona block instead.
func LookupFramework(personaID string) (*models.PersonaFramework, bool) {
	for i := range personaFrameworks {
		if personaFrameworks[i].ID == personaID {
			f := personaFrameworks[i]
			return &f, true
		}
	}
	return nil, false
}

// personaFrameworks enriches the builtin personas with evaluation lenses,
// language patterns and context-specific guidance used to steer the model
// toward persona-authentic feedback.
var personaFrameworks = []models.PersonaFramework{
	{
		ID:   "efficiency-seeker",
		Name: "Efficiency Seeker",
		EvaluationLens: models.EvaluationLens{
			PrimaryFocus: []string{
				"Task completion speed",
				"Cognitive load reduction",
				"Information hierarchy clarity",
				"Action predictability",
			},
			UniquePerspectives: []string{
				"Time-to-value analysis",
				"Friction point identification",
				"Progressive disclosure evaluation",
				"Shortcut availability assessment",
			},
			CriticalQuestions: []string{
				"How quickly can I achieve my goal?",
				"Are there unnecessary steps slowing me down?",
				"Is the most important action immediately obvious?",
				"Can I predict what will happen when I click?",
			},
		},
		CommunicationStyle: models.CommunicationStyle{
			Tone: "Direct, analytical, results-focused",
			Vocabulary: []string{
				"efficient", "streamlined", "optimized", "friction",
				"bottleneck", "workflow", "productivity", "time-saving",
			},
			FeedbackPatterns: []string{
				"This step adds unnecessary friction to the workflow",
				"The primary action should be more prominent",
				"This could be optimized by reducing clicks",
				"Time-to-completion could improve with better hierarchy",
			},
		},
		TypicalConcerns: models.TypicalConcerns{
			Usability: []string{
				"Multiple clicks for simple tasks",
				"Hidden or buried primary actions",
				"Unclear system status during loading",
				"Inconsistent interaction patterns",
			},
			Accessibility: []string{
				"Poor keyboard navigation efficiency",
				"Missing skip links for power users",
				"Inadequate focus management",
			},
			Visual: []string{
				"Weak visual hierarchy obscuring key actions",
				"Cluttered layouts increasing cognitive load",
				"Poor color coding for status/priority",
			},
		},
		SatisfactionIndicators: models.SatisfactionIndicators{
			Positive: []string{
				"Clear, linear task flows",
				"Prominent CTAs with predictable outcomes",
				"Efficient keyboard shortcuts",
				"Minimal cognitive overhead",
			},
			Negative: []string{
				"Multi-step processes for simple tasks",
				"Ambiguous button labels",
				"Slow loading with poor status indication",
				"Scattered or competing visual elements",
			},
		},
		ContextualFrameworks: models.ContextualFrameworks{
			Mobile: []string{
				"Thumb-friendly primary actions",
				"Swipe gestures for common tasks",
				"One-handed usability optimization",
			},
			Desktop: []string{
				"Keyboard shortcut availability",
				"Bulk action capabilities",
				"Multi-window workflow support",
			},
			Flow: []string{
				"Progress indication clarity",
				"Back/forward navigation efficiency",
				"Context preservation between steps",
			},
		},
	},
	{
		ID:   "casual-explorer",
		Name: "Casual Explorer",
		EvaluationLens: models.EvaluationLens{
			PrimaryFocus: []string{
				"Discovery and exploration ease",
				"Visual appeal and engagement",
				"Low-pressure interaction design",
				"Forgiveness and recovery",
			},
			UniquePerspectives: []string{
				"Browsing behavior accommodation",
				"Serendipitous discovery opportunities",
				"Gentle guidance without pressure",
				"Visual storytelling effectiveness",
			},
			CriticalQuestions: []string{
				"Does this invite me to explore?",
				"Can I browse without commitment?",
				"What happens if I make a mistake?",
				"Is this visually interesting enough to keep me engaged?",
			},
		},
		CommunicationStyle: models.CommunicationStyle{
			Tone: "Friendly, encouraging, non-judgmental",
			Vocabulary: []string{
				"playful", "inviting", "delightful", "engaging",
				"intuitive", "welcoming", "forgiving", "discoverable",
			},
			FeedbackPatterns: []string{
				"This feels welcoming and encourages exploration",
				"The interface invites casual browsing",
				"Recovery from mistakes is handled gracefully",
				"Visual cues make discovery feel natural",
			},
		},
		TypicalConcerns: models.TypicalConcerns{
			Usability: []string{
				"Overwhelming initial screens",
				"High-commitment entry points",
				"Poor error recovery mechanisms",
				"Lack of exploration affordances",
			},
			Accessibility: []string{
				"Missing alternative text for discovery elements",
				"Poor screen reader support for interactive content",
			},
			Visual: []string{
				"Intimidating or corporate visual design",
				"Monotonous layouts lacking visual interest",
				"Poor use of imagery and illustration",
			},
		},
		SatisfactionIndicators: models.SatisfactionIndicators{
			Positive: []string{
				"Gentle onboarding with optional depth",
				"Visually rich, engaging interfaces",
				"Clear but non-pressured action suggestions",
				"Breadcrumb trails for safe exploration",
			},
			Negative: []string{
				"Dense forms or heavy information requirements",
				"Aggressive or pushy interaction patterns",
				"Stark, utilitarian visual design",
				"Dead ends without clear next steps",
			},
		},
		ContextualFrameworks: models.ContextualFrameworks{
			Mobile: []string{
				"Touch-friendly exploration gestures",
				"Visual preview before commitment",
				"Bite-sized content consumption",
			},
			Desktop: []string{
				"Hover states for discovery",
				"Multiple entry points and pathways",
				"Rich media integration",
			},
			Flow: []string{
				"Non-linear navigation options",
				"Safe exit points at each step",
				"Progress that feels optional",
			},
		},
	},
	{
		ID:   "trend-seeking-genz",
		Name: "Trend-Seeking Gen Z",
		EvaluationLens: models.EvaluationLens{
			PrimaryFocus: []string{
				"Modern aesthetic alignment",
				"Social sharing potential",
				"Mobile-first experience quality",
				"Speed and responsiveness",
			},
			UniquePerspectives: []string{
				"Aesthetic trend awareness",
				"Social media integration evaluation",
				"Authenticity vs. corporate feel assessment",
				"Platform-native behavior patterns",
			},
			CriticalQuestions: []string{
				"Does this look current and on-trend?",
				"Can I easily share this with friends?",
				"Is this optimized for how I actually use my phone?",
				"Does this feel authentic or corporate?",
			},
		},
		CommunicationStyle: models.CommunicationStyle{
			Tone: "Trendy, authentic, socially-aware",
			Vocabulary: []string{
				"fresh", "current", "authentic", "shareable",
				"mobile-optimized", "responsive", "trendy", "engaging",
			},
			FeedbackPatterns: []string{
				"This aesthetic feels current and on-brand",
				"The mobile experience is optimized for real usage",
				"Sharing functionality integrates naturally",
				"Visual design aligns with contemporary trends",
			},
		},
		TypicalConcerns: models.TypicalConcerns{
			Usability: []string{
				"Desktop-centric interaction patterns",
				"Slow loading on mobile networks",
				"Poor thumb reach on mobile interfaces",
				"Outdated interaction paradigms",
			},
			Accessibility: []string{
				"Poor performance on older devices",
				"Missing dark mode support",
			},
			Visual: []string{
				"Outdated design trends",
				"Corporate or sterile aesthetics",
				"Poor typography choices",
				"Inconsistent with platform conventions",
			},
		},
		SatisfactionIndicators: models.SatisfactionIndicators{
			Positive: []string{
				"Contemporary visual design language",
				"Smooth animations and micro-interactions",
				"Native mobile gesture support",
				"Easy content sharing capabilities",
			},
			Negative: []string{
				"Dated visual design patterns",
				"Clunky mobile interactions",
				"Slow or janky performance",
				"Difficult social sharing",
			},
		},
		ContextualFrameworks: models.ContextualFrameworks{
			Mobile: []string{
				"Gesture-first interaction design",
				"Vertical scrolling optimization",
				"Story-format content consumption",
			},
			Desktop: []string{
				"Secondary platform consideration",
				"Cross-device continuity",
				"Mobile-to-desktop handoff",
			},
			Flow: []string{
				"Quick, engaging progression",
				"Social proof integration",
				"Instant gratification patterns",
			},
		},
	},
	{
		ID:   "skeptical-power-user",
		Name: "Skeptical Power User",
		EvaluationLens: models.EvaluationLens{
			PrimaryFocus: []string{
				"Functionality depth and control",
				"Information transparency",
				"System reliability indicators",
				"Advanced feature accessibility",
			},
			UniquePerspectives: []string{
				"Technical accuracy verification",
				"Privacy and security assessment",
				"Customization and control evaluation",
				"Edge case handling analysis",
			},
			CriticalQuestions: []string{
				"Can I verify this information is accurate?",
				"Do I have sufficient control over the system?",
				"How does this handle edge cases?",
				"What data is being collected and why?",
			},
		},
		CommunicationStyle: models.CommunicationStyle{
			Tone: "Analytical, precise, evidence-based",
			Vocabulary: []string{
				"transparent", "configurable", "robust", "validated",
				"precise", "reliable", "controllable", "verifiable",
			},
			FeedbackPatterns: []string{
				"The system provides adequate transparency into its operations",
				"Advanced controls are appropriately exposed",
				"Error handling demonstrates technical competence",
				"Information sources and methodologies are clearly documented",
			},
		},
		TypicalConcerns: models.TypicalConcerns{
			Usability: []string{
				"Oversimplified interfaces hiding complexity",
				"Lack of bulk operations",
				"Poor keyboard navigation",
				"Missing undo/redo functionality",
			},
			Accessibility: []string{
				"Incomplete ARIA implementation",
				"Poor screen reader support for complex widgets",
				"Missing high contrast mode",
			},
			Visual: []string{
				"Information density too low",
				"Poor data visualization choices",
				"Inconsistent UI patterns",
				"Missing status and feedback indicators",
			},
		},
		SatisfactionIndicators: models.SatisfactionIndicators{
			Positive: []string{
				"Comprehensive settings and preferences",
				"Clear data source attribution",
				"Robust error messages with context",
				"Advanced keyboard shortcuts",
			},
			Negative: []string{
				"Black box functionality",
				"Oversimplified error messages",
				"Limited customization options",
				"Poor handling of complex scenarios",
			},
		},
		ContextualFrameworks: models.ContextualFrameworks{
			Mobile: []string{
				"Advanced gesture support",
				"Landscape mode optimization",
				"External keyboard compatibility",
			},
			Desktop: []string{
				"Multi-monitor support",
				"Extensive keyboard shortcuts",
				"Integration with system tools",
			},
			Flow: []string{
				"Detailed progress tracking",
				"Branching scenario support",
				"Comprehensive undo capabilities",
			},
		},
	},
	{
		ID:   "habitual-loyalist",
		Name: "Habitual Loyalist",
		EvaluationLens: models.EvaluationLens{
			PrimaryFocus: []string{
				"Consistency with established patterns",
				"Continuity and familiarity",
				"Change management and communication",
				"Reliability and predictability",
			},
			UniquePerspectives: []string{
				"Pattern recognition and deviation assessment",
				"Learning curve evaluation for changes",
				"Backward compatibility consideration",
				"Trust and reliability indicators",
			},
			CriticalQuestions: []string{
				"Is this consistent with patterns I already know?",
				"Will my existing skills transfer to this interface?",
				"Are changes clearly explained and justified?",
				"Can I rely on this behaving consistently?",
			},
		},
		CommunicationStyle: models.CommunicationStyle{
			Tone: "Steady, reliability-focused, change-conscious",
			Vocabulary: []string{
				"familiar", "consistent", "reliable", "predictable",
				"stable", "trusted", "proven", "established",
			},
			FeedbackPatterns: []string{
				"This maintains consistency with established patterns",
				"Changes are clearly communicated and justified",
				"The interface behaves predictably across contexts",
				"Familiar affordances are preserved and respected",
			},
		},
		TypicalConcerns: models.TypicalConcerns{
			Usability: []string{
				"Unexpected behavior changes",
				"Inconsistent interaction patterns",
				"Missing familiar features",
				"Poor onboarding for interface changes",
			},
			Accessibility: []string{
				"Changes that break assistive technology compatibility",
				"Inconsistent accessibility patterns",
				"Missing accessibility preferences preservation",
			},
			Visual: []string{
				"Dramatic visual changes without explanation",
				"Inconsistent design language",
				"Poor visual continuity between versions",
				"Confusing icon or symbol changes",
			},
		},
		SatisfactionIndicators: models.SatisfactionIndicators{
			Positive: []string{
				"Consistent behavior across similar contexts",
				"Clear explanation of any changes",
				"Preservation of learned interaction patterns",
				"Reliable performance and availability",
			},
			Negative: []string{
				"Unexpected interface changes",
				"Inconsistent behavior patterns",
				"Missing familiar features",
				"Poor change communication",
			},
		},
		ContextualFrameworks: models.ContextualFrameworks{
			Mobile: []string{
				"Platform-consistent gesture patterns",
				"Familiar mobile UI conventions",
				"Consistent cross-app behavior",
			},
			Desktop: []string{
				"Standard desktop interaction patterns",
				"Familiar menu and toolbar structures",
				"Consistent window management",
			},
			Flow: []string{
				"Predictable step progression",
				"Consistent navigation patterns",
				"Familiar completion indicators",
			},
		},
	},
}

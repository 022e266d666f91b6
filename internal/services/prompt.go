package services

import (
	"fmt"
	"strings"

	"github.com/kunlundesign/aiuxtester/internal/models"
)

// SystemPrompt is shared by every provider adapter. It pins the model to
// the evaluator role and the strict-JSON output contract.
const SystemPrompt = `You are a specialized UX evaluator that provides highly specific, actionable feedback tailored to different user personas. You must output STRICT JSON only that matches the EvalResult schema.

CRITICAL REQUIREMENTS:
1. PERSONA-SPECIFIC ANALYSIS: Adopt the exact communication style, vocabulary, and priorities of the specified persona
2. COMPARATIVE ANALYSIS: For side-by-side comparisons, explicitly identify the winner and explain WHY
3. CONSTRUCTIVE FEEDBACK: Provide actionable usability and accessibility improvements
4. SPECIFIC EXAMPLES: Reference actual interface elements you see in the images
5. DETAILED ISSUES: Identify ALL specific problems with clear explanations of why they matter to this persona
6. DYNAMIC QUANTITY: Return ALL highlights and issues you find - do not limit to a fixed number

AVOID GENERIC STATEMENTS LIKE:
- "Clean layout with clear hierarchy"
- "Good use of whitespace and contrast"
- "User-friendly interface"

INSTEAD PROVIDE SPECIFIC FEEDBACK LIKE:
- "Design A's primary CTA button is positioned optimally for thumb reach, while Design B requires awkward thumb stretching"
- "Design A's three-step checkout reduces cognitive load compared to Design B's single-page form"
- "Design A's color-coded status indicators help users quickly identify priority items, unlike Design B's text-only approach"

Response must be valid JSON only - no markdown, explanations, or additional text.

IMPORTANT: Include ALL highlights and issues you identify - typically 3-8 highlights and 1-6 issues, but adjust based on what you actually find.`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build renders the full user prompt for one evaluation. It is a pure
// function of its inputs; nothing timestamp-derived goes into the body.
func (pb *PromptBuilder) Build(imageCount int, persona *models.Persona, designBackground string, analysisType models.AnalysisType) string {
	var personaSection string
	if framework, ok := LookupFramework(persona.ID); ok {
		personaSection = pb.frameworkSection(framework, designBackground, analysisType)
	} else {
		personaSection = pb.genericPersonaSection(persona, designBackground, analysisType, imageCount)
	}

	return fmt.Sprintf(`%s

%s

SPECIFIC EVALUATION REQUIREMENTS:
- Provide concrete examples from the actual interface elements you see
- Explain WHY specific design choices work or don't work for this persona
- Use this persona's vocabulary and communication patterns
- Focus on the specific concerns and priorities of this persona
- Give actionable recommendations that address this persona's unique needs

%s

CRITICAL: The number of highlights and issues should be DYNAMIC based on what you actually find:
- Include ALL positive aspects you identify (3-8 highlights typically)
- Include ALL problems you find (1-6 issues typically)
- Do NOT limit yourself to a fixed number
- Quality over quantity - be thorough but accurate

Use scores (0-100), specific highlights, detailed issues array, and narrative analysis that authentically reflects this persona's perspective and communication style.`,
		personaSection,
		pb.analysisInstructions(imageCount, analysisType),
		pb.schemaContract(persona.ID))
}

// frameworkSection renders the enriched persona block for built-in
// personas that carry a feedback framework.
func (pb *PromptBuilder) frameworkSection(framework *models.PersonaFramework, designBackground string, analysisType models.AnalysisType) string {
	contextSection := ""
	if designBackground != "" {
		contextSection = fmt.Sprintf("Design Context: %s\n", designBackground)
	}

	// No per-persona comparison context exists, so side-by-side shares the
	// mobile-first guidance.
	contextualFocus := framework.ContextualFrameworks.Mobile
	focusLabel := "Interface Design"
	if analysisType == models.AnalysisFlow {
		contextualFocus = framework.ContextualFrameworks.Flow
		focusLabel = "User Flow"
	}

	return fmt.Sprintf(`%s
You are evaluating this interface from the perspective of: %s

EVALUATION LENS:
Primary Focus: %s
Key Questions: %s

COMMUNICATION STYLE:
Tone: %s
Express feedback using language that reflects: %s

CONTEXTUAL FOCUS (%s):
%s

SPECIFIC CONCERNS TO EVALUATE:
- Usability: %s
- Accessibility: %s
- Visual Design: %s

Provide feedback that authentically reflects how %s would experience and evaluate this interface.
Use the communication patterns and vocabulary typical of this persona.
Focus on the issues and positive aspects this persona would naturally notice and care about.`,
		contextSection,
		framework.Name,
		strings.Join(framework.EvaluationLens.PrimaryFocus, ", "),
		strings.Join(framework.EvaluationLens.CriticalQuestions, " | "),
		framework.CommunicationStyle.Tone,
		strings.Join(framework.CommunicationStyle.Vocabulary, ", "),
		focusLabel,
		strings.Join(contextualFocus, " • "),
		strings.Join(firstN(framework.TypicalConcerns.Usability, 3), ", "),
		strings.Join(firstN(framework.TypicalConcerns.Accessibility, 2), ", "),
		strings.Join(firstN(framework.TypicalConcerns.Visual, 3), ", "),
		framework.Name)
}

// genericPersonaSection is the fallback for personas without a framework,
// typically imported custom personas.
func (pb *PromptBuilder) genericPersonaSection(persona *models.Persona, designBackground string, analysisType models.AnalysisType, imageCount int) string {
	contextSection := ""
	if designBackground != "" {
		contextSection = fmt.Sprintf("Design Context & Background:\n%s\n", designBackground)
	}

	analysisContext := "individual interface design analysis"
	switch analysisType {
	case models.AnalysisFlow:
		analysisContext = "user flow/journey analysis"
	case models.AnalysisSideBySide:
		analysisContext = "side-by-side comparison analysis"
	}

	return fmt.Sprintf(`%s
You are evaluating this interface from the perspective of: %s

CUSTOM PERSONA PROFILE:
Name: %s
Traits: %s
Motivations: %s
Pain Points: %s
Design Implications: %s

EVALUATION APPROACH:
- Adopt the communication style and priorities of this specific persona
- Focus on issues and positive aspects this persona would naturally notice
- Consider their unique traits, motivations, and pain points
- Provide feedback that authentically reflects how this persona would experience the interface
- Use language and concerns that match this persona's background and characteristics

ANALYSIS TYPE: %s
Image Count: %d

Provide specific, actionable feedback tailored to this persona's unique perspective and needs.`,
		contextSection,
		persona.Name,
		persona.Name,
		strings.Join(persona.Traits, ", "),
		strings.Join(persona.Motivations, ", "),
		strings.Join(persona.PainPoints, ", "),
		strings.Join(persona.DesignImplications, ", "),
		analysisContext,
		imageCount)
}

func (pb *PromptBuilder) analysisInstructions(imageCount int, analysisType models.AnalysisType) string {
	switch analysisType {
	case models.AnalysisFlow:
		return fmt.Sprintf(`Analyze these %d images as a user flow/journey. Consider:
- How well the flow guides users through the process
- Consistency across screens
- Navigation clarity between steps
- Overall user journey experience

Evaluate each image individually but also consider the flow as a whole.`, imageCount)
	case models.AnalysisSideBySide:
		return fmt.Sprintf(`COMPARATIVE ANALYSIS: Compare these %d designs side by side.

CRITICAL COMPARISON REQUIREMENTS:
1. CLEAR WINNER IDENTIFICATION: Explicitly state which design (A, B, or C) performs better overall and WHY
2. DETAILED COMPARISON: For each design, provide specific strengths and weaknesses
3. USABILITY COMPARISON: Compare task completion efficiency, cognitive load, and user flow clarity
4. ACCESSIBILITY COMPARISON: Compare WCAG compliance, keyboard navigation, screen reader support
5. VISUAL DESIGN COMPARISON: Compare visual hierarchy, consistency, and aesthetic appeal

COMPARISON FRAMEWORK:
- Design A: [Specific strengths] vs [Specific weaknesses]
- Design B: [Specific strengths] vs [Specific weaknesses]
- Winner: Design X because [concrete reasons with specific examples]

Each design may have DIFFERENT numbers of issues - do not force equal counts.
Design A might have 3 issues while Design B has 5 issues - this is normal and expected.

Evaluate each design individually AND provide a comprehensive comparative analysis.`, imageCount)
	default:
		return `Analyze this single interface design focusing on:
- Individual screen usability and accessibility
- Visual design principles
- User experience quality`
	}
}

// schemaContract spells out the exact JSON the model must return. Array
// lengths are explicitly open-ended.
func (pb *PromptBuilder) schemaContract(personaID string) string {
	return fmt.Sprintf(`IMPORTANT: Return STRICT JSON in this EXACT format:
{
  "model": "openai" | "gemini" | "zhipu",
  "personaId": "%s",
  "items": [
    {
      "imageId": "image-0",
      "personaId": "%s",
      "scores": {
        "usability": 85,
        "accessibility": 78,
        "visual": 82,
        "overall": 81
      },
      "highlights": [
        "Specific design element that works well for this persona",
        "Another concrete positive aspect",
        "Additional strengths as you identify them"
      ],
      "issues": [
        {
          "stepHint": "Specific area",
          "issue": "Detailed problem description",
          "severity": "Medium",
          "dimension": "Usability",
          "principles": ["Recognition over recall"],
          "suggestion": "Concrete improvement recommendation",
          "position": { "x": 50, "y": 80, "width": 20, "height": 10 }
        }
      ],
      "narrative": "Detailed analysis from this persona's perspective",
      "verbatim": ["A short quote this persona might say"]
    }
  ]
}

Severity must be one of Low, Medium, High. Dimension must be one of Usability, Accessibility, Visual.
Position values are percentages (0-100) of the image dimensions; include position only when you can locate the issue.
The overall score should reflect this persona's weighting of usability, accessibility, and visual quality.
The highlights and issues arrays are open-ended - include everything you find (roughly 3-8 highlights, 1-6 issues).`, personaID, personaID)
}

func firstN(values []string, n int) []string {
	if len(values) < n {
		return values
	}
	return values[:n]
}

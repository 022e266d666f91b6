package services

import (
	"fmt"
	"math/rand"

	"github.com/kunlundesign/aiuxtester/internal/models"
)

// mockIssueCandidate is one entry of the fixed pool the generator draws
// from. flowHint substitutes the step-numbered locator in flow mode, and
// withPosition marks candidates that exercise the overlay renderer.
type mockIssueCandidate struct {
	singleHint   string
	flowHint     string
	issue        string
	dimension    models.Dimension
	principles   []string
	suggestion   string
	withPosition bool
}

var mockIssuePool = []mockIssueCandidate{
	{
		singleHint:   "Text contrast",
		flowHint:     "Text/Contrast",
		issue:        "Some text on colored backgrounds may not meet WCAG AA contrast.",
		dimension:    models.DimensionAccessibility,
		principles:   []string{"Contrast", "Legibility"},
		suggestion:   "Increase contrast to at least 4.5:1 for body text.",
		withPosition: true,
	},
	{
		singleHint:   "Keyboard focus",
		flowHint:     "Focus",
		issue:        "Keyboard focus states are unclear on interactive elements.",
		dimension:    models.DimensionAccessibility,
		principles:   []string{"Focus Visible", "Operable"},
		suggestion:   "Ensure clear focus outlines and logical tab order.",
		withPosition: true,
	},
	{
		singleHint:   "Primary action clarity",
		flowHint:     "Navigation",
		issue:        "Primary action is not visually prioritized, causing decision friction.",
		dimension:    models.DimensionUsability,
		principles:   []string{"Visibility of system status", "Recognition over recall"},
		suggestion:   "Increase prominence of the primary CTA and reduce competing elements.",
		withPosition: true,
	},
	{
		singleHint: "Error prevention",
		flowHint:   "Recovery",
		issue:      "Risk of accidental purchases without clear confirmations.",
		dimension:  models.DimensionUsability,
		principles: []string{"Error prevention", "User control"},
		suggestion: "Add confirm dialogs and easy undo for purchase-related actions.",
	},
	{
		singleHint:   "Visual hierarchy",
		flowHint:     "Hierarchy",
		issue:        "Secondary text competes with primary information.",
		dimension:    models.DimensionVisual,
		principles:   []string{"Hierarchy", "Scale"},
		suggestion:   "Adjust typography scale/weight and spacing to clarify priorities.",
		withPosition: true,
	},
	{
		singleHint: "Component consistency",
		flowHint:   "Consistency",
		issue:      "Inconsistent component styles across screens.",
		dimension:  models.DimensionVisual,
		principles: []string{"Consistency", "Unity"},
		suggestion: "Normalize spacing, corner radii, and icon sizes across variants.",
	},
	{
		singleHint: "Loading performance",
		flowHint:   "Performance",
		issue:      "Large images may cause slow loading on mobile networks.",
		dimension:  models.DimensionUsability,
		principles: []string{"Performance", "Efficiency"},
		suggestion: "Optimize images and implement progressive loading.",
	},
	{
		singleHint: "Mobile responsiveness",
		flowHint:   "Mobile",
		issue:      "Some elements may be too small for touch interaction on mobile.",
		dimension:  models.DimensionUsability,
		principles: []string{"Touch Target Size", "Mobile First"},
		suggestion: "Ensure touch targets are at least 44px and provide adequate spacing.",
	},
}

var mockSeverities = []models.Severity{
	models.SeverityLow,
	models.SeverityMedium,
	models.SeverityHigh,
}

// MockResult synthesizes a structurally valid EvalResult. Structure is
// deterministic (items always match imageCount), numeric fields are
// randomized. Overall is drawn independently, not derived from the persona
// weighting.
func MockResult(model models.ModelProvider, personaID string, imageCount int, analysisType models.AnalysisType) *models.EvalResult {
	items := make([]models.ImageEval, 0, imageCount)
	isFlow := analysisType == models.AnalysisFlow

	for i := 0; i < imageCount; i++ {
		items = append(items, models.ImageEval{
			ImageID:   fmt.Sprintf("image-%d", i),
			PersonaID: personaID,
			Scores: models.Scores{
				Usability:     75 + rand.Intn(21), // 75-95
				Accessibility: 70 + rand.Intn(21), // 70-90
				Visual:        80 + rand.Intn(21), // 80-100
				Overall:       78 + rand.Intn(16), // 78-93
			},
			Highlights: mockHighlights(i, imageCount, isFlow),
			Issues:     mockIssues(i, isFlow),
			Narrative:  mockNarrative(i, isFlow),
			Verbatim: []string{
				"“I just want to get this done without all the extra stuff.”",
				"“Looks good, but where do I click next?”",
			},
		})
	}

	return &models.EvalResult{
		Model:     model,
		PersonaID: personaID,
		Items:     items,
	}
}

func mockHighlights(index, total int, isFlow bool) []string {
	if isFlow {
		return []string{
			fmt.Sprintf("Clear step progression (Step %d of %d)", index+1, total),
			"Consistent design language maintained",
			"Good visual flow between screens",
		}
	}
	return []string{
		"Clean and modern interface design",
		"Good use of white space",
		"Clear visual hierarchy",
	}
}

func mockIssues(index int, isFlow bool) []models.Issue {
	// Commonly 5-7 issues per image drawn from the pool, never duplicated.
	count := 5 + rand.Intn(3)
	order := rand.Perm(len(mockIssuePool))

	issues := make([]models.Issue, 0, count)
	for _, poolIdx := range order[:count] {
		candidate := mockIssuePool[poolIdx]

		hint := candidate.singleHint
		if isFlow {
			hint = fmt.Sprintf("Step %d %s", index+1, candidate.flowHint)
		}

		issue := models.Issue{
			StepHint:   hint,
			Issue:      candidate.issue,
			Severity:   mockSeverities[rand.Intn(len(mockSeverities))],
			Dimension:  candidate.dimension,
			Principles: candidate.principles,
			Suggestion: candidate.suggestion,
		}
		if candidate.withPosition {
			issue.Position = &models.Position{
				X:      20 + rand.Float64()*70, // 20-90%
				Y:      20 + rand.Float64()*70, // 20-90%
				Width:  10 + rand.Float64()*30,
				Height: 5 + rand.Float64()*15,
			}
		}
		issues = append(issues, issue)
	}
	return issues
}

func mockNarrative(index int, isFlow bool) string {
	if isFlow {
		return fmt.Sprintf("Step %d of the user flow demonstrates good visual consistency with previous screens. The interface maintains clear navigation patterns, though some improvements could enhance the user journey experience.", index+1)
	}
	return "This interface shows strong visual appeal with a clean, modern design. The layout effectively uses white space and maintains good visual hierarchy, though some accessibility improvements would benefit all users."
}

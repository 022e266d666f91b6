package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/kunlundesign/aiuxtester/internal/models"
)

type PersonaService interface {
	Builtins() []models.Persona
	Resolve(personaID string, custom *models.Persona) (*models.Persona, error)
	ImportCustom(raw map[string]interface{}) (*models.Persona, error)
}

type personaService struct{}

func NewPersonaService() PersonaService {
	return &personaService{}
}

// Builtins returns the fixed persona catalog in stable order. Callers get
// deep copies; mutating a returned persona never touches the catalog.
func (p *personaService) Builtins() []models.Persona {
	out := make([]models.Persona, len(builtinPersonas))
	for i, builtin := range builtinPersonas {
		out[i] = clonePersona(builtin)
	}
	return out
}

// Resolve finds the persona for a request. A supplied custom persona wins
// when its id matches the requested one; otherwise the builtin catalog is
// consulted. There is no fallback beyond that.
func (p *personaService) Resolve(personaID string, custom *models.Persona) (*models.Persona, error) {
	if custom != nil && custom.ID == personaID {
		c := clonePersona(*custom)
		return &c, nil
	}
	for _, builtin := range builtinPersonas {
		if builtin.ID == personaID {
			b := clonePersona(builtin)
			return &b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPersonaNotFound, personaID)
}

// clonePersona copies a persona including its slices and weighting map, so
// the catalog entries stay immutable behind the copies handed out.
func clonePersona(p models.Persona) models.Persona {
	out := p
	out.Traits = append([]string(nil), p.Traits...)
	out.Motivations = append([]string(nil), p.Motivations...)
	out.PainPoints = append([]string(nil), p.PainPoints...)
	out.DesignImplications = append([]string(nil), p.DesignImplications...)
	if p.Weighting != nil {
		out.Weighting = make(map[string]float64, len(p.Weighting))
		for k, v := range p.Weighting {
			out.Weighting[k] = v
		}
	}
	return out
}

// extractKind selects how a mapped source field is turned into list entries.
type extractKind int

const (
	kindString   extractKind = iota // scalar field, optionally labeled
	kindTraitMap                    // map field rendered as "<value> <key>"
)

// fieldMapping declares one recognized source path and where its value
// lands on the persona. The table below is the complete set of fields the
// importer understands; anything else in the uploaded profile is ignored.
type fieldMapping struct {
	target  string // traits | motivations | painPoints | designImplications
	section string
	field   string
	label   string // "" renders the raw value
	kind    extractKind
}

var customPersonaMappings = []fieldMapping{
	{target: "traits", section: "Psychographics & Personality", field: "personality_traits", kind: kindTraitMap},
	{target: "traits", section: "Psychographics & Personality", field: "mbti", label: "MBTI"},
	{target: "traits", section: "Digital Behavior & Online Habits", field: "device_usage", label: "Device preference"},
	{target: "traits", section: "Economic & Financial Profile", field: "spending_patterns", label: "Spending"},

	{target: "motivations", section: "Psychographics & Personality", field: "motivations"},
	{target: "motivations", section: "Interests & Preferences", field: "professional_interests"},
	{target: "motivations", section: "Interests & Preferences", field: "hobbies"},

	{target: "painPoints", section: "Digital Behavior & Online Habits", field: "ad_interactions", label: "Low engagement with ads"},
	{target: "painPoints", section: "Economic & Financial Profile", field: "spending_patterns", label: "Budget-conscious"},
	{target: "painPoints", section: "Psychographics & Personality", field: "cognitive_style", label: "Cognitive style"},

	{target: "designImplications", section: "Digital Behavior & Online Habits", field: "preferred_content_sources", label: "Content sources"},
	{target: "designImplications", section: "Interests & Preferences", field: "learning_style", label: "Learning style"},
	{target: "designImplications", section: "Digital Behavior & Online Habits", field: "search_patterns", label: "Search patterns"},
}

// Placeholder lists keep every target field non-empty when the uploaded
// profile yields nothing for it.
var customPersonaPlaceholders = map[string][]string{
	"traits":             {"Custom persona", "Detailed profile"},
	"motivations":        {"Custom motivations"},
	"painPoints":         {"Custom pain points"},
	"designImplications": {"Custom design implications"},
}

var slugCleaner = regexp.MustCompile(`\s+`)

// ImportCustom maps an arbitrary nested profile document into a Persona.
// Recognized sections and fields are declared in customPersonaMappings;
// missing fields are skipped and empty targets fall back to placeholders,
// so the returned persona never has an empty list.
func (p *personaService) ImportCustom(raw map[string]interface{}) (*models.Persona, error) {
	if raw == nil {
		return nil, ErrInvalidPersonaFormat
	}

	extracted := map[string][]string{}
	for _, m := range customPersonaMappings {
		section, ok := raw[m.section].(map[string]interface{})
		if !ok {
			continue
		}
		value, ok := section[m.field]
		if !ok || value == nil {
			continue
		}
		extracted[m.target] = append(extracted[m.target], m.extract(value)...)
	}

	for target, placeholder := range customPersonaPlaceholders {
		if len(extracted[target]) == 0 {
			extracted[target] = placeholder
		}
	}

	name := "Custom Persona"
	occupation := "professional"
	if core, ok := raw["Core Identity"].(map[string]interface{}); ok {
		if v, ok := core["full_name"].(string); ok && strings.TrimSpace(v) != "" {
			name = strings.TrimSpace(v)
		}
		if v, ok := core["occupation"].(string); ok && strings.TrimSpace(v) != "" {
			occupation = strings.TrimSpace(v)
		}
	}

	return &models.Persona{
		ID:                 customPersonaID(name),
		Name:               name,
		Traits:             extracted["traits"],
		Motivations:        extracted["motivations"],
		PainPoints:         extracted["painPoints"],
		DesignImplications: extracted["designImplications"],
		WhenToApply:        fmt.Sprintf("Custom persona based on %s profile", occupation),
		Weighting:          map[string]float64{"usability": 0.4, "accessibility": 0.3, "visual": 0.3},
	}, nil
}

func (m fieldMapping) extract(value interface{}) []string {
	switch m.kind {
	case kindTraitMap:
		entries, ok := value.(map[string]interface{})
		if !ok {
			return nil
		}
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var out []string
		for _, k := range keys {
			if s := stringify(entries[k]); s != "" {
				out = append(out, fmt.Sprintf("%s %s", s, k))
			}
		}
		return out
	default:
		s := stringify(value)
		if s == "" {
			return nil
		}
		if m.label != "" {
			s = fmt.Sprintf("%s: %s", m.label, s)
		}
		return []string{s}
	}
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64, bool:
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}

// customPersonaID builds a collision-proof id: a lower-cased hyphen slug of
// the name, prefixed custom- and suffixed with a creation-time nonce.
func customPersonaID(name string) string {
	slug := slugCleaner.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	if slug == "" {
		slug = "persona"
	}
	return fmt.Sprintf("custom-%s-%d", slug, time.Now().UnixMilli())
}

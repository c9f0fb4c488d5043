package namegen

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

//go:embed prompt/generate.md
var generatePromptTmpl string

var generatePrompt = template.Must(template.New("generate").Parse(generatePromptTmpl))

// Candidate generation bounds; requested counts are clamped into this range
const (
	MinNames     = 20
	MaxNames     = 50
	DefaultNames = 30
)

// DefaultPersonality is used when the requested personality is not recognized
const DefaultPersonality = "professional"

var validPersonalities = map[string]struct{}{
	"playful":      {},
	"professional": {},
	"innovative":   {},
	"luxury":       {},
}

// NormalizePersonality validates a brand personality, defaulting unknown
// values to professional.
func NormalizePersonality(personality string) string {
	p := strings.ToLower(strings.TrimSpace(personality))
	if _, ok := validPersonalities[p]; !ok {
		return DefaultPersonality
	}
	return p
}

// Candidate is one generated brand name proposal
type Candidate struct {
	BrandName      string `json:"brand_name"`
	NamingStrategy string `json:"naming_strategy"`
	Rationale      string `json:"rationale"`
	Tagline        string `json:"tagline"`
	Syllables      int    `json:"syllables"`
	MemorableScore int    `json:"memorable_score"`
}

// Generator produces brand name candidates from a user brief. With an LLM
// client it asks the model; without one, or when the model fails, it falls
// back to deterministic template generation.
type Generator struct {
	llmClient gollem.LLMClient
}

type Option func(*Generator)

// WithLLMClient enables model-based generation
func WithLLMClient(client gollem.LLMClient) Option {
	return func(g *Generator) {
		g.llmClient = client
	}
}

// New creates a name generator
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns between MinNames and MaxNames candidates for the brief.
// count is clamped into that range; zero means DefaultNames.
func (g *Generator) Generate(ctx context.Context, brief *model.UserBrief, count int) ([]Candidate, error) {
	if brief == nil || brief.ProductDescription == "" {
		return nil, goerr.New("product description is required")
	}

	switch {
	case count == 0:
		count = DefaultNames
	case count < MinNames:
		count = MinNames
	case count > MaxNames:
		count = MaxNames
	}

	normalized := *brief
	normalized.BrandPersonality = NormalizePersonality(brief.BrandPersonality)
	if normalized.TargetAudience == "" {
		normalized.TargetAudience = "General audience"
	}
	if normalized.Industry == "" {
		normalized.Industry = "general"
	}

	if g.llmClient != nil {
		candidates, err := g.generateWithModel(ctx, &normalized, count)
		if err == nil {
			return candidates, nil
		}
		logging.From(ctx).Warn("model name generation failed, using templates", "error", err.Error())
	}

	return g.generateWithTemplates(&normalized, count), nil
}

type llmNameResponse struct {
	Candidates []struct {
		BrandName      string `json:"brand_name"`
		NamingStrategy string `json:"naming_strategy"`
		Rationale      string `json:"rationale"`
		Tagline        string `json:"tagline"`
	} `json:"candidates"`
}

func (g *Generator) generateWithModel(ctx context.Context, brief *model.UserBrief, count int) ([]Candidate, error) {
	var buf bytes.Buffer
	if err := generatePrompt.Execute(&buf, map[string]any{
		"ProductDescription": brief.ProductDescription,
		"TargetAudience":     brief.TargetAudience,
		"BrandPersonality":   brief.BrandPersonality,
		"Industry":           brief.Industry,
		"Count":              count,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to build name generation prompt")
	}

	session, err := g.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(nameResponseSchema()),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buf.String()))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate names from LLM")
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("name generation returned empty response")
	}

	var parsed llmNameResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &parsed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse name generation response", goerr.V("response", resp.Texts[0]))
	}
	if len(parsed.Candidates) == 0 {
		return nil, goerr.New("name generation returned no candidates")
	}

	candidates := make([]Candidate, 0, len(parsed.Candidates))
	for _, c := range parsed.Candidates {
		if c.BrandName == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			BrandName:      c.BrandName,
			NamingStrategy: c.NamingStrategy,
			Rationale:      c.Rationale,
			Tagline:        c.Tagline,
			Syllables:      EstimateSyllables(c.BrandName),
			MemorableScore: memorableScore(c.BrandName),
		})
	}
	if len(candidates) == 0 {
		return nil, goerr.New("name generation returned only empty names")
	}
	return candidates, nil
}

func nameResponseSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "BrandNameCandidates",
		Description: "Generated brand name candidates",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"candidates": {
				Type:        gollem.TypeArray,
				Description: "List of brand name candidates",
				Required:    true,
				Items: &gollem.Parameter{
					Type: gollem.TypeObject,
					Properties: map[string]*gollem.Parameter{
						"brand_name": {
							Type:        gollem.TypeString,
							Description: "The candidate brand name",
							Required:    true,
						},
						"naming_strategy": {
							Type:        gollem.TypeString,
							Description: "One of: portmanteau, descriptive, invented, acronym, metaphor",
							Required:    true,
						},
						"rationale": {
							Type:        gollem.TypeString,
							Description: "One-sentence rationale for the name",
							Required:    true,
						},
						"tagline": {
							Type:        gollem.TypeString,
							Description: "Short tagline for the name",
							Required:    true,
						},
					},
				},
			},
		},
	}
}

// EstimateSyllables counts vowel groups as a syllable estimate.
// Single letters still count as one syllable.
func EstimateSyllables(word string) int {
	count := 0
	prevVowel := false
	for _, r := range strings.ToLower(word) {
		vowel := strings.ContainsRune("aeiou", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if count == 0 {
		count = 1
	}
	return count
}

// IsPronounceable reports whether the vowel ratio of the word falls in a
// band that reads naturally. Too few vowels is a consonant pileup; too
// many is equally awkward.
func IsPronounceable(word string) bool {
	if word == "" {
		return false
	}
	vowels := 0
	for _, r := range strings.ToLower(word) {
		if strings.ContainsRune("aeiou", r) {
			vowels++
		}
	}
	ratio := float64(vowels) / float64(len(word))
	return ratio >= 0.2 && ratio <= 0.8
}

func memorableScore(name string) int {
	score := 50
	if n := len(name); n >= 4 && n <= 12 {
		score += 15
	}
	if IsPronounceable(name) {
		score += 15
	}
	if EstimateSyllables(name) <= 3 {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

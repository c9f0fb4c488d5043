package story

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/benogren/brand-agent/pkg/service/namegen"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

//go:embed prompt/story.md
var storyPromptTmpl string

var storyPrompt = template.Must(template.New("story").Parse(storyPromptTmpl))

// Story is the narrative package generated for one brand name
type Story struct {
	Taglines         []string `json:"taglines"`
	BrandStory       string   `json:"brand_story"`
	HeroCopy         string   `json:"hero_copy"`
	ValueProposition string   `json:"value_proposition"`
}

// Writer generates brand stories. With an LLM client it asks the model;
// without one, or when the model fails, it falls back to personality-based
// templates.
type Writer struct {
	llmClient gollem.LLMClient
}

type Option func(*Writer)

// WithLLMClient enables model-based story generation
func WithLLMClient(client gollem.LLMClient) Option {
	return func(w *Writer) {
		w.llmClient = client
	}
}

// New creates a story writer
func New(opts ...Option) *Writer {
	w := &Writer{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Generate builds taglines, a brand story, hero copy and a value
// proposition for the brand name.
func (w *Writer) Generate(ctx context.Context, brandName, productDescription, personality, audience string) (*Story, error) {
	if brandName == "" {
		return nil, goerr.New("brand name is required")
	}
	if productDescription == "" {
		return nil, goerr.New("product description is required")
	}
	personality = namegen.NormalizePersonality(personality)
	if audience == "" {
		audience = "General audience"
	}

	if w.llmClient != nil {
		story, err := w.generateWithModel(ctx, brandName, productDescription, personality, audience)
		if err == nil {
			return story, nil
		}
		logging.From(ctx).Warn("model story generation failed, using templates", "error", err.Error())
	}

	return generateWithTemplates(brandName, productDescription, personality), nil
}

func (w *Writer) generateWithModel(ctx context.Context, brandName, productDescription, personality, audience string) (*Story, error) {
	var buf bytes.Buffer
	if err := storyPrompt.Execute(&buf, map[string]any{
		"BrandName":          brandName,
		"ProductDescription": productDescription,
		"BrandPersonality":   personality,
		"TargetAudience":     audience,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to build story prompt")
	}

	session, err := w.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(storyResponseSchema()),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buf.String()))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate story from LLM")
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("story generation returned empty response")
	}

	var story Story
	if err := json.Unmarshal([]byte(resp.Texts[0]), &story); err != nil {
		return nil, goerr.Wrap(err, "failed to parse story response", goerr.V("response", resp.Texts[0]))
	}
	if len(story.Taglines) == 0 || story.BrandStory == "" {
		return nil, goerr.New("story generation returned incomplete content")
	}
	return &story, nil
}

func storyResponseSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "BrandStory",
		Description: "Brand narrative and marketing copy",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"taglines": {
				Type:        gollem.TypeArray,
				Description: "Five tagline options, 5-8 words each",
				Required:    true,
				Items: &gollem.Parameter{
					Type: gollem.TypeString,
				},
			},
			"brand_story": {
				Type:        gollem.TypeString,
				Description: "Brand story, 200-300 words",
				Required:    true,
			},
			"hero_copy": {
				Type:        gollem.TypeString,
				Description: "Landing page hero copy, 50-100 words",
				Required:    true,
			},
			"value_proposition": {
				Type:        gollem.TypeString,
				Description: "Value proposition, 20-30 words",
				Required:    true,
			},
		},
	}
}

var personalityAdjectives = map[string]string{
	"playful":      "fun, creative, innovative",
	"professional": "reliable, efficient, trustworthy",
	"innovative":   "cutting-edge, transformative, forward-thinking",
	"luxury":       "premium, exclusive, sophisticated",
}

func generateWithTemplates(brandName, productDescription, personality string) *Story {
	adjectives, ok := personalityAdjectives[personality]
	if !ok {
		adjectives = "innovative, reliable"
	}

	return &Story{
		Taglines: []string{
			fmt.Sprintf("%s: Where innovation meets simplicity", brandName),
			fmt.Sprintf("Elevate your experience with %s", brandName),
			fmt.Sprintf("%s - The future is here", brandName),
			fmt.Sprintf("Transform your world with %s", brandName),
			fmt.Sprintf("%s: Built for tomorrow", brandName),
		},
		BrandStory: fmt.Sprintf(
			"%s was born from a simple idea: %s should be accessible, %s, and transformative. "+
				"We believe that great experiences come from understanding what people truly need. "+
				"Our mission is to deliver solutions that not only meet expectations but exceed them. "+
				"With %s, you're not just using a product, you're joining a community of forward-thinkers "+
				"who refuse to settle for the status quo.",
			brandName, productDescription, adjectives, brandName),
		HeroCopy: fmt.Sprintf(
			"Welcome to %s. We're revolutionizing %s with a %s approach that puts you first. "+
				"Experience the difference that thoughtful design and cutting-edge technology can make.",
			brandName, productDescription, personality),
		ValueProposition: fmt.Sprintf(
			"%s delivers %s that's %s, designed for modern needs.",
			brandName, productDescription, adjectives),
	}
}

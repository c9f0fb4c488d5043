package namegen_test

import (
	"context"
	"testing"

	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/service/namegen"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"
)

// mockLLMSession is a mock gollem Session for testing
type mockLLMSession struct {
	generateContentFn func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error)
}

func (s *mockLLMSession) GenerateContent(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
	if s.generateContentFn != nil {
		return s.generateContentFn(ctx, input...)
	}
	return &gollem.Response{Texts: []string{"{}"}}, nil
}

func (s *mockLLMSession) GenerateStream(ctx context.Context, input ...gollem.Input) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) Generate(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (*gollem.Response, error) {
	return s.GenerateContent(ctx, input...)
}

func (s *mockLLMSession) Stream(ctx context.Context, input []gollem.Input, opts ...gollem.GenerateOption) (<-chan *gollem.Response, error) {
	return nil, nil
}

func (s *mockLLMSession) History() (*gollem.History, error) {
	return nil, nil
}

func (s *mockLLMSession) AppendHistory(*gollem.History) error {
	return nil
}

func (s *mockLLMSession) CountToken(ctx context.Context, input ...gollem.Input) (int, error) {
	return 0, nil
}

// mockLLMClient is a mock gollem LLMClient for testing
type mockLLMClient struct {
	newSessionFn func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error)
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	if c.newSessionFn != nil {
		return c.newSessionFn(ctx, options...)
	}
	return &mockLLMSession{}, nil
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	return nil, nil
}

func testBrief() *model.UserBrief {
	return &model.UserBrief{
		ProductDescription: "AI meal planning app for busy parents",
		TargetAudience:     "Busy parents",
		BrandPersonality:   "playful",
		Industry:           "food_tech",
	}
}

func TestGenerateDefaultCount(t *testing.T) {
	g := namegen.New()
	ctx := context.Background()

	candidates, err := g.Generate(ctx, testBrief(), 0)
	gt.NoError(t, err).Required()
	gt.Array(t, candidates).Length(namegen.DefaultNames)

	first := candidates[0]
	gt.Value(t, first.BrandName).NotEqual("")
	gt.Value(t, first.NamingStrategy).NotEqual("")
	gt.Value(t, first.Rationale).NotEqual("")
	gt.Value(t, first.Tagline).NotEqual("")
	gt.Bool(t, first.Syllables >= 1).True()
	gt.Bool(t, first.MemorableScore > 0).True()
}

func TestGenerateCountClamping(t *testing.T) {
	g := namegen.New()
	ctx := context.Background()

	testCases := map[string]struct {
		requested int
		expected  int
	}{
		"minimum":        {requested: 20, expected: 20},
		"maximum":        {requested: 50, expected: 50},
		"below minimum":  {requested: 10, expected: 20},
		"above maximum":  {requested: 100, expected: 50},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			candidates, err := g.Generate(ctx, testBrief(), tc.requested)
			gt.NoError(t, err).Required()
			gt.Array(t, candidates).Length(tc.expected)
		})
	}
}

func TestGenerateRequiresDescription(t *testing.T) {
	g := namegen.New()
	ctx := context.Background()

	_, err := g.Generate(ctx, &model.UserBrief{}, 20)
	gt.Error(t, err)
	_, err = g.Generate(ctx, nil, 20)
	gt.Error(t, err)
}

func TestGenerateUniqueNames(t *testing.T) {
	g := namegen.New()
	ctx := context.Background()

	candidates, err := g.Generate(ctx, testBrief(), 50)
	gt.NoError(t, err).Required()

	seen := map[string]struct{}{}
	for _, c := range candidates {
		_, dup := seen[c.BrandName]
		gt.Bool(t, dup).False()
		seen[c.BrandName] = struct{}{}
	}
}

func TestGenerateWithModel(t *testing.T) {
	client := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return &gollem.Response{Texts: []string{`{
						"candidates": [
							{"brand_name": "Nourly", "naming_strategy": "invented", "rationale": "warm coined word", "tagline": "Dinner, solved"},
							{"brand_name": "Mealshift", "naming_strategy": "portmanteau", "rationale": "meal + shift", "tagline": "Change how you eat"}
						]
					}`}}, nil
				},
			}, nil
		},
	}

	g := namegen.New(namegen.WithLLMClient(client))
	ctx := context.Background()

	candidates, err := g.Generate(ctx, testBrief(), 20)
	gt.NoError(t, err).Required()

	gt.Array(t, candidates).Length(2)
	gt.Value(t, candidates[0].BrandName).Equal("Nourly")
	gt.Value(t, candidates[0].NamingStrategy).Equal("invented")
	gt.Bool(t, candidates[0].Syllables >= 1).True()
}

func TestGenerateModelFailureFallsBack(t *testing.T) {
	client := &mockLLMClient{
		newSessionFn: func(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
			return &mockLLMSession{
				generateContentFn: func(ctx context.Context, input ...gollem.Input) (*gollem.Response, error) {
					return nil, goerr.New("model unavailable")
				},
			}, nil
		},
	}

	g := namegen.New(namegen.WithLLMClient(client))
	ctx := context.Background()

	candidates, err := g.Generate(ctx, testBrief(), 20)
	gt.NoError(t, err).Required()
	gt.Array(t, candidates).Length(20)
}

func TestNormalizePersonality(t *testing.T) {
	gt.Value(t, namegen.NormalizePersonality("playful")).Equal("playful")
	gt.Value(t, namegen.NormalizePersonality("LUXURY")).Equal("luxury")
	gt.Value(t, namegen.NormalizePersonality("invalid_personality")).Equal("professional")
	gt.Value(t, namegen.NormalizePersonality("")).Equal("professional")
}

func TestEstimateSyllables(t *testing.T) {
	gt.Value(t, namegen.EstimateSyllables("cat")).Equal(1)
	gt.Value(t, namegen.EstimateSyllables("table")).Equal(2)
	gt.Value(t, namegen.EstimateSyllables("beautiful")).Equal(3)
	gt.Bool(t, namegen.EstimateSyllables("Spotify") >= 2).True()
	gt.Bool(t, namegen.EstimateSyllables("Amazon") >= 3).True()
	gt.Bool(t, namegen.EstimateSyllables("a") >= 1).True()
	gt.Bool(t, namegen.EstimateSyllables("xyz") >= 1).True()
}

func TestIsPronounceable(t *testing.T) {
	gt.Bool(t, namegen.IsPronounceable("Spotify")).True()
	gt.Bool(t, namegen.IsPronounceable("Amazon")).True()
	gt.Bool(t, namegen.IsPronounceable("Google")).True()

	gt.Bool(t, namegen.IsPronounceable("xyzqrs")).False()
	gt.Bool(t, namegen.IsPronounceable("bcdfg")).False()
	gt.Bool(t, namegen.IsPronounceable("aeiouy")).False()
	gt.Bool(t, namegen.IsPronounceable("")).False()
}

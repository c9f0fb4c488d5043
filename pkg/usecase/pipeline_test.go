package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/domain/types"
	"github.com/benogren/brand-agent/pkg/repository/memory"
	"github.com/benogren/brand-agent/pkg/service/domaincheck"
	"github.com/benogren/brand-agent/pkg/usecase"
	"github.com/m-mizutani/gt"
)

type allAvailableChecker struct{}

func (allAvailableChecker) Check(ctx context.Context, brandName string, extensions []types.Extension) (map[string]bool, error) {
	label := domaincheck.Normalize(brandName)
	results := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		results[label+ext.String()] = true
	}
	return results, nil
}

func newTestUseCases(t *testing.T) *usecase.UseCases {
	t.Helper()
	return usecase.New(memory.New(),
		usecase.WithDomainChecker(allAvailableChecker{}),
		usecase.WithTrademarkChecker(&mockTrademarkChecker{}),
		usecase.WithBatchDelay(time.Millisecond),
	)
}

func testBrief() *model.UserBrief {
	return &model.UserBrief{
		ProductDescription: "AI meal planning app for busy parents",
		TargetAudience:     "busy parents",
		BrandPersonality:   "playful",
		Industry:           "food_tech",
	}
}

func TestPipelineGenerate(t *testing.T) {
	uc := newTestUseCases(t)
	ctx := context.Background()

	output, err := uc.Pipeline.Generate(ctx, &usecase.GenerateInput{
		UserID: "user1",
		Brief:  testBrief(),
	})
	gt.NoError(t, err).Required()

	// Default candidate count, default validation depth.
	gt.Array(t, output.Candidates).Length(30)
	gt.Array(t, output.Validations).Length(5)

	gt.Value(t, output.Best).NotNil()
	gt.Value(t, output.Best.Status).Equal(types.ValidationStatusClear)

	gt.Value(t, output.SEO).NotNil()
	gt.Value(t, output.SEO.BrandName).Equal(output.Best.BrandName)
	gt.Value(t, output.Story).NotNil()
	gt.Array(t, output.Story.Taglines).Length(5)

	// Session recorded everything.
	gt.Value(t, output.Session).NotNil()
	gt.Value(t, output.Session.UserID).Equal(types.UserID("user1"))
	gt.Array(t, output.Session.GeneratedBrands).Length(5)

	eventTypes := make([]string, 0, len(output.Session.Events))
	for _, ev := range output.Session.Events {
		eventTypes = append(eventTypes, ev.Type)
	}
	gt.Array(t, eventTypes).
		Has("user_brief").
		Has("generation_complete")
}

func TestPipelineGenerateRequiresBrief(t *testing.T) {
	uc := newTestUseCases(t)

	_, err := uc.Pipeline.Generate(context.Background(), nil)
	gt.Error(t, err)

	_, err = uc.Pipeline.Generate(context.Background(), &usecase.GenerateInput{
		UserID: "user1",
		Brief:  &model.UserBrief{},
	})
	gt.Error(t, err)
}

func TestPipelineGenerateResumesSession(t *testing.T) {
	repo := memory.New()
	uc := usecase.New(repo,
		usecase.WithDomainChecker(allAvailableChecker{}),
		usecase.WithTrademarkChecker(&mockTrademarkChecker{}),
		usecase.WithBatchDelay(time.Millisecond),
	)
	ctx := context.Background()

	session, err := repo.Create(ctx, "user1", nil)
	gt.NoError(t, err).Required()

	output, err := uc.Pipeline.Generate(ctx, &usecase.GenerateInput{
		SessionID: session.ID,
		Brief:     testBrief(),
	})
	gt.NoError(t, err).Required()

	gt.Value(t, output.Session.ID).Equal(session.ID)
}

func TestPipelineGenerateUnknownSession(t *testing.T) {
	uc := newTestUseCases(t)

	_, err := uc.Pipeline.Generate(context.Background(), &usecase.GenerateInput{
		SessionID: "missing",
		Brief:     testBrief(),
	})
	gt.Error(t, err)
}

func TestPipelineGenerateBlockedBestSkipsContent(t *testing.T) {
	uc := usecase.New(memory.New(),
		usecase.WithDomainChecker(&mockDomainChecker{}),
		usecase.WithTrademarkChecker(&blockedTrademarkChecker{}),
		usecase.WithBatchDelay(time.Millisecond),
	)

	output, err := uc.Pipeline.Generate(context.Background(), &usecase.GenerateInput{
		UserID: "user1",
		Brief:  testBrief(),
	})
	gt.NoError(t, err).Required()

	gt.Value(t, output.Best).NotNil()
	gt.Value(t, output.Best.Status).Equal(types.ValidationStatusBlocked)
	gt.Value(t, output.SEO).Nil()
	gt.Value(t, output.Story).Nil()
}

type blockedTrademarkChecker struct{}

func (blockedTrademarkChecker) Search(ctx context.Context, brandName, category string) (*model.TrademarkCheck, error) {
	return &model.TrademarkCheck{
		RiskLevel:      types.TrademarkRiskCritical,
		ConflictsFound: 1,
		ExactMatches:   []model.TrademarkMatch{{Mark: brandName}},
		SimilarMarks:   []model.TrademarkMatch{},
	}, nil
}

func TestPipelineCompactsLongSessions(t *testing.T) {
	uc := usecase.New(memory.New(),
		usecase.WithDomainChecker(allAvailableChecker{}),
		usecase.WithTrademarkChecker(&mockTrademarkChecker{}),
		usecase.WithBatchDelay(time.Millisecond),
		usecase.WithTokenLimit(40),
	)

	output, err := uc.Pipeline.Generate(context.Background(), &usecase.GenerateInput{
		UserID: "user1",
		Brief:  testBrief(),
	})
	gt.NoError(t, err).Required()

	gt.Value(t, output.Compaction).NotNil()
	gt.Bool(t, output.Compaction.OriginalTurns > 0).True()

	compacted := false
	for _, ev := range output.Session.Events {
		if ev.Type == "context_compacted" {
			compacted = true
			gt.Value(t, ev.Content).Equal(output.Compaction.Summary)
		}
	}
	gt.Bool(t, compacted).True()
	gt.Value(t, output.Session.Metadata["compaction_summary"]).Equal(any(output.Compaction.Summary))
}

func TestPipelineValidateTopOverride(t *testing.T) {
	uc := newTestUseCases(t)

	output, err := uc.Pipeline.Generate(context.Background(), &usecase.GenerateInput{
		UserID:      "user1",
		Brief:       testBrief(),
		ValidateTop: 3,
	})
	gt.NoError(t, err).Required()

	gt.Array(t, output.Validations).Length(3)
	gt.Array(t, output.Session.GeneratedBrands).Length(3)
}

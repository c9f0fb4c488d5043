package usecase

import (
	"context"
	"sort"

	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/domain/types"
	"github.com/benogren/brand-agent/pkg/service/compaction"
	"github.com/benogren/brand-agent/pkg/service/namegen"
	"github.com/benogren/brand-agent/pkg/service/seo"
	"github.com/benogren/brand-agent/pkg/service/story"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultValidateTop is how many of the highest-scoring candidates get the
// full domain and trademark validation treatment.
const DefaultValidateTop = 5

// PipelineUseCase runs the full brand generation workflow: names,
// validation, SEO and story for the winner, all recorded in a session.
type PipelineUseCase struct {
	repo       interfaces.Repository
	validation *ValidationUseCase
	nameGen    *namegen.Generator
	seoWriter  func(brandName, productDescription, industry string) (*seo.Result, error)
	story      *story.Writer
	compactor  *compaction.Compactor
}

func NewPipelineUseCase(
	repo interfaces.Repository,
	validation *ValidationUseCase,
	nameGen *namegen.Generator,
	storyWriter *story.Writer,
	compactor *compaction.Compactor,
) *PipelineUseCase {
	return &PipelineUseCase{
		repo:       repo,
		validation: validation,
		nameGen:    nameGen,
		seoWriter:  seo.Optimize,
		story:      storyWriter,
		compactor:  compactor,
	}
}

// GenerateInput describes one run of the pipeline. SessionID resumes an
// existing session when set; otherwise a new session is created for UserID.
type GenerateInput struct {
	SessionID   types.SessionID
	UserID      types.UserID
	Brief       *model.UserBrief
	Count       int
	ValidateTop int
	Category    string
}

// GenerateOutput is everything one pipeline run produced. Best, SEO and
// Story are nil when no candidate survived validation.
type GenerateOutput struct {
	Session     *model.Session
	Candidates  []namegen.Candidate
	Validations []*model.ValidationResult
	Best        *model.ValidationResult
	SEO         *seo.Result
	Story       *story.Story
	Compaction  *model.CompactionResult
}

// Generate runs the pipeline end to end. Steps run sequentially; checker
// and model failures degrade inside their services, so the only errors
// surfacing here are bad input and persistence failures.
func (uc *PipelineUseCase) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil || input.Brief == nil || input.Brief.ProductDescription == "" {
		return nil, goerr.New("product description is required")
	}

	session, err := uc.resolveSession(ctx, input)
	if err != nil {
		return nil, err
	}
	logger := logging.From(ctx)

	if err := uc.repo.AddEvent(ctx, session.ID, &model.Event{
		Type:    "user_brief",
		Author:  "user",
		Content: input.Brief.ProductDescription,
		Metadata: map[string]any{
			"product_description": input.Brief.ProductDescription,
			"target_audience":     input.Brief.TargetAudience,
			"brand_personality":   input.Brief.BrandPersonality,
			"industry":            input.Brief.Industry,
		},
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to record user brief")
	}

	candidates, err := uc.nameGen.Generate(ctx, input.Brief, input.Count)
	if err != nil {
		return nil, goerr.Wrap(err, "name generation failed")
	}
	logger.Info("name candidates generated",
		"session_id", session.ID,
		"count", len(candidates),
	)

	validations, err := uc.validation.ValidateBatch(ctx, topCandidateNames(candidates, input.ValidateTop), input.Category)
	if err != nil {
		return nil, goerr.Wrap(err, "candidate validation failed")
	}

	output := &GenerateOutput{
		Candidates:  candidates,
		Validations: validations,
	}

	if len(validations) > 0 {
		output.Best = validations[0]
	}
	if output.Best != nil && output.Best.Status != types.ValidationStatusBlocked {
		seoResult, err := uc.seoWriter(output.Best.BrandName, input.Brief.ProductDescription, input.Brief.Industry)
		if err != nil {
			return nil, goerr.Wrap(err, "SEO optimization failed")
		}
		output.SEO = seoResult

		storyResult, err := uc.story.Generate(ctx, output.Best.BrandName,
			input.Brief.ProductDescription, input.Brief.BrandPersonality, input.Brief.TargetAudience)
		if err != nil {
			return nil, goerr.Wrap(err, "story generation failed")
		}
		output.Story = storyResult
	}

	for _, v := range validations {
		brand := &model.GeneratedBrand{
			Attributes: map[string]any{
				"brand_name":        v.BrandName,
				"validation_status": v.Status.String(),
				"overall_score":     v.Score,
				"best_domain":       v.Domain.BestAvailable.String(),
			},
		}
		if c := findCandidate(candidates, v.BrandName); c != nil {
			brand.Attributes["naming_strategy"] = c.NamingStrategy
			brand.Attributes["tagline"] = c.Tagline
		}
		if err := uc.repo.AddBrand(ctx, session.ID, brand); err != nil {
			return nil, goerr.Wrap(err, "failed to record brand", goerr.V("brand_name", v.BrandName))
		}
	}

	if err := uc.repo.AddEvent(ctx, session.ID, &model.Event{
		Type:   "generation_complete",
		Author: "pipeline",
		Metadata: map[string]any{
			"candidates": len(candidates),
			"validated":  len(validations),
		},
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to record completion event")
	}

	session, err = uc.repo.Get(ctx, session.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to reload session")
	}

	output.Compaction = uc.compactSession(ctx, session)
	if output.Compaction != nil {
		session, err = uc.repo.Get(ctx, session.ID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to reload session after compaction")
		}
	}
	output.Session = session

	return output, nil
}

func (uc *PipelineUseCase) resolveSession(ctx context.Context, input *GenerateInput) (*model.Session, error) {
	if input.SessionID != "" {
		session, err := uc.repo.Get(ctx, input.SessionID)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to load session", goerr.V("session_id", input.SessionID))
		}
		return session, nil
	}

	return uc.repo.Create(ctx, input.UserID, map[string]any{
		"industry":          input.Brief.Industry,
		"brand_personality": input.Brief.BrandPersonality,
	})
}

// compactSession checks the session's conversation size and, when it
// crosses the threshold, records the compacted summary. Compaction
// failures only warn; the pipeline result is already complete.
func (uc *PipelineUseCase) compactSession(ctx context.Context, session *model.Session) *model.CompactionResult {
	turns := sessionTurns(session)

	result, err := uc.compactor.CompactIfNeeded(ctx, turns)
	if err != nil {
		logging.From(ctx).Warn("context compaction failed",
			"session_id", session.ID,
			"error", err.Error(),
		)
		return nil
	}
	if result == nil {
		return nil
	}

	if err := uc.repo.AddEvent(ctx, session.ID, &model.Event{
		Type:    "context_compacted",
		Author:  "pipeline",
		Content: result.Summary,
		Metadata: map[string]any{
			"original_turns":   result.OriginalTurns,
			"compaction_ratio": result.CompactionRatio,
		},
	}); err != nil {
		logging.From(ctx).Warn("failed to record compaction event",
			"session_id", session.ID,
			"error", err.Error(),
		)
		return result
	}

	if err := uc.repo.Update(ctx, session.ID, &model.SessionUpdate{
		Metadata: map[string]any{"compaction_summary": result.Summary},
	}); err != nil {
		logging.From(ctx).Warn("failed to store compaction summary",
			"session_id", session.ID,
			"error", err.Error(),
		)
	}
	return result
}

// sessionTurns projects session events into conversation turns for
// compaction. The stored event log is append-only, so an earlier
// compaction shows up as a context_compacted event: the derived
// conversation restarts there, with the summary as its first turn.
// Brief metadata recorded on user_brief events is restored so
// essential-info extraction can find it.
func sessionTurns(session *model.Session) []model.Turn {
	events := session.Events
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == "context_compacted" {
			events = events[i:]
			break
		}
	}

	turns := make([]model.Turn, 0, len(events))
	for _, ev := range events {
		turn := model.Turn{
			Role:    ev.Author,
			Type:    ev.Type,
			Content: ev.Content,
		}
		if ev.Type == "user_brief" {
			turn.UserBrief = briefFromMetadata(ev.Metadata)
		}
		turns = append(turns, turn)
	}
	return turns
}

func briefFromMetadata(metadata map[string]any) *model.UserBrief {
	str := func(key string) string {
		v, _ := metadata[key].(string)
		return v
	}
	brief := &model.UserBrief{
		ProductDescription: str("product_description"),
		TargetAudience:     str("target_audience"),
		BrandPersonality:   str("brand_personality"),
		Industry:           str("industry"),
	}
	if brief.IsEmpty() {
		return nil
	}
	return brief
}

// topCandidateNames returns the names of the highest-scoring candidates,
// keeping generation order between equal scores.
func topCandidateNames(candidates []namegen.Candidate, top int) []string {
	if top <= 0 {
		top = DefaultValidateTop
	}

	ranked := make([]namegen.Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MemorableScore > ranked[j].MemorableScore
	})

	if top > len(ranked) {
		top = len(ranked)
	}
	names := make([]string, 0, top)
	for _, c := range ranked[:top] {
		names = append(names, c.BrandName)
	}
	return names
}

func findCandidate(candidates []namegen.Candidate, brandName string) *namegen.Candidate {
	for i := range candidates {
		if candidates[i].BrandName == brandName {
			return &candidates[i]
		}
	}
	return nil
}

package compaction

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// Conservative context-window estimates per model family
const (
	TokenLimitGeminiFlash = 32000
	TokenLimitGeminiPro   = 128000

	// CompactionThreshold is the fraction of the token limit at which
	// compaction kicks in.
	CompactionThreshold = 0.75

	// CharsPerToken is the approximate character-per-token ratio for
	// English text. Deliberately conservative.
	CharsPerToken = 4
)

// DefaultModelName is the summarization model used when none is configured
const DefaultModelName = "gemini-2.0-flash-exp"

// Compactor summarizes long conversation histories so brainstorming
// sessions never overflow the model context window. Essential information
// (user brief, approved names, feedback themes, key decisions) survives
// every compaction.
type Compactor struct {
	llmClient       gollem.LLMClient
	modelName       string
	tokenLimit      int
	thresholdTokens int
}

type Option func(*Compactor)

// WithLLMClient enables model-based summarization. Without a client the
// compactor always uses the rule-based summary.
func WithLLMClient(client gollem.LLMClient) Option {
	return func(c *Compactor) {
		c.llmClient = client
	}
}

// WithTokenLimit overrides the model-family token limit preset
func WithTokenLimit(limit int) Option {
	return func(c *Compactor) {
		if limit > 0 {
			c.tokenLimit = limit
		}
	}
}

// New creates a compactor. The token limit defaults by model family:
// names containing "flash" get the flash preset, everything else pro.
func New(modelName string, opts ...Option) *Compactor {
	if modelName == "" {
		modelName = DefaultModelName
	}

	c := &Compactor{modelName: modelName}
	if strings.Contains(strings.ToLower(modelName), "flash") {
		c.tokenLimit = TokenLimitGeminiFlash
	} else {
		c.tokenLimit = TokenLimitGeminiPro
	}

	for _, opt := range opts {
		opt(c)
	}

	c.thresholdTokens = int(float64(c.tokenLimit) * CompactionThreshold)
	return c
}

// TokenLimit returns the effective token limit
func (c *Compactor) TokenLimit() int {
	return c.tokenLimit
}

// EstimateTokens estimates the token count of a text by character division
func (c *Compactor) EstimateTokens(text string) int {
	return len(text) / CharsPerToken
}

func serializeHistory(history []model.Turn) (string, error) {
	data, err := json.Marshal(history)
	if err != nil {
		return "", goerr.Wrap(err, "failed to serialize conversation history")
	}
	return string(data), nil
}

// ShouldCompact reports whether the history has grown past the
// compaction threshold.
func (c *Compactor) ShouldCompact(history []model.Turn) bool {
	serialized, err := serializeHistory(history)
	if err != nil {
		return false
	}
	return c.EstimateTokens(serialized) >= c.thresholdTokens
}

// ExtractEssentialInfo scans the turn sequence for information that must
// survive compaction. The first user brief seen wins; approved names and
// feedback accumulate across all turns and are deduplicated. The result
// does not depend on scan order beyond the first-brief rule.
func ExtractEssentialInfo(history []model.Turn) model.EssentialInfo {
	info := model.EssentialInfo{
		ApprovedNames: []string{},
		FeedbackThemes: model.FeedbackThemes{
			Liked:    []string{},
			Disliked: []string{},
		},
		KeyDecisions: []model.KeyDecision{},
	}

	for _, turn := range history {
		if !turn.UserBrief.IsEmpty() && info.UserBrief.IsEmpty() {
			brief := *turn.UserBrief
			info.UserBrief = &brief
		}

		info.ApprovedNames = append(info.ApprovedNames, turn.ApprovedNames...)

		if turn.Feedback != nil {
			info.FeedbackThemes.Liked = append(info.FeedbackThemes.Liked, turn.Feedback.LikedNames...)
			info.FeedbackThemes.Disliked = append(info.FeedbackThemes.Disliked, turn.Feedback.DislikedNames...)
		}

		if turn.Decision != "" || turn.Constraint != "" {
			decisionType := turn.Type
			if decisionType == "" {
				decisionType = "unknown"
			}
			content := turn.Decision
			if content == "" {
				content = turn.Constraint
			}
			info.KeyDecisions = append(info.KeyDecisions, model.KeyDecision{
				Type:    decisionType,
				Content: content,
			})
		}
	}

	info.ApprovedNames = dedup(info.ApprovedNames)
	info.FeedbackThemes.Liked = dedup(info.FeedbackThemes.Liked)
	info.FeedbackThemes.Disliked = dedup(info.FeedbackThemes.Disliked)

	return info
}

// dedup removes duplicates and sorts for a deterministic result
func dedup(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// Compact summarizes the history while preserving essential information.
// A nil info means it is extracted from the history itself. Repeated
// compaction recomputes from scratch; no state carries across rounds.
func (c *Compactor) Compact(ctx context.Context, history []model.Turn, info *model.EssentialInfo) (*model.CompactionResult, error) {
	logger := logging.From(ctx)
	logger.Info("compacting conversation", "turns", len(history))

	var essential model.EssentialInfo
	if info != nil {
		essential = *info
	} else {
		essential = ExtractEssentialInfo(history)
	}

	var summary string
	if c.llmClient != nil {
		summary = c.summarizeWithModel(ctx, history, essential)
	} else {
		summary = c.summarizeRuleBased(history, essential)
	}

	originalJSON, err := serializeHistory(history)
	if err != nil {
		return nil, err
	}
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to serialize summary")
	}

	ratio := 0.0
	if len(originalJSON) > 0 {
		ratio = 1.0 - float64(len(summaryJSON))/float64(len(originalJSON))
	}

	logger.Info("conversation compacted",
		"turns", len(history),
		"ratio", ratio,
	)

	return &model.CompactionResult{
		Summary:         summary,
		EssentialInfo:   essential,
		CompactedAt:     time.Now().UTC(),
		OriginalTurns:   len(history),
		CompactionRatio: ratio,
	}, nil
}

// CompactIfNeeded compacts the history when it crosses the threshold and
// returns nil otherwise.
func (c *Compactor) CompactIfNeeded(ctx context.Context, history []model.Turn) (*model.CompactionResult, error) {
	if !c.ShouldCompact(history) {
		return nil, nil
	}
	return c.Compact(ctx, history, nil)
}

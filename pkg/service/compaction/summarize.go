package compaction

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/m-mizutani/gollem"
)

//go:embed prompt/summary.md
var summaryPromptTmpl string

var summaryPrompt = template.Must(template.New("summary").Parse(summaryPromptTmpl))

// summarizeWithModel asks the LLM for a narrative summary. Any failure
// falls back to the rule-based summary; this path never returns an error
// to its caller.
func (c *Compactor) summarizeWithModel(ctx context.Context, history []model.Turn, info model.EssentialInfo) string {
	logger := logging.From(ctx)

	prompt, err := c.buildSummaryPrompt(history, info)
	if err != nil {
		logger.Warn("failed to build summary prompt, using rule-based summary", "error", err.Error())
		return c.summarizeRuleBased(history, info)
	}

	session, err := c.llmClient.NewSession(ctx)
	if err != nil {
		logger.Warn("failed to create LLM session, using rule-based summary", "error", err.Error())
		return c.summarizeRuleBased(history, info)
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		logger.Warn("LLM summarization failed, using rule-based summary", "error", err.Error())
		return c.summarizeRuleBased(history, info)
	}
	if len(resp.Texts) == 0 || strings.TrimSpace(resp.Texts[0]) == "" {
		logger.Warn("LLM summarization returned empty result, using rule-based summary")
		return c.summarizeRuleBased(history, info)
	}

	return strings.TrimSpace(strings.Join(resp.Texts, "\n"))
}

func (c *Compactor) buildSummaryPrompt(history []model.Turn, info model.EssentialInfo) (string, error) {
	historyJSON, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return "", err
	}
	essentialJSON, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := summaryPrompt.Execute(&buf, map[string]string{
		"History":   string(historyJSON),
		"Essential": string(essentialJSON),
	}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// summarizeRuleBased builds a deterministic fixed-format summary. Always
// available, no external dependency.
func (c *Compactor) summarizeRuleBased(history []model.Turn, info model.EssentialInfo) string {
	var parts []string

	if !info.UserBrief.IsEmpty() {
		brief := info.UserBrief
		parts = append(parts, fmt.Sprintf("User Brief: %s | Industry: %s | Personality: %s",
			orNA(brief.ProductDescription),
			orNA(brief.Industry),
			orNA(brief.BrandPersonality),
		))
	}

	parts = append(parts, fmt.Sprintf("Total conversation turns: %d", len(history)))

	if len(info.ApprovedNames) > 0 {
		parts = append(parts, "Approved names: "+strings.Join(info.ApprovedNames, ", "))
	}

	if liked := head(info.FeedbackThemes.Liked, 5); len(liked) > 0 {
		parts = append(parts, "Liked patterns: "+strings.Join(liked, ", "))
	}
	if disliked := head(info.FeedbackThemes.Disliked, 5); len(disliked) > 0 {
		parts = append(parts, "Disliked patterns: "+strings.Join(disliked, ", "))
	}

	if len(info.KeyDecisions) > 0 {
		decisions := make([]string, 0, 3)
		for _, d := range info.KeyDecisions {
			if len(decisions) == 3 {
				break
			}
			decisions = append(decisions, orNA(d.Content))
		}
		parts = append(parts, "Key decisions: "+strings.Join(decisions, "; "))
	}

	return strings.Join(parts, "\n")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

package namegen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/benogren/brand-agent/pkg/domain/model"
)

// generateWithTemplates builds deterministic candidates from the brief.
// Same brief, same output; used when no LLM is configured or the model
// call fails.
func (g *Generator) generateWithTemplates(brief *model.UserBrief, count int) []Candidate {
	keywords := extractKeywords(brief.ProductDescription, brief.Industry)

	candidates := make([]Candidate, 0, count)
	seen := make(map[string]struct{}, count)
	builders := []struct {
		strategy string
		build    func(kw string, i int) (string, string)
	}{
		{"descriptive", buildDescriptive},
		{"invented", buildInvented},
		{"portmanteau", buildPortmanteau},
		{"acronym", buildAcronym},
		{"metaphor", buildMetaphor},
	}

	for i := 0; len(candidates) < count; i++ {
		b := builders[i%len(builders)]
		kw := keywords[(i/len(builders))%len(keywords)]

		name, rationale := b.build(kw, i)
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			name = fmt.Sprintf("%s%d", name, i)
			key = strings.ToLower(name)
		}
		seen[key] = struct{}{}

		candidates = append(candidates, Candidate{
			BrandName:      name,
			NamingStrategy: b.strategy,
			Rationale:      rationale,
			Tagline:        fmt.Sprintf("%s: built for what comes next", name),
			Syllables:      EstimateSyllables(name),
			MemorableScore: memorableScore(name),
		})
	}
	return candidates
}

func extractKeywords(description, industry string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(description)) {
		word = strings.TrimFunc(word, func(r rune) bool { return !unicode.IsLetter(r) })
		if len(word) > 4 {
			keywords = append(keywords, word)
		}
	}
	if industry != "" {
		keywords = append(keywords, strings.ToLower(industry))
	}
	if len(keywords) == 0 {
		keywords = []string{"brand"}
	}
	return keywords
}

var descriptiveSuffixes = []string{"ly", "hub", "base", "kit", "flow"}

func buildDescriptive(kw string, i int) (string, string) {
	suffix := descriptiveSuffixes[i%len(descriptiveSuffixes)]
	return title(kw + suffix), fmt.Sprintf("Describes the product directly through %q", kw)
}

var inventedEndings = []string{"io", "ora", "ix", "eo", "ara"}

func buildInvented(kw string, i int) (string, string) {
	stem := kw
	if len(stem) > 5 {
		stem = stem[:5]
	}
	ending := inventedEndings[i%len(inventedEndings)]
	return title(stem + ending), "Coined word with a familiar-sounding stem"
}

func buildPortmanteau(kw string, i int) (string, string) {
	halves := []string{"nova", "lume", "vert", "cade", "aria"}
	other := halves[i%len(halves)]
	cut := len(kw)
	if cut > 4 {
		cut = 4
	}
	return title(kw[:cut] + other), fmt.Sprintf("Blend of %q and %q", kw, other)
}

func buildAcronym(kw string, i int) (string, string) {
	base := strings.ToUpper(kw)
	if len(base) > 3 {
		base = base[:3]
	}
	return base + "X", "Compact initialism with a sharp edge"
}

var metaphorRoots = []string{"Summit", "Anchor", "Compass", "Beacon", "Orbit"}

func buildMetaphor(kw string, i int) (string, string) {
	root := metaphorRoots[i%len(metaphorRoots)]
	return root + title(shortStem(kw)), fmt.Sprintf("Evokes %s as an image for %q", strings.ToLower(root), kw)
}

func shortStem(kw string) string {
	if len(kw) > 4 {
		return kw[:4]
	}
	return kw
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

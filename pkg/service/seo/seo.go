package seo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Result holds the SEO optimization output for one brand name
type Result struct {
	BrandName            string   `json:"brand_name"`
	Score                int      `json:"seo_score"`
	MetaTitle            string   `json:"meta_title"`
	MetaDescription      string   `json:"meta_description"`
	PrimaryKeywords      []string `json:"primary_keywords"`
	SecondaryKeywords    []string `json:"secondary_keywords"`
	ContentOpportunities []string `json:"content_opportunities"`
	OptimizationTips     []string `json:"optimization_tips"`
}

const (
	maxTitleLen       = 60
	maxDescriptionLen = 160
)

// Optimize generates SEO content for a brand name. Entirely rule-based:
// the same inputs always produce the same output.
func Optimize(brandName, productDescription, industry string) (*Result, error) {
	if brandName == "" {
		return nil, goerr.New("brand name is required")
	}
	if productDescription == "" {
		return nil, goerr.New("product description is required")
	}
	if industry == "" {
		industry = "general"
	}

	return &Result{
		BrandName:            brandName,
		Score:                score(brandName, productDescription),
		MetaTitle:            metaTitle(brandName, productDescription),
		MetaDescription:      metaDescription(brandName, productDescription),
		PrimaryKeywords:      primaryKeywords(productDescription, industry),
		SecondaryKeywords:    secondaryKeywords(brandName, industry),
		ContentOpportunities: contentTopics(brandName, industry),
		OptimizationTips:     optimizationTips(brandName),
	}, nil
}

// score rates SEO potential 0-100: base 50, plus length, keyword overlap
// and pronounceability bonuses.
func score(brandName, description string) int {
	s := 50

	if n := len(brandName); n >= 4 && n <= 12 {
		s += 15
	}

	descWords := map[string]struct{}{}
	for _, w := range strings.Fields(strings.ToLower(description)) {
		descWords[w] = struct{}{}
	}
	for _, w := range strings.Fields(strings.ToLower(brandName)) {
		if _, ok := descWords[w]; ok {
			s += 20
			break
		}
	}

	vowels := 0
	for _, r := range strings.ToLower(brandName) {
		if strings.ContainsRune("aeiou", r) {
			vowels++
		}
	}
	if len(brandName) > 0 {
		ratio := float64(vowels) / float64(len(brandName))
		if ratio >= 0.3 && ratio <= 0.5 {
			s += 15
		}
	}

	if s > 100 {
		s = 100
	}
	return s
}

func metaTitle(brandName, description string) string {
	words := strings.Fields(description)
	benefit := description
	if len(words) >= 3 {
		benefit = strings.Join(words[:3], " ")
	} else if len(benefit) > 20 {
		benefit = benefit[:20]
	}

	title := fmt.Sprintf("%s - %s", brandName, benefit)
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen]
	}
	return title
}

func metaDescription(brandName, description string) string {
	desc := fmt.Sprintf("%s: %s", brandName, description)
	if len(desc) < 150 {
		desc += " Discover the future of innovation."
	}
	if len(desc) > maxDescriptionLen {
		desc = desc[:maxDescriptionLen]
	}
	return desc
}

func primaryKeywords(description, industry string) []string {
	seen := map[string]struct{}{}
	var keywords []string

	add := func(w string) {
		if _, ok := seen[w]; ok {
			return
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
	}

	count := 0
	for _, w := range strings.Fields(strings.ToLower(description)) {
		if len(w) > 4 && count < 3 {
			add(w)
			count++
		}
	}
	add(strings.ToLower(industry))

	sort.Strings(keywords)
	return keywords
}

func secondaryKeywords(brandName, industry string) []string {
	return []string{
		fmt.Sprintf("%s %s", strings.ToLower(brandName), industry),
		fmt.Sprintf("best %s solution", industry),
		fmt.Sprintf("%s platform", industry),
	}
}

func contentTopics(brandName, industry string) []string {
	return []string{
		fmt.Sprintf("How %s transforms %s", brandName, industry),
		fmt.Sprintf("Top %s trends to watch", industry),
		fmt.Sprintf("%s vs competitors: A comparison", brandName),
	}
}

func optimizationTips(brandName string) []string {
	tips := []string{"Use brand name consistently across all platforms"}
	if len(brandName) > 15 {
		tips = append(tips, "Consider shortening brand name for better SEO")
	}
	tips = append(tips,
		"Create high-quality backlinks from industry sites",
		"Optimize page load speed for better rankings",
	)
	return tips
}

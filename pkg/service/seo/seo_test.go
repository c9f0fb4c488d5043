package seo_test

import (
	"strings"
	"testing"

	"github.com/benogren/brand-agent/pkg/service/seo"
	"github.com/m-mizutani/gt"
)

func TestOptimizeRequiresInputs(t *testing.T) {
	_, err := seo.Optimize("", "AI meal planning app", "food_tech")
	gt.Error(t, err)

	_, err = seo.Optimize("Nourly", "", "food_tech")
	gt.Error(t, err)
}

func TestOptimizeBasic(t *testing.T) {
	result, err := seo.Optimize("Nourly", "AI meal planning app for busy parents", "food_tech")
	gt.NoError(t, err).Required()

	gt.Value(t, result.BrandName).Equal("Nourly")
	gt.Number(t, result.Score).GreaterOrEqual(50).LessOrEqual(100)
	gt.Value(t, result.MetaTitle).Equal("Nourly - AI meal planning")
	gt.Bool(t, len(result.MetaTitle) <= 60).True()
	gt.Bool(t, len(result.MetaDescription) <= 160).True()
	gt.Bool(t, strings.HasPrefix(result.MetaDescription, "Nourly: AI meal planning app")).True()
	gt.Bool(t, strings.Contains(result.MetaDescription, "Discover the future of innovation.")).True()
}

func TestOptimizeDeterministic(t *testing.T) {
	a, err := seo.Optimize("Mealshift", "AI meal planning app for busy parents", "food_tech")
	gt.NoError(t, err).Required()
	b, err := seo.Optimize("Mealshift", "AI meal planning app for busy parents", "food_tech")
	gt.NoError(t, err).Required()

	gt.Value(t, a).Equal(b)
}

func TestScoreLengthBonus(t *testing.T) {
	short, err := seo.Optimize("Nourly", "meal planning", "food_tech")
	gt.NoError(t, err).Required()
	long, err := seo.Optimize("Extraordinarilylongbrandname", "meal planning", "food_tech")
	gt.NoError(t, err).Required()

	gt.Number(t, short.Score).Greater(long.Score)
}

func TestScoreKeywordOverlap(t *testing.T) {
	// The brand name word "meal" appears in the description.
	overlap, err := seo.Optimize("Meal Genius", "AI meal planning app", "food_tech")
	gt.NoError(t, err).Required()
	noOverlap, err := seo.Optimize("Qwrtzix Genius", "AI planning app", "food_tech")
	gt.NoError(t, err).Required()

	gt.Number(t, overlap.Score).Greater(noOverlap.Score)
}

func TestScoreCapped(t *testing.T) {
	result, err := seo.Optimize("Meal", "meal planning for everyone searching daily", "food_tech")
	gt.NoError(t, err).Required()

	gt.Number(t, result.Score).LessOrEqual(100)
}

func TestPrimaryKeywords(t *testing.T) {
	result, err := seo.Optimize("Nourly", "AI meal planning app for busy parents", "food_tech")
	gt.NoError(t, err).Required()

	seen := map[string]bool{}
	for _, kw := range result.PrimaryKeywords {
		gt.Bool(t, seen[kw]).False()
		seen[kw] = true
	}
	gt.Bool(t, seen["food_tech"]).True()
	gt.Bool(t, seen["planning"]).True()
}

func TestSecondaryKeywords(t *testing.T) {
	result, err := seo.Optimize("Nourly", "meal planning", "food_tech")
	gt.NoError(t, err).Required()

	gt.Array(t, result.SecondaryKeywords).Length(3).
		Has("nourly food_tech").
		Has("best food_tech solution").
		Has("food_tech platform")
}

func TestOptimizationTipsForLongNames(t *testing.T) {
	short, err := seo.Optimize("Nourly", "meal planning", "food_tech")
	gt.NoError(t, err).Required()
	long, err := seo.Optimize("Extraordinarilylongbrandname", "meal planning", "food_tech")
	gt.NoError(t, err).Required()

	gt.Array(t, short.OptimizationTips).Length(3)
	gt.Array(t, long.OptimizationTips).Length(4).
		Has("Consider shortening brand name for better SEO")
}

func TestMetaTitleShortDescription(t *testing.T) {
	result, err := seo.Optimize("Nourly", "meals", "food_tech")
	gt.NoError(t, err).Required()

	gt.Value(t, result.MetaTitle).Equal("Nourly - meals")
}

func TestDefaultIndustry(t *testing.T) {
	result, err := seo.Optimize("Nourly", "meal planning", "")
	gt.NoError(t, err).Required()

	gt.Array(t, result.SecondaryKeywords).Has("general platform")
}

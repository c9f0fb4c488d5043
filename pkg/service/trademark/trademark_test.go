package trademark_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benogren/brand-agent/pkg/domain/types"
	"github.com/benogren/brand-agent/pkg/service/trademark"
	"github.com/m-mizutani/gt"
)

func TestStubWellKnownMarkIsCritical(t *testing.T) {
	checker := trademark.NewStubChecker()
	ctx := context.Background()

	result, err := checker.Search(ctx, "Apple", "")
	gt.NoError(t, err).Required()

	gt.Value(t, result.RiskLevel).Equal(types.TrademarkRiskCritical)
	gt.Array(t, result.ExactMatches).Length(1)
	gt.Value(t, result.ExactMatches[0].Owner).Equal("Apple Inc.")
}

func TestStubInventedNameLowRisk(t *testing.T) {
	checker := trademark.NewStubChecker()
	ctx := context.Background()

	result, err := checker.Search(ctx, "Zynthiqor", "")
	gt.NoError(t, err).Required()

	gt.Array(t, result.ExactMatches).Length(0)
	gt.Bool(t, result.RiskLevel == types.TrademarkRiskCritical).False()
	gt.Bool(t, result.RiskLevel.IsValid()).True()
}

func TestStubDeterministic(t *testing.T) {
	checker := trademark.NewStubChecker()
	ctx := context.Background()

	first, err := checker.Search(ctx, "Nourly", "")
	gt.NoError(t, err).Required()
	second, err := checker.Search(ctx, "Nourly", "")
	gt.NoError(t, err).Required()

	gt.Value(t, first).Equal(second)
}

func TestUSPTOClientSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.URL.Query().Get("searchText")).Equal("TechFlow")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"records": [
				{"wordMark": "TechFlow", "ownerName": "TechFlow Inc.", "status": "LIVE", "serialNumber": "87654321"},
				{"wordMark": "TechFlowPro", "ownerName": "Other Corp", "status": "LIVE", "serialNumber": "87654322"}
			]
		}`))
	}))
	defer srv.Close()

	checker := trademark.NewUSPTOClient("test-key", trademark.WithBaseURL(srv.URL))
	ctx := context.Background()

	result, err := checker.Search(ctx, "TechFlow", "")
	gt.NoError(t, err).Required()

	gt.Value(t, result.RiskLevel).Equal(types.TrademarkRiskCritical)
	gt.Value(t, result.ConflictsFound).Equal(2)
	gt.Array(t, result.ExactMatches).Length(1)
	gt.Array(t, result.SimilarMarks).Length(1)
	gt.Value(t, result.ExactMatches[0].Mark).Equal("TechFlow")
}

func TestUSPTOClientFailureYieldsUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer srv.Close()

	checker := trademark.NewUSPTOClient("", trademark.WithBaseURL(srv.URL))
	ctx := context.Background()

	// Backend failures must never propagate; they degrade to unknown risk
	result, err := checker.Search(ctx, "TechFlow", "")
	gt.NoError(t, err).Required()

	gt.Value(t, result.RiskLevel).Equal(types.TrademarkRiskUnknown)
	gt.Array(t, result.ExactMatches).Length(0)
}

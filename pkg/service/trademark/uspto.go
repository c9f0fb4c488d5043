package trademark

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/benogren/brand-agent/pkg/domain/interfaces"
	"github.com/benogren/brand-agent/pkg/domain/model"
	"github.com/benogren/brand-agent/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const defaultBaseURL = "https://developer.uspto.gov/ds-api/trademark/v1/records"

// USPTOClient searches the USPTO trademark database over HTTP.
// Any failure (network, HTTP status, decode) degrades to an unknown-risk
// result instead of propagating; trademark search is advisory, not
// authoritative, and the pipeline must keep moving.
type USPTOClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ interfaces.TrademarkChecker = &USPTOClient{}

type USPTOOption func(*USPTOClient)

// WithBaseURL overrides the API endpoint, mainly for tests
func WithBaseURL(baseURL string) USPTOOption {
	return func(c *USPTOClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(client *http.Client) USPTOOption {
	return func(c *USPTOClient) {
		c.httpClient = client
	}
}

// NewUSPTOClient creates a USPTO-backed trademark checker
func NewUSPTOClient(apiKey string, opts ...USPTOOption) *USPTOClient {
	c := &USPTOClient{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type usptoRecord struct {
	WordMark     string `json:"wordMark"`
	OwnerName    string `json:"ownerName"`
	Status       string `json:"status"`
	SerialNumber string `json:"serialNumber"`
}

type usptoResponse struct {
	Records []usptoRecord `json:"records"`
}

// Search queries the USPTO database for marks matching the brand name
func (c *USPTOClient) Search(ctx context.Context, brandName string, category string) (*model.TrademarkCheck, error) {
	result, err := c.query(ctx, brandName, category)
	if err != nil {
		logging.From(ctx).Warn("trademark search failed, reporting unknown risk",
			"brand_name", brandName,
			"error", err.Error(),
		)
		return unknownCheck(), nil
	}
	return result, nil
}

func (c *USPTOClient) query(ctx context.Context, brandName, category string) (*model.TrademarkCheck, error) {
	params := url.Values{}
	params.Set("searchText", brandName)
	if category != "" {
		params.Set("classification", category)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build trademark search request")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("USPTO-API-KEY", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "trademark search request failed", goerr.V("brand_name", brandName))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("trademark search returned non-OK status",
			goerr.V("status", resp.StatusCode),
			goerr.V("brand_name", brandName),
		)
	}

	var body usptoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, goerr.Wrap(err, "failed to decode trademark search response")
	}

	var exact, similar []model.TrademarkMatch
	want := strings.ToLower(strings.TrimSpace(brandName))
	for _, rec := range body.Records {
		match := model.TrademarkMatch{
			Mark:         rec.WordMark,
			Owner:        rec.OwnerName,
			Status:       rec.Status,
			SerialNumber: rec.SerialNumber,
		}
		if strings.ToLower(strings.TrimSpace(rec.WordMark)) == want {
			exact = append(exact, match)
		} else {
			similar = append(similar, match)
		}
	}

	return buildCheck(exact, similar), nil
}

// FILE: internal/repository/sheets/client.go
// HTTP client for the Google Sheets values endpoint. The sheet is the only
// datastore this service has; every dataset is one A1 range of one
// spreadsheet, fetched read-only with an API key.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"salesdesk-be/internal/config"
)

type Client struct {
	httpClient    *http.Client
	baseURL       string
	spreadsheetID string
	apiKey        string
}

func NewClient(cfg config.SheetsConfig) *Client {
	return &Client{
		httpClient:    &http.Client{},
		baseURL:       cfg.BaseURL,
		spreadsheetID: cfg.SpreadsheetID,
		apiKey:        cfg.APIKey,
	}
}

type valuesResponse struct {
	Values [][]string `json:"values"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Values fetches one range. On a non-2xx status the server-provided error
// message, if any, is folded into the returned error so the page-level
// failure text stays descriptive.
func (c *Client) Values(ctx context.Context, a1Range string) ([][]string, error) {
	reqURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		c.baseURL, c.spreadsheetID, url.PathEscape(a1Range), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build sheet request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet data: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		errMsg := fmt.Sprintf("failed to fetch sheet data (HTTP %d)", res.StatusCode)
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			errMsg += ": " + apiErr.Error.Message
		}
		return nil, fmt.Errorf("%s", errMsg)
	}

	var payload valuesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid sheet response: %w", err)
	}

	// An absent "values" field decodes to nil; callers treat that the same as
	// a grid too short to transform.
	return payload.Values, nil
}

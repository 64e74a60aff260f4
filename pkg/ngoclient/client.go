// Package ngoclient is a Go client for the NGO Connect transparency endpoints, with
// form and list adapters that keep the submit-then-refresh flow of the reporting screen.
package ngoclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Credentials authenticate a call. They are passed explicitly to every call that needs them.
type Credentials struct {
	Token string
}

// FundReportInput is the body of a report submission. Amounts are decimal strings.
type FundReportInput struct {
	ReportDate         string `json:"reportDate" validate:"required"`
	TotalFundsReceived string `json:"totalFundsReceived" validate:"required"`
	TotalFundsSpent    string `json:"totalFundsSpent" validate:"required"`
	Breakdown          string `json:"breakdown" validate:"required"`
}

// FundReport is a stored report as returned by the API.
type FundReport struct {
	ID                 string          `json:"id"`
	NGOID              string          `json:"ngoId"`
	ReportDate         string          `json:"reportDate"`
	TotalFundsReceived decimal.Decimal `json:"totalFundsReceived"`
	TotalFundsSpent    decimal.Decimal `json:"totalFundsSpent"`
	Breakdown          string          `json:"breakdown"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// APIError is an error envelope returned by the server.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *APIError       `json:"error"`
}

// Client calls the API at a base URL such as "http://localhost:8080/api".
// Each call is a single request with no retry.
type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a client. A nil httpClient gets a 30 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// SubmitFundReport creates a report for ngoID.
func (c *Client) SubmitFundReport(ctx context.Context, creds Credentials, ngoID string, in FundReportInput) (*FundReport, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode fund report: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.reportsURL(ngoID), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if creds.Token != "" {
		req.Header.Set("Authorization", "Bearer "+creds.Token)
	}

	var report FundReport
	if err := c.do(req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ListFundReports returns ngoID's reports, newest first.
func (c *Client) ListFundReports(ctx context.Context, ngoID string) ([]FundReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.reportsURL(ngoID), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	reports := []FundReport{}
	if err := c.do(req, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Client) reportsURL(ngoID string) string {
	return c.baseURL + "/transparency/reports/ngo/" + url.PathEscape(ngoID)
}

func (c *Client) do(req *http.Request, dst interface{}) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{Code: "HTTP_ERROR", Message: http.StatusText(resp.StatusCode), Status: resp.StatusCode}
		}
		return fmt.Errorf("decode response: %w", err)
	}
	if env.Error != nil {
		return env.Error
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{Code: "HTTP_ERROR", Message: http.StatusText(resp.StatusCode), Status: resp.StatusCode}
	}
	if dst == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

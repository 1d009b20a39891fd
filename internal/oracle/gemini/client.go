// Package gemini implements the oracle port against the Gemini
// generateContent REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"smartspend/internal/core"
	"smartspend/internal/oracle"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"
	requestTimeout = 10 * time.Second

	// Descriptions this short carry too little signal to categorize.
	minSuggestLength = 3
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string

	// Online reports network availability. Nil means always online.
	Online func() bool
}

type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
	online     func() bool
}

func NewClient(cfg Config) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		online:     cfg.Online,
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.online == nil {
		c.online = func() bool { return true }
	}
	return c
}

// SuggestCategory asks the model to pick one of the available category
// names. Any failure degrades to no suggestion.
func (c *Client) SuggestCategory(ctx context.Context, description string, amount core.Money, categories []core.Category) (string, bool) {
	if len(strings.TrimSpace(description)) < minSuggestLength || !c.online() {
		return "", false
	}

	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.Name
	}

	prompt := fmt.Sprintf(`Categorize this expense into exactly one of these categories: [%s].

Expense: %q
Amount: %s

Return ONLY the exact category name from the list provided.`,
		strings.Join(names, ", "), description, amount)

	text, err := c.generate(ctx, prompt, true)
	if err != nil {
		slog.DebugContext(ctx, "Category suggestion failed", "error", err)
		return "", false
	}

	var parsed struct {
		CategoryName string `json:"categoryName"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		// Some responses come back as the bare name instead of JSON.
		parsed.CategoryName = strings.TrimSpace(text)
	}

	for _, cat := range categories {
		if strings.EqualFold(cat.Name, parsed.CategoryName) {
			return cat.ID, true
		}
	}
	return "", false
}

// MonthlyInsight summarizes a month of spending in one short line. Empty
// months and offline states short-circuit without a request.
func (c *Client) MonthlyInsight(ctx context.Context, expenses []core.Expense, categories []core.Category, monthLabel string) string {
	if len(expenses) == 0 {
		return oracle.InsightNoExpenses
	}
	if !c.online() {
		return oracle.InsightOffline
	}

	var summary strings.Builder
	for _, e := range expenses {
		name := core.ResolveCategoryName(categories, e.CategoryID)
		fmt.Fprintf(&summary, "%s: %s (%s) - %s\n", e.Date, e.Description, e.Amount, name)
	}

	prompt := fmt.Sprintf(`Analyze these expenses for %s.
Give me a VERY SHORT, FUN, and FRIENDLY observation or tip (Max 20 words).
Use emojis. Be like a cool best friend.

Expenses:
%s`, monthLabel, summary.String())

	text, err := c.generate(ctx, prompt, false)
	if err != nil {
		slog.DebugContext(ctx, "Monthly insight failed", "error", err)
		return oracle.InsightFailure
	}
	if strings.TrimSpace(text) == "" {
		return oracle.InsightDefault
	}
	return text
}

type (
	generateRequest struct {
		Contents         []content         `json:"contents"`
		GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
	}

	content struct {
		Parts []part `json:"parts"`
	}

	part struct {
		Text string `json:"text"`
	}

	generationConfig struct {
		ResponseMIMEType string `json:"responseMimeType,omitempty"`
	}

	generateResponse struct {
		Candidates []struct {
			Content content `json:"content"`
		} `json:"candidates"`
	}
)

func (c *Client) generate(ctx context.Context, prompt string, jsonResponse bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if jsonResponse {
		reqBody.GenerationConfig = &generationConfig{ResponseMIMEType: "application/json"}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

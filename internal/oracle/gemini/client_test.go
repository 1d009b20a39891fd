package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"smartspend/internal/core"
	"smartspend/internal/oracle"
)

func testCategories() []core.Category {
	return []core.Category{
		{ID: "cat_food", Name: "Food & Dining"},
		{ID: "cat_transport", Name: "Transportation"},
	}
}

// fakeGemini serves a canned generateContent response.
func fakeGemini(t *testing.T, text string, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header, got %q", r.Header.Get("x-goog-api-key"))
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
}

func TestSuggestCategoryJSONResponse(t *testing.T) {
	srv, _ := fakeGemini(t, `{"categoryName":"Food & Dining"}`, http.StatusOK)
	c := newTestClient(srv)

	id, ok := c.SuggestCategory(context.Background(), "Pizza night", core.Money{Cents: 2000}, testCategories())
	if !ok || id != "cat_food" {
		t.Fatalf("got (%q, %v), want (cat_food, true)", id, ok)
	}
}

func TestSuggestCategoryBareNameResponse(t *testing.T) {
	srv, _ := fakeGemini(t, "  Transportation \n", http.StatusOK)
	c := newTestClient(srv)

	id, ok := c.SuggestCategory(context.Background(), "Airport taxi", core.Money{Cents: 30000}, testCategories())
	if !ok || id != "cat_transport" {
		t.Fatalf("got (%q, %v), want (cat_transport, true)", id, ok)
	}
}

func TestSuggestCategoryUnknownName(t *testing.T) {
	srv, _ := fakeGemini(t, `{"categoryName":"Gadgets"}`, http.StatusOK)
	c := newTestClient(srv)

	if id, ok := c.SuggestCategory(context.Background(), "New phone", core.Money{Cents: 500}, testCategories()); ok {
		t.Fatalf("unexpected match %q for a name outside the list", id)
	}
}

func TestSuggestCategoryServerError(t *testing.T) {
	srv, _ := fakeGemini(t, "", http.StatusInternalServerError)
	c := newTestClient(srv)

	if _, ok := c.SuggestCategory(context.Background(), "Pizza night", core.Money{Cents: 2000}, testCategories()); ok {
		t.Fatal("server error must degrade to no suggestion")
	}
}

func TestSuggestCategorySkipsShortDescriptions(t *testing.T) {
	srv, calls := fakeGemini(t, `{"categoryName":"Food & Dining"}`, http.StatusOK)
	c := newTestClient(srv)

	if _, ok := c.SuggestCategory(context.Background(), "ab", core.Money{Cents: 100}, testCategories()); ok {
		t.Fatal("short description must not be categorized")
	}
	if calls.Load() != 0 {
		t.Errorf("expected no request for a short description, got %d", calls.Load())
	}
}

func TestSuggestCategoryOffline(t *testing.T) {
	srv, calls := fakeGemini(t, `{"categoryName":"Food & Dining"}`, http.StatusOK)
	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Online: func() bool { return false }})

	if _, ok := c.SuggestCategory(context.Background(), "Pizza night", core.Money{Cents: 2000}, testCategories()); ok {
		t.Fatal("offline client must not suggest")
	}
	if calls.Load() != 0 {
		t.Errorf("expected no request while offline, got %d", calls.Load())
	}
}

func TestMonthlyInsight(t *testing.T) {
	expenses := []core.Expense{
		{ID: "e1", Description: "Lunch", Amount: core.Money{Cents: 15000}, Date: core.NewDate(2024, 3, 10), CategoryID: "cat_food"},
	}

	t.Run("returns model text", func(t *testing.T) {
		srv, _ := fakeGemini(t, "Lots of lunches! 🍕", http.StatusOK)
		c := newTestClient(srv)
		if got := c.MonthlyInsight(context.Background(), expenses, testCategories(), "March"); got != "Lots of lunches! 🍕" {
			t.Errorf("insight = %q", got)
		}
	})

	t.Run("empty month short-circuits", func(t *testing.T) {
		srv, calls := fakeGemini(t, "unused", http.StatusOK)
		c := newTestClient(srv)
		if got := c.MonthlyInsight(context.Background(), nil, testCategories(), "March"); got != oracle.InsightNoExpenses {
			t.Errorf("insight = %q, want no-expenses fallback", got)
		}
		if calls.Load() != 0 {
			t.Errorf("expected no request for an empty month, got %d", calls.Load())
		}
	})

	t.Run("offline short-circuits", func(t *testing.T) {
		srv, calls := fakeGemini(t, "unused", http.StatusOK)
		c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Online: func() bool { return false }})
		if got := c.MonthlyInsight(context.Background(), expenses, testCategories(), "March"); got != oracle.InsightOffline {
			t.Errorf("insight = %q, want offline fallback", got)
		}
		if calls.Load() != 0 {
			t.Errorf("expected no request while offline, got %d", calls.Load())
		}
	})

	t.Run("request failure falls back", func(t *testing.T) {
		srv, _ := fakeGemini(t, "", http.StatusTooManyRequests)
		c := newTestClient(srv)
		if got := c.MonthlyInsight(context.Background(), expenses, testCategories(), "March"); got != oracle.InsightFailure {
			t.Errorf("insight = %q, want failure fallback", got)
		}
	})

	t.Run("blank response falls back", func(t *testing.T) {
		srv, _ := fakeGemini(t, "   ", http.StatusOK)
		c := newTestClient(srv)
		if got := c.MonthlyInsight(context.Background(), expenses, testCategories(), "March"); got != oracle.InsightDefault {
			t.Errorf("insight = %q, want default fallback", got)
		}
	})
}

package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
<title>  Acme CRM &amp; Analytics </title>
<meta name="description" content="The CRM for small agencies.">
</head>
<body>
<h1>Close more <b>deals</b></h1>
<h2>Pricing</h2>
<p>Starter at €29/mo, Pro at €99 / month, or $990/year.</p>
<p>Still just €29/mo for starters.</p>
</body>
</html>`

func TestExtract(t *testing.T) {
	t.Parallel()

	f := Extract(samplePage)

	if f.Title != "Acme CRM & Analytics" {
		t.Fatalf("title = %q", f.Title)
	}
	if f.Description != "The CRM for small agencies." {
		t.Fatalf("description = %q", f.Description)
	}
	if len(f.Headings) != 2 || f.Headings[0] != "Close more deals" {
		t.Fatalf("headings = %+v", f.Headings)
	}
	if len(f.PricingMentions) != 3 {
		t.Fatalf("pricing mentions = %+v, want 3 distinct", f.PricingMentions)
	}
}

func TestExtractEmptyPage(t *testing.T) {
	t.Parallel()

	f := Extract("")
	if f.Title != "" || f.Description != "" || len(f.Headings) != 0 {
		t.Fatalf("facts from empty page: %+v", f)
	}
}

func TestFetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(samplePage))
	}))
	t.Cleanup(srv.Close)

	f, err := New(5 * time.Second).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if f.URL != srv.URL {
		t.Fatalf("url = %q", f.URL)
	}
	if f.Title == "" {
		t.Fatal("no title extracted")
	}
}

func TestFetchNon200(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	if _, err := New(5 * time.Second).Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"example.com", "https://example.com", false},
		{"  https://example.com/pricing ", "https://example.com/pricing", false},
		{"http://example.com", "http://example.com", false},
		{"ftp://example.com", "", true},
		{"", "", true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, err := normalizeURL(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("normalizeURL(%q) = %q, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeURL(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("normalizeURL(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestAsUpdates(t *testing.T) {
	t.Parallel()

	f := Facts{URL: "https://example.com", Title: "Acme", Description: "CRM"}
	updates := f.AsUpdates()
	if updates["website"] != "https://example.com" || updates["companyName"] != "Acme" || updates["productDescription"] != "CRM" {
		t.Fatalf("updates = %+v", updates)
	}

	if got := (Facts{}).AsUpdates(); len(got) != 0 {
		t.Fatalf("empty facts produced updates: %+v", got)
	}
}

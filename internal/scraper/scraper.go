// Package scraper extracts best-effort company facts from a website. All
// output is optional: a failed fetch or an unparseable page yields zero
// facts, never an error the caller must handle beyond logging.
package scraper

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// maxBodyBytes caps how much of a page is read (512KB).
const maxBodyBytes = 512 << 10

var (
	titleRe   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	metaRe    = regexp.MustCompile(`(?is)<meta\s+name=["']description["']\s+content=["'](.*?)["']`)
	headingRe = regexp.MustCompile(`(?is)<h[12][^>]*>(.*?)</h[12]>`)
	tagRe     = regexp.MustCompile(`(?s)<[^>]+>`)
	priceRe   = regexp.MustCompile(`(?i)(?:€|\$|eur|usd)\s?\d[\d.,]*(?:\s?/\s?(?:mo|month|monat|year|jahr))?`)
)

// Facts holds whatever could be extracted from a company website.
type Facts struct {
	URL             string
	Title           string
	Description     string
	Headings        []string
	PricingMentions []string
}

// Scraper fetches and parses company websites.
type Scraper struct {
	http *http.Client
}

// New creates a scraper with a bounded request timeout.
func New(timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Scraper{http: &http.Client{Timeout: timeout}}
}

// Fetch downloads the page and extracts facts. Only http(s) URLs are
// accepted; a missing scheme defaults to https.
func (s *Scraper) Fetch(ctx context.Context, rawURL string) (Facts, error) {
	u, err := normalizeURL(rawURL)
	if err != nil {
		return Facts{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Facts{}, fmt.Errorf("build scrape request: %w", err)
	}
	req.Header.Set("User-Agent", "founder-compass/1.0")

	resp, err := s.http.Do(req)
	if err != nil {
		return Facts{}, fmt.Errorf("fetch %s: %w", u, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Facts{}, fmt.Errorf("fetch %s: status %d", u, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Facts{}, fmt.Errorf("read %s: %w", u, err)
	}

	facts := Extract(string(body))
	facts.URL = u
	return facts, nil
}

// Extract pulls facts out of raw HTML. Pure; exercised directly in tests.
func Extract(page string) Facts {
	var f Facts
	if m := titleRe.FindStringSubmatch(page); m != nil {
		f.Title = cleanText(m[1])
	}
	if m := metaRe.FindStringSubmatch(page); m != nil {
		f.Description = cleanText(m[1])
	}
	for _, m := range headingRe.FindAllStringSubmatch(page, 8) {
		if h := cleanText(m[1]); h != "" {
			f.Headings = append(f.Headings, h)
		}
	}
	seen := map[string]struct{}{}
	for _, m := range priceRe.FindAllString(page, 12) {
		m = strings.TrimSpace(m)
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		f.PricingMentions = append(f.PricingMentions, m)
	}
	return f
}

// AsUpdates converts facts into a profile update map. Everything here is
// advisory seed data; the merge layer drops what it cannot place and later
// answers overwrite it.
func (f Facts) AsUpdates() map[string]any {
	updates := map[string]any{}
	if f.URL != "" {
		updates["website"] = f.URL
	}
	if f.Title != "" {
		updates["companyName"] = f.Title
	}
	if f.Description != "" {
		updates["productDescription"] = f.Description
	}
	return updates
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty url")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("url %q has no host", raw)
	}
	return u.String(), nil
}

func cleanText(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}

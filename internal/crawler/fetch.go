// Package crawler fetches and analyzes business websites. It provides a
// single-page brand extractor and a multi-page site crawler used to build
// content context for campaign recommendations.
package crawler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; AdMasterBot/1.0; +https://admaster.ai/bot)"

// Fetcher retrieves HTML pages and parses them into goquery documents.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}
}

// FetchPage downloads the URL and parses it. It follows redirects and
// returns the final URL after them so relative links resolve correctly.
func (f *Fetcher) FetchPage(ctx context.Context, rawURL string) (*goquery.Document, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("crawler: build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("crawler: fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("crawler: fetch %s: status %d", rawURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("crawler: parse %s: %w", rawURL, err)
	}

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	return doc, finalURL, nil
}

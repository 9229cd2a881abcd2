package crawler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testSite(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `<html><head><title>Home</title>
			<meta name="description" content="A small demo site"></head>
			<body><h1>Welcome home</h1>
			<p>The landing page talks about our products and our story.</p>
			<img src="/img/hero.png" alt="hero">
			<a href="/about">About</a>
			<a href="/contact#team">Contact</a>
			<a href="/login">Login</a>
			<a href="/brochure.pdf">Brochure</a>
			<a href="https://other.example.com/">Elsewhere</a>
			</body></html>`)
	})
	mux.HandleFunc("/about", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>About</title></head>
			<body><h1>About us</h1><h2>History</h2>
			<p>Founded long ago by two friends with a plan.</p>
			<a href="/">Home</a></body></html>`)
	})
	mux.HandleFunc("/contact", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>Contact</title></head>
			<body><h1>Contact</h1><p>Write to us any time you like.</p></body></html>`)
	})
	return httptest.NewTLSServer(mux)
}

func testCrawler(srv *httptest.Server, maxPages, maxDepth int) *SiteCrawler {
	fetcher := &Fetcher{client: srv.Client(), userAgent: defaultUserAgent}
	return NewSiteCrawler(fetcher, maxPages, maxDepth, time.Millisecond, false, zap.NewNop())
}

func TestCrawlVisitsSameHostPagesOnce(t *testing.T) {
	srv := testSite(t)
	defer srv.Close()

	c := testCrawler(srv, 50, 3)
	result, err := c.Crawl(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Crawl() error: %v", err)
	}

	// Home, about and contact. The login link, the pdf, and the foreign
	// host are all filtered out; the back-link to home is not revisited.
	if len(result.Pages) != 3 {
		urls := []string{}
		for _, p := range result.Pages {
			urls = append(urls, p.URL)
		}
		t.Fatalf("visited %d pages, want 3: %v", len(result.Pages), urls)
	}

	seen := map[string]int{}
	for _, p := range result.Pages {
		seen[p.URL]++
	}
	for u, n := range seen {
		if n > 1 {
			t.Errorf("page %s visited %d times", u, n)
		}
	}

	if result.Pages[0].Title != "Home" {
		t.Errorf("first page title = %q, want Home", result.Pages[0].Title)
	}
	if result.TotalWords == 0 {
		t.Error("TotalWords = 0, want > 0")
	}
	if result.AllText == "" {
		t.Error("AllText is empty")
	}
	if result.CrawledAt.IsZero() {
		t.Error("CrawledAt not set")
	}
}

func TestCrawlRespectsMaxPages(t *testing.T) {
	srv := testSite(t)
	defer srv.Close()

	c := testCrawler(srv, 2, 3)
	result, err := c.Crawl(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Crawl() error: %v", err)
	}
	if len(result.Pages) > 2 {
		t.Errorf("visited %d pages, want at most 2", len(result.Pages))
	}
}

func TestCrawlFailedFetchDoesNotConsumePageCap(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>Landing page with several outgoing links below.</p>
			<a href="/missing">Missing</a>
			<a href="/a">A</a>
			<a href="/b">B</a>
			</body></html>`)
	})
	for _, path := range []string{"/a", "/b"} {
		p := path
		mux.HandleFunc(p, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<html><head><title>%s</title></head><body><p>Content of %s here.</p></body></html>`, p, p)
		})
	}
	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	c := testCrawler(srv, 3, 2)
	result, err := c.Crawl(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Crawl() error: %v", err)
	}

	// The 404 on /missing is skipped; the cap of 3 still admits the two
	// good child pages.
	if len(result.Pages) != 3 {
		urls := []string{}
		for _, p := range result.Pages {
			urls = append(urls, p.URL)
		}
		t.Fatalf("crawled %d pages, want 3: %v", len(result.Pages), urls)
	}
}

func TestCrawlExtractsPageStructure(t *testing.T) {
	srv := testSite(t)
	defer srv.Close()

	c := testCrawler(srv, 50, 3)
	result, err := c.Crawl(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Crawl() error: %v", err)
	}

	home := result.Pages[0]
	if len(home.H1) != 1 || home.H1[0] != "Welcome home" {
		t.Errorf("home h1 = %v, want [Welcome home]", home.H1)
	}
	if home.Meta["description"] != "A small demo site" {
		t.Errorf("home meta description = %q", home.Meta["description"])
	}
	if len(home.Images) != 1 || home.Images[0].Src != srv.URL+"/img/hero.png" {
		t.Errorf("home images = %v", home.Images)
	}
	if home.WordCount == 0 {
		t.Error("home word count = 0")
	}

	// Fragment stripped from the contact link.
	for _, l := range home.Links {
		if l.Href == srv.URL+"/contact#team" {
			t.Error("link fragment was not stripped")
		}
	}
}

func TestNormalizeSeed(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://example.com", "https://example.com"},
		{"https://example.com/page", "https://example.com/page"},
		{"example.com", "https://example.com"},
		{"  example.com/a  ", "https://example.com/a"},
	}

	for _, tt := range tests {
		got, err := NormalizeURL(tt.in)
		if err != nil {
			t.Errorf("NormalizeURL(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAdmissible(t *testing.T) {
	const host = "shop.example.com"
	tests := []struct {
		link string
		want bool
	}{
		{"https://shop.example.com/products", true},
		{"https://shop.example.com/blog/post-1", true},
		{"http://shop.example.com/products", false},
		{"https://evil.example.com/products", false},
		{"/relative/path", false},
		{"https://shop.example.com/catalog.pdf", false},
		{"https://shop.example.com/img/pic.JPG", false},
		{"https://shop.example.com/login", false},
		{"https://shop.example.com/wp-admin/options", false},
		{"https://shop.example.com/static/app.js", false},
		{"mailto:hi@example.com", false},
	}

	for _, tt := range tests {
		if got := admissible(tt.link, host); got != tt.want {
			t.Errorf("admissible(%q) = %v, want %v", tt.link, got, tt.want)
		}
	}
}

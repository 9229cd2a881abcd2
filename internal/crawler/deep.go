package crawler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/temoto/robotstxt"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// PageImage is an image found on a crawled page, with its URL made absolute.
type PageImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// PageLink is an anchor found on a crawled page, with its URL made absolute.
type PageLink struct {
	Href string `json:"href"`
	Text string `json:"text"`
}

// PageContent is everything extracted from one crawled page.
type PageContent struct {
	URL       string            `json:"url"`
	Title     string            `json:"title"`
	Text      string            `json:"text"`
	H1        []string          `json:"h1"`
	H2        []string          `json:"h2"`
	H3        []string          `json:"h3"`
	Meta      map[string]string `json:"meta"`
	Images    []PageImage       `json:"images"`
	Links     []PageLink        `json:"links"`
	WordCount int               `json:"word_count"`
	Depth     int               `json:"depth"`
}

// CrawlResult is the aggregate output of a site crawl. Pages appear in
// visit order.
type CrawlResult struct {
	SeedURL    string        `json:"seed_url"`
	Pages      []PageContent `json:"pages"`
	TotalWords int           `json:"total_words"`
	AllText    string        `json:"all_text"`
	CrawledAt  time.Time     `json:"crawled_at"`
}

// File types and path fragments that never carry useful page content.
var (
	skippedExtensions = []string{
		".pdf", ".jpg", ".jpeg", ".png", ".gif", ".svg", ".css", ".js",
		".zip", ".exe", ".mp4", ".mp3", ".avi", ".mov",
	}
	skippedPathParts = []string{
		"/login", "/signup", "/logout", "/admin", "/api", "/cdn",
		"/static", "/assets", "/wp-admin", "/wp-content",
	}
)

// SiteCrawler walks a website breadth-first, same-host HTTPS pages only.
type SiteCrawler struct {
	fetcher       *Fetcher
	limiter       *rate.Limiter
	maxPages      int
	maxDepth      int
	respectRobots bool
	log           *zap.Logger
}

func NewSiteCrawler(fetcher *Fetcher, maxPages, maxDepth int, delay time.Duration, respectRobots bool, log *zap.Logger) *SiteCrawler {
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	return &SiteCrawler{
		fetcher:       fetcher,
		limiter:       rate.NewLimiter(rate.Every(delay), 1),
		maxPages:      maxPages,
		maxDepth:      maxDepth,
		respectRobots: respectRobots,
		log:           log,
	}
}

type queueItem struct {
	url   string
	depth int
}

// Crawl walks the site starting at seedURL. Fetch errors skip the page;
// the crawl itself only fails when the seed URL is unusable.
func (c *SiteCrawler) Crawl(ctx context.Context, seedURL string) (*CrawlResult, error) {
	seed, err := NormalizeURL(seedURL)
	if err != nil {
		return nil, err
	}
	seedHost := hostOf(seed)

	var robots *robotstxt.RobotsData
	if c.respectRobots {
		robots = c.fetchRobots(ctx, seed)
	}

	result := &CrawlResult{SeedURL: seed, Pages: []PageContent{}}
	visited := map[string]bool{}
	queue := []queueItem{{url: seed, depth: 0}}
	var allText strings.Builder

	// Only successfully extracted pages count toward maxPages. Failed
	// URLs still land in visited so they are never fetched twice.
	for len(queue) > 0 && len(result.Pages) < c.maxPages {
		item := queue[0]
		queue = queue[1:]

		if visited[item.url] || item.depth > c.maxDepth {
			continue
		}
		if robots != nil && !robotsAllows(robots, item.url) {
			c.log.Debug("robots.txt disallows url", zap.String("url", item.url))
			continue
		}
		visited[item.url] = true

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		doc, finalURL, err := c.fetcher.FetchPage(ctx, item.url)
		if err != nil {
			c.log.Warn("page fetch failed, skipping",
				zap.String("url", item.url), zap.Error(err))
			continue
		}

		page := extractPage(doc, finalURL, item.depth)
		result.Pages = append(result.Pages, page)
		result.TotalWords += page.WordCount
		allText.WriteString(page.Text)
		allText.WriteString("\n")

		if item.depth < c.maxDepth {
			for _, link := range page.Links {
				if admissible(link.Href, seedHost) && !visited[link.Href] {
					queue = append(queue, queueItem{url: link.Href, depth: item.depth + 1})
				}
			}
		}
	}

	result.AllText = strings.TrimSpace(allText.String())
	result.CrawledAt = time.Now().UTC()
	c.log.Info("site crawl finished",
		zap.String("seed", seed),
		zap.Int("pages", len(result.Pages)),
		zap.Int("total_words", result.TotalWords))
	return result, nil
}

// NormalizeURL forces a URL onto HTTPS. Plain http URLs are upgraded,
// schemeless inputs get the scheme prepended.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "http://") {
		raw = "https://" + strings.TrimPrefix(raw, "http://")
	} else if !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	u.Fragment = ""
	return u.String(), nil
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

// admissible reports whether a discovered link belongs in the crawl
// frontier: absolute HTTPS, same host as the seed, and not a binary
// download or an auth/infrastructure path.
func admissible(link, seedHost string) bool {
	if !strings.Contains(link, ":") {
		return false
	}
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	if u.Scheme != "https" || strings.ToLower(u.Host) != seedHost {
		return false
	}
	lowerPath := strings.ToLower(u.Path)
	for _, ext := range skippedExtensions {
		if strings.HasSuffix(lowerPath, ext) {
			return false
		}
	}
	for _, part := range skippedPathParts {
		if strings.Contains(lowerPath, part) {
			return false
		}
	}
	return true
}

func (c *SiteCrawler) fetchRobots(ctx context.Context, seed string) *robotstxt.RobotsData {
	u, err := url.Parse(seed)
	if err != nil {
		return nil
	}
	robotsURL := u.Scheme + "://" + u.Host + "/robots.txt"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", c.fetcher.userAgent)

	resp, err := c.fetcher.client.Do(req)
	if err != nil {
		c.log.Debug("robots.txt fetch failed, allowing all", zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil
	}
	return data
}

func robotsAllows(robots *robotstxt.RobotsData, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return robots.TestAgent(u.Path, "AdMasterBot")
}

// extractPage pulls text, headings, metadata, images and links out of a
// parsed page. Script and style contents never reach the flattened text.
func extractPage(doc *goquery.Document, pageURL string, depth int) PageContent {
	doc.Find("script, style, noscript").Remove()

	page := PageContent{
		URL:   pageURL,
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		Meta:  map[string]string{},
		Depth: depth,
	}

	page.Text = strings.Join(strings.Fields(doc.Find("body").Text()), " ")
	page.WordCount = len(strings.Fields(page.Text))

	collect := func(sel string) []string {
		out := []string{}
		doc.Find(sel).Each(func(_ int, h *goquery.Selection) {
			if t := strings.TrimSpace(h.Text()); t != "" {
				out = append(out, t)
			}
		})
		return out
	}
	page.H1 = collect("h1")
	page.H2 = collect("h2")
	page.H3 = collect("h3")

	doc.Find("meta").Each(func(_ int, m *goquery.Selection) {
		content, ok := m.Attr("content")
		if !ok {
			return
		}
		if name, ok := m.Attr("name"); ok && name != "" {
			page.Meta[name] = content
		} else if prop, ok := m.Attr("property"); ok && prop != "" {
			page.Meta[prop] = content
		}
	})

	page.Images = []PageImage{}
	doc.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		alt, _ := img.Attr("alt")
		if src != "" {
			page.Images = append(page.Images, PageImage{
				Src: resolveURL(pageURL, src),
				Alt: alt,
			})
		}
	})

	page.Links = []PageLink{}
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if href == "" {
			return
		}
		abs := resolveURL(pageURL, href)
		if u, err := url.Parse(abs); err == nil {
			u.Fragment = ""
			abs = u.String()
		}
		page.Links = append(page.Links, PageLink{
			Href: abs,
			Text: strings.TrimSpace(a.Text()),
		})
	})

	return page
}

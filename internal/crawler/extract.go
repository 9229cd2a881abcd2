package crawler

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BrandProfile is what a single-page pass over a business's homepage yields.
type BrandProfile struct {
	Description string
	LogoURL     string
	Colors      []string
	Tones       []string
	Language    string
}

var (
	logoHintRe    = regexp.MustCompile(`(?i)logo|brand`)
	headerClassRe = regexp.MustCompile(`(?i)header|nav|navbar`)
	cssVarRe      = regexp.MustCompile(`(?i)--[\w-]*(?:primary|brand|main|accent|color)[\w-]*\s*:\s*(#[0-9a-fA-F]{3,8})`)
	inlineColorRe = regexp.MustCompile(`(?i)(?:background-|border-)?color\s*:\s*(#[0-9a-fA-F]{3,8})`)
	styleColorRe  = regexp.MustCompile(`(?i):\s*(#[0-9a-fA-F]{6})\b`)
)

// genericColors are too common to say anything about a brand.
var genericColors = map[string]bool{
	"#ffffff": true, "#000000": true, "#f5f5f5": true, "#e5e5e5": true,
	"#cccccc": true, "#999999": true, "#666666": true, "#333333": true,
}

const maxBrandColors = 4

// ExtractBrand derives a brand profile from a parsed homepage. baseURL is
// the final URL after redirects and anchors relative logo paths.
func ExtractBrand(doc *goquery.Document, baseURL string) *BrandProfile {
	desc := extractDescription(doc)
	return &BrandProfile{
		Description: desc,
		LogoURL:     extractLogo(doc, baseURL),
		Colors:      extractColors(doc),
		Tones:       inferTones(desc),
		Language:    extractLanguage(doc, desc),
	}
}

func extractDescription(doc *goquery.Document) string {
	for _, sel := range []string{
		`meta[name="description"]`,
		`meta[property="og:description"]`,
	} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if trimmed := strings.TrimSpace(content); trimmed != "" {
				return trimmed
			}
		}
	}

	// Fall back to the longest substantial paragraph.
	best := ""
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if len(strings.Fields(text)) >= 6 && len(text) > len(best) {
			best = text
		}
	})
	return best
}

func extractLogo(doc *goquery.Document, baseURL string) string {
	for _, sel := range []string{
		`link[rel="icon"]`,
		`link[rel="shortcut icon"]`,
		`link[rel="apple-touch-icon"]`,
	} {
		if href, ok := doc.Find(sel).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
			return resolveURL(baseURL, href)
		}
	}

	for _, sel := range []string{
		`meta[property="og:image"]`,
		`meta[name="og:image"]`,
	} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok && strings.TrimSpace(content) != "" {
			return resolveURL(baseURL, content)
		}
	}

	// Prefer an <img> near the top of the page, then anywhere.
	if src := findLogoImg(doc.Find("header, nav").AddSelection(
		doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
			class, _ := s.Attr("class")
			return headerClassRe.MatchString(class)
		}))); src != "" {
		return resolveURL(baseURL, src)
	}
	if src := findLogoImg(doc.Selection); src != "" {
		return resolveURL(baseURL, src)
	}
	return ""
}

func findLogoImg(scope *goquery.Selection) string {
	src := ""
	scope.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		alt, _ := img.Attr("alt")
		class, _ := img.Attr("class")
		id, _ := img.Attr("id")
		if logoHintRe.MatchString(alt) || logoHintRe.MatchString(class) || logoHintRe.MatchString(id) {
			src, _ = img.Attr("src")
			return src == ""
		}
		return true
	})
	return src
}

func extractColors(doc *goquery.Document) []string {
	seen := map[string]bool{}
	colors := []string{}
	add := func(raw string) {
		if len(colors) >= maxBrandColors {
			return
		}
		hex := normalizeHex(raw)
		if hex == "" || seen[hex] {
			return
		}
		seen[hex] = true
		colors = append(colors, hex)
	}

	if content, ok := doc.Find(`meta[name="theme-color"]`).First().Attr("content"); ok {
		add(content)
	}

	styleText := ""
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		styleText += s.Text() + "\n"
	})

	for _, m := range cssVarRe.FindAllStringSubmatch(styleText, -1) {
		add(m[1])
	}

	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		for _, m := range inlineColorRe.FindAllStringSubmatch(style, -1) {
			add(m[1])
		}
	})

	for _, m := range styleColorRe.FindAllStringSubmatch(styleText, -1) {
		if hex := normalizeHex(m[1]); !genericColors[hex] {
			add(hex)
		}
	}

	for _, sel := range []string{
		`meta[name="msapplication-TileColor"]`,
		`meta[name="apple-mobile-web-app-status-bar-style"]`,
	} {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			add(content)
		}
	}

	return colors
}

// normalizeHex lowercases a color value, ensures the leading #, expands
// #rgb shorthand to #rrggbb, and clips 8-digit (alpha) values to 6
// digits. Anything that does not reduce to #rrggbb normalizes to "".
func normalizeHex(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	if len(v) > 7 {
		v = v[:7]
	}
	if len(v) == 4 {
		v = string([]byte{'#', v[1], v[1], v[2], v[2], v[3], v[3]})
	}
	if !isHexColor(v) {
		return ""
	}
	return v
}

func isHexColor(v string) bool {
	if len(v) != 7 {
		return false
	}
	for _, r := range v[1:] {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// Tone vocabulary in presentation order.
var toneVocabulary = []string{
	"Professional", "Casual", "Humorous", "Informative", "Motivating", "Optimistic",
}

var toneKeywords = []struct {
	words []string
	tones []string
}{
	{words: []string{"help", "improve", "grow", "save", "better"}, tones: []string{"Motivating", "Optimistic"}},
	{words: []string{"platform", "manage", "analyze", "data", "ai"}, tones: []string{"Informative", "Professional"}},
}

const maxTones = 3

// inferTones guesses a tone-of-voice set from the page description. The
// result is ordered by the vocabulary, not by match order.
func inferTones(description string) []string {
	text := strings.ToLower(description)
	matched := map[string]bool{}
	for _, kw := range toneKeywords {
		for _, w := range kw.words {
			if strings.Contains(text, w) {
				for _, t := range kw.tones {
					matched[t] = true
				}
				break
			}
		}
	}
	if len(matched) == 0 {
		matched["Professional"] = true
		matched["Informative"] = true
	}

	tones := []string{}
	for _, t := range toneVocabulary {
		if matched[t] {
			tones = append(tones, t)
			if len(tones) == maxTones {
				break
			}
		}
	}
	return tones
}

func extractLanguage(doc *goquery.Document, description string) string {
	if lang, ok := doc.Find("html").First().Attr("lang"); ok {
		if primary := strings.ToLower(strings.SplitN(strings.TrimSpace(lang), "-", 2)[0]); primary != "" {
			return primary
		}
	}
	if len(strings.Fields(description)) >= 10 {
		return DetectLanguage(description)
	}
	return "en"
}

func resolveURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

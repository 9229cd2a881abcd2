package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/admaster/backend/internal/crawler"
	"github.com/admaster/backend/internal/models"
	"go.uber.org/zap"
)

// Text fed to the model is clipped to keep prompts inside a stable budget.
const (
	contextTextLimit = 10000
	promptTextLimit  = 8000
	maxPageTitles    = 10
	maxPagesScanned  = 20
)

var ecommerceKeywords = []string{
	"buy", "shop", "cart", "checkout", "product", "price", "add to cart", "purchase",
}

// PlatformScore is one ranked entry in the model's platform list.
type PlatformScore struct {
	PlatformID  int      `json:"platform_id"`
	Name        string   `json:"name"`
	Score       float64  `json:"score"`
	Reasons     []string `json:"reasons"`
	AIReasoning string   `json:"ai_reasoning"`
}

// ContentAnalysis is the model's qualitative read of the website.
type ContentAnalysis struct {
	ContentSummary   string `json:"content_summary"`
	TargetAudience   string `json:"target_audience"`
	ContentType      string `json:"content_type"`
	BrandPersonality string `json:"brand_personality"`
}

// Recommendation is the model's platform advice for one campaign.
// SupportedPlatformIDs is derived from the ranked list after validation,
// it is not part of the wire format.
type Recommendation struct {
	RecommendedPlatformID   int             `json:"recommended_platform_id"`
	RecommendedPlatformName string          `json:"recommended_platform_name"`
	AIReasoning             string          `json:"ai_reasoning"`
	AllRecommendations      []PlatformScore `json:"all_recommendations"`
	AIAnalysis              ContentAnalysis `json:"ai_analysis"`

	SupportedPlatformIDs []int `json:"-"`
}

// contentIndicators are coarse signals derived from crawled content that
// steer the model toward the right platform family.
type contentIndicators struct {
	HasEcommerceKeywords bool `json:"has_ecommerce_keywords"`
	IsVisualHeavy        bool `json:"is_visual_heavy"`
	IsTextHeavy          bool `json:"is_text_heavy"`
	HasVideoContent      bool `json:"has_video_content"`
	HasBlogContent       bool `json:"has_blog_content"`
}

type contentStats struct {
	Pages            int     `json:"pages"`
	Words            int     `json:"words"`
	Images           int     `json:"images"`
	AvgImagesPerPage float64 `json:"avg_images_per_page"`
}

type analysisContext struct {
	Goal     string `json:"goal"`
	Business struct {
		Name     string `json:"name"`
		Industry string `json:"industry"`
		Website  string `json:"website"`
	} `json:"business"`
	Brand struct {
		Description string   `json:"description"`
		Colors      []string `json:"colors"`
		Tones       []string `json:"tone_of_voice"`
		Language    string   `json:"language"`
	} `json:"brand"`
	Content    *contentStats      `json:"content_stats,omitempty"`
	Indicators *contentIndicators `json:"indicators,omitempty"`
	PageTitles []string           `json:"page_titles,omitempty"`
	Text       string             `json:"-"`
}

// AnalysisInput collects everything the recommendation model sees.
type AnalysisInput struct {
	Goal     string
	Business *models.Business
	Brand    *models.Brand
	Content  *crawler.CrawlResult
	Catalog  []models.Platform
}

// Analyzer asks Gemini which advertising platforms fit a campaign.
type Analyzer struct {
	gemini *GeminiClient
	log    *zap.Logger
}

func NewAnalyzer(gemini *GeminiClient, log *zap.Logger) *Analyzer {
	return &Analyzer{gemini: gemini, log: log}
}

// RecommendPlatforms makes a single model call and validates its answer
// against the platform catalog. There is no retry and no heuristic
// fallback: a bad model answer surfaces as an error.
func (a *Analyzer) RecommendPlatforms(ctx context.Context, input *AnalysisInput) (*Recommendation, error) {
	actx := buildContext(input)
	prompt, err := renderPrompt(actx, input.Catalog)
	if err != nil {
		return nil, err
	}

	raw, err := a.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	rec, err := parseRecommendation(raw)
	if err != nil {
		a.log.Warn("unparseable model recommendation", zap.Error(err))
		return nil, err
	}

	known := map[int]bool{}
	for _, p := range input.Catalog {
		known[p.PlatformID] = true
	}
	if !known[rec.RecommendedPlatformID] {
		return nil, fmt.Errorf("model recommended unknown platform id %d", rec.RecommendedPlatformID)
	}

	// The supported set is the ranked list in model order, deduplicated.
	// The recommended platform always belongs to it.
	seen := map[int]bool{}
	supported := make([]int, 0, len(rec.AllRecommendations)+1)
	for _, pr := range rec.AllRecommendations {
		if !known[pr.PlatformID] {
			return nil, fmt.Errorf("model cited unknown platform id %d", pr.PlatformID)
		}
		if !seen[pr.PlatformID] {
			seen[pr.PlatformID] = true
			supported = append(supported, pr.PlatformID)
		}
	}
	if !seen[rec.RecommendedPlatformID] {
		supported = append(supported, rec.RecommendedPlatformID)
	}
	rec.SupportedPlatformIDs = supported

	return rec, nil
}

func buildContext(input *AnalysisInput) *analysisContext {
	actx := &analysisContext{Goal: input.Goal}
	if input.Business != nil {
		actx.Business.Name = input.Business.Name
		actx.Business.Industry = input.Business.Industry
		actx.Business.Website = input.Business.Website
	}
	if input.Brand != nil {
		actx.Brand.Description = input.Brand.Description
		actx.Brand.Colors = input.Brand.BrandColors
		actx.Brand.Tones = input.Brand.ToneOfVoice
		actx.Brand.Language = input.Brand.Language
	}
	if input.Content == nil || len(input.Content.Pages) == 0 {
		return actx
	}

	images := 0
	titles := []string{}
	hasBlog := false
	hasVideo := false
	for i, p := range input.Content.Pages {
		images += len(p.Images)
		if i < maxPagesScanned {
			lower := strings.ToLower(p.URL)
			if strings.Contains(lower, "blog") || strings.Contains(lower, "article") {
				hasBlog = true
			}
			if len(titles) < maxPageTitles && p.Title != "" {
				titles = append(titles, p.Title)
			}
		}
	}

	text := input.Content.AllText
	if len(text) > contextTextLimit {
		text = text[:contextTextLimit]
	}
	lowerText := strings.ToLower(text)

	hasEcommerce := false
	for _, kw := range ecommerceKeywords {
		if strings.Contains(lowerText, kw) {
			hasEcommerce = true
			break
		}
	}
	if strings.Contains(lowerText, "video") || strings.Contains(lowerText, "watch") {
		hasVideo = true
	}

	pages := len(input.Content.Pages)
	avgImages := float64(images) / float64(pages)
	actx.Content = &contentStats{
		Pages:            pages,
		Words:            input.Content.TotalWords,
		Images:           images,
		AvgImagesPerPage: avgImages,
	}
	actx.Indicators = &contentIndicators{
		HasEcommerceKeywords: hasEcommerce,
		IsVisualHeavy:        avgImages > 5,
		IsTextHeavy:          input.Content.TotalWords > 10000,
		HasVideoContent:      hasVideo,
		HasBlogContent:       hasBlog,
	}
	actx.PageTitles = titles
	actx.Text = text
	return actx
}

func renderPrompt(actx *analysisContext, catalog []models.Platform) (string, error) {
	type catalogEntry struct {
		PlatformID        int      `json:"platform_id"`
		Name              string   `json:"name"`
		Type              string   `json:"type"`
		BestForGoals      []string `json:"best_for_goals"`
		BestForIndustries []string `json:"best_for_industries"`
	}
	entries := make([]catalogEntry, 0, len(catalog))
	for _, p := range catalog {
		entries = append(entries, catalogEntry{
			PlatformID:        p.PlatformID,
			Name:              p.Name,
			Type:              p.Type,
			BestForGoals:      p.BestForGoals,
			BestForIndustries: p.BestForIndustries,
		})
	}

	catalogJSON, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	contextJSON, err := json.Marshal(actx)
	if err != nil {
		return "", err
	}

	text := actx.Text
	if len(text) > promptTextLimit {
		text = text[:promptTextLimit]
	}

	var b strings.Builder
	b.WriteString("You are an advertising strategist. Pick the best advertising platforms for the campaign below.\n\n")
	b.WriteString("Available platforms (use only these platform_id values):\n")
	b.Write(catalogJSON)
	b.WriteString("\n\nCampaign context:\n")
	b.Write(contextJSON)
	if text != "" {
		b.WriteString("\n\nWebsite content excerpt:\n")
		b.WriteString(text)
	}
	b.WriteString("\n\nRespond with JSON only, no prose, matching exactly:\n")
	b.WriteString(`{
  "recommended_platform_id": <int>,
  "recommended_platform_name": "<string>",
  "ai_reasoning": "<why this platform is the best choice>",
  "all_recommendations": [
    {"platform_id": <int>, "name": "<string>", "score": <float 0.0-1.0>, "reasons": ["<reason>", ...], "ai_reasoning": "<why this platform fits>"}
  ],
  "ai_analysis": {
    "content_summary": "<what kind of website this is>",
    "target_audience": "<ideal customer profile>",
    "content_type": "<visual-heavy|text-heavy|mixed|e-commerce|informational|blog>",
    "brand_personality": "<professional|casual|creative|technical|luxury|affordable>"
  }
}`)
	b.WriteString("\nRank every suitable platform by score, highest first.")
	return b.String(), nil
}

// parseRecommendation decodes the model output, tolerating markdown code
// fences around the JSON.
func parseRecommendation(raw string) (*Recommendation, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		if i := strings.LastIndex(cleaned, "```"); i >= 0 {
			cleaned = cleaned[:i]
		}
		cleaned = strings.TrimSpace(cleaned)
	}

	var rec Recommendation
	if err := json.Unmarshal([]byte(cleaned), &rec); err != nil {
		return nil, fmt.Errorf("decode recommendation: %w", err)
	}
	if rec.RecommendedPlatformID == 0 && !strings.Contains(cleaned, `"recommended_platform_id"`) {
		return nil, fmt.Errorf("recommendation missing recommended_platform_id")
	}
	return &rec, nil
}

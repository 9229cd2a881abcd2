package models

import (
	"time"

	"github.com/google/uuid"
)

// Platform types
const (
	PlatformTypeSearch   = "search"
	PlatformTypeSocial   = "social"
	PlatformTypeDisplay  = "display"
	PlatformTypeVideo    = "video"
	PlatformTypeShopping = "shopping"
	PlatformTypeNative   = "native"
)

// Platform is a catalog entry for an external advertising venue.
// Effectively immutable reference data seeded once.
type Platform struct {
	ID         uuid.UUID `json:"-"`
	PlatformID int       `json:"platform_id"` // numeric ID used by recommendations
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Type       string    `json:"type"`

	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	WebsiteURL  *string `json:"website_url,omitempty"`

	SupportsSearch   bool `json:"supports_search"`
	SupportsDisplay  bool `json:"supports_display"`
	SupportsVideo    bool `json:"supports_video"`
	SupportsShopping bool `json:"supports_shopping"`
	SupportsMobile   bool `json:"supports_mobile"`

	BestForGoals      []string `json:"best_for_goals"`
	BestForIndustries []string `json:"best_for_industries"`
	MinBudget         *float64 `json:"min_budget,omitempty"`
	CurrencySupport   []string `json:"currency_support"`

	RequiresOwnAccount bool `json:"requires_own_account"`

	IsActive bool `json:"is_active"`
	IsBeta   bool `json:"is_beta"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

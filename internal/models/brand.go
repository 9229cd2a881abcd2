package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand holds the brand intel extracted by the crawler for a business.
// One brand per business; created lazily on first access and refined by
// crawler output or manual edits.
type Brand struct {
	ID          uuid.UUID `json:"id"`
	BusinessID  uuid.UUID `json:"business_id"`
	Description string    `json:"description"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	BrandColors []string  `json:"brand_colors"`
	ToneOfVoice []string  `json:"tone_of_voice"`
	Language    string    `json:"language"` // BCP-47 primary subtag
	IsComplete  bool      `json:"is_complete"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

package dto

import (
	"encoding/json"

	"github.com/admaster/backend/internal/models"
)

type CreateBusinessRequest struct {
	Name     string `json:"name"`
	Website  string `json:"website"`
	Industry string `json:"industry"`
	Size     string `json:"size"`
}

type UpdateBusinessRequest struct {
	Name     *string `json:"name"`
	Website  *string `json:"website"`
	Industry *string `json:"industry"`
	Size     *string `json:"size"`
	Status   *string `json:"status"`
}

type UpdateBrandRequest struct {
	Description *string  `json:"description"`
	LogoURL     *string  `json:"logo_url"`
	BrandColors []string `json:"brand_colors"`
	ToneOfVoice []string `json:"tone_of_voice"`
	Language    *string  `json:"language"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	ImageURL  *string `json:"image_url"`
}

// CreateCampaignGroupRequest mirrors the campaign creation form.
// advertising_goal and conversion_goal are alternatives; website_url
// duplicates url and is honored only when url is absent.
type CreateCampaignGroupRequest struct {
	BusinessID      string            `json:"business_id"`
	Title           string            `json:"title"`
	URL             string            `json:"url"`
	WebsiteURL      *string           `json:"website_url"`
	Phone           *string           `json:"phone"`
	AdvertisingGoal string            `json:"advertising_goal"`
	ConversionGoal  *string           `json:"conversion_goal"`
	Conversion      *string           `json:"conversion"`
	DailyBudget     *float64          `json:"daily_budget"`
	BudgetCurrency  *string           `json:"budget_currency"`
	Language        string            `json:"language"`
	Locations       []json.RawMessage `json:"locations"`
}

type UpdateCampaignStatusRequest struct {
	Status string `json:"status"`
}

// NormalizeLocationAreas converts loose location payloads into the
// canonical shape. Clients send a mix of key spellings depending on which
// maps widget produced the value.
func NormalizeLocationAreas(raw []json.RawMessage) []models.LocationArea {
	areas := []models.LocationArea{}
	for _, r := range raw {
		var m map[string]any
		if err := json.Unmarshal(r, &m); err != nil {
			continue
		}
		area := models.LocationArea{}
		if v := firstString(m, "google_place_id", "place_id"); v != "" {
			area.GooglePlaceID = &v
		}
		area.Name = firstString(m, "name", "text", "address")
		area.Lat = firstFloat(m, "lat", "latitude")
		area.Lng = firstFloat(m, "lng", "lon", "longitude")
		if v, ok := floatValue(m["radius"]); ok {
			radius := int(v)
			area.Radius = &radius
		}
		if v := firstString(m, "units"); v != "" {
			area.Units = &v
		}
		if v := firstString(m, "country_code", "country"); v != "" {
			area.CountryCode = &v
		}
		if area.Name == "" && area.GooglePlaceID == nil {
			continue
		}
		areas = append(areas, area)
	}
	return areas
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func firstFloat(m map[string]any, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := floatValue(m[k]); ok {
			return v
		}
	}
	return 0
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// ClerkWebhookEvent is the envelope Clerk posts to our webhook endpoint.
type ClerkWebhookEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// ClerkUserData is the user payload inside user.* webhook events.
type ClerkUserData struct {
	ID             string  `json:"id"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	ImageURL       *string `json:"image_url"`
	PrimaryEmailID string  `json:"primary_email_address_id"`
	EmailAddresses []struct {
		ID           string `json:"id"`
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
}

// PrimaryEmail picks the address marked primary, falling back to the
// first one present.
func (d *ClerkUserData) PrimaryEmail() string {
	for _, e := range d.EmailAddresses {
		if e.ID == d.PrimaryEmailID {
			return e.EmailAddress
		}
	}
	if len(d.EmailAddresses) > 0 {
		return d.EmailAddresses[0].EmailAddress
	}
	return ""
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Business statuses
const (
	BusinessStatusActive   = "active"
	BusinessStatusPaused   = "paused"
	BusinessStatusArchived = "archived"
)

// Business sizes
const (
	BusinessSizeSmall  = "Small (1 - 10 employees)"
	BusinessSizeMedium = "Medium (10 - 50 employees)"
	BusinessSizeLarge  = "Large (50+ employees)"
)

// Industries
var Industries = []string{
	"Technology",
	"Healthcare",
	"E-commerce",
	"Finance",
	"Education",
	"Real Estate",
	"Manufacturing",
	"Retail",
	"Hospitality",
	"Consulting",
	"Marketing & Advertising",
	"Media & Entertainment",
	"Food & Beverage",
	"Professional Services",
	"Other",
}

func IsValidIndustry(industry string) bool {
	for _, i := range Industries {
		if i == industry {
			return true
		}
	}
	return false
}

func IsValidBusinessStatus(status string) bool {
	switch status {
	case BusinessStatusActive, BusinessStatusPaused, BusinessStatusArchived:
		return true
	}
	return false
}

func IsValidBusinessSize(size string) bool {
	switch size {
	case BusinessSizeSmall, BusinessSizeMedium, BusinessSizeLarge:
		return true
	}
	return false
}

// Business is the main onboarded entity. Each business belongs to a user.
type Business struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"` // Clerk user ID
	Name      string    `json:"name"`
	Website   string    `json:"website"`
	Industry  string    `json:"industry"`
	Size      string    `json:"size"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

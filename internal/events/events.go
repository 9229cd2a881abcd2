package events

import "context"

// Event types
const (
	EventCrawlStarted    = "crawl.started"
	EventCrawlCompleted  = "crawl.completed"
	EventCampaignCreated = "campaign.created"
	EventBrandUpdated    = "brand.updated"
)

// StreamUpdates is the pub/sub channel carrying all realtime updates.
const StreamUpdates = "admaster:updates"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}

package service

import (
	"context"
)

// Activity event kinds published to the event stream.
const (
	EventKindWearLogged  = "wear_logged"
	EventKindOutfitLiked = "outfit_liked"
)

// ActivityEvent is the payload published when a user wears an item or
// (un)likes an outfit. Downstream consumers drive notifications and
// creator analytics from this stream.
type ActivityEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	Kind        string `json:"kind"`
	ActorUserID string `json:"actor_user_id"`
	SubjectID   string `json:"subject_id"`           // Closet item or outfit card ID
	OwnerUserID string `json:"owner_user_id"`        // Item owner or card creator
	PointsDelta int    `json:"points_delta"`         // Signed point transfer caused by the event
	Liked       bool   `json:"liked,omitempty"`      // For like events: resulting state
	OccurredAt  string `json:"occurred_at"`          // RFC3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishActivityEvent publishes an activity event for async processing
	PublishActivityEvent(ctx context.Context, event *ActivityEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

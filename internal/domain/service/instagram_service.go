package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// InstagramPost is one media entry from a connected Instagram account.
type InstagramPost struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"imageUrl"`
	Caption   string    `json:"caption"`
	Permalink string    `json:"permalink"`
	MediaType string    `json:"mediaType"`
	Timestamp time.Time `json:"timestamp"`
}

// ExtractedItem is the closet item guess derived from a post caption.
type ExtractedItem struct {
	Name           string `json:"name"`
	Brand          string `json:"brand"`
	EstimatedPrice int    `json:"estimatedPrice"`
}

// InstagramConnector defines the boundary to the Instagram integration.
// The in-repo implementation is a stub returning fixed mock media; a real
// deployment would swap in the Basic Display API behind the same interface.
type InstagramConnector interface {
	// Connect links the user's Instagram account.
	Connect(ctx context.Context, userID uuid.UUID) error

	// Disconnect removes the link.
	Disconnect(ctx context.Context, userID uuid.UUID) error

	// IsConnected reports whether the user has a linked account.
	IsConnected(ctx context.Context, userID uuid.UUID) bool

	// FetchMedia returns the user's recent posts. Fails when not connected.
	FetchMedia(ctx context.Context, userID uuid.UUID) ([]InstagramPost, error)

	// ExtractItem guesses a closet item from a post caption.
	ExtractItem(post InstagramPost) ExtractedItem
}

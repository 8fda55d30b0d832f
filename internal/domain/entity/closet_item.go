package entity

import (
	"time"

	"github.com/google/uuid"
)

// ItemSource records how a closet item entered the system.
type ItemSource string

const (
	// ItemSourceManual indicates the item was registered by hand.
	ItemSourceManual ItemSource = "manual"
	// ItemSourceInstagram indicates the item was auto-registered from an Instagram import.
	ItemSourceInstagram ItemSource = "instagram"
)

// ClosetItem is a user-owned garment tracked for wear frequency and resale value.
type ClosetItem struct {
	ID              uuid.UUID   `json:"id"`
	OwnerUserID     uuid.UUID   `json:"ownerUserId"`
	Name            string      `json:"name"`
	Brand           string      `json:"brand"`
	PurchasePrice   int         `json:"purchasePrice"` // Currency units; always > 0.
	PurchaseDate    time.Time   `json:"purchaseDate"`
	ImageURL        string      `json:"imageUrl"`
	WearCount       int         `json:"wearCount"`       // Incremented once per wear record.
	UtilizationRate int         `json:"utilizationRate"` // Derived 0..100 score, refreshed on each wear.
	Source          ItemSource  `json:"source"`
	SourcePostID    string      `json:"sourcePostId,omitempty"` // Instagram post id for imported items.
	Public          bool        `json:"public"`                 // Visible in the community closet.
	LikedBy         []uuid.UUID `json:"likedBy,omitempty"`      // Community likes on a public item.
	Version         int         `json:"version"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// WearRecord is an immutable log entry for a single wear of a closet item.
type WearRecord struct {
	ID           uuid.UUID `json:"id"`
	ClosetItemID uuid.UUID `json:"closetItemId"`
	OwnerUserID  uuid.UUID `json:"ownerUserId"`
	WornAt       time.Time `json:"wornAt"`
	PointsEarned int       `json:"pointsEarned"`
}

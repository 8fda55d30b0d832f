package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Product is a purchasable item embedded in an outfit card. It has no
// independent lifecycle; it lives and dies with its card.
type Product struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Brand        string    `json:"brand"`
	Price        int       `json:"price"` // Currency units; always > 0.
	ImageURL     string    `json:"imageUrl"`
	ExternalLink string    `json:"externalLink"`
}

// Comment is a user comment on an outfit card. The author's username is
// denormalized at creation time so renames do not rewrite history.
type Comment struct {
	ID             uuid.UUID `json:"id"`
	OutfitCardID   uuid.UUID `json:"outfitCardId"`
	AuthorUserID   uuid.UUID `json:"authorUserId"`
	AuthorUsername string    `json:"authorUsername"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

// OutfitCard is a shareable post pairing an image with linked purchasable
// products, likes and comments.
type OutfitCard struct {
	ID               uuid.UUID   `json:"id"`
	CreatorUserID    uuid.UUID   `json:"creatorUserId"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	ImageURL         string      `json:"imageUrl"`
	SourceURL        string      `json:"sourceUrl,omitempty"`
	Products         []Product   `json:"products"`
	Likes            int         `json:"likes"`   // Always equals len(LikedBy).
	LikedBy          []uuid.UUID `json:"likedBy"` // Set semantics; no duplicates.
	Comments         []Comment   `json:"comments"`
	EstimatedRevenue int         `json:"estimatedRevenue"` // Derived; refreshed whenever inputs change.
	Version          int         `json:"version"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// LikedByUser reports whether the given user is in the liker set.
func (o *OutfitCard) LikedByUser(userID uuid.UUID) bool {
	return slices.Contains(o.LikedBy, userID)
}

// ToggleLike flips the (card, user) like state and returns true when the
// transition was not-liked to liked. Likes and the liker set stay in sync.
func (o *OutfitCard) ToggleLike(userID uuid.UUID) bool {
	if idx := slices.Index(o.LikedBy, userID); idx >= 0 {
		o.LikedBy = slices.Delete(o.LikedBy, idx, idx+1)
		o.Likes--

		return false
	}

	o.LikedBy = append(o.LikedBy, userID)
	o.Likes++

	return true
}

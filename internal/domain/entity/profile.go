package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// SellerProfile is the public-facing aggregate card for a seller, shown on
// the comparison page. The stats are precomputed seed values, not live
// rollups of the order book; only follower-style counters mutate at runtime.
type SellerProfile struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	StoreName    string    `json:"storeName"`
	ProductCount int       `json:"productCount"`
	AveragePrice int       `json:"averagePrice"`
	Rating       float64   `json:"rating"` // 0.0 .. 5.0
	ReviewCount  int       `json:"reviewCount"`
	TotalSales   int       `json:"totalSales"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreatorProfile is the public-facing aggregate card for an outfit creator,
// plus the live follower set.
type CreatorProfile struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"userId"`
	DisplayName  string      `json:"displayName"`
	Bio          string      `json:"bio,omitempty"`
	Followers    int         `json:"followers"` // Always equals len(FollowerIDs).
	FollowerIDs  []uuid.UUID `json:"followerIds"`
	TotalLikes   int         `json:"totalLikes"`
	TotalRevenue int         `json:"totalRevenue"`
	Version      int         `json:"version"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// IsFollowedBy reports whether the given user follows this creator.
func (c *CreatorProfile) IsFollowedBy(userID uuid.UUID) bool {
	return slices.Contains(c.FollowerIDs, userID)
}

// Follow adds the user to the follower set. Adding an existing follower is a no-op.
func (c *CreatorProfile) Follow(userID uuid.UUID) bool {
	if c.IsFollowedBy(userID) {
		return false
	}

	c.FollowerIDs = append(c.FollowerIDs, userID)
	c.Followers++

	return true
}

// Unfollow removes the user from the follower set. Removing a non-follower is a no-op.
func (c *CreatorProfile) Unfollow(userID uuid.UUID) bool {
	idx := slices.Index(c.FollowerIDs, userID)
	if idx < 0 {
		return false
	}

	c.FollowerIDs = slices.Delete(c.FollowerIDs, idx, idx+1)
	c.Followers--

	return true
}

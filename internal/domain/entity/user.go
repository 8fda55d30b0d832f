package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account.
// Stored representation is the entity itself, so JSON tags define the
// persisted document layout.
type User struct {
	ID           uuid.UUID        `json:"id"`                  // The unique identifier for the user.
	Email        string           `json:"email"`               // Login identifier; unique across all users.
	Username     string           `json:"username"`            // Public display handle; unique across all users.
	PasswordHash string           `json:"passwordHash"`        // Bcrypt hash of the password. Never exposed through the API.
	Role         Role             `json:"role"`                // Capability role: user, creator, seller or admin.
	TotalPoints  int              `json:"totalPoints"`         // Accrued reward points. Never negative.
	AvatarURL    string           `json:"avatarUrl,omitempty"` // Optional profile image.
	Subscription SubscriptionTier `json:"subscription"`        // Current subscription tier (defaults to free).
	Version      int              `json:"version"`             // Incremented on every update.
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// AddPoints adjusts the user's point balance, clamping at zero so a debit
// can never drive the balance negative.
func (u *User) AddPoints(delta int) {
	u.TotalPoints += delta
	if u.TotalPoints < 0 {
		u.TotalPoints = 0
	}
}

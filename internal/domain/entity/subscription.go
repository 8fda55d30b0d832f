package entity

// SubscriptionTier identifies a monetization plan.
type SubscriptionTier string

const (
	// TierFree is the default plan for every new account.
	TierFree SubscriptionTier = "free"
	// TierPro unlocks unlimited items and Instagram sync.
	TierPro SubscriptionTier = "pro"
	// TierPremium adds styling and sponsorship features on top of Pro.
	TierPremium SubscriptionTier = "premium"
)

// IsValid checks if the SubscriptionTier is a known value.
func (t SubscriptionTier) IsValid() bool {
	switch t {
	case TierFree, TierPro, TierPremium:
		return true
	default:
		return false
	}
}

// PlanLimits is the feature matrix of a subscription plan.
// MaxItems of 0 means unlimited.
type PlanLimits struct {
	MaxItems        int  `json:"maxItems"`
	InstagramSync   bool `json:"instagramSync"`
	CommunityAccess bool `json:"communityAccess"`
	AIStyling       bool `json:"aiStyling"`
	Analytics       bool `json:"analytics"`
	AdsRemoved      bool `json:"adsRemoved"`
	PrioritySupport bool `json:"prioritySupport"`
}

// SubscriptionPlan describes a purchasable tier.
type SubscriptionPlan struct {
	Tier         SubscriptionTier `json:"tier"`
	Name         string           `json:"name"`
	MonthlyPrice int              `json:"monthlyPrice"`
	Features     []string         `json:"features"`
	Limits       PlanLimits       `json:"limits"`
}

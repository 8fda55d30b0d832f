package entity

// Feature names usable with PlanLimits lookups.
const (
	FeatureInstagramSync   = "instagramSync"
	FeatureCommunityAccess = "communityAccess"
	FeatureAIStyling       = "aiStyling"
	FeatureAnalytics       = "analytics"
	FeatureAdsRemoved      = "adsRemoved"
	FeaturePrioritySupport = "prioritySupport"
)

// subscriptionPlans is the static tier table. Prices are monthly KRW.
//
//nolint:gochecknoglobals
var subscriptionPlans = []SubscriptionPlan{
	{
		Tier:         TierFree,
		Name:         "무료",
		MonthlyPrice: 0,
		Features: []string{
			"기본 옷장 관리",
			"최대 10개 아이템",
			"착용 기록",
			"포인트 적립",
		},
		Limits: PlanLimits{
			MaxItems: 10,
		},
	},
	{
		Tier:         TierPro,
		Name:         "Pro",
		MonthlyPrice: 9900,
		Features: []string{
			"무제한 아이템 등록",
			"인스타그램 자동 연동",
			"커뮤니티 클로젯 접근",
			"광고 제거",
			"상세 활용률 분석",
			"제휴 마케팅 수익",
		},
		Limits: PlanLimits{
			MaxItems:        0,
			InstagramSync:   true,
			CommunityAccess: true,
			Analytics:       true,
			AdsRemoved:      true,
		},
	},
	{
		Tier:         TierPremium,
		Name:         "Premium",
		MonthlyPrice: 19900,
		Features: []string{
			"Pro 플랜의 모든 기능",
			"AI 스타일링 추천",
			"우선 고객 지원",
			"스폰서 콘텐츠 제작",
			"고급 수익 분석",
			"브랜드 협찬 매칭",
		},
		Limits: PlanLimits{
			MaxItems:        0,
			InstagramSync:   true,
			CommunityAccess: true,
			AIStyling:       true,
			Analytics:       true,
			AdsRemoved:      true,
			PrioritySupport: true,
		},
	},
}

// AllPlans returns every subscription plan in tier order.
func AllPlans() []SubscriptionPlan {
	plans := make([]SubscriptionPlan, len(subscriptionPlans))
	copy(plans, subscriptionPlans)

	return plans
}

// PlanFor returns the plan for a tier. Unknown tiers fall back to free so a
// corrupted user record never unlocks paid features.
func PlanFor(tier SubscriptionTier) SubscriptionPlan {
	for _, plan := range subscriptionPlans {
		if plan.Tier == tier {
			return plan
		}
	}

	return subscriptionPlans[0]
}

// HasFeature reports whether the named feature flag is set on the limits.
func (l PlanLimits) HasFeature(feature string) bool {
	switch feature {
	case FeatureInstagramSync:
		return l.InstagramSync
	case FeatureCommunityAccess:
		return l.CommunityAccess
	case FeatureAIStyling:
		return l.AIStyling
	case FeatureAnalytics:
		return l.Analytics
	case FeatureAdsRemoved:
		return l.AdsRemoved
	case FeaturePrioritySupport:
		return l.PrioritySupport
	default:
		return false
	}
}

// AllowsMoreItems reports whether the plan permits adding an item to a closet
// that currently holds count items.
func (l PlanLimits) AllowsMoreItems(count int) bool {
	return l.MaxItems == 0 || count < l.MaxItems
}

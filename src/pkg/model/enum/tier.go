package enum

type SubscriptionTier string

const (
	TierStarter      SubscriptionTier = "STARTER"
	TierProfessional SubscriptionTier = "PROFESSIONAL"
	TierEnterprise   SubscriptionTier = "ENTERPRISE"
)

func (t SubscriptionTier) String() string {
	return string(t)
}

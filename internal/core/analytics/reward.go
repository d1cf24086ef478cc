package analytics

import "github.com/comitanigiacomo/consistency-tracker/internal/core/domain"

var rewardTiers = []struct {
	atLeast int
	tier    domain.RewardTier
}{
	{95, domain.RewardTier{Badge: "🏆", Title: "LEGEND", Message: "You are unstoppable! True champion mentality!", Color: "#FFD700"}},
	{85, domain.RewardTier{Badge: "🥇", Title: "ELITE", Message: "Outstanding discipline! You're in the top tier!", Color: "#0ea5e9"}},
	{70, domain.RewardTier{Badge: "🥈", Title: "WARRIOR", Message: "Great consistency! Keep pushing forward!", Color: "#C0C0C0"}},
	{50, domain.RewardTier{Badge: "🥉", Title: "RISING STAR", Message: "Good progress! Room for improvement!", Color: "#CD7F32"}},
	{25, domain.RewardTier{Badge: "⭐", Title: "BEGINNER", Message: "You started! Now build the momentum!", Color: "#888"}},
}

var seedling = domain.RewardTier{Badge: "🌱", Title: "SEEDLING", Message: "Every journey starts with a single step!", Color: "#4CAF50"}

// RewardTier maps an overall consistency to its badge.
func RewardTier(overall int) domain.RewardTier {
	for _, t := range rewardTiers {
		if overall >= t.atLeast {
			return t.tier
		}
	}
	return seedling
}

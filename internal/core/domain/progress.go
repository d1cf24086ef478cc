package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProgressNotFound  = errors.New("user progress not found")
	ErrInsufficientCoins = errors.New("insufficient coins")
	ErrInvalidXPAmount   = errors.New("xp amount must be positive")
)

const (
	ActivityXPEarned       = "xp_earned"
	ActivityBadgeUnlocked  = "badge_unlocked"
	ActivityRewardRedeemed = "reward_redeemed"

	XPPerCoin = 10
)

// levelFloors[i] is the XP needed to reach level i+1.
var levelFloors = []int{0, 1000, 2500, 5000, 10000, 20000}

type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      int       `json:"amount,omitempty"`
	Badge       string    `json:"badge,omitempty"`
	Reward      string    `json:"reward,omitempty"`
	Cost        int       `json:"cost,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

// UserProgress is the gamification ledger stored under userProgress_<email>.
type UserProgress struct {
	Username       string     `json:"username"`
	XP             int        `json:"xp"`
	CurrentStreak  int        `json:"currentStreak"`
	GlobalRank     int        `json:"globalRank"`
	OwnedRewards   []Reward   `json:"ownedRewards"`
	UnlockedBadges []string   `json:"unlockedBadges"`
	ActivityLog    []Activity `json:"activityLog"`
}

// NewUserProgress seeds a fresh profile with the demo standing every new
// account starts from.
func NewUserProgress(username string, now time.Time) *UserProgress {
	if username == "" {
		username = "User"
	}
	now = now.UTC()
	return &UserProgress{
		Username:       username,
		XP:             2980,
		CurrentStreak:  35,
		GlobalRank:     3,
		OwnedRewards:   []Reward{},
		UnlockedBadges: []string{"🏆", "🔥", "⚡"},
		ActivityLog: []Activity{
			{ID: uuid.NewString(), Type: ActivityXPEarned, Amount: 100, Timestamp: now, Description: "Completed 7-Day Challenge"},
			{ID: uuid.NewString(), Type: ActivityBadgeUnlocked, Badge: "🔥", Timestamp: now.Add(-24 * time.Hour), Description: "Unlocked Fire Badge"},
			{ID: uuid.NewString(), Type: ActivityXPEarned, Amount: 50, Timestamp: now.Add(-48 * time.Hour), Description: "Daily consistency bonus"},
		},
	}
}

func (p *UserProgress) Coins() int {
	return p.XP / XPPerCoin
}

func (p *UserProgress) Level() int {
	if p.XP >= levelFloors[len(levelFloors)-1] {
		return max(len(levelFloors), p.XP/5000)
	}
	for i := len(levelFloors) - 1; i >= 0; i-- {
		if p.XP >= levelFloors[i] {
			return i + 1
		}
	}
	return 1
}

func (p *UserProgress) CurrentLevelXP() int {
	level := p.Level()
	if level <= len(levelFloors) {
		return levelFloors[level-1]
	}
	return level * 5000
}

func (p *UserProgress) NextLevelXP() int {
	level := p.Level()
	if level < len(levelFloors) {
		return levelFloors[level]
	}
	return (level + 1) * 5000
}

// LevelProgress is the percentage of the way from the current level floor to
// the next one.
func (p *UserProgress) LevelProgress() float64 {
	floor := p.CurrentLevelXP()
	span := p.NextLevelXP() - floor
	if span <= 0 {
		return 0
	}
	return float64(p.XP-floor) / float64(span) * 100
}

func (p *UserProgress) AddXP(amount int, description string, now time.Time) error {
	if amount <= 0 {
		return ErrInvalidXPAmount
	}
	if description == "" {
		description = "XP earned"
	}
	p.XP += amount
	p.prepend(Activity{
		Type:        ActivityXPEarned,
		Amount:      amount,
		Timestamp:   now,
		Description: description,
	})
	return nil
}

// Redeem pays for a reward in coins, which are converted back to XP.
func (p *UserProgress) Redeem(r Reward, now time.Time) error {
	if p.Coins() < r.Cost {
		return ErrInsufficientCoins
	}
	p.XP -= r.Cost * XPPerCoin
	p.OwnedRewards = append(p.OwnedRewards, r)
	p.prepend(Activity{
		Type:        ActivityRewardRedeemed,
		Reward:      r.Title,
		Cost:        r.Cost,
		Timestamp:   now,
		Description: fmt.Sprintf("Redeemed %s for %d coins", r.Title, r.Cost),
	})
	return nil
}

// UnlockBadge returns false when the badge was already unlocked.
func (p *UserProgress) UnlockBadge(badge, description string, now time.Time) bool {
	if p.HasBadge(badge) {
		return false
	}
	p.UnlockedBadges = append(p.UnlockedBadges, badge)
	p.prepend(Activity{
		Type:        ActivityBadgeUnlocked,
		Badge:       badge,
		Timestamp:   now,
		Description: description,
	})
	return true
}

func (p *UserProgress) HasBadge(badge string) bool {
	for _, b := range p.UnlockedBadges {
		if b == badge {
			return true
		}
	}
	return false
}

func (p *UserProgress) HasReward(rewardID string) bool {
	for _, r := range p.OwnedRewards {
		if r.ID == rewardID {
			return true
		}
	}
	return false
}

func (p *UserProgress) prepend(a Activity) {
	a.ID = uuid.NewString()
	a.Timestamp = a.Timestamp.UTC()
	p.ActivityLog = append([]Activity{a}, p.ActivityLog...)
}

package demo

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/pelletier/go-toml/v2"
)

//go:embed catalog.toml
var catalogTOML []byte

type coachRule struct {
	Keywords []string `toml:"keywords"`
	Reply    string   `toml:"reply"`
}

type catalogFile struct {
	Coach struct {
		Welcome  string      `toml:"welcome"`
		Fallback string      `toml:"fallback"`
		Rules    []coachRule `toml:"rules"`
	} `toml:"coach"`
	Rewards      []domain.Reward                      `toml:"rewards"`
	Achievements []domain.Achievement                 `toml:"achievements"`
	Leaderboard  map[string][]domain.LeaderboardEntry `toml:"leaderboard"`
	Challenges   []domain.Challenge                   `toml:"challenges"`
}

// Catalog serves the static demo data. It satisfies domain.AdviceProvider,
// domain.LeaderboardSource and domain.RewardCatalog.
type Catalog struct {
	data catalogFile
}

var (
	_ domain.AdviceProvider    = (*Catalog)(nil)
	_ domain.LeaderboardSource = (*Catalog)(nil)
	_ domain.RewardCatalog     = (*Catalog)(nil)
)

// NewCatalog parses the embedded catalog.
func NewCatalog() (*Catalog, error) {
	return ParseCatalog(catalogTOML)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("demo catalog: %w", err)
	}
	for _, p := range []string{domain.PeriodDaily, domain.PeriodWeekly, domain.PeriodMonthly, domain.PeriodAllTime} {
		if _, ok := f.Leaderboard[p]; !ok {
			return nil, fmt.Errorf("demo catalog: missing %s leaderboard", p)
		}
	}
	return &Catalog{data: f}, nil
}

// Welcome is the opening line of a coaching conversation.
func (c *Catalog) Welcome(userName string) string {
	if userName == "" {
		userName = "there"
	}
	return strings.ReplaceAll(c.data.Coach.Welcome, "{name}", userName)
}

// Advise returns the reply of the first rule with a keyword contained in the
// message, or the fallback menu.
func (c *Catalog) Advise(_ context.Context, userName, message string) (string, error) {
	msg := strings.ToLower(message)
	for _, rule := range c.data.Coach.Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(msg, kw) {
				return strings.ReplaceAll(rule.Reply, "{name}", userName), nil
			}
		}
	}
	return c.data.Coach.Fallback, nil
}

func (c *Catalog) Leaderboard(_ context.Context, period string) ([]domain.LeaderboardEntry, error) {
	entries, ok := c.data.Leaderboard[period]
	if !ok {
		return nil, domain.ErrInvalidPeriod
	}
	return append([]domain.LeaderboardEntry(nil), entries...), nil
}

func (c *Catalog) Challenges(_ context.Context) ([]domain.Challenge, error) {
	return append([]domain.Challenge(nil), c.data.Challenges...), nil
}

func (c *Catalog) Rewards(_ context.Context) ([]domain.Reward, error) {
	return append([]domain.Reward(nil), c.data.Rewards...), nil
}

func (c *Catalog) Reward(_ context.Context, id string) (domain.Reward, error) {
	for _, r := range c.data.Rewards {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Reward{}, domain.ErrRewardNotFound
}

func (c *Catalog) Achievements(_ context.Context) ([]domain.Achievement, error) {
	return append([]domain.Achievement(nil), c.data.Achievements...), nil
}

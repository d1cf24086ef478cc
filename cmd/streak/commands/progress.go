package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
)

const recentActivity = 5

func (c *cli) progressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "XP, level, coins and recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.currentUser(ctx)
			if err != nil {
				return err
			}
			p, err := c.app.Progress.Get(ctx, user.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderProgress(p))
			return nil
		},
	}
}

func renderProgress(p *domain.UserProgress) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", titleStyle.Render(p.Username), mutedStyle.Render(fmt.Sprintf("rank #%d", p.GlobalRank)))
	fmt.Fprintf(&b, "Level %d  %s  %d / %d XP\n", p.Level(), progressBar(p.LevelProgress(), 24), p.XP, p.NextLevelXP())
	fmt.Fprintf(&b, "Coins %d   Streak %d days   Badges %s\n", p.Coins(), p.CurrentStreak, strings.Join(p.UnlockedBadges, " "))

	if len(p.ActivityLog) > 0 {
		t := newTable("When", "Activity")
		for _, a := range p.ActivityLog[:min(recentActivity, len(p.ActivityLog))] {
			t.Row(a.Timestamp.Local().Format("Jan 2 15:04"), a.Description)
		}
		b.WriteString(t.Render())
	}
	return b.String()
}

func (c *cli) claimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim",
		Short: "Claim a 50 or 100 XP bonus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.currentUser(ctx)
			if err != nil {
				return err
			}
			amount, p, err := c.app.Progress.ClaimXP(ctx, user.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  total %d XP\n", successStyle.Render(fmt.Sprintf("+%d XP", amount)), p.XP)
			return nil
		},
	}
}

func (c *cli) redeemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "redeem <reward-id>",
		Short: "Spend coins on a reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.currentUser(ctx)
			if err != nil {
				return err
			}
			p, err := c.app.Progress.Redeem(ctx, user.ID, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %d coins left\n", successStyle.Render("Redeemed "+args[0]), p.Coins())
			return nil
		},
	}
}

func (c *cli) rewardsCmd() *cobra.Command {
	var achievements bool

	cmd := &cobra.Command{
		Use:   "rewards",
		Short: "Reward catalog, or achievements with --achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.currentUser(ctx)
			if err != nil {
				return err
			}

			if achievements {
				list, err := c.app.Progress.Achievements(ctx, user.ID)
				if err != nil {
					return err
				}
				t := newTable("", "Achievement", "Progress", "")
				for _, a := range list {
					state := ""
					if a.Unlocked {
						state = successStyle.Render("unlocked")
					}
					t.Row(a.Icon, a.Title, progressBar(a.Progress, 12)+" "+strconv.Itoa(int(a.Progress))+"%", state)
				}
				fmt.Fprintln(cmd.OutOrStdout(), t.Render())
				return nil
			}

			p, err := c.app.Progress.Get(ctx, user.ID)
			if err != nil {
				return err
			}
			rewards, err := c.app.Progress.Rewards(ctx)
			if err != nil {
				return err
			}
			t := newTable("ID", "", "Reward", "Cost", "")
			for _, r := range rewards {
				state := ""
				switch {
				case p.HasReward(r.ID):
					state = mutedStyle.Render("owned")
				case p.Coins() >= r.Cost:
					state = successStyle.Render("affordable")
				}
				t.Row(r.ID, r.Icon, r.Title, strconv.Itoa(r.Cost), state)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", titleStyle.Render(fmt.Sprintf("%d coins", p.Coins())), t.Render())
			return nil
		},
	}

	cmd.Flags().BoolVar(&achievements, "achievements", false, "show achievement progress instead")
	return cmd
}

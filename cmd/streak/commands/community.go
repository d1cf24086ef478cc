package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) leaderboardCmd() *cobra.Command {
	var period, query string

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Community ranking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.app.Compete.Leaderboard(cmd.Context(), period, query)
			if err != nil {
				return err
			}
			t := newTable("#", "", "User", "Streak", "XP", "Consistency")
			for _, e := range entries {
				name := e.Username
				if e.IsCurrentUser {
					name = titleStyle.Render(name + " (you)")
				}
				t.Row(strconv.Itoa(e.Rank), e.Avatar, name, strconv.Itoa(e.Streak), strconv.Itoa(e.XP), strconv.Itoa(e.Consistency)+"%")
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", "daily", "daily, weekly, monthly or alltime")
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by username")
	return cmd
}

func (c *cli) challengesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "challenges",
		Short: "Community challenges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Compete.Challenges(cmd.Context())
			if err != nil {
				return err
			}
			t := newTable("Challenge", "Status", "People", "Progress", "Reward")
			for _, ch := range list {
				t.Row(ch.Title, ch.Status, strconv.Itoa(ch.ParticipantCount), progressBar(float64(ch.Progress), 10), ch.Reward)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func (c *cli) coachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coach [question...]",
		Short: "Ask the habit coach; without a question it says hello",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.currentUser(ctx)
			if err != nil {
				return err
			}

			var reply string
			if len(args) == 0 {
				reply, err = c.app.Coach.Welcome(ctx, user.ID)
			} else {
				reply, err = c.app.Coach.Ask(ctx, user.ID, strings.Join(args, " "))
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderMarkdown(out, reply))
			return nil
		},
	}
}

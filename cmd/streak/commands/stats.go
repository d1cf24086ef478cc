package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
)

func (c *cli) reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Monthly consistency report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.currentUser(ctx)
			if err != nil {
				return err
			}
			r, err := c.app.Stats.Report(ctx, user.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderReport(r))
			return nil
		},
	}
}

func renderReport(r *domain.ConsistencyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", titleStyle.Render(r.Month), mutedStyle.Render(fmt.Sprintf("day %d of %d", r.Today, r.DaysInMonth)))
	if r.TotalGoals == 0 || len(r.TrackedDays) == 0 {
		b.WriteString(mutedStyle.Render("Nothing tracked this month yet."))
		return b.String()
	}

	summary := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Overall      %s", percentStyle(r.Overall).Render(strconv.Itoa(r.Overall)+"%")),
		fmt.Sprintf("Completed    %d / %d", r.TotalCompleted, r.TotalPossible),
		fmt.Sprintf("Tracked days %d", len(r.TrackedDays)),
		fmt.Sprintf("Projection   %d / %d (%d%%)", r.Projection.Projected, r.Projection.Max, r.Projection.ProjectedPercent),
		fmt.Sprintf("Reward       %s %s", r.Reward.Badge, r.Reward.Title),
	)
	b.WriteString(panelStyle.Render(summary))
	b.WriteString("\n")

	goals := newTable("Goal", "Done", "Consistency", "Streak", "Best", "Broken")
	for _, g := range r.Goals {
		goals.Row(
			g.Name,
			fmt.Sprintf("%d/%d", g.Completed, g.Total),
			percentStyle(g.Consistency).Render(strconv.Itoa(g.Consistency)+"%"),
			strconv.Itoa(g.CurrentStreak),
			strconv.Itoa(g.LongestStreak),
			strconv.Itoa(g.BrokenStreaks),
		)
	}
	b.WriteString(goals.Render())
	b.WriteString("\n")

	weeks := newTable("Week", "Days", "Done", "Consistency")
	for _, w := range r.Weekly {
		label := strconv.Itoa(w.Week)
		if w.IsCurrent {
			label += " *"
		}
		weeks.Row(label, strconv.Itoa(w.DaysTracked), fmt.Sprintf("%d/%d", w.Completed, w.Total), strconv.Itoa(w.Consistency)+"%")
	}
	b.WriteString(weeks.Render())
	return b.String()
}

func (c *cli) insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Improvement suggestions and focus areas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.currentUser(ctx)
			if err != nil {
				return err
			}
			s, err := c.app.Stats.Insights(ctx, user.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderMarkdown(out, insightsMarkdown(s)))
			return nil
		},
	}
}

func insightsMarkdown(s *domain.InsightSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s %s\n\n", s.Reward.Badge, s.Reward.Title)
	fmt.Fprintf(&b, "%s\n\n", s.Reward.Message)
	fmt.Fprintf(&b, "Overall consistency **%d%%** over %d tracked days in %s.\n\n", s.Overall, s.TrackedDays, s.Month)

	if len(s.FocusAreas) > 0 {
		b.WriteString("## Focus areas\n\n")
		for _, f := range s.FocusAreas {
			fmt.Fprintf(&b, "- %s **%s**: %s\n", f.Icon, f.Title, f.Message)
		}
		b.WriteString("\n")
	}

	if len(s.Suggestions) > 0 {
		b.WriteString("## Suggestions\n\n")
		for _, sg := range s.Suggestions {
			fmt.Fprintf(&b, "### %s\n\n%s\n\n", sg.Title, sg.Message)
			for _, tip := range sg.Tips {
				fmt.Fprintf(&b, "- %s\n", tip)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

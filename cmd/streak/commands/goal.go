package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/services"
)

func (c *cli) goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals", "g"},
		Short:   "Manage goals",
	}
	cmd.AddCommand(c.goalAddCmd(), c.goalListCmd(), c.goalToggleCmd(), c.goalMarkCmd(), c.goalRenameCmd(), c.goalDeleteCmd())
	return cmd
}

func (c *cli) goalAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.currentUser(ctx)
			if err != nil {
				return err
			}
			goal, err := c.app.Goals.Create(ctx, services.CreateGoalInput{UserID: user.ID, Name: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Added "+goal.Name))
			return nil
		},
	}
}

func (c *cli) goalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals with this week's marks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.currentUser(ctx)
			if err != nil {
				return err
			}
			goals, err := c.app.Goals.List(ctx, user.ID)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("No goals yet. Add one with `streak goal add <name>`."))
				return nil
			}

			today := time.Now()
			headers := []string{"#", "Goal"}
			for d := 6; d >= 0; d-- {
				headers = append(headers, today.AddDate(0, 0, -d).Format("Mon"))
			}
			t := newTable(headers...)
			for i, g := range goals {
				row := []string{strconv.Itoa(i + 1), g.Name}
				for d := 6; d >= 0; d-- {
					row = append(row, dayMark(g, today.AddDate(0, 0, -d)))
				}
				t.Row(row...)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

func dayMark(g *domain.Goal, day time.Time) string {
	key := domain.DateKey(day)
	switch {
	case g.IsCompleted(key):
		return "✓"
	case g.HasEntry(key):
		return "✗"
	default:
		return "·"
	}
}

func (c *cli) goalToggleCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "toggle <goal>",
		Short: "Flip a day's completion (today by default)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			userID, goalID, err := c.resolveGoal(ctx, args[0])
			if err != nil {
				return err
			}

			var goal *domain.Goal
			if date == "" {
				goal, err = c.app.Goals.ToggleToday(ctx, userID, goalID)
			} else {
				var day time.Time
				if day, err = domain.ParseDate(date); err != nil {
					return err
				}
				goal, err = c.app.Goals.Toggle(ctx, userID, goalID, day)
			}
			if err != nil {
				return err
			}
			return printDayState(cmd, goal, date)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day as YYYY-MM-DD")
	return cmd
}

func (c *cli) goalMarkCmd() *cobra.Command {
	var missed bool

	cmd := &cobra.Command{
		Use:   "mark <goal> <date>",
		Short: "Record a day as done, or as missed with --missed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			day, err := domain.ParseDate(args[1])
			if err != nil {
				return err
			}
			userID, goalID, err := c.resolveGoal(ctx, args[0])
			if err != nil {
				return err
			}
			goal, err := c.app.Goals.Mark(ctx, userID, goalID, day, !missed)
			if err != nil {
				return err
			}
			return printDayState(cmd, goal, args[1])
		},
	}

	cmd.Flags().BoolVar(&missed, "missed", false, "record the day as explicitly not done")
	return cmd
}

func printDayState(cmd *cobra.Command, goal *domain.Goal, date string) error {
	day := time.Now()
	if date != "" {
		parsed, err := domain.ParseDate(date)
		if err != nil {
			return err
		}
		day = parsed
	}
	state := errorStyle.Render("not done")
	if goal.IsCompleted(domain.DateKey(day)) {
		state = successStyle.Render("done")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %s\n", goal.Name, domain.DateKey(day), state)
	return nil
}

func (c *cli) goalRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <goal> <name>",
		Short: "Rename a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			userID, goalID, err := c.resolveGoal(ctx, args[0])
			if err != nil {
				return err
			}
			goal, err := c.app.Goals.Rename(ctx, userID, goalID, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Renamed to "+goal.Name))
			return nil
		},
	}
}

func (c *cli) goalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <goal>",
		Aliases: []string{"rm"},
		Short:   "Delete a goal",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			userID, goalID, err := c.resolveGoal(ctx, args[0])
			if err != nil {
				return err
			}
			if err := c.app.Goals.Delete(ctx, userID, goalID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
}

// resolveGoal accepts either the 1-based position shown by `goal list` or a
// goal id.
func (c *cli) resolveGoal(ctx context.Context, ref string) (string, string, error) {
	user, err := c.currentUser(ctx)
	if err != nil {
		return "", "", err
	}

	n, err := strconv.Atoi(ref)
	if err != nil {
		return user.ID, ref, nil
	}

	goals, err := c.app.Goals.List(ctx, user.ID)
	if err != nil {
		return "", "", err
	}
	if n < 1 || n > len(goals) {
		return "", "", fmt.Errorf("%w: no goal at position %d", domain.ErrGoalNotFound, n)
	}
	return user.ID, goals[n-1].ID, nil
}

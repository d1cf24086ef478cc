package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/services"
)

func (c *cli) themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Set the theme, or toggle it without an argument",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{domain.ThemeLight, domain.ThemeDark},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.currentUser(ctx)
			if err != nil {
				return err
			}

			var prefs *domain.Preferences
			if len(args) == 0 {
				prefs, err = c.app.Preferences.ToggleTheme(ctx, user.ID)
			} else {
				prefs, err = c.app.Preferences.SetTheme(ctx, user.ID, args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Theme: "+prefs.Theme)
			return nil
		},
	}
}

func (c *cli) focusCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "focus [on|off]",
		Short:     "Set focus mode, or toggle it without an argument",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.currentUser(ctx)
			if err != nil {
				return err
			}

			var prefs *domain.Preferences
			if len(args) == 0 {
				prefs, err = c.app.Preferences.ToggleFocusMode(ctx, user.ID)
			} else {
				var on bool
				switch strings.ToLower(args[0]) {
				case "on":
					on = true
				case "off":
				default:
					return fmt.Errorf("focus: want on or off, got %q", args[0])
				}
				prefs, err = c.app.Preferences.Update(ctx, services.UpdatePreferencesInput{UserID: user.ID, FocusMode: &on})
			}
			if err != nil {
				return err
			}

			state := "off"
			if prefs.FocusMode {
				state = "on"
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Focus mode: "+state)
			return nil
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/consistency-tracker/internal/core/services"
)

func (c *cli) registerCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a profile and sign in as it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.app.Auth.Register(ctx, services.RegisterInput{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			if err := c.app.Session.SetCurrent(ctx, user); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Welcome, %s! You are signed in as %s.", user.Name, user.Email)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (at least 6 characters)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to an existing profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.app.Auth.Login(ctx, services.LoginInput{Email: email, Password: password})
			if err != nil {
				return err
			}
			if err := c.app.Session.SetCurrent(ctx, user); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Signed in as "+user.Email))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the signed-in profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Session.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	var newName, newEmail string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show or edit the signed-in profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.currentUser(ctx)
			if err != nil {
				return err
			}

			if newName != "" || newEmail != "" {
				input := services.UpdateProfileInput{UserID: user.ID, Name: user.Name, Email: user.Email}
				if newName != "" {
					input.Name = newName
				}
				if newEmail != "" {
					input.Email = newEmail
				}
				if user, err = c.app.Auth.UpdateProfile(ctx, input); err != nil {
					return err
				}
				if err := c.app.Session.SetCurrent(ctx, user); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", titleStyle.Render(user.Name), mutedStyle.Render("<"+user.Email+">"))
			return nil
		},
	}

	cmd.Flags().StringVar(&newName, "set-name", "", "change the display name")
	cmd.Flags().StringVar(&newEmail, "set-email", "", "change the email address")
	return cmd
}

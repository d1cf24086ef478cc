package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/storage"
	"github.com/comitanigiacomo/consistency-tracker/internal/app"
	"github.com/comitanigiacomo/consistency-tracker/internal/config"
	"github.com/comitanigiacomo/consistency-tracker/internal/core/domain"
	"github.com/comitanigiacomo/consistency-tracker/internal/logging"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"

	errNotLoggedIn = errors.New("not logged in, run `streak login` first")
)

// cli carries the state shared by every subcommand of one invocation.
type cli struct {
	verbose  bool
	dataPath string
	driver   string

	app *app.App
}

func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "streak",
		Short:         "Track daily goals and see how consistent you are this month",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.dataPath, "data", "", "data directory (default $DATA_PATH or ~/.streak)")
	root.PersistentFlags().StringVar(&c.driver, "driver", "", "storage driver: file, sqlite or redis (default file)")

	root.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.goalCmd(),
		c.reportCmd(),
		c.insightsCmd(),
		c.progressCmd(),
		c.claimCmd(),
		c.redeemCmd(),
		c.rewardsCmd(),
		c.leaderboardCmd(),
		c.challengesCmd(),
		c.coachCmd(),
		c.themeCmd(),
		c.focusCmd(),
	)
	c.withApp(root)
	return root
}

// withApp wraps every runnable command so the store is opened after cobra has
// validated args and flags, and is always drained and closed afterwards,
// whether or not the command failed.
func (c *cli) withApp(cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
			if err := c.open(cmd.Context()); err != nil {
				return err
			}
			defer func() {
				if closeErr := c.close(cmd.Context()); closeErr != nil {
					err = errors.Join(err, closeErr)
				}
			}()
			return run(cmd, args)
		}
	}
	for _, sub := range cmd.Commands() {
		c.withApp(sub)
	}
}

func (c *cli) open(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.dataPath != "" {
		cfg.DataPath = c.dataPath
	}

	switch driver := strings.ToLower(c.driver); driver {
	case "":
		if cfg.StorageDriver == storage.DriverMemory || cfg.StorageDriver == config.DriverPostgres {
			cfg.StorageDriver = storage.DriverFile
		}
	case storage.DriverFile, storage.DriverSQLite, storage.DriverRedis:
		cfg.StorageDriver = driver
	default:
		return fmt.Errorf("unsupported driver %q (want file, sqlite or redis)", c.driver)
	}

	if err := logging.Init(logging.Options{
		Verbose: c.verbose,
		Dir:     filepath.Join(cfg.DataPath, "logs"),
		Name:    "streak",
	}); err != nil {
		return err
	}
	if !c.verbose {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	// The CLI never serves requests, so rate limiting and the goal cache stay off.
	cfg.RedisEnabled = false

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	c.app = a
	log.Debug().Str("driver", cfg.StorageDriver).Str("data", cfg.DataPath).Msg("store opened")
	return nil
}

func (c *cli) close(ctx context.Context) error {
	if c.app == nil {
		return nil
	}
	c.app.Worker.Drain(ctx)
	err := c.app.Close()
	c.app = nil
	return err
}

// currentUser resolves the session to a stored account.
func (c *cli) currentUser(ctx context.Context) (*domain.User, error) {
	session, err := c.app.Session.Current(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			if errors.Is(err, domain.ErrCorruptState) {
				log.Warn().Err(err).Msg("session unreadable")
			}
			return nil, errNotLoggedIn
		}
		return nil, err
	}

	user, err := c.app.Auth.GetUser(ctx, session.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, errNotLoggedIn
		}
		return nil, err
	}
	return user, nil
}

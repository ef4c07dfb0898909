// Package main is the CourseCompass command line interface: profile
// management, transcript import, degree progress, and the AI advisor for
// University of Arizona undergraduates.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coursecompass/compass/config"
	"github.com/coursecompass/compass/internal/application/advisor"
	"github.com/coursecompass/compass/internal/application/profilestore"
	"github.com/coursecompass/compass/internal/domain/profile"
	"github.com/coursecompass/compass/internal/infrastructure/external/anthropic"
	"github.com/coursecompass/compass/internal/infrastructure/persistence/kv"
	"github.com/coursecompass/compass/internal/infrastructure/persistence/postgres"
	"github.com/coursecompass/compass/internal/infrastructure/persistence/redis"
	"github.com/coursecompass/compass/pkg/clock"
	"github.com/coursecompass/compass/pkg/logger"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// app carries the wired services for command handlers. It is populated by
// the root command's PersistentPreRunE and torn down afterwards.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	profiles *profilestore.ProfileStore
	clk      clock.Clock

	closeStore func()
}

func main() {
	a := &app{clk: clock.System{}}

	root := &cobra.Command{
		Use:           "compass",
		Short:         "Degree progress tracking for UA undergraduates",
		Long:          "CourseCompass tracks gen ed, major, and minor progress for University of Arizona undergraduates and plans the courses that close the gaps.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.teardown()
		},
	}

	root.AddCommand(
		newProfileCmd(a),
		newCourseCmd(a),
		newImportCmd(a),
		newProgressCmd(a),
		newGenEdCmd(a),
		newRecommendCmd(a),
		newMinorsCmd(a),
		newEstimateCmd(a),
		newAdviseCmd(a),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		a.teardown()
		os.Exit(1)
	}
}

// setup loads config, builds the selected storage backend, and seeds the
// demo profile on a fresh store.
func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Observability.LogLevel),
		Output: os.Stderr,
	})

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	a.closeStore = closeStore
	a.profiles = profilestore.New(store, a.clk, a.log)

	if cfg.App.SeedDemo {
		if _, err := a.profiles.EnsureSeed(ctx); err != nil {
			return fmt.Errorf("seeding demo profile: %w", err)
		}
	}
	return nil
}

func (a *app) teardown() {
	if a.closeStore != nil {
		a.closeStore()
		a.closeStore = nil
	}
}

// openStore builds the configured key-value backend.
func openStore(ctx context.Context, cfg *config.Config) (profile.Store, func(), error) {
	switch cfg.Storage.Backend {
	case config.StorageMemory:
		return kv.NewMemory(), func() {}, nil

	case config.StorageFile:
		f, err := kv.OpenFile(cfg.Storage.FilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening store file: %w", err)
		}
		return f, func() {}, nil

	case config.StorageRedis:
		rcfg := redis.DefaultConfig()
		rcfg.Host = cfg.Redis.Host
		rcfg.Port = cfg.Redis.Port
		rcfg.Password = cfg.Redis.Password
		rcfg.DB = cfg.Redis.DB
		rcfg.DialTimeout = cfg.Redis.DialTimeout
		rcfg.ReadTimeout = cfg.Redis.ReadTimeout
		rcfg.WriteTimeout = cfg.Redis.WriteTimeout
		s, err := redis.New(rcfg)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil

	case config.StoragePostgres:
		pcfg := postgres.DefaultConfig()
		pcfg.URL = cfg.Database.URL
		pcfg.MaxConns = int32(cfg.Database.MaxConns)
		pcfg.ConnectTimeout = cfg.Database.ConnectTimeout
		s, err := postgres.New(ctx, pcfg)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// newAdvisor wires the Anthropic-backed advisor from config.
func (a *app) newAdvisor() (*advisor.Advisor, error) {
	client, err := anthropic.New(anthropic.Config{
		APIKey:    a.cfg.Advisor.APIKey,
		Model:     a.cfg.Advisor.Model,
		MaxTokens: a.cfg.Advisor.MaxTokens,
		Timeout:   a.cfg.Advisor.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return advisor.New(client, a.clk), nil
}

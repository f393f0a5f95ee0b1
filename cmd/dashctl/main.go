// Command dashctl inspects and maintains the dashboard collections from the
// terminal, using the same configuration and storage as the server.
//
// Usage:
//
//	dashctl list <entity> [--q text] [--sort key] [--desc]
//	dashctl stats <entity>
//	dashctl export <entity|all> [-o file.xlsx]
//	dashctl delete <entity> <id>
//	dashctl seed
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/premier-dashboard/internal/adapter/storage"
	"github.com/heartmarshall/premier-dashboard/internal/app"
	"github.com/heartmarshall/premier-dashboard/internal/config"
	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/heartmarshall/premier-dashboard/internal/service/dashboard"
)

// session is the state shared by all subcommands of one run.
type session struct {
	config string
	driver string
	dir    string
	locale string

	log   *slog.Logger
	ws    *dashboard.Workspace
	store storage.KV
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	s := &session{}

	rootCmd := &cobra.Command{
		Use:           "dashctl",
		Short:         "Dashboard collections utility",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.config, "config", "", "YAML config file (default $CONFIG_PATH or ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&s.driver, "driver", "", "storage driver override (memory|file|bolt|postgres)")
	rootCmd.PersistentFlags().StringVar(&s.dir, "dir", "", "storage directory override for the file driver")
	rootCmd.PersistentFlags().StringVar(&s.locale, "locale", "", "export locale override (ar|en)")

	rootCmd.AddCommand(
		newListCmd(s),
		newStatsCmd(s),
		newExportCmd(s),
		newDeleteCmd(s),
		newSeedCmd(s),
	)
	return rootCmd
}

func (s *session) open(ctx context.Context) error {
	path := s.config
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.Read(path)
	if err != nil {
		return err
	}
	if s.driver != "" {
		cfg.Storage.Driver = s.driver
	}
	if s.dir != "" {
		cfg.Storage.Dir = s.dir
	}
	if s.locale != "" {
		cfg.Export.Locale = s.locale
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// The CLI never writes demo data implicitly; see the seed command.
	cfg.Storage.SkipSeed = true

	s.log = app.NewLoggerTo(os.Stderr, cfg.Log)
	s.ws, s.store, err = app.OpenWorkspace(ctx, cfg, s.log)
	return err
}

func (s *session) close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

func (s *session) resource(arg string) (dashboard.Resource, error) {
	e := domain.EntityType(arg)
	if !e.IsValid() {
		return nil, fmt.Errorf("unknown entity %q (want one of %v)", arg, domain.EntityTypes)
	}
	return s.ws.Resource(e)
}

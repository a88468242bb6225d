package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/routesync/internal/client/api"
	"github.com/iudanet/routesync/internal/client/auth"
	"github.com/iudanet/routesync/internal/client/iocli"
	"github.com/iudanet/routesync/internal/client/storage/boltdb"
	"github.com/iudanet/routesync/internal/client/sync"
	"github.com/iudanet/routesync/internal/config"
	"github.com/iudanet/routesync/internal/engine"
	"github.com/iudanet/routesync/internal/engine/sqlite"
	"github.com/iudanet/routesync/internal/metrics"
	"github.com/iudanet/routesync/internal/signature"
)

// BuildInfo version information set via ldflags during build
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath  string
	DBPath      string
	EngineDB    string
	ServerURL   string
	LogLevel    string
	MetricsAddr string
}

// app ресурсы, открытые на время выполнения одной команды
type app struct {
	cfg     config.Config
	cli     *Cli
	store   *boltdb.Storage
	engine  *sqlite.Engine
	metrics *metrics.Server
	logger  *slog.Logger
}

// NewRootCommand creates the root command for the routesync CLI.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &RootOptions{}
	a := &app{}

	cmd := &cobra.Command{
		Use:   "routesync",
		Short: "routesync - find the routes you ride again and again",
		Long: `Fetch GPS traces of your activities from the fitness API (or local fixtures),
build compact route signatures and group activities that follow the same route.`,
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open(cmd, opts)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("routesync\nVersion:    %s\nBuild Date: %s\nGit Commit: %s\n",
		info.Version, info.BuildDate, info.GitCommit))

	// Global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")
	flags.StringVar(&opts.DBPath, "db", "", "path to local cache database")
	flags.StringVar(&opts.EngineDB, "engine-db", "", "path to route engine database")
	flags.StringVar(&opts.ServerURL, "server", "", "fitness API base URL")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	flags.StringVar(&opts.MetricsAddr, "metrics-addr", "", "expose Prometheus metrics on this address")

	cmd.AddCommand(newSyncCommand(a))
	cmd.AddCommand(newResetCommand(a))
	cmd.AddCommand(newStatusCommand(a))
	cmd.AddCommand(newStatsCommand(a))
	cmd.AddCommand(newLoginCommand(a))
	cmd.AddCommand(newLogoutCommand(a))
	cmd.AddCommand(newSignatureCommand(a))
	cmd.AddCommand(newGroupsCommand(a))

	return cmd
}

func newSyncCommand(a *app) *cobra.Command {
	opts := SyncOptions{}
	cmd := &cobra.Command{
		Use:   "sync [activity-id...]",
		Short: "Fetch activity traces and group repeated routes",
		Long: `Fetch GPS traces and feed them to the route engine.

Without activity ids all activities with GPS data from the last 30 days are fetched.
Use --fixtures or --demo to read traces from JSON instead of the fitness API.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.IDs = args
			if opts.Fixtures == "" {
				opts.Fixtures = a.fixtures()
			}
			return a.run(func(c *Cli) error {
				return c.runSync(cmd.Context(), opts)
			})
		},
	}
	cmd.Flags().StringVar(&opts.Fixtures, "fixtures", "", "read traces from a JSON fixture file")
	cmd.Flags().BoolVar(&opts.Demo, "demo", false, "use the built-in demo traces")
	return cmd
}

func newResetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear cached signatures and discard in-flight sync results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func(c *Cli) error {
				return c.runReset(cmd.Context())
			})
		},
	}
}

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication and sync status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func(c *Cli) error {
				return c.runStatus(cmd.Context())
			})
		},
	}
}

func newStatsCommand(a *app) *cobra.Command {
	opts := StatsOptions{}
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show activity totals and FTP trend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func(c *Cli) error {
				return c.runStats(cmd.Context(), opts)
			})
		},
	}
	cmd.Flags().StringVar(&opts.From, "from", "", "period start (YYYY-MM-DD), default 30 days before --to")
	cmd.Flags().StringVar(&opts.To, "to", "", "period end (YYYY-MM-DD, inclusive), default now")
	return cmd
}

func newLoginCommand(a *app) *cobra.Command {
	opts := LoginOptions{}
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save fitness API credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func(c *Cli) error {
				return c.runLogin(cmd.Context(), opts)
			})
		},
	}
	cmd.Flags().StringVar(&opts.APIKey, "api-key", "", "API key (not recommended, use the prompt or ROUTESYNC_API_KEY)")
	cmd.Flags().StringVar(&opts.AccessToken, "token", "", "OAuth access token")
	cmd.Flags().StringVar(&opts.AthleteID, "athlete", "", "athlete id (default: owner of the key)")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Delete saved credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func(c *Cli) error {
				return c.runLogout(cmd.Context())
			})
		},
	}
}

func newSignatureCommand(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "signature <activity-id>",
		Short: "Show the cached route signature of an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func(c *Cli) error {
				return c.runSignature(cmd.Context(), args[0], asJSON)
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the signature as JSON")
	return cmd
}

func newGroupsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List activities grouped by route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(func(c *Cli) error {
				return c.runGroups(cmd.Context())
			})
		},
	}
}

func (a *app) fixtures() string {
	return a.cfg.Fixtures
}

// run выполняет команду и закрывает ресурсы, открытые в open
func (a *app) run(fn func(c *Cli) error) error {
	err := fn(a.cli)
	if closeErr := a.close(); closeErr != nil {
		return errors.Join(err, closeErr)
	}
	return err
}

// open загружает конфигурацию и открывает хранилища
func (a *app) open(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	opts.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ctx := cmd.Context()

	a.store, err = boltdb.New(ctx, cfg.DBPath, boltdb.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// без движка команды sync/stats сообщат ErrEngineUnavailable
	var eng engine.Adapter
	var groups GroupLister
	a.engine, err = sqlite.New(ctx, cfg.Engine.Path,
		sqlite.WithLogger(a.logger),
		sqlite.WithGroupingThreshold(cfg.Engine.GroupingThreshold),
		sqlite.WithOverlapMeters(cfg.Sync.OverlapThreshold),
		sqlite.WithSignatureConfig(cfg.Signature),
	)
	if err != nil {
		a.logger.Warn("Route engine is not available", "path", cfg.Engine.Path, "error", err)
		a.engine = nil
	} else {
		eng = a.engine
		groups = a.engine
	}

	throttle, err := api.NewThrottle(api.ThrottleConfig{
		MinInterval:  cfg.Throttle.MinInterval,
		WindowSize:   cfg.Throttle.WindowSize,
		SafetyMargin: cfg.Throttle.SafetyMargin,
		MaxPerWindow: cfg.Throttle.MaxPerWindow,
	}, api.WithThrottleLogger(a.logger))
	if err != nil {
		_ = a.close()
		return err
	}

	authService := auth.NewService(a.store, a.logger)
	newClient := func(creds *auth.Credentials) api.ClientAPI {
		return api.NewClient(cfg.ServerURL, throttle,
			api.WithAuthenticator(creds),
			api.WithRetry(api.RetryConfig{
				MaxRetries:     cfg.Throttle.MaxRetries,
				InitialBackoff: cfg.Throttle.InitialBackoff,
			}),
			api.WithLogger(a.logger),
			api.WithConcurrency(cfg.Throttle.Concurrency),
		)
	}
	var liveOpts []sync.LiveOption
	if a.engine != nil {
		liveOpts = append(liveOpts, sync.WithMetricsRecorder(a.engine))
	}
	live := sync.NewLiveFetcher(authService, newClient, a.logger, liveOpts...)

	orchestrator := sync.NewOrchestrator(eng, a.store, sync.ProcessGeneration(), a.logger,
		sync.WithConfig(sync.Config{
			PollInterval:   cfg.Sync.PollInterval,
			PollTimeout:    cfg.Sync.PollTimeout,
			MinTracePoints: cfg.Sync.MinTracePoints,
		}),
		sync.WithSignatureBuilder(signature.NewBuilder(cfg.Signature)),
	)

	if cfg.MetricsAddr != "" {
		a.metrics = metrics.NewServer(cfg.MetricsAddr, a.logger)
		a.metrics.Start()
	}

	a.cli = New(Deps{
		IO:           iocli.NewStdioWith(cmd.InOrStdin(), cmd.OutOrStdout()),
		AuthService:  authService,
		Orchestrator: orchestrator,
		Store:        a.store,
		Engine:       eng,
		Groups:       groups,
		Live:         live,
	})
	return nil
}

// close освобождает ресурсы в обратном порядке
func (a *app) close() error {
	var errs []error
	if a.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.metrics.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop metrics server: %w", err))
		}
		a.metrics = nil
	}
	if a.engine != nil {
		if err := a.engine.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close engine: %w", err))
		}
		a.engine = nil
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
		a.store = nil
	}
	return errors.Join(errs...)
}

// apply переопределяет конфигурацию значениями флагов
func (o *RootOptions) apply(cfg *config.Config) {
	overrides := []struct {
		dst *string
		val string
	}{
		{&cfg.DBPath, o.DBPath},
		{&cfg.Engine.Path, o.EngineDB},
		{&cfg.ServerURL, o.ServerURL},
		{&cfg.LogLevel, o.LogLevel},
		{&cfg.MetricsAddr, o.MetricsAddr},
	}
	for _, ov := range overrides {
		if ov.val != "" {
			*ov.dst = ov.val
		}
	}
}

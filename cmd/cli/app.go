package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/giovaniif/shopping-cart/infra/config"
	"github.com/giovaniif/shopping-cart/infra/gateways"
	"github.com/giovaniif/shopping-cart/infra/logging"
	"github.com/giovaniif/shopping-cart/infra/loki"
	"github.com/giovaniif/shopping-cart/infra/metrics"
	"github.com/giovaniif/shopping-cart/infra/repositories"
	"github.com/giovaniif/shopping-cart/infra/session"
	"github.com/giovaniif/shopping-cart/infra/tracing"
	"github.com/giovaniif/shopping-cart/protocols"
	"github.com/giovaniif/shopping-cart/use_cases/shopping"
)

// app holds the process wide dependencies of a single command run.
type app struct {
	cfg         config.Config
	logger      *zap.Logger
	metrics     *metrics.Recorder
	loki        *loki.Writer
	stopTracing func()
	dumpMetrics bool
	stderr      io.Writer
}

func newApp(cmd *cobra.Command, flags *globalFlags) *app {
	cfg := config.Load()
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if flags.catalogFile != "" {
		cfg.CatalogFile = flags.catalogFile
	}

	a := &app{
		cfg:         cfg,
		metrics:     metrics.NewRecorder(),
		dumpMetrics: flags.metrics,
		stderr:      cmd.ErrOrStderr(),
	}

	opts := logging.Options{Service: cfg.ServiceName, Level: cfg.LogLevel, Output: a.stderr}
	if w := loki.NewWriter(cfg.LokiURL, map[string]string{"job": cfg.ServiceName}); w != nil {
		a.loki = w
		opts.Extra = w
	}
	a.logger = logging.New(opts)
	a.stopTracing = tracing.Init(cfg.ServiceName, cfg.OTLPEndpoint)
	return a
}

func (a *app) catalogRepository() protocols.CatalogRepository {
	if a.cfg.CatalogFile != "" {
		return repositories.NewCatalogRepositoryFile(a.cfg.CatalogFile)
	}
	return repositories.NewCatalogRepositoryMemory(nil)
}

func (a *app) shopping(catalogRepository protocols.CatalogRepository) *shopping.Shopping {
	return shopping.NewShopping(
		catalogRepository,
		gateways.NewUUIDGenerator(),
		a.metrics,
		a.logger,
		tracing.Tracer(),
	)
}

func (a *app) close() {
	if a.dumpMetrics {
		if err := a.metrics.WriteText(a.stderr); err != nil {
			a.logger.Warn("failed to write metrics", zap.Error(err))
		}
	}
	if a.stopTracing != nil {
		a.stopTracing()
	}
	_ = a.logger.Sync()
	if a.loki != nil {
		_ = a.loki.Close()
	}
}

// run wraps a command body with app setup and teardown.
func run(flags *globalFlags, body func(ctx context.Context, cmd *cobra.Command, a *app) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a := newApp(cmd, flags)
		defer a.close()
		ctx := session.Ensure(cmd.Context())
		a.logger.Debug("command started", zap.String("command", cmd.Name()), zap.String("session_id", session.FromContext(ctx)))
		return body(ctx, cmd, a)
	}
}

// Command portal serves the self-service request portal.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	_ "time/tzdata"

	"github.com/atnchile/portal/assets"
	"github.com/atnchile/portal/modules/portal"
	"github.com/atnchile/portal/pkg/config"
	"github.com/atnchile/portal/pkg/httpserver"
	"github.com/atnchile/portal/pkg/i18n"
	"github.com/atnchile/portal/pkg/logger"
	"github.com/atnchile/portal/pkg/metrics"
	"github.com/atnchile/portal/pkg/redis"
	"github.com/atnchile/portal/pkg/requestid"
	"github.com/atnchile/portal/pkg/webhook"
	"github.com/atnchile/portal/svc/refdata"
	"github.com/atnchile/portal/svc/requests"
	"github.com/atnchile/portal/svc/wizard"
)

func main() {
	var cfg portal.Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("portal stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg portal.Config, log *slog.Logger) error {
	fsys := assets.FS(cfg.AssetsDir)
	m := metrics.New()

	translator, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(fsys, assets.LocalesDir),
		i18n.WithDefaultLanguage(cfg.DefaultLanguage),
		i18n.WithLogger(log),
	)
	if err != nil {
		return err
	}

	store := refdata.NewStore(fsys, assets.DataDir, refdata.WithLogger(log))
	if err := store.Ready(); err != nil {
		return err
	}

	breaker := webhook.NewCircuitBreaker(cfg.BreakerThreshold, 1, cfg.BreakerRecovery)
	sender, err := webhook.NewSender(cfg.WorkflowURL,
		webhook.WithTimeout(cfg.WorkflowTimeout),
		webhook.WithMaxRetries(cfg.WorkflowMaxRetries),
		webhook.WithCircuitBreaker(breaker),
		webhook.WithLogger(log),
		webhook.WithOnDelivery(func(r webhook.DeliveryResult) {
			m.IncDeliveryAttempt(r.StatusCode)
		}),
	)
	if err != nil {
		return err
	}

	checks := []httpserver.Check{
		{Name: "refdata", Fn: func(context.Context) error { return store.Ready() }},
		{Name: "workflow", Fn: func(context.Context) error {
			if !sender.Healthy() {
				return webhook.ErrCircuitOpen
			}
			return nil
		}},
	}

	var guard requests.Guard = requests.NewMemoryGuard(cfg.DedupCapacity, cfg.DedupWindow)
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		guard = requests.NewRedisGuard(redis.NewClaimer(client, cfg.Redis.KeyPrefix), cfg.DedupWindow)
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
		log.Info("duplicate guard uses redis")
	}

	svc := requests.NewService(sender,
		requests.WithGuard(guard),
		requests.WithCatalog(store),
		requests.WithMetrics(m),
		requests.WithLogger(log),
	)

	deps := portal.Deps{Localizer: translator, Metrics: m, Logger: log}
	wiz := portal.NewWizardService(deps, wizard.NewNavigator(wizard.WithLogger(log)))
	router := portal.Router(portal.RouterOptions{
		Logger:     log,
		Metrics:    m,
		Translator: translator,
		RUT:        portal.NewRUTService(deps),
		Wizard:     wiz,
		Requests:   portal.NewRequestService(deps, svc, wiz),
		Reference:  portal.NewReferenceService(deps, store),
		Checks:     checks,
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

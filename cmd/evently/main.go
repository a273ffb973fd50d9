package main

import (
	"context"
	"log/slog"
	"os"

	"evently/config"
	"evently/internal/delivery"
	"evently/internal/delivery/http"
	"evently/internal/delivery/http/middleware"
	"evently/internal/delivery/http/router/handler"
	"evently/internal/domain/service"
	"evently/internal/infra/auth"
	"evently/internal/infra/auth/google"
	"evently/internal/infra/cache"
	logs "evently/internal/infra/log"
	"evently/internal/infra/metrics"
	"evently/internal/infra/persistence/postgres"
	"evently/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newRegistry,
		fx.Annotate(
			metrics.NewCollector,
			fx.As(new(metrics.Recorder)),
			fx.As(new(service.AuthMetrics)),
		),
	)
}

// newRegistry exposes one registry both for registration and for /metrics.
func newRegistry() (prometheus.Registerer, prometheus.Gatherer) {
	reg := metrics.NewRegistry()

	return reg, reg
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewEventRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewOAuthService,
			fx.Annotate(
				google.NewStateSigner,
				fx.As(new(service.OAuthStateSigner)),
			),
			cache.NewStateStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityResolver,
			fx.Annotate(
				impl.NewLocalAuthenticator,
				fx.ResultTags(`name:"local"`),
			),
			fx.Annotate(
				impl.NewGoogleAuthenticator,
				fx.ResultTags(`name:"google"`),
			),
			fx.Annotate(
				impl.NewBearerAuthenticator,
				fx.ResultTags(`name:"bearer"`),
			),
			impl.NewUserService,
			impl.NewEventService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewEventHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer begins serving once every earlier OnStart hook (database ping,
// migrations, Redis ping) has succeeded.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}

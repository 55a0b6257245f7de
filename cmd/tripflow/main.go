package main

import (
	"context"
	"log/slog"
	"os"

	"tripflow/config"
	"tripflow/internal/delivery"
	"tripflow/internal/delivery/http"
	"tripflow/internal/delivery/http/middleware"
	"tripflow/internal/delivery/http/router/handler"
	"tripflow/internal/infra/auth"
	supabaseauth "tripflow/internal/infra/auth/supabase"
	logs "tripflow/internal/infra/log"
	"tripflow/internal/infra/persistence/postgres"
	supabasestore "tripflow/internal/infra/persistence/supabase"
	"tripflow/internal/infra/provider/amap"
	"tripflow/internal/infra/provider/planner"
	"tripflow/internal/infra/provider/speech"
	"tripflow/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// The storage and identity backend is chosen once, before the graph is
	// built, from the presence of the remote backend configuration.
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectBackend(cfg.CloudBackendEnabled()),
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
		logs.New,
		context.Background,
		planner.New,
		amap.New,
		speech.NewTranscriber,
		speech.NewExtractor,
	)
}

// injectBackend wires the plan store and identity verifier variant. Local
// deployments also carry the full account stack; remote deployments
// delegate identity to the external provider and have no local accounts.
func injectBackend(remote bool) fx.Option {
	if remote {
		return fx.Provide(
			supabasestore.NewClient,
			supabasestore.NewPlanRepository,
			supabaseauth.NewVerifier,
		)
	}

	return fx.Provide(
		postgres.New,
		postgres.NewUserRepository,
		postgres.NewPlanRepository,
		auth.NewBcryptHasher,
		auth.NewJWTService,
		auth.NewLocalVerifier,
		impl.NewUserService,
		handler.NewAuthHandler,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPlanService,
			impl.NewSpeechService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPlanHandler,
			handler.NewAIHandler,
			handler.NewMapHandler,
			handler.NewSpeechHandler,
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

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

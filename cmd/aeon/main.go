package main

import (
	"context"
	"log/slog"
	"os"

	"aeon/config"
	"aeon/internal/delivery"
	"aeon/internal/delivery/api"
	"aeon/internal/delivery/api/middleware"
	"aeon/internal/delivery/api/router/handler"
	"aeon/internal/infra/auth"
	logs "aeon/internal/infra/log"
	"aeon/internal/infra/persistence/store"
	"aeon/internal/infra/storage"
	"aeon/internal/usecase/impl"

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
		store.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.NewUserRepository,
			store.NewCustomerRepository,
			store.NewBrandRepository,
			store.NewCategoryRepository,
			store.NewProductRepository,
			store.NewProductDetailRepository,
			store.NewOrderRepository,
			store.NewPaymentMethodRepository,
			store.NewStatsRepository,
			store.NewHealthRepository,
			store.NewSchemaRepository,
			store.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.NewImageStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewProductService,
			impl.NewCustomerService,
			impl.NewOrderService,
			impl.NewStatsService,
			impl.NewPaymentService,
			impl.NewHealthService,
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
			handler.NewUserHandler,
			handler.NewCatalogHandler,
			handler.NewProductHandler,
			handler.NewCustomerHandler,
			handler.NewOrderHandler,
			handler.NewStatsHandler,
			handler.NewSystemHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

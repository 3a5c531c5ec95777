package main

import (
	"context"
	"log/slog"
	"os"

	"atelier/config"
	"atelier/internal/delivery"
	"atelier/internal/delivery/http"
	"atelier/internal/delivery/http/router/handler"
	logs "atelier/internal/infra/log"
	"atelier/internal/infra/persistence/postgres"
	"atelier/internal/usecase/impl"

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
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewClothingRepository,
			postgres.NewBrandRepository,
			postgres.NewReviewRepository,
			postgres.NewUserRepository,
			postgres.NewOperatorRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewVariantRepository,
			postgres.NewOrderRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewClothingService,
			impl.NewReviewService,
			impl.NewBrandService,
			impl.NewUserService,
			impl.NewOperatorService,
			impl.NewCategoryService,
			impl.NewProductService,
			impl.NewVariantService,
			impl.NewOrderService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewClothingHandler,
			handler.NewReviewHandler,
			handler.NewBrandHandler,
			handler.NewUserHandler,
			handler.NewOperatorHandler,
			handler.NewCategoryHandler,
			handler.NewProductHandler,
			handler.NewVariantHandler,
			handler.NewOrderHandler,
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

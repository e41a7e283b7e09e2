package routes

import (
	"context"
	"fmt"

	"liquidation_backoffice/internal/adapter/persistence/kv"
	"liquidation_backoffice/internal/adapter/persistence/repository"
	"liquidation_backoffice/internal/adapter/remote"
	"liquidation_backoffice/internal/infrastructure/config"
	"liquidation_backoffice/internal/infrastructure/database"
	"liquidation_backoffice/internal/infrastructure/payments"
	"liquidation_backoffice/internal/infrastructure/rendering"
	"liquidation_backoffice/internal/usecase"
	"liquidation_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// App holds the use cases served over HTTP and the resources to release on
// shutdown.
type App struct {
	Customers    usecase.ICustomerUseCase
	Liquidations usecase.ILiquidationUseCase
	closers      []func() error
}

func (a *App) Close() {
	for _, c := range a.closers {
		_ = c()
	}
}

// Build wires repositories, gateway and use cases for the configured storage
// backend. Store-backed liquidations are checked against the configured
// status vocabulary; a mismatch is returned as an error.
func Build(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	app := &App{}

	customers, liquidations, err := buildRepositories(ctx, cfg, log, app)
	if err != nil {
		app.Close()
		return nil, err
	}

	var gateway interfaces.IPaymentGateway
	if cfg.Payment.Enabled || cfg.Payment.Mock {
		mp, err := payments.NewMercadoPagoGateway(payments.GatewayConfig{
			AccessToken: cfg.Payment.AccessToken,
			Mock:        cfg.Payment.Mock,
			MethodID:    cfg.Payment.MethodID,
			PayerEmail:  cfg.Payment.PayerEmail,
			Logger:      log,
		})
		if err != nil {
			log.Warn("Mercado Pago gateway not configured", zap.Error(err))
		} else {
			gateway = mp
		}
	}

	app.Customers = usecase.NewCustomerUseCase(customers, log)
	app.Liquidations = usecase.NewLiquidationUseCase(liquidations, customers, gateway, rendering.NewQRRenderer(), usecase.LiquidationConfig{
		Flavor:           cfg.Liquidation.StatusFlavor,
		DefaultDailyRate: cfg.Liquidation.PenaltyDailyRate,
		Logger:           log,
	})
	return app, nil
}

func buildRepositories(ctx context.Context, cfg *config.Config, log *zap.Logger, app *App) (interfaces.ICustomerRepository, interfaces.ILiquidationRepository, error) {
	if cfg.Storage.Backend == config.BackendRemote {
		client := remote.NewClient(remote.ClientConfig{
			BaseURL: cfg.Remote.BaseURL,
			Token:   cfg.Remote.Token,
			Timeout: cfg.Remote.Timeout,
			Logger:  log,
		})
		log.Info("using remote back-office API", zap.String("base_url", cfg.Remote.BaseURL))
		return remote.NewCustomerHTTPRepository(client), remote.NewLiquidationHTTPRepository(client), nil
	}

	backend, err := openKeyValueStore(ctx, cfg, app)
	if err != nil {
		return nil, nil, err
	}
	log.Info("using key-value storage", zap.String("backend", cfg.Storage.Backend))

	customers := repository.NewCustomerStoreRepository(backend, cfg.Customer.NameFlavor, repository.StoreConfig{
		Key:    cfg.Storage.CustomersKey,
		Seed:   cfg.Storage.Seed,
		Logger: log,
	})
	liquidations := repository.NewLiquidationStoreRepository(backend, cfg.Liquidation.StatusFlavor, repository.StoreConfig{
		Key:    cfg.Storage.LiquidationsKey,
		Seed:   cfg.Storage.Seed,
		Logger: log,
	})
	if err := liquidations.CheckVocabulary(ctx); err != nil {
		return nil, nil, err
	}
	return customers, liquidations, nil
}

func openKeyValueStore(ctx context.Context, cfg *config.Config, app *App) (interfaces.IKeyValueStore, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return kv.NewMemoryStore(), nil
	case config.BackendSQLite:
		store, err := kv.OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, store.Close)
		return store, nil
	case config.BackendDynamoDB:
		client, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return kv.NewDynamoDBStore(client, cfg.DynamoDB.Table), nil
	case config.BackendRedis:
		client, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, client.Close)
		return kv.NewRedisStore(client, cfg.Redis.Prefix), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

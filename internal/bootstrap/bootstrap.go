package bootstrap

import (
	"context"
	"fmt"

	"inapp-server/internal/apierrors"
	"inapp-server/internal/auth/credentials"
	"inapp-server/internal/auth/handler"
	"inapp-server/internal/auth/processor"
	campaignHandler "inapp-server/internal/campaign/handler"
	campaignProcessor "inapp-server/internal/campaign/processor"
	kafkaClient "inapp-server/internal/clients/kafka"
	redisClient "inapp-server/internal/clients/redis"
	"inapp-server/internal/config"
	"inapp-server/internal/events"
	"inapp-server/internal/integrity"
	inventoryHandler "inapp-server/internal/inventory/handler"
	inventoryProcessor "inapp-server/internal/inventory/processor"
	"inapp-server/internal/observability"
	"inapp-server/internal/store"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler      handler.Handler
	InventoryHandler inventoryHandler.Handler
	CampaignHandler  campaignHandler.Handler

	// Clients (for cleanup). Both are nil when disabled.
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}
	apierrors.SetLogger(logger)

	// Credentials fail fast on a bad secret or cost.
	credentialManager, err := credentials.New(credentials.Config{
		Secret:   cfg.Auth.JWTSecret,
		HashCost: cfg.Auth.BcryptCost,
		Issuer:   cfg.Auth.JWTIssuer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure credentials: %w", err)
	}

	// Initialize database store
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := deps.Store.Ping(ctx); err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	// Initialize clients
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	if cfg.Kafka.Enabled {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
	} else {
		logger.Info(ctx, "Kafka is disabled, entity events will not be published")
	}
	eventPublisher := events.NewPublisher(deps.KafkaProducer, logger)

	validator := integrity.NewValidator(logger)
	guard := integrity.NewDeleteGuard(integrity.StoreAdapter{Store: deps.Store}, logger)

	// Initialize auth processor and handler
	authProc := processor.New(deps.Store, credentialManager, cfg.Auth.TokenTTL, logger)
	deps.AuthHandler = handler.New(authProc, logger)

	// Initialize inventory processor and handler
	inventoryProc := inventoryProcessor.New(
		inventoryProcessor.StoreAdapter{Store: deps.Store},
		validator,
		guard,
		deps.RedisClient,
		eventPublisher,
		logger,
	)
	deps.InventoryHandler = inventoryHandler.New(inventoryProc, logger)

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(
		campaignProcessor.StoreAdapter{Store: deps.Store},
		validator,
		guard,
		eventPublisher,
		logger,
	)
	deps.CampaignHandler = campaignHandler.New(campaignProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if err := d.KafkaProducer.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close kafka producer", err)
	}
	if err := d.RedisClient.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis client", err)
	}
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close database", err)
		}
	}
}
